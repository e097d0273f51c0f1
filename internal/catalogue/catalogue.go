package catalogue

import (
	"fmt"
	"strings"

	"github.com/abhisek/repertoire/internal/board"
	"github.com/abhisek/repertoire/internal/movetext"
)

// Catalogue is the immutable opening index. Construct it once with New
// or Load and share it; all methods are read-only and safe for
// concurrent use.
type Catalogue struct {
	entries    []*Entry
	byECO      map[string]*Entry
	byPosition map[string]*Entry
}

// New builds a catalogue from ETL records, replaying each entry's move
// text through the rules engine to derive its canonical position. A
// ply that fails to apply truncates that entry's replay: the partial
// position becomes the canonical position and the load continues.
// Duplicate ECO codes are a data error and fail the build.
func New(records []Record, b board.Model) (*Catalogue, error) {
	c := &Catalogue{
		byECO:      make(map[string]*Entry, len(records)),
		byPosition: make(map[string]*Entry, len(records)),
	}

	start := b.StartPos()
	for _, r := range records {
		if r.ECOCode == "" {
			return nil, fmt.Errorf("opening %q: missing eco code", r.Name)
		}
		if _, ok := c.byECO[r.ECOCode]; ok {
			return nil, fmt.Errorf("duplicate eco code %q", r.ECOCode)
		}

		family, variation, sub := decomposeName(r.Name)
		e := &Entry{
			ECOCode:      r.ECOCode,
			Name:         r.Name,
			Family:       family,
			Variation:    variation,
			Subvariation: sub,
			MoveText:     r.MoveText,
			Popularity:   r.Popularity,
			WhiteWins:    r.WhiteWins,
			BlackWins:    r.BlackWins,
			Draws:        r.Draws,
		}

		pos := start
		for _, ply := range movetext.Split(r.MoveText) {
			next, err := b.ApplyMove(pos, ply)
			if err != nil {
				// Bad ply in the corpus: keep the partial line.
				break
			}
			pos = next
		}
		key, err := b.CanonicalKey(pos)
		if err != nil {
			return nil, fmt.Errorf("opening %s: canonical key: %w", r.ECOCode, err)
		}
		e.CanonicalPosition = key

		c.entries = append(c.entries, e)
		c.byECO[e.ECOCode] = e
		// First entry to reach a position owns it; later transpositions
		// into the same key keep the earlier, shallower-coded entry.
		if _, ok := c.byPosition[key]; !ok {
			c.byPosition[key] = e
		}
	}

	return c, nil
}

// Len returns the number of entries.
func (c *Catalogue) Len() int { return len(c.entries) }

// ByECO looks an entry up by its ECO code.
func (c *Catalogue) ByECO(code string) (*Entry, bool) {
	e, ok := c.byECO[code]
	return e, ok
}

// ByPosition looks an entry up by exact canonical position key.
func (c *Catalogue) ByPosition(key string) (*Entry, bool) {
	e, ok := c.byPosition[key]
	return e, ok
}

// All returns every entry in load order. Callers must not mutate the
// entries.
func (c *Catalogue) All() []*Entry {
	out := make([]*Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Category returns the entries whose ECO code starts with the given
// category letter (A-E), in load order.
func (c *Catalogue) Category(letter string) []*Entry {
	var out []*Entry
	upper := strings.ToUpper(letter)
	for _, e := range c.entries {
		if strings.HasPrefix(e.ECOCode, upper) {
			out = append(out, e)
		}
	}
	return out
}

// Search returns entries whose name, family or variation contains the
// query, case-insensitively, in load order.
func (c *Catalogue) Search(query string) []*Entry {
	q := strings.ToLower(query)
	var out []*Entry
	for _, e := range c.entries {
		if strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Family), q) ||
			strings.Contains(strings.ToLower(e.Variation), q) {
			out = append(out, e)
		}
	}
	return out
}

// MinPopularity returns entries with at least the given popularity,
// in load order.
func (c *Catalogue) MinPopularity(n int) []*Entry {
	var out []*Entry
	for _, e := range c.entries {
		if e.Popularity >= n {
			out = append(out, e)
		}
	}
	return out
}

// Filter returns entries matching any of the ECO-code prefixes (all
// entries when the list is empty) with at least the given popularity,
// in load order. This is the candidate set the session layer selects
// from.
func (c *Catalogue) Filter(ecoPrefixes []string, minPopularity int) []*Entry {
	var out []*Entry
	for _, e := range c.entries {
		if e.Popularity < minPopularity {
			continue
		}
		if len(ecoPrefixes) > 0 && !matchesPrefix(e.ECOCode, ecoPrefixes) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesPrefix(code string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(code, strings.ToUpper(strings.TrimSpace(p))) {
			return true
		}
	}
	return false
}
