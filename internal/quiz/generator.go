package quiz

import (
	"errors"
	"fmt"
	"math"

	"github.com/abhisek/repertoire/internal/board"
	"github.com/abhisek/repertoire/internal/catalogue"
	"github.com/abhisek/repertoire/internal/movetext"
	"github.com/abhisek/repertoire/internal/rnd"
)

// ErrInsufficientDepth means an opening's line is too short to build a
// question from. Callers pick a different opening; this never aborts a
// session.
var ErrInsufficientDepth = errors.New("opening line too short for a question")

// minPlies is the shortest line worth questioning on.
const minPlies = 4

// maxAlternatives is the distractor count per question.
const maxAlternatives = 3

// Generator builds questions by replaying catalogue lines on the rules
// engine.
type Generator struct {
	b board.Model
}

// NewGenerator creates a generator over the given rules engine.
func NewGenerator(b board.Model) *Generator {
	return &Generator{b: b}
}

// Generate builds one question from the entry within the requested
// difficulty band. The tested ply is drawn uniformly from the band's
// depth window, which scales with difficulty and keeps questions away
// from the first ply. The reported difficulty is recomputed from the
// realized depth and the opening's popularity, so two questions from
// the same opening can differ.
func (g *Generator) Generate(e *catalogue.Entry, diffMin, diffMax int, src rnd.Source) (*Question, error) {
	plies := movetext.Split(e.MoveText)
	total := len(plies)
	if total < minPlies {
		return nil, ErrInsufficientDepth
	}

	lo := int(float64(total) * 0.2 * float64(diffMin))
	hi := int(float64(total) * 0.2 * float64(diffMax))
	if hi > total-1 {
		hi = total - 1
	}
	if lo > hi {
		lo = hi
	}
	idx := lo + src.IntN(hi-lo+1)

	pos := g.b.StartPos()
	for i := 0; i < idx; i++ {
		next, err := g.b.ApplyMove(pos, plies[i])
		if err != nil {
			return nil, fmt.Errorf("replay %s ply %d: %w", e.ECOCode, i, err)
		}
		pos = next
	}

	correct, err := g.b.CanonicalMove(pos, plies[idx])
	if err != nil {
		return nil, fmt.Errorf("canonicalize %s ply %d: %w", e.ECOCode, idx, err)
	}

	alts, err := g.alternatives(pos, correct, src)
	if err != nil {
		return nil, fmt.Errorf("alternatives for %s: %w", e.ECOCode, err)
	}

	key, err := g.b.CanonicalKey(pos)
	if err != nil {
		return nil, fmt.Errorf("position key for %s: %w", e.ECOCode, err)
	}

	q := &Question{
		OpeningECO:   e.ECOCode,
		OpeningName:  e.Name,
		Position:     key,
		CorrectMove:  correct,
		Alternatives: alts,
		MoveNumber:   idx/2 + 1,
		Difficulty:   difficulty(idx, e.Popularity),
	}
	q.Hint = hintFor(e, src)
	q.Explanation = explanationFor(e, correct, q.MoveNumber, src)
	return q, nil
}

// difficulty combines realized depth and popularity: deeper plies and
// rarer openings rate harder. Result is clamped to 1..5.
func difficulty(plyIndex, popularity int) int {
	depth := math.Min(float64(plyIndex)/10, 1) * 2

	var pop float64
	switch {
	case popularity > 1000:
		pop = 0
	case popularity > 500:
		pop = 1
	default:
		pop = 2
	}

	d := int(math.Ceil(depth + pop))
	if d < 1 {
		d = 1
	}
	if d > 5 {
		d = 5
	}
	return d
}

// alternatives enumerates the legal moves from the position, drops the
// correct one and any duplicates, shuffles, and keeps up to three.
func (g *Generator) alternatives(pos, correct string, src rnd.Source) ([]string, error) {
	legal, err := g.b.LegalMoves(pos)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{correct: true}
	var pool []string
	for _, m := range legal {
		if seen[m] {
			continue
		}
		seen[m] = true
		pool = append(pool, m)
	}

	rnd.Shuffle(len(pool), src, func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > maxAlternatives {
		pool = pool[:maxAlternatives]
	}
	return pool, nil
}
