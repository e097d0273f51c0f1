// Package classify maps move sequences to their deepest catalogue
// opening.
package classify

import (
	"github.com/abhisek/repertoire/internal/board"
	"github.com/abhisek/repertoire/internal/catalogue"
	"github.com/abhisek/repertoire/internal/movetext"
)

// Result is the outcome of classifying a move sequence. A nil Entry is
// the ordinary "no match" outcome, not an error.
type Result struct {
	// Entry is the deepest catalogue entry whose canonical position
	// the sequence reached, or nil when nothing matched.
	Entry *catalogue.Entry

	// PliesApplied counts the moves that applied legally before the
	// replay stopped.
	PliesApplied int
}

// Matched reports whether the sequence reached any catalogue position.
func (r Result) Matched() bool { return r.Entry != nil }

// Classifier replays move sequences against the rules engine and looks
// each reached position up in the catalogue.
type Classifier struct {
	cat *catalogue.Catalogue
	b   board.Model
}

// New creates a classifier over the given catalogue and rules engine.
func New(cat *catalogue.Catalogue, b board.Model) *Classifier {
	return &Classifier{cat: cat, b: b}
}

// Classify replays the moves from the starting position, one hashed
// catalogue lookup per applied ply, and returns the last (deepest)
// match found. Deeper theoretical lines win over shallow transpositions
// that also matched along the way. An illegal move stops the replay;
// whatever matched up to that point stands. An empty sequence is a
// valid input that trivially yields no match.
func (c *Classifier) Classify(moves []string) Result {
	var res Result
	pos := c.b.StartPos()
	for _, move := range moves {
		next, err := c.b.ApplyMove(pos, move)
		if err != nil {
			break
		}
		pos = next
		res.PliesApplied++

		key, err := c.b.CanonicalKey(pos)
		if err != nil {
			break
		}
		if e, ok := c.cat.ByPosition(key); ok {
			res.Entry = e
		}
	}
	return res
}

// ClassifyText tokenizes a move-text line (stripping move numbers and
// result markers) and classifies it.
func (c *Classifier) ClassifyText(text string) Result {
	return c.Classify(movetext.Split(text))
}
