package session

import (
	"github.com/abhisek/repertoire/internal/catalogue"
	"github.com/abhisek/repertoire/internal/mastery"
	"github.com/abhisek/repertoire/internal/rnd"
)

// Weight converts a mastery score into a selection weight. Weaker
// openings weigh more; the floor of 1 keeps every opening selectable
// forever, even at full mastery.
func Weight(masteryScore int) int {
	w := 100 - masteryScore
	if w < 1 {
		w = 1
	}
	return w
}

// Pick draws one candidate with probability proportional to its
// weight. Records absent from the map count as mastery 0. The draw
// walks the candidates in catalogue order subtracting weights from a
// uniform value in [0, totalWeight); the first candidate to cross zero
// wins. The same opening may be drawn again on a later call; sessions
// sample with replacement. Returns nil only for an empty candidate
// list.
func Pick(candidates []*catalogue.Entry, records map[string]mastery.Record, src rnd.Source) *catalogue.Entry {
	if len(candidates) == 0 {
		return nil
	}

	total := 0
	for _, e := range candidates {
		total += Weight(records[e.ECOCode].Mastery)
	}

	r := src.Float64() * float64(total)
	for _, e := range candidates {
		r -= float64(Weight(records[e.ECOCode].Mastery))
		if r <= 0 {
			return e
		}
	}
	// Numerical drift left no candidate selected.
	return candidates[0]
}
