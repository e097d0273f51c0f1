package session

import (
	"testing"

	"github.com/abhisek/repertoire/internal/catalogue"
	"github.com/abhisek/repertoire/internal/mastery"
	"github.com/abhisek/repertoire/internal/rnd"
)

// scriptedSource feeds predetermined values into a draw.
type scriptedSource struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptedSource) Float64() float64 {
	v := s.floats[s.fi]
	s.fi++
	return v
}

func (s *scriptedSource) IntN(n int) int {
	if s.ii >= len(s.ints) {
		return 0
	}
	v := s.ints[s.ii]
	s.ii++
	return v % n
}

func TestWeight(t *testing.T) {
	tests := []struct {
		mastery int
		want    int
	}{
		{0, 100},
		{50, 50},
		{99, 1},
		{100, 1}, // floor: never unselectable
	}

	for _, tt := range tests {
		if got := Weight(tt.mastery); got != tt.want {
			t.Errorf("Weight(%d) = %d, want %d", tt.mastery, got, tt.want)
		}
	}
}

func TestPickWalksWeights(t *testing.T) {
	candidates := []*catalogue.Entry{
		{ECOCode: "B20"},
		{ECOCode: "C50"},
	}
	records := map[string]mastery.Record{
		"C50": {Mastery: 90},
	}
	// Weights: B20=100, C50=10, total 110.

	// A draw inside the first weight lands on B20.
	src := &scriptedSource{floats: []float64{0.5}}
	if got := Pick(candidates, records, src); got.ECOCode != "B20" {
		t.Errorf("mid draw picked %s, want B20", got.ECOCode)
	}

	// A draw past the first weight lands on C50.
	src = &scriptedSource{floats: []float64{0.95}}
	if got := Pick(candidates, records, src); got.ECOCode != "C50" {
		t.Errorf("high draw picked %s, want C50", got.ECOCode)
	}

	// A zero draw crosses zero on the first candidate.
	src = &scriptedSource{floats: []float64{0}}
	if got := Pick(candidates, records, src); got.ECOCode != "B20" {
		t.Errorf("zero draw picked %s, want B20", got.ECOCode)
	}
}

func TestPickEdgeCases(t *testing.T) {
	if got := Pick(nil, nil, rnd.New(1)); got != nil {
		t.Errorf("Pick(empty) = %v, want nil", got)
	}

	only := []*catalogue.Entry{{ECOCode: "A00"}}
	records := map[string]mastery.Record{"A00": {Mastery: 100}}
	for seed := uint64(1); seed <= 10; seed++ {
		if got := Pick(only, records, rnd.New(seed)); got == nil || got.ECOCode != "A00" {
			t.Fatalf("fully mastered sole candidate not picked (seed %d)", seed)
		}
	}
}

func TestPickFavorsWeakOpenings(t *testing.T) {
	candidates := []*catalogue.Entry{
		{ECOCode: "B20"},
		{ECOCode: "C50"},
	}
	records := map[string]mastery.Record{
		"C50": {Mastery: 95},
	}

	src := rnd.New(3)
	counts := map[string]int{}
	for range 1000 {
		counts[Pick(candidates, records, src).ECOCode]++
	}

	// B20 weighs 100 against C50's 5; the split should be lopsided but
	// C50 must still appear.
	if counts["C50"] == 0 {
		t.Error("mastered opening never drawn despite weight floor")
	}
	if counts["B20"] < counts["C50"]*5 {
		t.Errorf("weak opening underdrawn: %v", counts)
	}
}
