package classify

import (
	"testing"

	"github.com/abhisek/repertoire/internal/board"
	"github.com/abhisek/repertoire/internal/catalogue"
)

func testClassifier(t *testing.T) *Classifier {
	t.Helper()
	records := []catalogue.Record{
		{ECOCode: "B00", Name: "King's Pawn Game", MoveText: "1. e4"},
		{ECOCode: "C20", Name: "King's Pawn Game: King's Knight Variation", MoveText: "1. e4 e5"},
		{ECOCode: "B20", Name: "Sicilian Defense", MoveText: "1. e4 c5"},
		{ECOCode: "B50", Name: "Sicilian Defense: Modern Variation", MoveText: "1. e4 c5 2. Nf3 d6"},
		{ECOCode: "B90", Name: "Sicilian Defense: Najdorf Variation", MoveText: "1. e4 c5 2. Nf3 d6 3. d4 cxd4 4. Nxd4 Nf6 5. Nc3 a6"},
	}
	b := board.NewRules()
	cat, err := catalogue.New(records, b)
	if err != nil {
		t.Fatalf("catalogue: %v", err)
	}
	return New(cat, b)
}

func TestClassifyScenario(t *testing.T) {
	c := testClassifier(t)

	res := c.Classify([]string{"e4", "c5"})
	if !res.Matched() || res.Entry.ECOCode != "B20" {
		t.Fatalf("Classify(e4 c5) = %+v, want B20", res)
	}

	res = c.Classify([]string{"e4", "e5"})
	if !res.Matched() || res.Entry.ECOCode != "C20" {
		t.Fatalf("Classify(e4 e5) = %+v, want C20", res)
	}
}

func TestClassifyLongestPrefixWins(t *testing.T) {
	c := testClassifier(t)

	// The full line walks through B00, B20 and B50 positions on the
	// way; the deepest catalogued position must win.
	res := c.ClassifyText("1. e4 c5 2. Nf3 d6 3. d4 cxd4 4. Nxd4 Nf6 5. Nc3 a6")
	if !res.Matched() || res.Entry.ECOCode != "B90" {
		t.Fatalf("full Najdorf line = %+v, want B90", res)
	}
	if res.PliesApplied != 10 {
		t.Errorf("PliesApplied = %d, want 10", res.PliesApplied)
	}

	// A line leaving theory keeps its deepest match.
	res = c.Classify([]string{"e4", "c5", "Nf3", "d6", "h4"})
	if !res.Matched() || res.Entry.ECOCode != "B50" {
		t.Fatalf("offbeat continuation = %+v, want B50", res)
	}
}

func TestClassifyIllegalMoveTruncates(t *testing.T) {
	c := testClassifier(t)

	truncated := c.Classify([]string{"e4", "e5", "zz"})
	clean := c.Classify([]string{"e4", "e5"})

	if truncated.Entry != clean.Entry || truncated.PliesApplied != clean.PliesApplied {
		t.Errorf("truncated = %+v, clean = %+v; want identical", truncated, clean)
	}
	if truncated.PliesApplied != 2 {
		t.Errorf("PliesApplied = %d, want 2", truncated.PliesApplied)
	}
}

func TestClassifyNoMatch(t *testing.T) {
	c := testClassifier(t)

	tests := []struct {
		name  string
		moves []string
		plies int
	}{
		{"empty input", nil, 0},
		{"uncatalogued line", []string{"d4", "d5"}, 2},
		{"immediately illegal", []string{"zz"}, 0},
	}

	for _, tt := range tests {
		res := c.Classify(tt.moves)
		if res.Matched() {
			t.Errorf("%s: unexpected match %s", tt.name, res.Entry.ECOCode)
		}
		if res.PliesApplied != tt.plies {
			t.Errorf("%s: PliesApplied = %d, want %d", tt.name, res.PliesApplied, tt.plies)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := testClassifier(t)
	moves := []string{"e4", "c5", "Nf3", "d6"}

	first := c.Classify(moves)
	for range 5 {
		if got := c.Classify(moves); got != first {
			t.Fatalf("classification varied: %+v vs %+v", got, first)
		}
	}
}
