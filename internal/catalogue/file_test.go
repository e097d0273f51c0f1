package catalogue

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/repertoire/internal/board"
)

const validDoc = `{
	"formatVersion": "v1.2.0",
	"openings": [
		{"eco": "B20", "name": "Sicilian Defense", "moves": "1. e4 c5", "popularity": 2500},
		{"eco": "C20", "name": "King's Pawn Game: King's Knight Variation", "moves": "1. e4 e5"}
	]
}`

func TestParse(t *testing.T) {
	cat, err := Parse([]byte(validDoc), board.NewRules())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("Len = %d, want 2", cat.Len())
	}
	e, ok := cat.ByECO("B20")
	if !ok || e.Popularity != 2500 {
		t.Errorf("B20 = %+v, %v", e, ok)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", "not json"},
		{"missing version", `{"openings": []}`},
		{"future version", strings.Replace(validDoc, "v1.2.0", "v2.0.0", 1)},
		{"invalid semver", strings.Replace(validDoc, "v1.2.0", "one", 1)},
		{"bad eco code", strings.Replace(validDoc, `"B20"`, `"Z20"`, 1)},
		{"empty name", strings.Replace(validDoc, `"Sicilian Defense"`, `""`, 1)},
	}

	for _, tt := range tests {
		if _, err := Parse([]byte(tt.doc), board.NewRules()); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openings.json")
	if err := os.WriteFile(path, []byte(validDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := Load(path, board.NewRules())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cat.Len() != 2 {
		t.Errorf("Len = %d, want 2", cat.Len())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json"), board.NewRules()); err == nil {
		t.Error("Load(missing): expected error")
	}
}
