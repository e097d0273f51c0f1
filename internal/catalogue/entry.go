// Package catalogue holds the immutable opening reference index. It is
// built once at process start from the ETL output and shared read-only
// by every session afterwards.
package catalogue

import "strings"

// Record is one opening as produced by the ETL step. CanonicalPosition
// is deliberately absent: it is derived here, never trusted from input.
type Record struct {
	ECOCode    string `json:"eco"`
	Name       string `json:"name"`
	MoveText   string `json:"moves"`
	Popularity int    `json:"popularity"`
	WhiteWins  int    `json:"whiteWins"`
	BlackWins  int    `json:"blackWins"`
	Draws      int    `json:"draws"`
}

// Entry is a catalogue opening ready for lookup and classification.
type Entry struct {
	ECOCode      string
	Name         string
	Family       string
	Variation    string
	Subvariation string
	MoveText     string

	// CanonicalPosition is the board key reached by replaying MoveText
	// from the start position (truncated at the first failing ply).
	CanonicalPosition string

	Popularity int
	WhiteWins  int
	BlackWins  int
	Draws      int
}

// Category returns the ECO category letter (first byte of the code).
func (e *Entry) Category() string {
	if e.ECOCode == "" {
		return ""
	}
	return e.ECOCode[:1]
}

// decomposeName splits a display name into family, variation and
// subvariation. The family is the text before the first colon; the
// remainder splits on commas, first segment variation, second
// subvariation, both trimmed.
func decomposeName(name string) (family, variation, subvariation string) {
	family = name
	i := strings.Index(name, ":")
	if i < 0 {
		return strings.TrimSpace(family), "", ""
	}
	family = strings.TrimSpace(name[:i])
	rest := name[i+1:]
	parts := strings.SplitN(rest, ",", 3)
	if len(parts) > 0 {
		variation = strings.TrimSpace(parts[0])
	}
	if len(parts) > 1 {
		subvariation = strings.TrimSpace(parts[1])
	}
	return family, variation, subvariation
}
