// Package quiz generates multiple-choice opening questions from
// catalogue entries.
package quiz

// Question is one generated quiz item. Questions are ephemeral: built
// fresh for a session and never persisted by this layer.
type Question struct {
	OpeningECO  string
	OpeningName string

	// Position is the canonical key of the board before the tested ply.
	Position string

	// CorrectMove is the corpus continuation from Position, in the
	// rules engine's canonical notation.
	CorrectMove string

	// Alternatives holds up to three distinct legal moves from
	// Position, none equal to CorrectMove. Fewer appear only when the
	// position has fewer legal alternatives.
	Alternatives []string

	// MoveNumber is the 1-based full-move count of the tested ply.
	MoveNumber int

	// Difficulty is derived from the realized ply depth and the
	// opening's popularity, 1..5.
	Difficulty int

	Hint        string
	Explanation string
}
