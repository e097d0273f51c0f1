// Package session selects openings adaptively and assembles full quiz
// sessions.
package session

import (
	"errors"
	"fmt"
)

// Mode is the session pacing mode. It only affects presentation and
// time budgets at the caller; generation is identical across modes.
type Mode string

const (
	ModeBlitz  Mode = "blitz"
	ModeRapid  Mode = "rapid"
	ModePuzzle Mode = "puzzle"
)

// ErrInvalidConfig marks caller-misuse configuration errors, the only
// error class this layer surfaces. Everything else degrades to fewer
// or easier questions.
var ErrInvalidConfig = errors.New("invalid session config")

// Config describes one requested training session. The caller owns it;
// Validate is the gate for every entry point that accepts one.
type Config struct {
	Mode                Mode
	TimePerMoveSeconds  int
	QuestionsPerSession int

	// DifficultyMin/Max bound the requested band, 1 <= min <= max <= 5.
	DifficultyMin int
	DifficultyMax int

	// OpeningFilter is an allow-list of ECO-code prefixes; empty means
	// the whole catalogue.
	OpeningFilter []string

	// MinPopularity drops openings with fewer reference games.
	MinPopularity int
}

// DefaultConfig returns a rapid ten-question session over the full
// difficulty band.
func DefaultConfig() Config {
	return Config{
		Mode:                ModeRapid,
		TimePerMoveSeconds:  30,
		QuestionsPerSession: 10,
		DifficultyMin:       1,
		DifficultyMax:       5,
	}
}

// Validate rejects configurations that indicate caller misuse.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeBlitz, ModeRapid, ModePuzzle:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	if c.QuestionsPerSession <= 0 {
		return fmt.Errorf("%w: questions per session must be positive, got %d", ErrInvalidConfig, c.QuestionsPerSession)
	}
	if c.DifficultyMin < 1 || c.DifficultyMax > 5 || c.DifficultyMin > c.DifficultyMax {
		return fmt.Errorf("%w: difficulty range [%d, %d] outside 1 <= min <= max <= 5", ErrInvalidConfig, c.DifficultyMin, c.DifficultyMax)
	}
	if c.TimePerMoveSeconds < 0 {
		return fmt.Errorf("%w: negative time per move", ErrInvalidConfig)
	}
	if c.MinPopularity < 0 {
		return fmt.Errorf("%w: negative popularity threshold", ErrInvalidConfig)
	}
	return nil
}
