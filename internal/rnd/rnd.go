// Package rnd supplies the injectable randomness every stochastic
// choice in the trainer goes through. Seeding a Source reproduces an
// entire session: the selector's draws, the generator's ply and
// distractor choices, and the assembler's shuffles.
package rnd

import (
	"math/rand/v2"
	"time"
)

// Source yields the two primitives the trainer needs. *rand.Rand from
// math/rand/v2 satisfies it directly.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// New returns a deterministic Source for the given seed.
func New(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}

// NewAuto returns a Source seeded from the clock, for callers that do
// not need reproducibility.
func NewAuto() Source {
	return New(uint64(time.Now().UnixNano()))
}

// Shuffle permutes n elements uniformly with a Fisher-Yates walk from
// the end, drawing all randomness from src.
func Shuffle(n int, src Source, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		swap(i, j)
	}
}
