// Package mastery computes per-opening proficiency updates and scoring
// for submitted answers. Everything here is a pure function over the
// caller's records; persistence belongs to the caller.
package mastery

import (
	"math"
	"time"
)

// Record is a learner's standing on one opening. The zero value is the
// state before the first attempt.
type Record struct {
	Attempts   int
	Correct    int
	Mastery    int // 0..100
	AvgTimeMs  int
	LastSeenAt time.Time
}

// Accuracy returns the correct/attempts ratio, 0 before any attempt.
func (r Record) Accuracy() float64 {
	if r.Attempts == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Attempts)
}

const (
	correctDelta   = 5
	incorrectDelta = 2
)

// Apply returns the record after one attempt. Mastery moves +5 on a
// correct answer and -2 on a miss, clamped to [0, 100].
//
// AvgTimeMs accumulates by simple increment rather than maintaining a
// true running mean. That reproduces the shipped behavior; changing it
// would shift every historical timing statistic.
func Apply(prev Record, correct bool, timeSpentMs int, now time.Time) Record {
	next := prev
	next.Attempts++
	if correct {
		next.Correct++
		next.Mastery = clamp(next.Mastery+correctDelta, 0, 100)
	} else {
		next.Mastery = clamp(next.Mastery-incorrectDelta, 0, 100)
	}
	next.AvgTimeMs += timeSpentMs
	next.LastSeenAt = now
	return next
}

// Points scores one attempt: a flat base of 100 plus a time bonus of
// up to 100 that decays over the first ten seconds. Misses score zero.
func Points(correct bool, timeSpentMs int) int {
	if !correct {
		return 0
	}
	bonus := 10000 - timeSpentMs
	if bonus < 0 {
		bonus = 0
	}
	return int(math.Round(100 + float64(bonus)/100))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
