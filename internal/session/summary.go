package session

import (
	"time"

	"github.com/abhisek/repertoire/internal/mastery"
)

// Answer is one submitted response, in session order.
type Answer struct {
	OpeningECO  string
	Correct     bool
	TimeSpentMs int
}

// Summary is everything the caller needs to persist after a session:
// updated per-opening records, total points and the best streak.
type Summary struct {
	Answered  int
	Correct   int
	Points    int
	MaxStreak int

	// Records holds the post-session mastery record per opening that
	// was answered. Openings not answered are absent.
	Records map[string]mastery.Record
}

// Accuracy returns the session's correct/answered ratio.
func (s Summary) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered)
}

// Grade folds a sequence of answers over the learner's prior records.
// Prior records are read-only; the summary carries fresh copies.
// Answers must be in submission order for the streak to be meaningful.
func Grade(answers []Answer, prior map[string]mastery.Record, now time.Time) Summary {
	sum := Summary{Records: make(map[string]mastery.Record)}
	var streak mastery.Streak

	for _, a := range answers {
		prev, ok := sum.Records[a.OpeningECO]
		if !ok {
			prev = prior[a.OpeningECO]
		}
		sum.Records[a.OpeningECO] = mastery.Apply(prev, a.Correct, a.TimeSpentMs, now)

		sum.Answered++
		if a.Correct {
			sum.Correct++
		}
		sum.Points += mastery.Points(a.Correct, a.TimeSpentMs)
		streak.Record(a.Correct)
	}

	sum.MaxStreak = streak.Max()
	return sum
}
