package session

import (
	"testing"
	"time"

	"github.com/abhisek/repertoire/internal/mastery"
)

func TestGrade(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	prior := map[string]mastery.Record{
		"C50": {Attempts: 10, Correct: 5, Mastery: 50, AvgTimeMs: 20000},
	}
	answers := []Answer{
		{OpeningECO: "B90", Correct: true, TimeSpentMs: 3000},
		{OpeningECO: "B90", Correct: false, TimeSpentMs: 5000},
		{OpeningECO: "C50", Correct: true, TimeSpentMs: 9999},
		{OpeningECO: "B90", Correct: true, TimeSpentMs: 1000},
	}

	sum := Grade(answers, prior, now)

	if sum.Answered != 4 || sum.Correct != 3 {
		t.Errorf("answered/correct = %d/%d, want 4/3", sum.Answered, sum.Correct)
	}
	// 170 + 0 + 100 + 190.
	if sum.Points != 460 {
		t.Errorf("points = %d, want 460", sum.Points)
	}
	if sum.MaxStreak != 2 {
		t.Errorf("max streak = %d, want 2", sum.MaxStreak)
	}
	if got := sum.Accuracy(); got != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", got)
	}

	b90 := sum.Records["B90"]
	want := mastery.Record{Attempts: 3, Correct: 2, Mastery: 8, AvgTimeMs: 9000, LastSeenAt: now}
	if b90 != want {
		t.Errorf("B90 record = %+v, want %+v", b90, want)
	}

	c50 := sum.Records["C50"]
	want = mastery.Record{Attempts: 11, Correct: 6, Mastery: 55, AvgTimeMs: 29999, LastSeenAt: now}
	if c50 != want {
		t.Errorf("C50 record = %+v, want %+v", c50, want)
	}

	// Prior map must be untouched.
	if prior["C50"].Attempts != 10 {
		t.Error("Grade mutated the prior records")
	}
}

func TestGradeEmpty(t *testing.T) {
	sum := Grade(nil, nil, time.Now())
	if sum.Answered != 0 || sum.Points != 0 || sum.MaxStreak != 0 {
		t.Errorf("non-zero summary for no answers: %+v", sum)
	}
	if sum.Accuracy() != 0 {
		t.Errorf("accuracy = %v, want 0", sum.Accuracy())
	}
	if len(sum.Records) != 0 {
		t.Errorf("records for no answers: %v", sum.Records)
	}
}
