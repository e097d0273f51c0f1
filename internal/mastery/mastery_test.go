package mastery

import (
	"testing"
	"time"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestApplyCorrect(t *testing.T) {
	rec := Apply(Record{}, true, 3000, now)

	if rec.Attempts != 1 || rec.Correct != 1 {
		t.Errorf("counters = %d/%d, want 1/1", rec.Correct, rec.Attempts)
	}
	if rec.Mastery != 5 {
		t.Errorf("Mastery = %d, want 5", rec.Mastery)
	}
	if rec.AvgTimeMs != 3000 {
		t.Errorf("AvgTimeMs = %d, want 3000", rec.AvgTimeMs)
	}
	if !rec.LastSeenAt.Equal(now) {
		t.Errorf("LastSeenAt = %v, want %v", rec.LastSeenAt, now)
	}
}

func TestApplyIncorrect(t *testing.T) {
	prev := Record{Attempts: 4, Correct: 3, Mastery: 15}
	rec := Apply(prev, false, 8000, now)

	if rec.Attempts != 5 || rec.Correct != 3 {
		t.Errorf("counters = %d/%d, want 3/5", rec.Correct, rec.Attempts)
	}
	if rec.Mastery != 13 {
		t.Errorf("Mastery = %d, want 13", rec.Mastery)
	}
}

func TestMasteryStaysInBounds(t *testing.T) {
	rec := Record{}
	for range 100 {
		rec = Apply(rec, true, 1000, now)
		if rec.Mastery < 0 || rec.Mastery > 100 {
			t.Fatalf("Mastery %d out of bounds", rec.Mastery)
		}
	}
	if rec.Mastery != 100 {
		t.Errorf("Mastery after 100 correct = %d, want saturation at 100", rec.Mastery)
	}

	for range 100 {
		rec = Apply(rec, false, 1000, now)
		if rec.Mastery < 0 || rec.Mastery > 100 {
			t.Fatalf("Mastery %d out of bounds", rec.Mastery)
		}
	}
	if rec.Mastery != 0 {
		t.Errorf("Mastery after 100 misses = %d, want floor at 0", rec.Mastery)
	}
}

func TestAvgTimeAccumulates(t *testing.T) {
	// Increment-only accumulation is the shipped behavior.
	rec := Apply(Record{}, true, 3000, now)
	rec = Apply(rec, false, 5000, now)
	if rec.AvgTimeMs != 8000 {
		t.Errorf("AvgTimeMs = %d, want 8000", rec.AvgTimeMs)
	}
}

func TestAccuracy(t *testing.T) {
	if got := (Record{}).Accuracy(); got != 0 {
		t.Errorf("zero record Accuracy = %v, want 0", got)
	}
	if got := (Record{Attempts: 4, Correct: 3}).Accuracy(); got != 0.75 {
		t.Errorf("Accuracy = %v, want 0.75", got)
	}
}

func TestPoints(t *testing.T) {
	tests := []struct {
		correct bool
		timeMs  int
		want    int
	}{
		{true, 0, 200},
		{true, 5000, 150},
		{true, 10000, 100},
		{true, 60000, 100},
		{true, 9999, 100},
		{false, 0, 0},
		{false, 500, 0},
	}

	for _, tt := range tests {
		if got := Points(tt.correct, tt.timeMs); got != tt.want {
			t.Errorf("Points(%v, %d) = %d, want %d", tt.correct, tt.timeMs, got, tt.want)
		}
	}
}

func TestStreak(t *testing.T) {
	var s Streak
	seq := []bool{true, true, false, true, true, true, false}
	wantCurrent := []int{1, 2, 0, 1, 2, 3, 0}
	wantMax := []int{1, 2, 2, 2, 2, 3, 3}

	for i, correct := range seq {
		s.Record(correct)
		if s.Current() != wantCurrent[i] {
			t.Errorf("step %d: Current = %d, want %d", i, s.Current(), wantCurrent[i])
		}
		if s.Max() != wantMax[i] {
			t.Errorf("step %d: Max = %d, want %d", i, s.Max(), wantMax[i])
		}
	}
}
