package mastery

// Streak tracks consecutive correct answers within a session. Any miss
// resets the run; Max keeps the session's best run.
type Streak struct {
	current int
	max     int
}

// Record feeds one answer into the streak.
func (s *Streak) Record(correct bool) {
	if !correct {
		s.current = 0
		return
	}
	s.current++
	if s.current > s.max {
		s.max = s.current
	}
}

// Current returns the live run length.
func (s *Streak) Current() int { return s.current }

// Max returns the longest run seen this session.
func (s *Streak) Max() int { return s.max }
