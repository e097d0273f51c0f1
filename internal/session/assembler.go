package session

import (
	"errors"

	"github.com/google/uuid"

	"github.com/abhisek/repertoire/internal/catalogue"
	"github.com/abhisek/repertoire/internal/mastery"
	"github.com/abhisek/repertoire/internal/quiz"
	"github.com/abhisek/repertoire/internal/rnd"
)

// retryFactor bounds generation attempts per session: up to this many
// draws per requested question before giving up on filling the list.
const retryFactor = 3

// Session is one assembled quiz, ready to present.
type Session struct {
	ID        string
	Config    Config
	Questions []quiz.Question
}

// Assembler builds sessions from the catalogue via adaptive selection
// and the question generator.
type Assembler struct {
	cat *catalogue.Catalogue
	gen *quiz.Generator
}

// NewAssembler creates an assembler over a shared catalogue and
// generator.
func NewAssembler(cat *catalogue.Catalogue, gen *quiz.Generator) *Assembler {
	return &Assembler{cat: cat, gen: gen}
}

// Build assembles a session: filter candidates, draw openings by
// mastery weight, generate questions, then interleave difficulties.
// Openings too short for a question are skipped and redrawn within a
// bounded retry budget; a session shorter than requested is acceptable
// degraded output, not an error. The only rejected input is an invalid
// config.
func (a *Assembler) Build(cfg Config, records map[string]mastery.Record, src rnd.Source) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		ID:     uuid.NewString(),
		Config: cfg,
	}

	candidates := a.cat.Filter(cfg.OpeningFilter, cfg.MinPopularity)
	if len(candidates) == 0 {
		return s, nil
	}

	budget := retryFactor * cfg.QuestionsPerSession
	for attempt := 0; attempt < budget && len(s.Questions) < cfg.QuestionsPerSession; attempt++ {
		e := Pick(candidates, records, src)
		if e == nil {
			break
		}
		q, err := a.gen.Generate(e, cfg.DifficultyMin, cfg.DifficultyMax, src)
		if err != nil {
			if errors.Is(err, quiz.ErrInsufficientDepth) {
				continue
			}
			// Corpus glitch on this one opening; skip it too.
			continue
		}
		s.Questions = append(s.Questions, *q)
	}

	s.Questions = interleave(s.Questions, src)
	return s, nil
}

// interleave rebalances the question order for an even difficulty
// spread: bucket by realized difficulty, shuffle within each bucket,
// then take round-robin across buckets in ascending difficulty. No
// long same-difficulty run can open the session, the total count is
// preserved, and ordering within a tier stays randomized.
func interleave(questions []quiz.Question, src rnd.Source) []quiz.Question {
	if len(questions) < 2 {
		return questions
	}

	// Difficulty is always 1..5.
	var groups [5][]quiz.Question
	for _, q := range questions {
		d := q.Difficulty
		if d < 1 {
			d = 1
		}
		if d > 5 {
			d = 5
		}
		groups[d-1] = append(groups[d-1], q)
	}

	for i := range groups {
		g := groups[i]
		rnd.Shuffle(len(g), src, func(a, b int) {
			g[a], g[b] = g[b], g[a]
		})
	}

	out := make([]quiz.Question, 0, len(questions))
	for round := 0; len(out) < len(questions); round++ {
		for _, g := range groups {
			if round < len(g) {
				out = append(out, g[round])
			}
		}
	}
	return out
}
