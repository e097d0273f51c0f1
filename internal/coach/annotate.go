package coach

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/repertoire/internal/catalogue"
	"github.com/abhisek/repertoire/internal/quiz"
)

// annotationSchema gates the model's output to exactly the two fields
// the question carries.
var annotationSchema = &Schema{
	Name:        "opening-annotation",
	Description: "A hint and an explanation for a chess opening quiz question",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"hint", "explanation"},
		"properties": map[string]any{
			"hint": map[string]any{
				"type":        "string",
				"description": "One sentence nudging the learner toward the right move without naming it",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Two to three sentences on why the move is the book continuation",
			},
		},
	},
}

type annotation struct {
	Hint        string `json:"hint"`
	Explanation string `json:"explanation"`
}

const annotateSystem = "You are a chess opening coach. You write short, " +
	"concrete hints and explanations for multiple-choice opening questions. " +
	"Never reveal the correct move in a hint."

// Annotator rewrites a question's templated hint and explanation with
// provider-generated text. Failures are absorbed: the templated text
// stays and the trainer carries on.
type Annotator struct {
	p Provider
}

// NewAnnotator creates an annotator over the given provider.
func NewAnnotator(p Provider) *Annotator {
	return &Annotator{p: p}
}

// Annotate fills q.Hint and q.Explanation from the provider. On any
// provider or schema error the question is left untouched and the
// error is returned for optional reporting.
func (a *Annotator) Annotate(ctx context.Context, q *quiz.Question, e *catalogue.Entry) error {
	prompt := fmt.Sprintf(
		"Opening: %s (%s)\nLine so far reaches position: %s\nTested move number: %d\nCorrect move: %s\nWrong choices offered: %v\n\nWrite the hint and explanation.",
		e.Name, e.ECOCode, q.Position, q.MoveNumber, q.CorrectMove, q.Alternatives,
	)

	resp, err := a.p.Generate(ctx, Request{
		System:    annotateSystem,
		Prompt:    prompt,
		Schema:    annotationSchema,
		MaxTokens: 400,
	})
	if err != nil {
		return err
	}

	var ann annotation
	if err := json.Unmarshal(resp.Content, &ann); err != nil {
		return &ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	if ann.Hint != "" {
		q.Hint = ann.Hint
	}
	if ann.Explanation != "" {
		q.Explanation = ann.Explanation
	}
	return nil
}
