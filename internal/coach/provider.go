// Package coach optionally enriches generated questions with
// LLM-written hints and explanations. It is strictly additive: the
// templated text from the generator is always the fallback, so the
// trainer works identically offline.
package coach

import (
	"context"
	"encoding/json"
)

// Provider abstracts an LLM backend that answers one structured
// question per call. Annotation is single-shot; there is no
// conversation state.
type Provider interface {
	// Generate sends a prompt and returns structured output. When the
	// request carries a Schema the response Content is JSON validated
	// against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the user-turn content.
	Prompt string

	// Schema, when set, selects the provider's native structured
	// output mechanism and gates the response.
	Schema *Schema

	MaxTokens int

	// Temperature in 0.0-1.0; zero means deterministic.
	Temperature float64
}

// Schema names and defines the JSON structure a response must match.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when the request had a Schema.
	Content json.RawMessage

	Usage      Usage
	Model      string
	StopReason string
}

// Usage reports token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
