// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// AdvisorService is the natural-language savings advisor. Implementations
// forward a free-text prompt and return the reply as loose JSON; the shape of
// the reply is informal and normalization happens in the goal use case.
type AdvisorService interface {
	// Name identifies the backend for logging ("webhook", "gemini").
	Name() string

	// IsAvailable reports whether the backend is configured.
	IsAvailable() bool

	// RequestPlan sends the prompt and returns the decoded JSON object.
	// Transport failures (unreachable, non-2xx, timeout, malformed JSON) are
	// returned as errors; a successfully decoded object is never an error no
	// matter its shape.
	RequestPlan(ctx context.Context, prompt string) (map[string]any, error)
}
