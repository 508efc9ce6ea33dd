// Package intelligence provides the optional LLM enrichment capability used
// by the itinerary generator. A missing or failing provider always degrades
// to absence-of-result; it never surfaces as a user-facing error.
package intelligence

import "context"

// Enricher produces a free-form itinerary narrative for a prompt. An empty
// narrative with a nil error means no result is available; callers fall back
// to their deterministic template path.
type Enricher interface {
	EnrichItinerary(ctx context.Context, prompt string) (string, error)
}

// DisabledEnricher is the default no-provider implementation. It reports
// absence-of-result, never an error.
type DisabledEnricher struct{}

func (DisabledEnricher) EnrichItinerary(context.Context, string) (string, error) {
	return "", nil
}
