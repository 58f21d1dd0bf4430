package llm

import "context"

// Provider is the contract with the external generation service: one prompt
// in, one response string out. Failures are recovered by the conversation
// engine (fixed fallback message), never shown to the candidate.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Close() error
}
