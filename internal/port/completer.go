package port

import "context"

// CompletionRequest carries one prompt for the text-generation provider.
type CompletionRequest struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Completer abstracts the external LLM completion provider. The returned
// string is the model's free-form reply; callers are responsible for
// locating and parsing any structured content within it.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
