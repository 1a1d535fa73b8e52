package domain

import (
	"context"
	"time"

	"github.com/davidbz/glass/internal/ollama"
)

// ModelClient talks to the inference server.
type ModelClient interface {
	// IsAvailable reports whether the server answers its status endpoint.
	IsAvailable(ctx context.Context) bool

	// ListModels returns model names in server order.
	ListModels(ctx context.Context) ([]string, error)

	// PullModel requests a model download.
	PullModel(ctx context.Context, name string) error

	// Complete sends one prompt and returns the generated text.
	Complete(ctx context.Context, prompt, model string, extra map[string]any) (string, error)

	// EnsureModel probes, lists and pulls as needed.
	EnsureModel(ctx context.Context, model string) ollama.Readiness

	// DefaultModel returns the model used when a call names none.
	DefaultModel() string
}

// SuggestionCache stores generated answers keyed by request fingerprint.
type SuggestionCache interface {
	// Get returns a cached answer or ErrCacheMiss.
	Get(ctx context.Context, key string) (string, error)

	// Set stores an answer for ttl.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
