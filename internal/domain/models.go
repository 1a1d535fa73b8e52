package domain

import "errors"

// ErrCacheMiss indicates no cached entry was found.
var ErrCacheMiss = errors.New("cache miss")

// ErrEmptyPrompt is returned when a prompt has no content.
var ErrEmptyPrompt = errors.New("prompt cannot be empty")

// ErrEmptyCode is returned when a code review has nothing to review.
var ErrEmptyCode = errors.New("code cannot be empty")

// FallbackAnswer is returned by AskOrApologize when no answer could be obtained.
const FallbackAnswer = "Sorry, I couldn't get a response from the AI."

// AssistantConfig contains assistant service settings.
type AssistantConfig struct {
	CacheTTL int `env:"ASSISTANT_CACHE_TTL" envDefault:"3600"` // seconds
}

// AskRequest is a free-form question for the model.
type AskRequest struct {
	Prompt string         `json:"prompt"`
	Model  string         `json:"model,omitempty"`
	Params map[string]any `json:"params,omitempty"` // merged into the generate body verbatim
}
