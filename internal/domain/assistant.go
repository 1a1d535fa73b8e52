package domain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/davidbz/glass/internal/observability"
	"github.com/davidbz/glass/internal/ollama"
)

// AssistantService turns dataset summaries and questions into model prompts.
type AssistantService struct {
	client   ModelClient
	cache    SuggestionCache
	cacheTTL time.Duration
}

// NewAssistantService creates a new assistant service (DI constructor).
// cache may be nil, which disables caching.
func NewAssistantService(client ModelClient, cache SuggestionCache, cfg *AssistantConfig) *AssistantService {
	var ttl time.Duration
	if cfg != nil {
		ttl = time.Duration(cfg.CacheTTL) * time.Second
	}

	return &AssistantService{
		client:   client,
		cache:    cache,
		cacheTTL: ttl,
	}
}

// Setup makes sure the model is ready on the server.
func (a *AssistantService) Setup(ctx context.Context, model string) ollama.Readiness {
	return a.client.EnsureModel(ctx, model)
}

// Available reports whether the inference server answers.
func (a *AssistantService) Available(ctx context.Context) bool {
	return a.client.IsAvailable(ctx)
}

// Models lists the models held by the server.
func (a *AssistantService) Models(ctx context.Context) ([]string, error) {
	models, err := a.client.ListModels(ctx)
	if err != nil {
		return models, fmt.Errorf("failed to list models: %w", err)
	}
	return models, nil
}

// Ask sends a free-form prompt, consulting the cache first when one is configured.
func (a *AssistantService) Ask(ctx context.Context, req *AskRequest) (string, error) {
	if req == nil {
		return "", errors.New("request cannot be nil")
	}

	if strings.TrimSpace(req.Prompt) == "" {
		return "", ErrEmptyPrompt
	}

	model := req.Model
	if model == "" {
		model = a.client.DefaultModel()
	}

	ctx = observability.WithModel(ctx, model)
	logger := observability.FromContext(ctx)

	key := ""
	if a.cache != nil {
		var keyErr error
		key, keyErr = suggestionKey(model, req.Prompt, req.Params)
		if keyErr != nil {
			logger.Warn("cannot fingerprint request, skipping cache", observability.Error(keyErr))
		}
	}

	if key != "" {
		cached, cacheErr := a.cache.Get(ctx, key)
		switch {
		case cacheErr == nil:
			logger.Info("cache HIT - returning cached answer")
			return cached, nil
		case errors.Is(cacheErr, ErrCacheMiss):
			logger.Debug("cache MISS - calling model")
		default:
			logger.Warn("cache get failed, continuing without cache", observability.Error(cacheErr))
		}
	}

	answer, err := a.client.Complete(ctx, req.Prompt, model, req.Params)
	if err != nil {
		return "", fmt.Errorf("completion failed: %w", err)
	}

	if key != "" && answer != "" {
		if setErr := a.cache.Set(ctx, key, answer, a.cacheTTL); setErr != nil {
			logger.Warn("failed to store in cache", observability.Error(setErr))
		}
	}

	return answer, nil
}

// AskOrApologize asks a quick question and never fails: any error or empty
// answer yields FallbackAnswer.
func (a *AssistantService) AskOrApologize(ctx context.Context, prompt, model string) string {
	answer, err := a.Ask(ctx, &AskRequest{Prompt: prompt, Model: model})
	if err != nil || answer == "" {
		return FallbackAnswer
	}
	return answer
}

// AnalyzeData asks for analysis recommendations for a dataset summary.
func (a *AssistantService) AnalyzeData(ctx context.Context, summary, question string) (string, error) {
	return a.Ask(ctx, &AskRequest{Prompt: AnalysisPrompt(summary, question)})
}

// CodeReview asks for feedback on a piece of analysis code.
func (a *AssistantService) CodeReview(ctx context.Context, code, codeContext string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", ErrEmptyCode
	}
	return a.Ask(ctx, &AskRequest{Prompt: CodeReviewPrompt(code, codeContext)})
}

// SuggestFirstSteps asks where to start with a freshly loaded dataset.
// An empty model selects the client default.
func (a *AssistantService) SuggestFirstSteps(ctx context.Context, summary, model string) (string, error) {
	return a.Ask(ctx, &AskRequest{Prompt: FirstStepsPrompt(summary), Model: model})
}

// suggestionKey fingerprints a request. Map keys are marshaled in sorted order.
func suggestionKey(model, prompt string, params map[string]any) (string, error) {
	data, err := json.Marshal(map[string]any{
		"model":  model,
		"prompt": prompt,
		"params": params,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}
