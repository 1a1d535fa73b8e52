package domain_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/glass/internal/domain"
	"github.com/davidbz/glass/internal/mocks"
	"github.com/davidbz/glass/internal/ollama"
)

func newAssistant(client domain.ModelClient, cache domain.SuggestionCache) *domain.AssistantService {
	return domain.NewAssistantService(client, cache, &domain.AssistantConfig{CacheTTL: 60})
}

func TestAssistantService_Ask(t *testing.T) {
	ctx := context.Background()

	t.Run("should complete with default model", func(t *testing.T) {
		client := mocks.NewMockModelClient(t)
		client.EXPECT().DefaultModel().Return("llama2")
		client.EXPECT().
			Complete(mock.Anything, "summarize this dataset", "llama2", map[string]any(nil)).
			Return("try a histogram", nil)

		answer, err := newAssistant(client, nil).Ask(ctx, &domain.AskRequest{Prompt: "summarize this dataset"})

		require.NoError(t, err)
		require.Equal(t, "try a histogram", answer)
	})

	t.Run("should pass explicit model and params through", func(t *testing.T) {
		client := mocks.NewMockModelClient(t)
		params := map[string]any{"options": map[string]any{"temperature": 0.1}}
		client.EXPECT().
			Complete(mock.Anything, "hi", "mistral", params).
			Return("hello", nil)

		answer, err := newAssistant(client, nil).Ask(ctx, &domain.AskRequest{
			Prompt: "hi",
			Model:  "mistral",
			Params: params,
		})

		require.NoError(t, err)
		require.Equal(t, "hello", answer)
	})

	t.Run("should reject nil and empty prompts", func(t *testing.T) {
		client := mocks.NewMockModelClient(t)
		assistant := newAssistant(client, nil)

		_, err := assistant.Ask(ctx, nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "request cannot be nil")

		_, err = assistant.Ask(ctx, &domain.AskRequest{Prompt: "   "})
		require.ErrorIs(t, err, domain.ErrEmptyPrompt)
	})

	t.Run("should keep the client error kind", func(t *testing.T) {
		client := mocks.NewMockModelClient(t)
		client.EXPECT().DefaultModel().Return("llama2")
		client.EXPECT().
			Complete(mock.Anything, "hi", "llama2", map[string]any(nil)).
			Return("", &ollama.Error{Op: "complete", Kind: ollama.KindUnreachable})

		answer, err := newAssistant(client, nil).Ask(ctx, &domain.AskRequest{Prompt: "hi"})

		require.Empty(t, answer)
		require.True(t, ollama.IsUnreachable(err))
	})
}

func TestAssistantService_Ask_Cache(t *testing.T) {
	ctx := context.Background()

	t.Run("should return cached answer without calling the model", func(t *testing.T) {
		client := mocks.NewMockModelClient(t)
		cache := mocks.NewMockSuggestionCache(t)

		client.EXPECT().DefaultModel().Return("llama2")
		cache.EXPECT().Get(mock.Anything, mock.AnythingOfType("string")).Return("cached answer", nil)

		answer, err := newAssistant(client, cache).Ask(ctx, &domain.AskRequest{Prompt: "hi"})

		require.NoError(t, err)
		require.Equal(t, "cached answer", answer)
	})

	t.Run("should store answer on miss", func(t *testing.T) {
		client := mocks.NewMockModelClient(t)
		cache := mocks.NewMockSuggestionCache(t)

		var getKey string
		cache.EXPECT().Get(mock.Anything, mock.AnythingOfType("string")).
			Return("", domain.ErrCacheMiss).
			Run(func(args mock.Arguments) { getKey = args.String(1) })
		client.EXPECT().
			Complete(mock.Anything, "hi", "phi3", map[string]any(nil)).
			Return("fresh answer", nil)
		cache.EXPECT().
			Set(mock.Anything, mock.AnythingOfType("string"), "fresh answer", 60*time.Second).
			Return(nil).
			Run(func(args mock.Arguments) { require.Equal(t, getKey, args.String(1)) })

		answer, err := newAssistant(client, cache).Ask(ctx, &domain.AskRequest{Prompt: "hi", Model: "phi3"})

		require.NoError(t, err)
		require.Equal(t, "fresh answer", answer)
		require.Len(t, getKey, 64)
	})

	t.Run("should ignore cache failures", func(t *testing.T) {
		client := mocks.NewMockModelClient(t)
		cache := mocks.NewMockSuggestionCache(t)

		cache.EXPECT().Get(mock.Anything, mock.Anything).Return("", errors.New("redis down"))
		client.EXPECT().
			Complete(mock.Anything, "hi", "phi3", map[string]any(nil)).
			Return("answer", nil)
		cache.EXPECT().Set(mock.Anything, mock.Anything, "answer", mock.Anything).Return(errors.New("redis down"))

		answer, err := newAssistant(client, cache).Ask(ctx, &domain.AskRequest{Prompt: "hi", Model: "phi3"})

		require.NoError(t, err)
		require.Equal(t, "answer", answer)
	})

	t.Run("should not cache empty answers", func(t *testing.T) {
		client := mocks.NewMockModelClient(t)
		cache := mocks.NewMockSuggestionCache(t)

		cache.EXPECT().Get(mock.Anything, mock.Anything).Return("", domain.ErrCacheMiss)
		client.EXPECT().
			Complete(mock.Anything, "hi", "phi3", map[string]any(nil)).
			Return("", nil)

		answer, err := newAssistant(client, cache).Ask(ctx, &domain.AskRequest{Prompt: "hi", Model: "phi3"})

		require.NoError(t, err)
		require.Empty(t, answer)
	})

	t.Run("should skip cache when params cannot be fingerprinted", func(t *testing.T) {
		client := mocks.NewMockModelClient(t)
		cache := mocks.NewMockSuggestionCache(t)

		client.EXPECT().
			Complete(mock.Anything, "hi", "phi3", mock.Anything).
			Return("", &ollama.Error{Op: "complete", Kind: ollama.KindUnsuccessful})

		_, err := newAssistant(client, cache).Ask(ctx, &domain.AskRequest{
			Prompt: "hi",
			Model:  "phi3",
			Params: map[string]any{"bad": make(chan int)},
		})

		require.True(t, ollama.IsUnsuccessful(err))
	})
}

func TestAssistantService_AskOrApologize(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		answer string
		err    error
		want   string
	}{
		{name: "answer", answer: "use a boxplot", want: "use a boxplot"},
		{name: "error", err: &ollama.Error{Op: "complete", Kind: ollama.KindUnreachable}, want: domain.FallbackAnswer},
		{name: "empty answer", answer: "", want: domain.FallbackAnswer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockModelClient(t)
			client.EXPECT().DefaultModel().Return("llama2")
			client.EXPECT().
				Complete(mock.Anything, "how do I handle missing values?", "llama2", map[string]any(nil)).
				Return(tt.answer, tt.err)

			got := newAssistant(client, nil).AskOrApologize(ctx, "how do I handle missing values?", "")

			require.Equal(t, tt.want, got)
		})
	}
}

func TestAssistantService_Prompts(t *testing.T) {
	ctx := context.Background()
	summary := "Shape: 10 rows, 3 columns"

	t.Run("should analyze with question", func(t *testing.T) {
		client := mocks.NewMockModelClient(t)
		client.EXPECT().DefaultModel().Return("llama2")
		client.EXPECT().
			Complete(mock.Anything, domain.AnalysisPrompt(summary, "Which tests?"), "llama2", map[string]any(nil)).
			Return("t-test", nil)

		answer, err := newAssistant(client, nil).AnalyzeData(ctx, summary, "Which tests?")

		require.NoError(t, err)
		require.Equal(t, "t-test", answer)
	})

	t.Run("should suggest first steps", func(t *testing.T) {
		client := mocks.NewMockModelClient(t)
		client.EXPECT().DefaultModel().Return("llama2")
		client.EXPECT().
			Complete(mock.Anything, domain.FirstStepsPrompt(summary), "llama2", map[string]any(nil)).
			Return("start with histograms", nil)

		answer, err := newAssistant(client, nil).SuggestFirstSteps(ctx, summary, "")

		require.NoError(t, err)
		require.Equal(t, "start with histograms", answer)
	})

	t.Run("should review code", func(t *testing.T) {
		client := mocks.NewMockModelClient(t)
		client.EXPECT().DefaultModel().Return("llama2")
		client.EXPECT().
			Complete(mock.Anything, domain.CodeReviewPrompt("x := 1", "init"), "llama2", map[string]any(nil)).
			Return("fine", nil)

		answer, err := newAssistant(client, nil).CodeReview(ctx, "x := 1", "init")

		require.NoError(t, err)
		require.Equal(t, "fine", answer)
	})

	t.Run("should reject empty code", func(t *testing.T) {
		client := mocks.NewMockModelClient(t)

		_, err := newAssistant(client, nil).CodeReview(ctx, " ", "")

		require.ErrorIs(t, err, domain.ErrEmptyCode)
	})
}

func TestAssistantService_Setup(t *testing.T) {
	client := mocks.NewMockModelClient(t)
	client.EXPECT().EnsureModel(mock.Anything, "llama2").Return(ollama.ReadinessPresent)
	client.EXPECT().IsAvailable(mock.Anything).Return(true)
	client.EXPECT().ListModels(mock.Anything).Return([]string{"llama2"}, nil)

	assistant := newAssistant(client, nil)
	ctx := context.Background()

	require.Equal(t, ollama.ReadinessPresent, assistant.Setup(ctx, "llama2"))
	require.True(t, assistant.Available(ctx))

	models, err := assistant.Models(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"llama2"}, models)
}
