package ollama

import (
	"context"
	"slices"

	"github.com/davidbz/glass/internal/observability"
)

// EnsureModel makes sure a model is available on the server, requesting a
// download when it is missing. It never lists or pulls when the server is
// unreachable. An empty model selects the configured default.
func (c *Client) EnsureModel(ctx context.Context, model string) Readiness {
	if model == "" {
		model = c.config.DefaultModel
	}

	ctx = observability.WithModel(ctx, model)
	logger := observability.FromContext(ctx)

	if err := c.Ping(ctx); err != nil {
		logger.Warn("inference server not available, start it first",
			observability.String("base_url", c.config.BaseURL),
			observability.Error(err))
		return ReadinessUnavailable
	}

	models, err := c.ListModels(ctx)
	if err != nil {
		logger.Debug("model listing failed, treating model as absent", observability.Error(err))
	}

	if slices.Contains(models, model) {
		logger.Info("model already available")
		return ReadinessPresent
	}

	logger.Info("pulling model", observability.Bool("wait", c.config.PullWait))

	pull := c.PullModel
	if c.config.PullWait {
		pull = c.PullModelWait
	}

	if pullErr := pull(ctx, model); pullErr != nil {
		logger.Warn("failed to pull model", observability.Error(pullErr))
		return ReadinessPullFailed
	}

	logger.Info("model ready")
	return ReadinessPulled
}
