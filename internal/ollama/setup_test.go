package ollama_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/glass/internal/ollama"
)

func TestClient_EnsureModel(t *testing.T) {
	ctx := context.Background()

	t.Run("should not list or pull when server is unavailable", func(t *testing.T) {
		srv := newFakeServer(t, map[string]http.HandlerFunc{
			"/api/tags": respondJSON(http.StatusServiceUnavailable, ``),
			"/api/pull": respondJSON(http.StatusOK, `{"status":"success"}`),
		})
		client := newClient(srv.URL)

		readiness := client.EnsureModel(ctx, "llama2")

		require.Equal(t, ollama.ReadinessUnavailable, readiness)
		require.False(t, readiness.Ready())
		require.Len(t, srv.requestsTo("/api/tags"), 1)
		require.Empty(t, srv.requestsTo("/api/pull"))
	})

	t.Run("should report unavailable when unreachable", func(t *testing.T) {
		client := newClient(unreachableURL(t))

		require.Equal(t, ollama.ReadinessUnavailable, client.EnsureModel(ctx, "llama2"))
	})

	t.Run("should not pull a model that is already present", func(t *testing.T) {
		srv := newFakeServer(t, map[string]http.HandlerFunc{
			"/api/tags": respondJSON(http.StatusOK, `{"models":[{"name":"mistral"},{"name":"llama2"}]}`),
			"/api/pull": respondJSON(http.StatusOK, `{"status":"success"}`),
		})
		client := newClient(srv.URL)

		readiness := client.EnsureModel(ctx, "llama2")

		require.Equal(t, ollama.ReadinessPresent, readiness)
		require.True(t, readiness.Ready())
		require.Empty(t, srv.requestsTo("/api/pull"))
	})

	t.Run("should pull a missing model", func(t *testing.T) {
		srv := newFakeServer(t, map[string]http.HandlerFunc{
			"/api/tags": respondJSON(http.StatusOK, `{"models":[{"name":"mistral"}]}`),
			"/api/pull": respondJSON(http.StatusOK, `{"status":"pulling manifest"}`),
		})
		client := newClient(srv.URL)

		readiness := client.EnsureModel(ctx, "llama2")

		require.Equal(t, ollama.ReadinessPulled, readiness)
		pulls := srv.requestsTo("/api/pull")
		require.Len(t, pulls, 1)
		require.Equal(t, "llama2", pulls[0].Body["name"])
	})

	t.Run("should use the default model when none is named", func(t *testing.T) {
		srv := newFakeServer(t, map[string]http.HandlerFunc{
			"/api/tags": respondJSON(http.StatusOK, `{"models":[]}`),
			"/api/pull": respondJSON(http.StatusOK, `{"status":"pulling manifest"}`),
		})
		client := newClient(srv.URL)

		require.Equal(t, ollama.ReadinessPulled, client.EnsureModel(ctx, ""))
		require.Equal(t, "llama2", srv.requestsTo("/api/pull")[0].Body["name"])
	})

	t.Run("should report a refused pull", func(t *testing.T) {
		srv := newFakeServer(t, map[string]http.HandlerFunc{
			"/api/tags": respondJSON(http.StatusOK, `{"models":[]}`),
			"/api/pull": respondJSON(http.StatusInternalServerError, `{"error":"registry down"}`),
		})
		client := newClient(srv.URL)

		readiness := client.EnsureModel(ctx, "llama2")

		require.Equal(t, ollama.ReadinessPullFailed, readiness)
		require.False(t, readiness.Ready())
	})

	t.Run("should wait for the download when configured", func(t *testing.T) {
		srv := newFakeServer(t, map[string]http.HandlerFunc{
			"/api/tags": respondJSON(http.StatusOK, `{"models":[]}`),
			"/api/pull": respondJSON(http.StatusOK, `{"status":"pulling manifest"}`+"\n"+`{"error":"manifest unknown"}`+"\n"),
		})
		client := ollama.NewClient(ollama.Config{
			BaseURL:      srv.URL,
			DefaultModel: "llama2",
			ProbeTimeout: 5,
			PullWait:     true,
		})

		require.Equal(t, ollama.ReadinessPullFailed, client.EnsureModel(ctx, "llama2"))
	})
}

func TestReadiness_String(t *testing.T) {
	require.Equal(t, "unavailable", ollama.ReadinessUnavailable.String())
	require.Equal(t, "present", ollama.ReadinessPresent.String())
	require.Equal(t, "pulled", ollama.ReadinessPulled.String())
	require.Equal(t, "pull_failed", ollama.ReadinessPullFailed.String())
	require.Equal(t, "unknown", ollama.Readiness(42).String())
}
