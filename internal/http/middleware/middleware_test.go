package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/glass/internal/config"
	"github.com/davidbz/glass/internal/http/middleware"
	"github.com/davidbz/glass/internal/observability"
)

func TestChain_Order(t *testing.T) {
	var calls []string
	tag := func(name string) middleware.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := middleware.Chain(tag("first"), tag("second"))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		calls = append(calls, "handler")
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"first", "second", "handler"}, calls)
}

func TestTrace_InjectsIDs(t *testing.T) {
	var traceID, requestID string
	handler := middleware.Trace()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = observability.GetTraceID(r.Context())
		requestID = observability.GetRequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusTeapot, w.Code)
	require.NotEmpty(t, traceID)
	require.NotEmpty(t, requestID)
	require.Equal(t, traceID, w.Header().Get("X-Trace-Id"))
	require.Equal(t, requestID, w.Header().Get("X-Request-Id"))
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("should answer preflight requests", func(t *testing.T) {
		handler := middleware.BuildMiddlewareChain(&config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:8888"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         60,
		})(next)

		req := httptest.NewRequest(http.MethodOptions, "/v1/ask", nil)
		req.Header.Set("Origin", "http://localhost:8888")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		require.Equal(t, "http://localhost:8888", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("should pass through without config", func(t *testing.T) {
		w := httptest.NewRecorder()

		middleware.CORS(nil)(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
