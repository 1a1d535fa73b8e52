// Package ollama provides a client for a locally-hosted inference server that
// speaks the Ollama HTTP API. Every operation is a single independent exchange;
// failures never panic and are reported as *Error alongside a safe zero value.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/davidbz/glass/internal/observability"
)

const maxErrorBodyBytes = 4 * 1024

// errEncodeRequest marks request bodies that could not be serialized.
var errEncodeRequest = errors.New("failed to marshal request")

// Client wraps the HTTP client for inference server calls.
// It is safe for concurrent use: the only shared state is the *http.Client,
// whose transport pools connections.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a new inference server client.
func NewClient(config Config) *Client {
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	return &Client{
		config: config,
		// No client-wide timeout: bounds are applied per operation.
		httpClient: &http.Client{},
	}
}

// Config returns the configuration the client was built with.
func (c *Client) Config() Config {
	return c.config
}

// DefaultModel returns the model used when a call names none.
func (c *Client) DefaultModel() string {
	return c.config.DefaultModel
}

// Ping checks that the server answers the status endpoint with HTTP 200.
func (c *Client) Ping(ctx context.Context) error {
	const op = "probe availability"

	ctx, cancel := withTimeout(ctx, c.config.ProbeTimeout)
	defer cancel()

	resp, err := c.do(ctx, http.MethodGet, pathTags, nil)
	if err != nil {
		return unreachable(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return unsuccessful(op, resp.StatusCode, readErrorBody(resp.Body))
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// IsAvailable reports whether the server is reachable and healthy.
func (c *Client) IsAvailable(ctx context.Context) bool {
	return c.Ping(ctx) == nil
}

// ListModels returns the names of the models the server holds, in server order.
// On failure the slice is empty, never nil.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	const op = "list models"

	ctx, cancel := withTimeout(ctx, c.config.ListTimeout)
	defer cancel()

	resp, err := c.do(ctx, http.MethodGet, pathTags, nil)
	if err != nil {
		return []string{}, unreachable(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return []string{}, unsuccessful(op, resp.StatusCode, readErrorBody(resp.Body))
	}

	var tags tagsResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&tags); decodeErr != nil {
		return []string{}, unsuccessful(op, resp.StatusCode, fmt.Errorf("failed to decode response: %w", decodeErr))
	}

	names := make([]string, 0, len(tags.Models))
	for _, model := range tags.Models {
		names = append(names, model.Name)
	}

	return names, nil
}

// PullModel asks the server to download a model. It succeeds once the server
// accepts the request; download progress is not awaited. The progress stream
// is drained in the background so the download keeps running while ctx is live.
func (c *Client) PullModel(ctx context.Context, name string) error {
	const op = "pull model"

	ctx, cancel := withTimeout(ctx, c.config.PullTimeout)

	resp, err := c.do(ctx, http.MethodPost, pathPull, pullRequest{Name: name})
	if err != nil {
		cancel()
		return unreachable(op, err)
	}

	if resp.StatusCode != http.StatusOK {
		defer cancel()
		defer resp.Body.Close()
		return unsuccessful(op, resp.StatusCode, readErrorBody(resp.Body))
	}

	go func() {
		defer cancel()
		defer resp.Body.Close()

		n, drainErr := io.Copy(io.Discard, resp.Body)
		observability.FromContext(ctx).Debug("pull stream closed",
			observability.String("model", name),
			observability.Int("bytes", int(n)),
			observability.Error(drainErr))
	}()

	return nil
}

// PullModelWait asks the server to download a model and blocks until the
// progress stream reports success.
func (c *Client) PullModelWait(ctx context.Context, name string) error {
	const op = "pull model"

	ctx, cancel := withTimeout(ctx, c.config.PullTimeout)
	defer cancel()

	resp, err := c.do(ctx, http.MethodPost, pathPull, pullRequest{Name: name})
	if err != nil {
		return unreachable(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return unsuccessful(op, resp.StatusCode, readErrorBody(resp.Body))
	}

	logger := observability.FromContext(ctx)
	decoder := json.NewDecoder(resp.Body)
	for {
		var event pullEvent
		if decodeErr := decoder.Decode(&event); decodeErr != nil {
			if errors.Is(decodeErr, io.EOF) {
				return unsuccessful(op, resp.StatusCode, errors.New("progress stream ended before success"))
			}

			var syntaxErr *json.SyntaxError
			if errors.As(decodeErr, &syntaxErr) {
				return unsuccessful(op, resp.StatusCode, fmt.Errorf("failed to decode progress event: %w", decodeErr))
			}

			return unreachable(op, decodeErr)
		}

		if event.Error != "" {
			return unsuccessful(op, resp.StatusCode, errors.New(event.Error))
		}

		logger.Debug("pull progress",
			observability.String("status", event.Status),
			observability.Int("completed", int(event.Completed)),
			observability.Int("total", int(event.Total)))

		if event.Status == pullStatusSuccess {
			return nil
		}
	}
}

// Complete sends a prompt and waits for the full generated response.
// An empty model selects the configured default. Keys in extra are merged
// into the request body last, so they override model, prompt and stream.
// Unreachable failures and undecodable answers are logged; non-200 answers
// are only returned.
func (c *Client) Complete(ctx context.Context, prompt, model string, extra map[string]any) (string, error) {
	const op = "complete"

	if model == "" {
		model = c.config.DefaultModel
	}

	body := buildGenerateBody(prompt, model, extra)

	ctx, cancel := withTimeout(ctx, c.config.GenerateTimeout)
	defer cancel()

	resp, err := c.do(ctx, http.MethodPost, pathGenerate, body)
	if err != nil {
		if errors.Is(err, errEncodeRequest) {
			return "", unsuccessful(op, 0, err)
		}

		observability.FromContext(ctx).Error("error asking model",
			observability.String("model", model),
			observability.Error(err))
		return "", unreachable(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", unsuccessful(op, resp.StatusCode, readErrorBody(resp.Body))
	}

	var generated generateResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&generated); decodeErr != nil {
		observability.FromContext(ctx).Error("error asking model",
			observability.String("model", model),
			observability.Error(decodeErr))
		return "", unsuccessful(op, resp.StatusCode, fmt.Errorf("failed to decode response: %w", decodeErr))
	}

	return generated.Response, nil
}

// buildGenerateBody merges caller parameters over the defaults; later keys win.
func buildGenerateBody(prompt, model string, extra map[string]any) map[string]any {
	body := make(map[string]any, len(extra)+3)
	body["model"] = model
	body["prompt"] = prompt
	body["stream"] = false

	for key, value := range extra {
		body[key] = value
	}

	return body
}

// do builds and executes a request. A nil payload sends no body.
func (c *Client) do(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		reqBody, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errEncodeRequest, err)
		}
		body = bytes.NewReader(reqBody)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return resp, nil
}

func withTimeout(ctx context.Context, seconds int) (context.Context, context.CancelFunc) {
	if seconds <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Duration(seconds)*time.Second)
}

func readErrorBody(r io.Reader) error {
	body, _ := io.ReadAll(io.LimitReader(r, maxErrorBodyBytes))
	text := strings.TrimSpace(string(body))
	if text == "" {
		return nil
	}
	return errors.New(text)
}
