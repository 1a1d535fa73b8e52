package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/davidbz/glass/internal/domain"
	"github.com/davidbz/glass/internal/observability"
	"github.com/davidbz/glass/internal/ollama"
)

const maxRequestBytes = 1 << 20

// Handler handles HTTP requests.
type Handler struct {
	assistant *domain.AssistantService
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(assistant *domain.AssistantService) *Handler {
	return &Handler{
		assistant: assistant,
	}
}

type analyzeRequest struct {
	Summary  string `json:"summary"`
	Question string `json:"question,omitempty"`
}

type reviewRequest struct {
	Code    string `json:"code"`
	Context string `json:"context,omitempty"`
}

type answerResponse struct {
	Response string `json:"response"`
}

type modelsResponse struct {
	Models []string `json:"models"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// HandleAsk forwards a free-form prompt to the model.
func (h *Handler) HandleAsk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.AskRequest
	if !decode(w, r, &req) {
		return
	}

	ctx := observability.WithModel(r.Context(), req.Model)
	observability.FromContext(ctx).Info("ask request received",
		observability.Int("prompt_length", len(req.Prompt)),
		observability.Int("params", len(req.Params)))

	answer, err := h.assistant.Ask(ctx, &req)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, answerResponse{Response: answer})
}

// HandleAnalyze asks for analysis recommendations for a dataset summary.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req analyzeRequest
	if !decode(w, r, &req) {
		return
	}

	if req.Summary == "" {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "summary is required"})
		return
	}

	answer, err := h.assistant.AnalyzeData(r.Context(), req.Summary, req.Question)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, answerResponse{Response: answer})
}

// HandleReview asks for feedback on a piece of analysis code.
func (h *Handler) HandleReview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req reviewRequest
	if !decode(w, r, &req) {
		return
	}

	answer, err := h.assistant.CodeReview(r.Context(), req.Code, req.Context)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, answerResponse{Response: answer})
}

// HandleModels lists the models held by the inference server.
func (h *Handler) HandleModels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	models, err := h.assistant.Models(r.Context())
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	observability.FromContext(r.Context()).Debug("models listed", observability.Strings("models", models))
	writeJSON(w, r, http.StatusOK, modelsResponse{Models: models})
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{
		"status": "healthy",
		"ollama": "available",
	}
	if !h.assistant.Available(r.Context()) {
		status["ollama"] = "unavailable"
	}

	writeJSON(w, r, http.StatusOK, status)
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(dst); err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
		return false
	}
	return true
}

// writeFailure maps validation errors to 400 and inference server errors to 502.
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	logger := observability.FromContext(r.Context())

	if errors.Is(err, domain.ErrEmptyPrompt) || errors.Is(err, domain.ErrEmptyCode) {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if kind, ok := ollama.KindOf(err); ok {
		logger.Warn("inference server request failed",
			observability.String("kind", kind.String()),
			observability.Error(err))
		writeJSON(w, r, http.StatusBadGateway, errorResponse{Error: err.Error(), Kind: kind.String()})
		return
	}

	logger.Error("request failed", observability.Error(err))
	writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Already written status, can't change it, just log.
		observability.FromContext(r.Context()).Error("failed to encode response", observability.Error(err))
	}
}
