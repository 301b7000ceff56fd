package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/keyforge/keyforge-go/internal/engine"
	"github.com/keyforge/keyforge-go/internal/model"
	"github.com/keyforge/keyforge-go/internal/service"
)

// GeneratorHandler handles HTTP requests for secret generation and strength
// previews.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		if isOptionsError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleScore handles POST /api/v1/score requests: strength feedback for a
// configuration without generating a secret.
func (h *GeneratorHandler) HandleScore(w http.ResponseWriter, r *http.Request) {
	var req model.ScoreRequest
	if !decodeBody(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, h.service.Score(req))
}

// isOptionsError reports whether the error is a caller-fixable configuration
// problem rather than an internal failure.
func isOptionsError(err error) bool {
	return errors.Is(err, engine.ErrEmptyPool) ||
		errors.Is(err, engine.ErrInvalidLength) ||
		errors.Is(err, engine.ErrInvalidWordCount) ||
		errors.Is(err, engine.ErrInvalidSeparator)
}

// decodeBody decodes a JSON request body with a 1MB cap, writing the error
// response itself. Returns false if the caller should stop.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil {
		return true
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
