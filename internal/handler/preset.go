package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/keyforge/keyforge-go/internal/middleware"
	"github.com/keyforge/keyforge-go/internal/model"
	"github.com/keyforge/keyforge-go/internal/service"
)

// PresetHandler handles HTTP requests for saved generation presets.
type PresetHandler struct {
	service *service.PresetService
}

// NewPresetHandler creates a new PresetHandler.
func NewPresetHandler(svc *service.PresetService) *PresetHandler {
	return &PresetHandler{service: svc}
}

// HandleList handles GET /api/v1/presets requests.
func (h *PresetHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	presets, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, presets)
}

// HandleCreate handles POST /api/v1/presets requests.
func (h *PresetHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.PresetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleGet handles GET /api/v1/presets/{preset_id} requests.
func (h *PresetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, presetID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), userID, presetID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdate handles PUT /api/v1/presets/{preset_id} requests.
func (h *PresetHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, presetID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	var req model.PresetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Update(r.Context(), userID, presetID, req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /api/v1/presets/{preset_id} requests.
func (h *PresetHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, presetID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, presetID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleGenerate handles POST /api/v1/presets/{preset_id}/generate requests:
// run the engine with the preset's stored options.
func (h *PresetHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	userID, presetID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Generate(r.Context(), userID, presetID)
	if err != nil {
		if isOptionsError(err) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse(err.Error()))
			return
		}
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// requestIDs extracts the authenticated user and the preset_id URL
// parameter, writing the error response on failure.
func (h *PresetHandler) requestIDs(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return 0, 0, false
	}

	presetID, err := strconv.ParseInt(chi.URLParam(r, "preset_id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid preset id"))
		return 0, 0, false
	}

	return userID, presetID, true
}

func (h *PresetHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrPresetNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrPresetNameRequired), isOptionsError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrPresetNameTaken):
		writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}
