package handler

import (
	"net/http"

	"catalog/internal/auth"
	"catalog/internal/model"
	"catalog/internal/service"

	"github.com/rs/zerolog"
)

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	service service.CategoryService
	logger  zerolog.Logger
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(service service.CategoryService, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger.With().Str("handler", "category").Logger(),
	}
}

// List handles GET /api/categories requests.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// Create handles POST /api/categories requests.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.CategoryInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	doc, err := h.service.Create(r.Context(), auth.IdentityFrom(r.Context()), &in)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, doc)
}

// Retrieve handles GET /api/categories/{id} requests.
func (h *CategoryHandler) Retrieve(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := parseID(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category ID format", h.logger)
		return
	}

	doc, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// Replace handles PUT /api/categories/{id} requests.
func (h *CategoryHandler) Replace(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := parseID(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category ID format", h.logger)
		return
	}

	var in model.CategoryInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	doc, err := h.service.Replace(r.Context(), auth.IdentityFrom(r.Context()), id, &in)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// Patch handles PATCH /api/categories/{id} requests.
func (h *CategoryHandler) Patch(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := parseID(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category ID format", h.logger)
		return
	}

	var patch model.CategoryPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	doc, err := h.service.Patch(r.Context(), auth.IdentityFrom(r.Context()), id, &patch)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// Delete handles DELETE /api/categories/{id} requests.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := parseID(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category ID format", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), auth.IdentityFrom(r.Context()), id); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
