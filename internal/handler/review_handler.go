package handler

import (
	"net/http"
	"strconv"

	"catalog/internal/model"
	"catalog/internal/service"

	"github.com/rs/zerolog"
)

// ReviewHandler handles review-related HTTP requests. No identity is
// consulted anywhere here; reviews are fully open by design.
type ReviewHandler struct {
	service service.ReviewService
	logger  zerolog.Logger
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(service service.ReviewService, logger zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger.With().Str("handler", "review").Logger(),
	}
}

// List handles GET /api/reviews requests with an optional product filter.
// An absent product_id matches everything; only the dedicated by_product
// lookup treats absence as an error.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	var productID *int64
	if productStr := r.URL.Query().Get("product_id"); productStr != "" {
		id, err := strconv.ParseInt(productStr, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid product_id parameter", h.logger)
			return
		}
		productID = &id
	}

	reviews, err := h.service.List(r.Context(), productID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}

// ListByProduct handles GET /api/reviews/by_product requests. product_id is
// mandatory; its absence is an explicit error, never an empty result.
func (h *ReviewHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productStr := r.URL.Query().Get("product_id")
	if productStr == "" {
		writeError(w, http.StatusBadRequest, "product_id is required", h.logger)
		return
	}

	productID, err := strconv.ParseInt(productStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product_id parameter", h.logger)
		return
	}

	reviews, err := h.service.ListByProduct(r.Context(), productID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}

// Create handles POST /api/reviews requests.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.ReviewInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	doc, err := h.service.Create(r.Context(), &in)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, doc)
}

// Retrieve handles GET /api/reviews/{id} requests.
func (h *ReviewHandler) Retrieve(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := parseID(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid review ID format", h.logger)
		return
	}

	doc, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// Replace handles PUT /api/reviews/{id} requests.
func (h *ReviewHandler) Replace(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := parseID(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid review ID format", h.logger)
		return
	}

	var in model.ReviewInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	doc, err := h.service.Replace(r.Context(), id, &in)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// Patch handles PATCH /api/reviews/{id} requests.
func (h *ReviewHandler) Patch(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := parseID(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid review ID format", h.logger)
		return
	}

	var patch model.ReviewPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	doc, err := h.service.Patch(r.Context(), id, &patch)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// Delete handles DELETE /api/reviews/{id} requests.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := parseID(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid review ID format", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
