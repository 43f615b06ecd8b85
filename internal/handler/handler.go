package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"catalog/internal/model"

	"github.com/rs/zerolog"
)

// Resource is the uniform collection contract every entity handler
// implements: list, retrieve, create, replace, partial-update, delete. The
// router mounts any Resource under a collection path; this is the only
// polymorphism the entity surface needs.
type Resource interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Retrieve(w http.ResponseWriter, r *http.Request, id string)
	Replace(w http.ResponseWriter, r *http.Request, id string)
	Patch(w http.ResponseWriter, r *http.Request, id string)
	Delete(w http.ResponseWriter, r *http.Request, id string)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are gone; nothing useful left to do.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeServiceError maps service-layer errors onto the HTTP error taxonomy:
// validation → 400 with per-field detail, permission → 401/403, missing
// record → 404, storage integrity → 500.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		logger.Debug().Interface("fields", verr.Fields).Msg("validation failed")
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
			Error:  "validation failed",
			Fields: verr.Fields,
		})
		return
	}

	var derr *model.DomainError
	if errors.As(err, &derr) {
		status := http.StatusInternalServerError
		switch derr.Code {
		case model.ErrCodeCategoryNotFound, model.ErrCodeProductNotFound, model.ErrCodeReviewNotFound:
			status = http.StatusNotFound
		case model.ErrCodeUnauthorised:
			status = http.StatusUnauthorized
		case model.ErrCodeForbidden:
			status = http.StatusForbidden
		case model.ErrCodeMissingParameter:
			status = http.StatusBadRequest
		}
		writeError(w, status, derr.Message, logger)
		return
	}

	var ierr *model.IntegrityError
	if errors.As(err, &ierr) {
		logger.Error().Err(err).Msg("storage integrity violation")
		writeError(w, http.StatusInternalServerError, "storage integrity violation", logger)
		return
	}

	logger.Error().Err(err).Msg("unhandled service error")
	writeError(w, http.StatusInternalServerError, "internal server error", logger)
}

// decodeJSON decodes a request body. Unknown fields, read-only fields
// included, are ignored; the input types simply cannot carry them.
func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// parseID parses a numeric resource identifier from a path segment.
func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
