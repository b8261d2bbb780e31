// Package handlers holds the HTTP JSON endpoints.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/sbilibin2017/phixelforge/internal/logger"
	"github.com/sbilibin2017/phixelforge/internal/middlewares"
	"github.com/sbilibin2017/phixelforge/internal/models"
	"github.com/sbilibin2017/phixelforge/internal/services"
)

const (
	defaultPageLimit  = 50
	defaultPageOffset = 0
)

var validate = validator.New()

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// MessageResponse is a plain confirmation
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps service errors to status codes. Anything unknown is
// logged and answered with 500 and fallback.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, services.ErrNotAnImage):
		writeError(w, http.StatusBadRequest, "File is not a supported image")
	case errors.Is(err, services.ErrUploadTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "File too large")
	case errors.Is(err, services.ErrImageNotFound):
		writeError(w, http.StatusNotFound, "Image not found")
	case errors.Is(err, services.ErrAlbumNotFound):
		writeError(w, http.StatusNotFound, "Album not found")
	case errors.Is(err, services.ErrCollectionNotFound):
		writeError(w, http.StatusNotFound, "Collection not found")
	case errors.Is(err, services.ErrCapabilityUnavailable):
		writeError(w, http.StatusNotImplemented, "Similarity search is not available")
	default:
		logger.Log.Errorw(fallback, "error", err)
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

// decodeBody decodes a JSON body into v and runs its validate tags.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return validate.Struct(v)
}

// currentUser returns the user set by the auth middleware, answering 401 when there is none.
func currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user := middlewares.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return user, true
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

// parsePage reads limit and offset query parameters. Upper bounds are not enforced.
func parsePage(r *http.Request) (limit, offset int, err error) {
	limit, offset = defaultPageLimit, defaultPageOffset
	q := r.URL.Query()

	if s := q.Get("limit"); s != "" {
		if limit, err = strconv.Atoi(s); err != nil || limit < 0 {
			return 0, 0, fmt.Errorf("invalid limit %q", s)
		}
	}
	if s := q.Get("offset"); s != "" {
		if offset, err = strconv.Atoi(s); err != nil || offset < 0 {
			return 0, 0, fmt.Errorf("invalid offset %q", s)
		}
	}
	return limit, offset, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
