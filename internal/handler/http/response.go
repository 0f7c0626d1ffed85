package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-todo/internal/logger"
	"github.com/MKhiriev/go-todo/internal/utils"
	"github.com/MKhiriev/go-todo/internal/validators"
	"github.com/MKhiriev/go-todo/models"
)

// writeEnvelope writes the uniform response wrapper. Error is filled with
// the status text for every status of 400 and above.
func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	envelope := models.Envelope{
		StatusCode: status,
		Success:    status < http.StatusBadRequest,
		Message:    message,
		Data:       data,
	}
	if !envelope.Success {
		text := http.StatusText(status)
		envelope.Error = &text
	}

	if _, err := utils.WriteJSON(w, envelope, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}

// writeError turns err into an error envelope. Validation failures are
// answered with their own message and input echoed back in data. Unexpected
// errors are logged and reported without details.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, input any) {
	log := logger.FromRequest(r)

	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		log.Debug().Str("field", vErr.Field).Msg(vErr.Message)
		writeEnvelope(w, r, http.StatusBadRequest, vErr.Message, input)
		return
	}

	resp, ok := responseFromError(err)
	if !ok {
		log.Err(err).Str("route", routeName(r)).Msg("unexpected error")
		writeEnvelope(w, r, http.StatusInternalServerError, internalErrorMessage(r), nil)
		return
	}

	log.Debug().Err(err).Int("status", resp.status).Send()
	writeEnvelope(w, r, resp.status, resp.message, nil)
}

// internalErrorMessage names the failing route and verb, e.g.
// "Error at /todo/{id} PUT: internal server error".
func internalErrorMessage(r *http.Request) string {
	return fmt.Sprintf("Error at %s %s: internal server error", routeName(r), r.Method)
}

func routeName(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

func userIDFromRequest(r *http.Request) (string, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return "", ErrNoUserInContext
	}
	return userID, nil
}

// decodeJSON reads the request body into dst. Any decoding failure,
// including an empty body, is reported as ErrInvalidJSON.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
