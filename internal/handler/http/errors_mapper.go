package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-todo/internal/service"
)

// Caller-facing messages shared by several handlers.
const (
	msgNoToken            = "Unauthorized: No token provided"
	msgInvalidToken       = "Unauthorized: Invalid or expired token"
	msgWrongCredentials   = "Wrong email or password"
	msgEmailRegistered    = "Email has been registered"
	msgUserNotFound       = "User not found"
	msgTodoNotFound       = "Todo not found"
	msgInvalidJSON        = "Invalid JSON was passed"
	msgRouteNotFound      = "Route not found"
	msgServiceUnavailable = "Service unavailable"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponseMap lists the expected failures. Anything else is a 500.
var errorResponseMap = map[error]errorResponse{
	ErrInvalidJSON:                     {http.StatusBadRequest, msgInvalidJSON},
	ErrEmptyAuthorizationHeader:        {http.StatusUnauthorized, msgNoToken},
	ErrInvalidAuthorizationHeader:      {http.StatusUnauthorized, msgNoToken},
	ErrEmptyToken:                      {http.StatusUnauthorized, msgNoToken},
	service.ErrTokenIsExpired:          {http.StatusUnauthorized, msgInvalidToken},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, msgInvalidToken},
	service.ErrEmailAlreadyRegistered:  {http.StatusBadRequest, msgEmailRegistered},
	service.ErrWrongPassword:           {http.StatusBadRequest, msgWrongCredentials},
	service.ErrUserNotFound:            {http.StatusNotFound, msgUserNotFound},
	service.ErrTodoNotFound:            {http.StatusNotFound, msgTodoNotFound},
}

// responseFromError returns the status and message for err; ok is false
// for unexpected errors.
func responseFromError(err error) (errorResponse, bool) {
	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp, true
		}
	}
	return errorResponse{status: http.StatusInternalServerError}, false
}
