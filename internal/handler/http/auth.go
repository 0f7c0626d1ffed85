package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-todo/internal/logger"
	"github.com/MKhiriev/go-todo/internal/service"
	"github.com/MKhiriev/go-todo/models"
)

// sessionCookieName is the cookie that carries the session token after login.
const sessionCookieName = "token"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("Invalid JSON was passed")
		h.writeError(w, r, err, nil)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		h.writeError(w, r, err, req)
		return
	}

	log.Info().Str("user_id", registeredUser.ID).Msg("user registered")
	writeEnvelope(w, r, http.StatusCreated, "User created successfully", registeredUser)
}

// login answers an unknown email with 404 and a wrong password with 400,
// both carrying the same message.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		h.writeError(w, r, err, nil)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			log.Debug().Msg("no user was found")
			writeEnvelope(w, r, http.StatusNotFound, msgWrongCredentials, nil)
		default:
			h.writeError(w, r, err, req)
		}
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	// The cookie lifetime is configured apart from the token expiry.
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   int(h.cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	})

	log.Debug().Str("user_id", foundUser.ID).Msg("user successfully logged in")
	writeEnvelope(w, r, http.StatusOK, "Login successfully", models.LoginResponse{
		User:  foundUser,
		Token: token.SignedString,
	})
}
