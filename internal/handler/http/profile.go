package http

import (
	"net/http"

	"github.com/MKhiriev/go-todo/internal/logger"
	"github.com/MKhiriev/go-todo/models"
)

// Profile handlers act on the user id resolved by the auth middleware only.

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	user, err := h.services.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	writeEnvelope(w, r, http.StatusOK, "User found successfully", user)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	var req models.UpdateProfileRequest
	if err = decodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.updateProfile").Msg("Invalid JSON was passed")
		h.writeError(w, r, err, nil)
		return
	}

	user, err := h.services.ProfileService.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		h.writeError(w, r, err, req)
		return
	}

	writeEnvelope(w, r, http.StatusOK, "User updated successfully", user)
}

func (h *Handler) deleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	user, err := h.services.ProfileService.DeleteProfile(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", userID).Msg("user deleted")
	writeEnvelope(w, r, http.StatusOK, "User deleted successfully", user)
}
