package http

import (
	"net/http"

	"github.com/MKhiriev/go-todo/internal/logger"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("health check failed")
		writeEnvelope(w, r, http.StatusServiceUnavailable, msgServiceUnavailable, nil)
		return
	}

	writeEnvelope(w, r, http.StatusOK, "OK", nil)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, r, http.StatusNotFound, msgRouteNotFound, nil)
}
