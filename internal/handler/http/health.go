package http

import (
	"net/http"

	"github.com/agiletrack/sprint-roi/internal/logger"
)

// ping answers 200 when the database is reachable.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Ping(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("database ping failed")
		writeDetail(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	w.WriteHeader(http.StatusOK)
}
