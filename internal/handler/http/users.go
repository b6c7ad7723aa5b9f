package http

import (
	"net/http"

	"github.com/agiletrack/sprint-roi/internal/utils"
	"github.com/agiletrack/sprint-roi/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, func(q models.ListQuery) (any, int64, error) {
		return h.services.UserService.List(r.Context(), q)
	}, "role")
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "userID")
	if !ok {
		notFound(w, r)
		return
	}

	found, err := h.services.UserService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, found, http.StatusOK)
}
