package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/agiletrack/sprint-roi/internal/logger"
	"github.com/agiletrack/sprint-roi/internal/utils"
	"github.com/agiletrack/sprint-roi/models"
)

func (h *Handler) listSprints(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, func(q models.ListQuery) (any, int64, error) {
		if raw, ok := q.Filters["project"]; ok {
			if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
				return nil, 0, models.NewFieldError("project", "Enter a number.")
			}
		}
		return h.services.SprintService.List(r.Context(), q)
	}, "project")
}

func (h *Handler) createSprint(w http.ResponseWriter, r *http.Request) {
	var upd models.SprintUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		writeDetail(w, http.StatusBadRequest, msgJSONParseError)
		return
	}

	created, err := h.services.SprintService.Create(r.Context(), upd)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getSprint(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "sprintID")
	if !ok {
		notFound(w, r)
		return
	}

	found, err := h.services.SprintService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, found, http.StatusOK)
}

func (h *Handler) replaceSprint(w http.ResponseWriter, r *http.Request) {
	h.applySprintUpdate(w, r, h.services.SprintService.Replace)
}

func (h *Handler) updateSprint(w http.ResponseWriter, r *http.Request) {
	h.applySprintUpdate(w, r, h.services.SprintService.Update)
}

func (h *Handler) applySprintUpdate(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, id int64, upd models.SprintUpdate) (models.Sprint, error),
) {
	id, ok := pathID(r, "sprintID")
	if !ok {
		notFound(w, r)
		return
	}

	var upd models.SprintUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		writeDetail(w, http.StatusBadRequest, msgJSONParseError)
		return
	}

	updated, err := apply(r.Context(), id, upd)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteSprint(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "sprintID")
	if !ok {
		notFound(w, r)
		return
	}

	if err := h.services.SprintService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
