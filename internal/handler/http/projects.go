// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/agiletrack/sprint-roi/internal/logger"
	"github.com/agiletrack/sprint-roi/internal/utils"
	"github.com/agiletrack/sprint-roi/models"
)

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, func(q models.ListQuery) (any, int64, error) {
		return h.services.ProjectService.List(r.Context(), q)
	})
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	var upd models.ProjectUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		writeDetail(w, http.StatusBadRequest, msgJSONParseError)
		return
	}

	created, err := h.services.ProjectService.Create(r.Context(), upd)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "projectID")
	if !ok {
		notFound(w, r)
		return
	}

	found, err := h.services.ProjectService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, found, http.StatusOK)
}

func (h *Handler) replaceProject(w http.ResponseWriter, r *http.Request) {
	h.applyProjectUpdate(w, r, h.services.ProjectService.Replace)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	h.applyProjectUpdate(w, r, h.services.ProjectService.Update)
}

func (h *Handler) applyProjectUpdate(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, id int64, upd models.ProjectUpdate) (models.Project, error),
) {
	id, ok := pathID(r, "projectID")
	if !ok {
		notFound(w, r)
		return
	}

	var upd models.ProjectUpdate
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

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "projectID")
	if !ok {
		notFound(w, r)
		return
	}

	if err := h.services.ProjectService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listProjectSprints(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "projectID")
	if !ok {
		notFound(w, r)
		return
	}

	sprints, err := h.services.SprintService.ListByProject(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if sprints == nil {
		sprints = []models.Sprint{}
	}
	utils.WriteJSON(w, sprints, http.StatusOK)
}
