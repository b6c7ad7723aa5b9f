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

func (h *Handler) listMetrics(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, func(q models.ListQuery) (any, int64, error) {
		return h.services.MetricService.List(r.Context(), q)
	})
}

// listHighROIMetrics serves the metrics whose return on investment clears the
// configured threshold. The selection happens over the computed ROI, so it is
// paginated by the service rather than the database.
func (h *Handler) listHighROIMetrics(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, func(q models.ListQuery) (any, int64, error) {
		return h.services.MetricService.ListHighROI(r.Context(), q)
	})
}

func (h *Handler) createMetric(w http.ResponseWriter, r *http.Request) {
	var upd models.SprintMetricUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		writeDetail(w, http.StatusBadRequest, msgJSONParseError)
		return
	}

	created, err := h.services.MetricService.Create(r.Context(), upd)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getMetric(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "metricID")
	if !ok {
		notFound(w, r)
		return
	}

	found, err := h.services.MetricService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, found, http.StatusOK)
}

func (h *Handler) replaceMetric(w http.ResponseWriter, r *http.Request) {
	h.applyMetricUpdate(w, r, h.services.MetricService.Replace)
}

func (h *Handler) updateMetric(w http.ResponseWriter, r *http.Request) {
	h.applyMetricUpdate(w, r, h.services.MetricService.Update)
}

func (h *Handler) applyMetricUpdate(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, id int64, upd models.SprintMetricUpdate) (models.SprintMetric, error),
) {
	id, ok := pathID(r, "metricID")
	if !ok {
		notFound(w, r)
		return
	}

	var upd models.SprintMetricUpdate
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

func (h *Handler) deleteMetric(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "metricID")
	if !ok {
		notFound(w, r)
		return
	}

	if err := h.services.MetricService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
