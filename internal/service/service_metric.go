// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/agiletrack/sprint-roi/internal/logger"
	"github.com/agiletrack/sprint-roi/internal/store"
	"github.com/agiletrack/sprint-roi/internal/validators"
	"github.com/agiletrack/sprint-roi/models"
	"github.com/shopspring/decimal"
)

// highROIThreshold is the exclusive lower bound of the high-ROI selection:
// a metric qualifies when (value − cost) / cost is strictly greater.
var highROIThreshold = decimal.RequireFromString("0.5")

// metricService is the concrete implementation of MetricService.
type metricService struct {
	metricRepository store.MetricRepository
	validator        validators.Validator
	logger           *logger.Logger
}

// NewMetricService constructs a MetricService wired to the given repository
// and validator.
func NewMetricService(metricRepository store.MetricRepository, validator validators.Validator, logger *logger.Logger) MetricService {
	return &metricService{
		metricRepository: metricRepository,
		validator:        validator,
		logger:           logger,
	}
}

// Create validates the full payload and persists a new metric. A reference
// to a missing sprint and a duplicate metric for an occupied sprint both
// surface as field errors on "sprint".
func (s *metricService) Create(ctx context.Context, upd models.SprintMetricUpdate) (models.SprintMetric, error) {
	if err := s.validator.Validate(ctx, upd, validators.MetricFields...); err != nil {
		return models.SprintMetric{}, err
	}

	metric := models.SprintMetric{
		SprintID:               *upd.SprintID,
		Cost:                   *upd.Cost,
		EstimatedBusinessValue: *upd.EstimatedBusinessValue,
		Velocity:               *upd.Velocity,
	}

	created, err := s.metricRepository.CreateMetric(ctx, metric)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("sprint_id", metric.SprintID).Msg("metric creation ended with error")
		return models.SprintMetric{}, mapMetricWriteError(err, metric.SprintID)
	}

	return created, nil
}

func (s *metricService) Get(ctx context.Context, id int64) (models.SprintMetric, error) {
	return s.metricRepository.GetMetric(ctx, id)
}

func (s *metricService) List(ctx context.Context, q models.ListQuery) ([]models.SprintMetric, int64, error) {
	return s.metricRepository.ListMetrics(ctx, q)
}

// ListHighROI returns the page of metrics whose ROI is defined and strictly
// above the threshold. The ROI is derived, so no SQL predicate can select on
// it: the filter walks the full id-ordered set and the page window is cut
// from the filtered sequence. Zero-cost metrics never qualify.
func (s *metricService) ListHighROI(ctx context.Context, q models.ListQuery) ([]models.SprintMetric, int64, error) {
	all, err := s.metricRepository.ListAllMetrics(ctx)
	if err != nil {
		return nil, 0, err
	}

	filtered := make([]models.SprintMetric, 0, len(all))
	for _, metric := range all {
		if metric.HighROI(highROIThreshold) {
			filtered = append(filtered, metric)
		}
	}

	total := int64(len(filtered))
	offset := q.Offset()
	if offset >= len(filtered) {
		return []models.SprintMetric{}, total, nil
	}

	end := offset + models.PageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return filtered[offset:end], total, nil
}

// Replace validates the payload as a full update and applies it.
func (s *metricService) Replace(ctx context.Context, id int64, upd models.SprintMetricUpdate) (models.SprintMetric, error) {
	if err := s.validator.Validate(ctx, upd, validators.MetricFields...); err != nil {
		return models.SprintMetric{}, err
	}

	return s.applyUpdate(ctx, id, upd)
}

// Update applies a partial payload; absent fields keep their stored values.
func (s *metricService) Update(ctx context.Context, id int64, upd models.SprintMetricUpdate) (models.SprintMetric, error) {
	if err := s.validator.Validate(ctx, upd); err != nil {
		return models.SprintMetric{}, err
	}

	return s.applyUpdate(ctx, id, upd)
}

func (s *metricService) applyUpdate(ctx context.Context, id int64, upd models.SprintMetricUpdate) (models.SprintMetric, error) {
	updated, err := s.metricRepository.UpdateMetric(ctx, id, upd)
	if err != nil {
		sprintID := int64(0)
		if upd.SprintID != nil {
			sprintID = *upd.SprintID
		}
		logger.FromContext(ctx).Err(err).Int64("metric_id", id).Msg("metric update ended with error")
		return models.SprintMetric{}, mapMetricWriteError(err, sprintID)
	}

	return updated, nil
}

func (s *metricService) Delete(ctx context.Context, id int64) error {
	return s.metricRepository.DeleteMetric(ctx, id)
}
