package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/agiletrack/sprint-roi/internal/logger"
	"github.com/agiletrack/sprint-roi/models"
	"github.com/jackc/pgerrcode"
)

// metricRepository is the PostgreSQL-backed implementation of
// [MetricRepository]. Only cost, value and velocity are persisted; the ROI
// is derived by the model at read time.
type metricRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMetricRepository constructs a [MetricRepository] backed by the provided
// database connection and logger.
func NewMetricRepository(db *DB, logger *logger.Logger) MetricRepository {
	logger.Debug().Msg("creating sprint metric repository")
	return &metricRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMetric persists a new sprint metric.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on sprint_id → [ErrMetricAlreadyExists].
//   - PostgreSQL foreign_key_violation (23503) → [ErrSprintReferenceMissing].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *metricRepository) CreateMetric(ctx context.Context, metric models.SprintMetric) (models.SprintMetric, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createMetric, metric.SprintID, metric.Cost, metric.EstimatedBusinessValue, metric.Velocity)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*metricRepository.CreateMetric").Msg("error: row is nil")
		return models.SprintMetric{}, classifyMetricWriteError(err)
	}

	var created models.SprintMetric
	if err := row.Scan(&created.ID, &created.SprintID, &created.Cost, &created.EstimatedBusinessValue, &created.Velocity); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.SprintMetric{}, ErrMetricAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return models.SprintMetric{}, ErrSprintReferenceMissing
		}
		log.Err(err).Str("func", "*metricRepository.CreateMetric").Msg("error: scanning error")
		return models.SprintMetric{}, errors.Join(ErrScanningRow, err)
	}

	return created, nil
}

// GetMetric retrieves one sprint metric by row id.
func (r *metricRepository) GetMetric(ctx context.Context, id int64) (models.SprintMetric, error) {
	log := logger.FromContext(ctx)

	var metric models.SprintMetric
	row := r.db.QueryRowContext(ctx, getMetric, id)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*metricRepository.GetMetric").Msg("error: row is nil")
		return models.SprintMetric{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&metric.ID, &metric.SprintID, &metric.Cost, &metric.EstimatedBusinessValue, &metric.Velocity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SprintMetric{}, ErrMetricNotFound
		}
		log.Err(err).Str("func", "*metricRepository.GetMetric").Msg("error: scanning error")
		return models.SprintMetric{}, errors.Join(ErrScanningRow, err)
	}

	return metric, nil
}

// ListMetrics returns one page of metrics matching q plus the total count of
// matches across all pages.
func (r *metricRepository) ListMetrics(ctx context.Context, q models.ListQuery) ([]models.SprintMetric, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMetricListQuery(q)
	if err != nil {
		log.Err(err).Str("func", "*metricRepository.ListMetrics").Msg("error building list query")
		return nil, 0, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*metricRepository.ListMetrics").Msg("error executing list query")
		return nil, 0, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	metrics, err := collectMetricRows(rows)
	if err != nil {
		log.Err(err).Str("func", "*metricRepository.ListMetrics").Msg("error: scanning error")
		return nil, 0, err
	}

	total, err := r.countMetrics(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	return metrics, total, nil
}

// ListAllMetrics returns every stored metric ordered by row id. The
// high-ROI listing filters on a derived value no SQL column carries, so the
// selection happens in the service layer over the full set.
func (r *metricRepository) ListAllMetrics(ctx context.Context) ([]models.SprintMetric, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAllMetrics)
	if err != nil {
		log.Err(err).Str("func", "*metricRepository.ListAllMetrics").Msg("error executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	metrics, err := collectMetricRows(rows)
	if err != nil {
		log.Err(err).Str("func", "*metricRepository.ListAllMetrics").Msg("error: scanning error")
		return nil, err
	}

	return metrics, nil
}

func (r *metricRepository) countMetrics(ctx context.Context, q models.ListQuery) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMetricCountQuery(q)
	if err != nil {
		log.Err(err).Str("func", "*metricRepository.countMetrics").Msg("error building count query")
		return 0, errors.Join(ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*metricRepository.countMetrics").Msg("error executing count query")
		return 0, errors.Join(ErrExecutingQuery, err)
	}

	return total, nil
}

// UpdateMetric applies the non-nil fields of upd to the metric and returns
// the fresh representation. Moving a metric to a sprint that already has one
// trips the same uniqueness constraint as a duplicate insert.
func (r *metricRepository) UpdateMetric(ctx context.Context, id int64, upd models.SprintMetricUpdate) (models.SprintMetric, error) {
	log := logger.FromContext(ctx)

	if upd.Empty() {
		return r.GetMetric(ctx, id)
	}

	query, args, err := buildMetricUpdateQuery(id, upd)
	if err != nil {
		log.Err(err).Str("func", "*metricRepository.UpdateMetric").Msg("error building update query")
		return models.SprintMetric{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*metricRepository.UpdateMetric").Msg("error: row is nil")
		return models.SprintMetric{}, classifyMetricWriteError(err)
	}

	var updated models.SprintMetric
	if err = row.Scan(&updated.ID, &updated.SprintID, &updated.Cost, &updated.EstimatedBusinessValue, &updated.Velocity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SprintMetric{}, ErrMetricNotFound
		}
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.SprintMetric{}, ErrMetricAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return models.SprintMetric{}, ErrSprintReferenceMissing
		}
		log.Err(err).Str("func", "*metricRepository.UpdateMetric").Msg("error: scanning error")
		return models.SprintMetric{}, errors.Join(ErrScanningRow, err)
	}

	return updated, nil
}

// DeleteMetric removes the metric row. Deleting a metric that does not exist
// returns [ErrMetricNotFound].
func (r *metricRepository) DeleteMetric(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteMetric, id)
	if err != nil {
		log.Err(err).Str("func", "*metricRepository.DeleteMetric").Int64("metric_id", id).Msg("error executing delete")
		return errors.Join(ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Join(ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrMetricNotFound
	}

	return nil
}

// classifyMetricWriteError maps constraint violations raised by metric
// writes onto the repository sentinels; anything else is wrapped untouched.
func classifyMetricWriteError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrMetricAlreadyExists
	case pgerrcode.ForeignKeyViolation:
		return ErrSprintReferenceMissing
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}

// collectMetricRows drains rows into a slice of metrics.
func collectMetricRows(rows *sql.Rows) ([]models.SprintMetric, error) {
	metrics := make([]models.SprintMetric, 0, models.PageSize)

	for rows.Next() {
		var metric models.SprintMetric
		if err := rows.Scan(&metric.ID, &metric.SprintID, &metric.Cost, &metric.EstimatedBusinessValue, &metric.Velocity); err != nil {
			return nil, errors.Join(ErrScanningRows, err)
		}
		metrics = append(metrics, metric)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return metrics, nil
}
