// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/agiletrack/sprint-roi/internal/logger"
	"github.com/agiletrack/sprint-roi/models"
	"github.com/jackc/pgerrcode"
	"github.com/shopspring/decimal"
)

// sprintRepository is the PostgreSQL-backed implementation of
// [SprintRepository]. Reads join the owning project for its name and
// left-join sprint_metrics so the 1:1 related metric rides along when it
// exists.
type sprintRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSprintRepository constructs a [SprintRepository] backed by the provided
// database connection and logger.
func NewSprintRepository(db *DB, logger *logger.Logger) SprintRepository {
	logger.Debug().Msg("creating sprint repository")
	return &sprintRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSprint persists a new sprint and returns the joined representation
// (project name resolved, metric absent).
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrProjectReferenceMissing].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *sprintRepository) CreateSprint(ctx context.Context, sprint models.Sprint) (models.Sprint, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSprint, sprint.ProjectID, sprint.StartDate, sprint.EndDate)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*sprintRepository.CreateSprint").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Sprint{}, ErrProjectReferenceMissing
		default:
			return models.Sprint{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var created models.Sprint
	if err := row.Scan(&created.ID, &created.ProjectID, &created.StartDate, &created.EndDate, &created.CreatedAt); err != nil {
		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Sprint{}, ErrProjectReferenceMissing
		}
		log.Err(err).Str("func", "*sprintRepository.CreateSprint").Msg("error: scanning error")
		return models.Sprint{}, errors.Join(ErrScanningRow, err)
	}

	// re-read through the join to resolve the project's name
	return r.GetSprint(ctx, created.ID)
}

// GetSprint retrieves one sprint by id with the owning project's name and
// the embedded metric when one exists.
func (r *sprintRepository) GetSprint(ctx context.Context, id int64) (models.Sprint, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getSprint, id)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*sprintRepository.GetSprint").Msg("error: row is nil")
		return models.Sprint{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	sprint, err := scanSprintRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Sprint{}, ErrSprintNotFound
		}
		log.Err(err).Str("func", "*sprintRepository.GetSprint").Msg("error: scanning error")
		return models.Sprint{}, errors.Join(ErrScanningRow, err)
	}

	return sprint, nil
}

// ListSprints returns one page of sprints matching q plus the total count of
// matches across all pages.
func (r *sprintRepository) ListSprints(ctx context.Context, q models.ListQuery) ([]models.Sprint, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSprintListQuery(q)
	if err != nil {
		log.Err(err).Str("func", "*sprintRepository.ListSprints").Msg("error building list query")
		return nil, 0, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sprintRepository.ListSprints").Msg("error executing list query")
		return nil, 0, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	sprints, err := collectSprintRows(rows)
	if err != nil {
		log.Err(err).Str("func", "*sprintRepository.ListSprints").Msg("error: scanning error")
		return nil, 0, err
	}

	total, err := r.countSprints(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	return sprints, total, nil
}

// ListSprintsByProject returns every sprint of one project, newest start
// date first, without pagination. Used by the nested project sprints
// endpoint, which answers with a bare array.
func (r *sprintRepository) ListSprintsByProject(ctx context.Context, projectID int64) ([]models.Sprint, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listSprintsByProject, projectID)
	if err != nil {
		log.Err(err).Str("func", "*sprintRepository.ListSprintsByProject").Int64("project_id", projectID).Msg("error executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	sprints, err := collectSprintRows(rows)
	if err != nil {
		log.Err(err).Str("func", "*sprintRepository.ListSprintsByProject").Int64("project_id", projectID).Msg("error: scanning error")
		return nil, err
	}

	return sprints, nil
}

func (r *sprintRepository) countSprints(ctx context.Context, q models.ListQuery) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSprintCountQuery(q)
	if err != nil {
		log.Err(err).Str("func", "*sprintRepository.countSprints").Msg("error building count query")
		return 0, errors.Join(ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*sprintRepository.countSprints").Msg("error executing count query")
		return 0, errors.Join(ErrExecutingQuery, err)
	}

	return total, nil
}

// UpdateSprint applies the non-nil fields of upd to the sprint and returns
// the fresh joined representation.
//
// Error handling:
//   - no matching row → [ErrSprintNotFound].
//   - PostgreSQL foreign_key_violation (23503) → [ErrProjectReferenceMissing].
func (r *sprintRepository) UpdateSprint(ctx context.Context, id int64, upd models.SprintUpdate) (models.Sprint, error) {
	log := logger.FromContext(ctx)

	if upd.Empty() {
		return r.GetSprint(ctx, id)
	}

	query, args, err := buildSprintUpdateQuery(id, upd)
	if err != nil {
		log.Err(err).Str("func", "*sprintRepository.UpdateSprint").Msg("error building update query")
		return models.Sprint{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*sprintRepository.UpdateSprint").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Sprint{}, ErrProjectReferenceMissing
		default:
			return models.Sprint{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var updatedID int64
	if err = row.Scan(&updatedID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Sprint{}, ErrSprintNotFound
		}
		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Sprint{}, ErrProjectReferenceMissing
		}
		log.Err(err).Str("func", "*sprintRepository.UpdateSprint").Msg("error: scanning error")
		return models.Sprint{}, errors.Join(ErrScanningRow, err)
	}

	return r.GetSprint(ctx, updatedID)
}

// DeleteSprint removes the sprint row. A related metric goes with it through
// ON DELETE CASCADE. Deleting a sprint that does not exist returns
// [ErrSprintNotFound].
func (r *sprintRepository) DeleteSprint(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteSprint, id)
	if err != nil {
		log.Err(err).Str("func", "*sprintRepository.DeleteSprint").Int64("sprint_id", id).Msg("error executing delete")
		return errors.Join(ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Join(ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrSprintNotFound
	}

	return nil
}

// rowScanner is the subset of [sql.Row] and [sql.Rows] needed to scan one
// joined sprint row.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanSprintRow scans one joined sprint row, folding the nullable left-join
// metric columns into a *SprintMetric only when a metric row matched.
func scanSprintRow(row rowScanner) (models.Sprint, error) {
	var (
		sprint   models.Sprint
		metricID sql.NullInt64
		cost     decimal.NullDecimal
		value    decimal.NullDecimal
		velocity sql.NullInt64
	)

	err := row.Scan(
		&sprint.ID,
		&sprint.ProjectID,
		&sprint.ProjectName,
		&sprint.StartDate,
		&sprint.EndDate,
		&sprint.CreatedAt,
		&metricID,
		&cost,
		&value,
		&velocity,
	)
	if err != nil {
		return models.Sprint{}, err
	}

	if metricID.Valid {
		sprint.Metrics = &models.SprintMetric{
			ID:                     metricID.Int64,
			SprintID:               sprint.ID,
			Cost:                   cost.Decimal,
			EstimatedBusinessValue: value.Decimal,
			Velocity:               int(velocity.Int64),
		}
	}

	return sprint, nil
}

// collectSprintRows drains rows through [scanSprintRow].
func collectSprintRows(rows *sql.Rows) ([]models.Sprint, error) {
	sprints := make([]models.Sprint, 0, models.PageSize)

	for rows.Next() {
		sprint, err := scanSprintRow(rows)
		if err != nil {
			return nil, errors.Join(ErrScanningRows, err)
		}
		sprints = append(sprints, sprint)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return sprints, nil
}
