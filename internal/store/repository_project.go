// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/agiletrack/sprint-roi/internal/logger"
	"github.com/agiletrack/sprint-roi/models"
)

// projectRepository is the PostgreSQL-backed implementation of
// [ProjectRepository]. Every read resolves the derived sprint_count column
// alongside the stored ones.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type projectRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProjectRepository constructs a [ProjectRepository] backed by the
// provided database connection and logger.
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProject persists a new project and returns the canonical database
// representation including the server-assigned ID and CreatedAt. A freshly
// created project owns no sprints, so SprintCount stays zero without a
// second round trip.
func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProject, project.Name, project.Description)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*projectRepository.CreateProject").Msg("error: row is nil")
		return models.Project{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var created models.Project
	if err := row.Scan(&created.ID, &created.Name, &created.Description, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*projectRepository.CreateProject").Msg("error: scanning error")
		return models.Project{}, errors.Join(ErrScanningRow, err)
	}

	return created, nil
}

// GetProject retrieves one project by id together with its sprint count.
//
// Error handling:
//   - no matching row → [ErrProjectNotFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *projectRepository) GetProject(ctx context.Context, id int64) (models.Project, error) {
	log := logger.FromContext(ctx)

	var project models.Project
	row := r.db.QueryRowContext(ctx, getProject, id)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*projectRepository.GetProject").Msg("error: row is nil")
		return models.Project{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&project.ID, &project.Name, &project.Description, &project.CreatedAt, &project.SprintCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrProjectNotFound
		}
		log.Err(err).Str("func", "*projectRepository.GetProject").Msg("error: scanning error")
		return models.Project{}, errors.Join(ErrScanningRow, err)
	}

	return project, nil
}

// ListProjects returns one page of projects matching q plus the total count
// of matches across all pages.
func (r *projectRepository) ListProjects(ctx context.Context, q models.ListQuery) ([]models.Project, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildProjectListQuery(q)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("error building list query")
		return nil, 0, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("error executing list query")
		return nil, 0, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0, models.PageSize)
	for rows.Next() {
		var project models.Project
		if err = rows.Scan(&project.ID, &project.Name, &project.Description, &project.CreatedAt, &project.SprintCount); err != nil {
			log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("error: scanning error")
			return nil, 0, errors.Join(ErrScanningRows, err)
		}
		projects = append(projects, project)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, errors.Join(ErrScanningRows, err)
	}

	total, err := r.countProjects(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

func (r *projectRepository) countProjects(ctx context.Context, q models.ListQuery) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildProjectCountQuery(q)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.countProjects").Msg("error building count query")
		return 0, errors.Join(ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*projectRepository.countProjects").Msg("error executing count query")
		return 0, errors.Join(ErrExecutingQuery, err)
	}

	return total, nil
}

// UpdateProject applies the non-nil fields of upd to the project and returns
// the fresh representation. An empty update degrades to a plain read so a
// no-op payload still answers with the current state.
func (r *projectRepository) UpdateProject(ctx context.Context, id int64, upd models.ProjectUpdate) (models.Project, error) {
	log := logger.FromContext(ctx)

	if upd.Empty() {
		return r.GetProject(ctx, id)
	}

	query, args, err := buildProjectUpdateQuery(id, upd)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.UpdateProject").Msg("error building update query")
		return models.Project{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*projectRepository.UpdateProject").Msg("error: row is nil")
		return models.Project{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var updated models.Project
	if err = row.Scan(&updated.ID, &updated.Name, &updated.Description, &updated.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrProjectNotFound
		}
		log.Err(err).Str("func", "*projectRepository.UpdateProject").Msg("error: scanning error")
		return models.Project{}, errors.Join(ErrScanningRow, err)
	}

	// RETURNING cannot resolve the derived sprint_count, so re-read.
	return r.GetProject(ctx, updated.ID)
}

// DeleteProject removes the project row. Related sprints and their metrics
// go with it through ON DELETE CASCADE.
//
// Deleting a project that does not exist returns [ErrProjectNotFound].
func (r *projectRepository) DeleteProject(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteProject, id)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteProject").Int64("project_id", id).Msg("error executing delete")
		return errors.Join(ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Join(ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	return nil
}
