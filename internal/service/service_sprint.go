package service

import (
	"context"
	"fmt"

	"github.com/agiletrack/sprint-roi/internal/logger"
	"github.com/agiletrack/sprint-roi/internal/store"
	"github.com/agiletrack/sprint-roi/internal/validators"
	"github.com/agiletrack/sprint-roi/models"
)

// sprintService is the concrete implementation of SprintService. It holds
// the project repository as well so the nested per-project listing can
// answer 404 for a project that does not exist instead of an empty array.
type sprintService struct {
	sprintRepository  store.SprintRepository
	projectRepository store.ProjectRepository
	validator         validators.Validator
	logger            *logger.Logger
}

// NewSprintService constructs a SprintService wired to the given
// repositories and validator.
func NewSprintService(sprintRepository store.SprintRepository, projectRepository store.ProjectRepository, validator validators.Validator, logger *logger.Logger) SprintService {
	return &sprintService{
		sprintRepository:  sprintRepository,
		projectRepository: projectRepository,
		validator:         validator,
		logger:            logger,
	}
}

// Create validates the full payload and persists a new sprint. A reference
// to a missing project surfaces as a field error on "project".
func (s *sprintService) Create(ctx context.Context, upd models.SprintUpdate) (models.Sprint, error) {
	if err := s.validator.Validate(ctx, upd, validators.SprintFields...); err != nil {
		return models.Sprint{}, err
	}

	sprint := models.Sprint{
		ProjectID: *upd.ProjectID,
		StartDate: *upd.StartDate,
		EndDate:   *upd.EndDate,
	}

	created, err := s.sprintRepository.CreateSprint(ctx, sprint)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("project_id", sprint.ProjectID).Msg("sprint creation ended with error")
		return models.Sprint{}, mapSprintWriteError(err, sprint.ProjectID)
	}

	return created, nil
}

func (s *sprintService) Get(ctx context.Context, id int64) (models.Sprint, error) {
	return s.sprintRepository.GetSprint(ctx, id)
}

func (s *sprintService) List(ctx context.Context, q models.ListQuery) ([]models.Sprint, int64, error) {
	return s.sprintRepository.ListSprints(ctx, q)
}

// ListByProject returns every sprint of one project without pagination.
// Returns [store.ErrProjectNotFound] when the project itself is missing.
func (s *sprintService) ListByProject(ctx context.Context, projectID int64) ([]models.Sprint, error) {
	if _, err := s.projectRepository.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	return s.sprintRepository.ListSprintsByProject(ctx, projectID)
}

// Replace validates the payload as a full update and applies it.
func (s *sprintService) Replace(ctx context.Context, id int64, upd models.SprintUpdate) (models.Sprint, error) {
	if err := s.validator.Validate(ctx, upd, validators.SprintFields...); err != nil {
		return models.Sprint{}, err
	}

	return s.applyUpdate(ctx, id, upd)
}

// Update applies a partial payload. The date-ordering rule only fires when
// the payload itself carries both dates; moving a single date is accepted
// even if it crosses the stored other one.
func (s *sprintService) Update(ctx context.Context, id int64, upd models.SprintUpdate) (models.Sprint, error) {
	if err := s.validator.Validate(ctx, upd); err != nil {
		return models.Sprint{}, err
	}

	return s.applyUpdate(ctx, id, upd)
}

func (s *sprintService) applyUpdate(ctx context.Context, id int64, upd models.SprintUpdate) (models.Sprint, error) {
	updated, err := s.sprintRepository.UpdateSprint(ctx, id, upd)
	if err != nil {
		projectID := int64(0)
		if upd.ProjectID != nil {
			projectID = *upd.ProjectID
		}
		logger.FromContext(ctx).Err(err).Int64("sprint_id", id).Msg("sprint update ended with error")
		return models.Sprint{}, mapSprintWriteError(err, projectID)
	}

	return updated, nil
}

// Delete removes the sprint together with its metric, if any.
func (s *sprintService) Delete(ctx context.Context, id int64) error {
	if err := s.sprintRepository.DeleteSprint(ctx, id); err != nil {
		return fmt.Errorf("sprint deletion ended with error: %w", err)
	}
	return nil
}
