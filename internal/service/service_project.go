package service

import (
	"context"
	"fmt"

	"github.com/agiletrack/sprint-roi/internal/logger"
	"github.com/agiletrack/sprint-roi/internal/store"
	"github.com/agiletrack/sprint-roi/internal/validators"
	"github.com/agiletrack/sprint-roi/models"
)

// projectService is the concrete implementation of ProjectService.
type projectService struct {
	projectRepository store.ProjectRepository
	validator         validators.Validator
	logger            *logger.Logger
}

// NewProjectService constructs a ProjectService wired to the given
// repository and validator.
func NewProjectService(projectRepository store.ProjectRepository, validator validators.Validator, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		validator:         validator,
		logger:            logger,
	}
}

// Create validates the full payload and persists a new project.
func (s *projectService) Create(ctx context.Context, upd models.ProjectUpdate) (models.Project, error) {
	if err := s.validator.Validate(ctx, upd, validators.ProjectFields...); err != nil {
		return models.Project{}, err
	}

	project := models.Project{Name: *upd.Name}
	if upd.Description != nil {
		project.Description = *upd.Description
	}

	created, err := s.projectRepository.CreateProject(ctx, project)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("project creation ended with error")
		return models.Project{}, fmt.Errorf("project creation ended with error: %w", err)
	}

	return created, nil
}

func (s *projectService) Get(ctx context.Context, id int64) (models.Project, error) {
	return s.projectRepository.GetProject(ctx, id)
}

func (s *projectService) List(ctx context.Context, q models.ListQuery) ([]models.Project, int64, error) {
	return s.projectRepository.ListProjects(ctx, q)
}

// Replace validates the payload as a full update and applies it. A full
// update that leaves the description out resets it to empty, the way a
// complete representation write is expected to.
func (s *projectService) Replace(ctx context.Context, id int64, upd models.ProjectUpdate) (models.Project, error) {
	if err := s.validator.Validate(ctx, upd, validators.ProjectFields...); err != nil {
		return models.Project{}, err
	}

	if upd.Description == nil {
		empty := ""
		upd.Description = &empty
	}

	return s.projectRepository.UpdateProject(ctx, id, upd)
}

// Update applies a partial payload; absent fields keep their stored values.
func (s *projectService) Update(ctx context.Context, id int64, upd models.ProjectUpdate) (models.Project, error) {
	if err := s.validator.Validate(ctx, upd); err != nil {
		return models.Project{}, err
	}

	return s.projectRepository.UpdateProject(ctx, id, upd)
}

// Delete removes the project together with its sprints and their metrics.
func (s *projectService) Delete(ctx context.Context, id int64) error {
	return s.projectRepository.DeleteProject(ctx, id)
}
