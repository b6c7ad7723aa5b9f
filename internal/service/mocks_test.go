package service

import (
	"context"

	"github.com/agiletrack/sprint-roi/models"
)

// Function-field mocks of the store repositories. Unset fields answer with
// zero values so each test only wires the calls it cares about.

type mockUserRepository struct {
	createFn func(ctx context.Context, user models.User) (models.User, error)
	findFn   func(ctx context.Context, username string) (models.User, error)
	getFn    func(ctx context.Context, id int64) (models.User, error)
	listFn   func(ctx context.Context, q models.ListQuery) ([]models.User, int64, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findFn != nil {
		return m.findFn(ctx, username)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) GetUser(ctx context.Context, id int64) (models.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) ListUsers(ctx context.Context, q models.ListQuery) ([]models.User, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, q)
	}
	return nil, 0, nil
}

type mockProjectRepository struct {
	createFn func(ctx context.Context, project models.Project) (models.Project, error)
	getFn    func(ctx context.Context, id int64) (models.Project, error)
	listFn   func(ctx context.Context, q models.ListQuery) ([]models.Project, int64, error)
	updateFn func(ctx context.Context, id int64, upd models.ProjectUpdate) (models.Project, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockProjectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	if m.createFn != nil {
		return m.createFn(ctx, project)
	}
	return project, nil
}

func (m *mockProjectRepository) GetProject(ctx context.Context, id int64) (models.Project, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Project{ID: id}, nil
}

func (m *mockProjectRepository) ListProjects(ctx context.Context, q models.ListQuery) ([]models.Project, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, q)
	}
	return nil, 0, nil
}

func (m *mockProjectRepository) UpdateProject(ctx context.Context, id int64, upd models.ProjectUpdate) (models.Project, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, upd)
	}
	return models.Project{ID: id}, nil
}

func (m *mockProjectRepository) DeleteProject(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockSprintRepository struct {
	createFn        func(ctx context.Context, sprint models.Sprint) (models.Sprint, error)
	getFn           func(ctx context.Context, id int64) (models.Sprint, error)
	listFn          func(ctx context.Context, q models.ListQuery) ([]models.Sprint, int64, error)
	listByProjectFn func(ctx context.Context, projectID int64) ([]models.Sprint, error)
	updateFn        func(ctx context.Context, id int64, upd models.SprintUpdate) (models.Sprint, error)
	deleteFn        func(ctx context.Context, id int64) error
}

func (m *mockSprintRepository) CreateSprint(ctx context.Context, sprint models.Sprint) (models.Sprint, error) {
	if m.createFn != nil {
		return m.createFn(ctx, sprint)
	}
	return sprint, nil
}

func (m *mockSprintRepository) GetSprint(ctx context.Context, id int64) (models.Sprint, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Sprint{ID: id}, nil
}

func (m *mockSprintRepository) ListSprints(ctx context.Context, q models.ListQuery) ([]models.Sprint, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, q)
	}
	return nil, 0, nil
}

func (m *mockSprintRepository) ListSprintsByProject(ctx context.Context, projectID int64) ([]models.Sprint, error) {
	if m.listByProjectFn != nil {
		return m.listByProjectFn(ctx, projectID)
	}
	return nil, nil
}

func (m *mockSprintRepository) UpdateSprint(ctx context.Context, id int64, upd models.SprintUpdate) (models.Sprint, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, upd)
	}
	return models.Sprint{ID: id}, nil
}

func (m *mockSprintRepository) DeleteSprint(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockMetricRepository struct {
	createFn  func(ctx context.Context, metric models.SprintMetric) (models.SprintMetric, error)
	getFn     func(ctx context.Context, id int64) (models.SprintMetric, error)
	listFn    func(ctx context.Context, q models.ListQuery) ([]models.SprintMetric, int64, error)
	listAllFn func(ctx context.Context) ([]models.SprintMetric, error)
	updateFn  func(ctx context.Context, id int64, upd models.SprintMetricUpdate) (models.SprintMetric, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockMetricRepository) CreateMetric(ctx context.Context, metric models.SprintMetric) (models.SprintMetric, error) {
	if m.createFn != nil {
		return m.createFn(ctx, metric)
	}
	return metric, nil
}

func (m *mockMetricRepository) GetMetric(ctx context.Context, id int64) (models.SprintMetric, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.SprintMetric{ID: id}, nil
}

func (m *mockMetricRepository) ListMetrics(ctx context.Context, q models.ListQuery) ([]models.SprintMetric, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, q)
	}
	return nil, 0, nil
}

func (m *mockMetricRepository) ListAllMetrics(ctx context.Context) ([]models.SprintMetric, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return nil, nil
}

func (m *mockMetricRepository) UpdateMetric(ctx context.Context, id int64, upd models.SprintMetricUpdate) (models.SprintMetric, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, upd)
	}
	return models.SprintMetric{ID: id}, nil
}

func (m *mockMetricRepository) DeleteMetric(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}
