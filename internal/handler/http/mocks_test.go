package http

import (
	"context"

	"github.com/agiletrack/sprint-roi/internal/logger"
	"github.com/agiletrack/sprint-roi/internal/service"
	"github.com/agiletrack/sprint-roi/models"
)

type mockAuthService struct {
	registerFn   func(ctx context.Context, creds models.Credentials) (models.User, models.Token, error)
	loginFn      func(ctx context.Context, creds models.Credentials) (models.User, models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, models.Token, error) {
	if m.registerFn == nil {
		return models.User{}, models.Token{}, nil
	}
	return m.registerFn(ctx, creds)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, models.Token, error) {
	if m.loginFn == nil {
		return models.User{}, models.Token{}, nil
	}
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return models.Token{UserID: 1}, nil
	}
	return m.parseTokenFn(ctx, tokenString)
}

type mockProjectService struct {
	createFn  func(ctx context.Context, upd models.ProjectUpdate) (models.Project, error)
	getFn     func(ctx context.Context, id int64) (models.Project, error)
	listFn    func(ctx context.Context, q models.ListQuery) ([]models.Project, int64, error)
	replaceFn func(ctx context.Context, id int64, upd models.ProjectUpdate) (models.Project, error)
	updateFn  func(ctx context.Context, id int64, upd models.ProjectUpdate) (models.Project, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockProjectService) Create(ctx context.Context, upd models.ProjectUpdate) (models.Project, error) {
	if m.createFn == nil {
		return models.Project{}, nil
	}
	return m.createFn(ctx, upd)
}

func (m *mockProjectService) Get(ctx context.Context, id int64) (models.Project, error) {
	if m.getFn == nil {
		return models.Project{}, nil
	}
	return m.getFn(ctx, id)
}

func (m *mockProjectService) List(ctx context.Context, q models.ListQuery) ([]models.Project, int64, error) {
	if m.listFn == nil {
		return []models.Project{}, 0, nil
	}
	return m.listFn(ctx, q)
}

func (m *mockProjectService) Replace(ctx context.Context, id int64, upd models.ProjectUpdate) (models.Project, error) {
	if m.replaceFn == nil {
		return models.Project{}, nil
	}
	return m.replaceFn(ctx, id, upd)
}

func (m *mockProjectService) Update(ctx context.Context, id int64, upd models.ProjectUpdate) (models.Project, error) {
	if m.updateFn == nil {
		return models.Project{}, nil
	}
	return m.updateFn(ctx, id, upd)
}

func (m *mockProjectService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

type mockSprintService struct {
	createFn        func(ctx context.Context, upd models.SprintUpdate) (models.Sprint, error)
	getFn           func(ctx context.Context, id int64) (models.Sprint, error)
	listFn          func(ctx context.Context, q models.ListQuery) ([]models.Sprint, int64, error)
	listByProjectFn func(ctx context.Context, projectID int64) ([]models.Sprint, error)
	replaceFn       func(ctx context.Context, id int64, upd models.SprintUpdate) (models.Sprint, error)
	updateFn        func(ctx context.Context, id int64, upd models.SprintUpdate) (models.Sprint, error)
	deleteFn        func(ctx context.Context, id int64) error
}

func (m *mockSprintService) Create(ctx context.Context, upd models.SprintUpdate) (models.Sprint, error) {
	if m.createFn == nil {
		return models.Sprint{}, nil
	}
	return m.createFn(ctx, upd)
}

func (m *mockSprintService) Get(ctx context.Context, id int64) (models.Sprint, error) {
	if m.getFn == nil {
		return models.Sprint{}, nil
	}
	return m.getFn(ctx, id)
}

func (m *mockSprintService) List(ctx context.Context, q models.ListQuery) ([]models.Sprint, int64, error) {
	if m.listFn == nil {
		return []models.Sprint{}, 0, nil
	}
	return m.listFn(ctx, q)
}

func (m *mockSprintService) ListByProject(ctx context.Context, projectID int64) ([]models.Sprint, error) {
	if m.listByProjectFn == nil {
		return []models.Sprint{}, nil
	}
	return m.listByProjectFn(ctx, projectID)
}

func (m *mockSprintService) Replace(ctx context.Context, id int64, upd models.SprintUpdate) (models.Sprint, error) {
	if m.replaceFn == nil {
		return models.Sprint{}, nil
	}
	return m.replaceFn(ctx, id, upd)
}

func (m *mockSprintService) Update(ctx context.Context, id int64, upd models.SprintUpdate) (models.Sprint, error) {
	if m.updateFn == nil {
		return models.Sprint{}, nil
	}
	return m.updateFn(ctx, id, upd)
}

func (m *mockSprintService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

type mockMetricService struct {
	createFn      func(ctx context.Context, upd models.SprintMetricUpdate) (models.SprintMetric, error)
	getFn         func(ctx context.Context, id int64) (models.SprintMetric, error)
	listFn        func(ctx context.Context, q models.ListQuery) ([]models.SprintMetric, int64, error)
	listHighROIFn func(ctx context.Context, q models.ListQuery) ([]models.SprintMetric, int64, error)
	replaceFn     func(ctx context.Context, id int64, upd models.SprintMetricUpdate) (models.SprintMetric, error)
	updateFn      func(ctx context.Context, id int64, upd models.SprintMetricUpdate) (models.SprintMetric, error)
	deleteFn      func(ctx context.Context, id int64) error
}

func (m *mockMetricService) Create(ctx context.Context, upd models.SprintMetricUpdate) (models.SprintMetric, error) {
	if m.createFn == nil {
		return models.SprintMetric{}, nil
	}
	return m.createFn(ctx, upd)
}

func (m *mockMetricService) Get(ctx context.Context, id int64) (models.SprintMetric, error) {
	if m.getFn == nil {
		return models.SprintMetric{}, nil
	}
	return m.getFn(ctx, id)
}

func (m *mockMetricService) List(ctx context.Context, q models.ListQuery) ([]models.SprintMetric, int64, error) {
	if m.listFn == nil {
		return []models.SprintMetric{}, 0, nil
	}
	return m.listFn(ctx, q)
}

func (m *mockMetricService) ListHighROI(ctx context.Context, q models.ListQuery) ([]models.SprintMetric, int64, error) {
	if m.listHighROIFn == nil {
		return []models.SprintMetric{}, 0, nil
	}
	return m.listHighROIFn(ctx, q)
}

func (m *mockMetricService) Replace(ctx context.Context, id int64, upd models.SprintMetricUpdate) (models.SprintMetric, error) {
	if m.replaceFn == nil {
		return models.SprintMetric{}, nil
	}
	return m.replaceFn(ctx, id, upd)
}

func (m *mockMetricService) Update(ctx context.Context, id int64, upd models.SprintMetricUpdate) (models.SprintMetric, error) {
	if m.updateFn == nil {
		return models.SprintMetric{}, nil
	}
	return m.updateFn(ctx, id, upd)
}

func (m *mockMetricService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

type mockHealthService struct {
	pingFn func(ctx context.Context) error
}

func (m *mockHealthService) Ping(ctx context.Context) error {
	if m.pingFn == nil {
		return nil
	}
	return m.pingFn(ctx)
}

type mockUserService struct {
	getFn  func(ctx context.Context, id int64) (models.User, error)
	listFn func(ctx context.Context, q models.ListQuery) ([]models.User, int64, error)
}

func (m *mockUserService) Get(ctx context.Context, id int64) (models.User, error) {
	if m.getFn == nil {
		return models.User{}, nil
	}
	return m.getFn(ctx, id)
}

func (m *mockUserService) List(ctx context.Context, q models.ListQuery) ([]models.User, int64, error) {
	if m.listFn == nil {
		return []models.User{}, 0, nil
	}
	return m.listFn(ctx, q)
}

// newTestHandler builds a Handler around the given mocks. Nil mocks are
// replaced with permissive defaults so a test only wires what it asserts on.
func newTestHandler(services *service.Services) *Handler {
	if services == nil {
		services = &service.Services{}
	}
	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	if services.ProjectService == nil {
		services.ProjectService = &mockProjectService{}
	}
	if services.SprintService == nil {
		services.SprintService = &mockSprintService{}
	}
	if services.MetricService == nil {
		services.MetricService = &mockMetricService{}
	}
	if services.UserService == nil {
		services.UserService = &mockUserService{}
	}
	if services.HealthService == nil {
		services.HealthService = &mockHealthService{}
	}
	return NewHandler(services, logger.Nop())
}
