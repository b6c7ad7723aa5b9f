package service

import (
	"github.com/agiletrack/sprint-roi/internal/config"
	"github.com/agiletrack/sprint-roi/internal/logger"
	"github.com/agiletrack/sprint-roi/internal/store"
	"github.com/agiletrack/sprint-roi/internal/validators"
)

// Services aggregates one service per API surface.
type Services struct {
	AuthService    AuthService
	ProjectService ProjectService
	SprintService  SprintService
	MetricService  MetricService
	UserService    UserService
	HealthService  HealthService
}

// NewServices wires every service to the shared storages, a common payload
// validator and the application configuration.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewResourceValidator()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		ProjectService: NewProjectService(storages.ProjectRepository, validator, logger),
		SprintService:  NewSprintService(storages.SprintRepository, storages.ProjectRepository, validator, logger),
		MetricService:  NewMetricService(storages.MetricRepository, validator, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
		HealthService:  NewHealthService(storages.DB, logger),
	}
}
