package store

import (
	"context"

	"github.com/agiletrack/sprint-roi/models"
)

// UserRepository persists user accounts. Accounts are created through
// registration only; the public API reads them.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context, q models.ListQuery) ([]models.User, int64, error)
}

// ProjectRepository persists projects. Every read resolves the computed
// sprint_count column.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	GetProject(ctx context.Context, id int64) (models.Project, error)
	ListProjects(ctx context.Context, q models.ListQuery) ([]models.Project, int64, error)
	UpdateProject(ctx context.Context, id int64, upd models.ProjectUpdate) (models.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

// SprintRepository persists sprints. Reads join the owning project's name
// and embed the related metric when one exists.
type SprintRepository interface {
	CreateSprint(ctx context.Context, sprint models.Sprint) (models.Sprint, error)
	GetSprint(ctx context.Context, id int64) (models.Sprint, error)
	ListSprints(ctx context.Context, q models.ListQuery) ([]models.Sprint, int64, error)
	ListSprintsByProject(ctx context.Context, projectID int64) ([]models.Sprint, error)
	UpdateSprint(ctx context.Context, id int64, upd models.SprintUpdate) (models.Sprint, error)
	DeleteSprint(ctx context.Context, id int64) error
}

// MetricRepository persists sprint metrics. The derived ROI is never stored;
// repositories only ever read and write cost, value and velocity.
type MetricRepository interface {
	CreateMetric(ctx context.Context, metric models.SprintMetric) (models.SprintMetric, error)
	GetMetric(ctx context.Context, id int64) (models.SprintMetric, error)
	ListMetrics(ctx context.Context, q models.ListQuery) ([]models.SprintMetric, int64, error)
	ListAllMetrics(ctx context.Context) ([]models.SprintMetric, error)
	UpdateMetric(ctx context.Context, id int64, upd models.SprintMetricUpdate) (models.SprintMetric, error)
	DeleteMetric(ctx context.Context, id int64) error
}
