package service

import (
	"context"

	"github.com/agiletrack/sprint-roi/models"
)

// AuthService owns account registration, credential verification and the JWT
// token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, models.Token, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProjectService owns project CRUD. Replace applies a full payload (every
// writable field required); Update applies a partial one.
type ProjectService interface {
	Create(ctx context.Context, upd models.ProjectUpdate) (models.Project, error)
	Get(ctx context.Context, id int64) (models.Project, error)
	List(ctx context.Context, q models.ListQuery) ([]models.Project, int64, error)
	Replace(ctx context.Context, id int64, upd models.ProjectUpdate) (models.Project, error)
	Update(ctx context.Context, id int64, upd models.ProjectUpdate) (models.Project, error)
	Delete(ctx context.Context, id int64) error
}

// SprintService owns sprint CRUD plus the per-project sprint listing.
type SprintService interface {
	Create(ctx context.Context, upd models.SprintUpdate) (models.Sprint, error)
	Get(ctx context.Context, id int64) (models.Sprint, error)
	List(ctx context.Context, q models.ListQuery) ([]models.Sprint, int64, error)
	ListByProject(ctx context.Context, projectID int64) ([]models.Sprint, error)
	Replace(ctx context.Context, id int64, upd models.SprintUpdate) (models.Sprint, error)
	Update(ctx context.Context, id int64, upd models.SprintUpdate) (models.Sprint, error)
	Delete(ctx context.Context, id int64) error
}

// MetricService owns sprint metric CRUD plus the high-ROI selection.
type MetricService interface {
	Create(ctx context.Context, upd models.SprintMetricUpdate) (models.SprintMetric, error)
	Get(ctx context.Context, id int64) (models.SprintMetric, error)
	List(ctx context.Context, q models.ListQuery) ([]models.SprintMetric, int64, error)
	ListHighROI(ctx context.Context, q models.ListQuery) ([]models.SprintMetric, int64, error)
	Replace(ctx context.Context, id int64, upd models.SprintMetricUpdate) (models.SprintMetric, error)
	Update(ctx context.Context, id int64, upd models.SprintMetricUpdate) (models.SprintMetric, error)
	Delete(ctx context.Context, id int64) error
}

// UserService exposes accounts read-only.
type UserService interface {
	Get(ctx context.Context, id int64) (models.User, error)
	List(ctx context.Context, q models.ListQuery) ([]models.User, int64, error)
}

// HealthService reports whether the service's dependencies are reachable.
type HealthService interface {
	Ping(ctx context.Context) error
}
