package store

import (
	"github.com/agiletrack/sprint-roi/internal/logger"
)

// Storages aggregates one repository per persisted entity, all sharing the
// same connection pool.
type Storages struct {
	UserRepository    UserRepository
	ProjectRepository ProjectRepository
	SprintRepository  SprintRepository
	MetricRepository  MetricRepository

	// DB is the shared pool, exposed for liveness checks.
	DB *DB
}

// NewStorages wires every repository to the given database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ProjectRepository: NewProjectRepository(db, logger),
		SprintRepository:  NewSprintRepository(db, logger),
		MetricRepository:  NewMetricRepository(db, logger),
		DB:                db,
	}
}
