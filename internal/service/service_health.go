package service

import (
	"context"

	"github.com/agiletrack/sprint-roi/internal/logger"
)

// Pinger is the minimal liveness surface of the database pool.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type healthService struct {
	db Pinger

	logger *logger.Logger
}

func NewHealthService(db Pinger, logger *logger.Logger) HealthService {
	logger.Debug().Msg("health service created")
	return &healthService{
		db:     db,
		logger: logger,
	}
}

// Ping verifies the database connection is alive.
func (s *healthService) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
