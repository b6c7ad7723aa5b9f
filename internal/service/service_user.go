package service

import (
	"context"

	"github.com/agiletrack/sprint-roi/internal/logger"
	"github.com/agiletrack/sprint-roi/internal/store"
	"github.com/agiletrack/sprint-roi/models"
)

// userService is the concrete implementation of UserService. The account
// collection is read-only through the API; writes happen via registration.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *userService) Get(ctx context.Context, id int64) (models.User, error) {
	return s.userRepository.GetUser(ctx, id)
}

func (s *userService) List(ctx context.Context, q models.ListQuery) ([]models.User, int64, error) {
	return s.userRepository.ListUsers(ctx, q)
}
