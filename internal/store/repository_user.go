package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/agiletrack/sprint-roi/internal/logger"
	"github.com/agiletrack/sprint-roi/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (ID, DateJoined, flags).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email, user.FirstName, user.LastName, user.Role, user.PasswordHash)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var created models.User
	if err := scanUser(row, &created); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, errors.Join(ErrScanningRow, err)
	}

	return created, nil
}

// FindUserByUsername retrieves the account whose username matches exactly.
// Returns [ErrUserNotFound] when no such account exists.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByUsername, username)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var found models.User
	if err := scanUser(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: scanning error")
		return models.User{}, errors.Join(ErrScanningRow, err)
	}

	return found, nil
}

// GetUser retrieves one account by id. Returns [ErrUserNotFound] when no
// such account exists.
func (r *userRepository) GetUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getUser, id)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.GetUser").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var found models.User
	if err := scanUser(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.GetUser").Msg("error: scanning error")
		return models.User{}, errors.Join(ErrScanningRow, err)
	}

	return found, nil
}

// ListUsers returns one page of accounts matching q plus the total count of
// matches across all pages.
func (r *userRepository) ListUsers(ctx context.Context, q models.ListQuery) ([]models.User, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUserListQuery(q)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error building list query")
		return nil, 0, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error executing list query")
		return nil, 0, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, models.PageSize)
	for rows.Next() {
		var user models.User
		if err = scanUser(rows, &user); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: scanning error")
			return nil, 0, errors.Join(ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, errors.Join(ErrScanningRows, err)
	}

	total, err := r.countUsers(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *userRepository) countUsers(ctx context.Context, q models.ListQuery) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUserCountQuery(q)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.countUsers").Msg("error building count query")
		return 0, errors.Join(ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*userRepository.countUsers").Msg("error executing count query")
		return 0, errors.Join(ErrExecutingQuery, err)
	}

	return total, nil
}

// scanUser scans the full users column set into user.
func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.Role,
		&user.PasswordHash,
		&user.IsStaff,
		&user.IsSuperuser,
		&user.IsActive,
		&user.DateJoined,
	)
}
