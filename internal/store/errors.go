package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrProjectNotFound is returned when the targeted project row does not
	// exist.
	ErrProjectNotFound = errors.New("project was not found")

	// ErrSprintNotFound is returned when the targeted sprint row does not
	// exist.
	ErrSprintNotFound = errors.New("sprint was not found")

	// ErrMetricNotFound is returned when the targeted sprint metric row does
	// not exist.
	ErrMetricNotFound = errors.New("sprint metric was not found")

	// ErrMetricAlreadyExists is returned when inserting or moving a sprint
	// metric violates the one-metric-per-sprint uniqueness constraint.
	ErrMetricAlreadyExists = errors.New("sprint metric already exists for this sprint")

	// ErrProjectReferenceMissing is returned when a sprint write references a
	// project id that does not exist (foreign key violation).
	ErrProjectReferenceMissing = errors.New("referenced project does not exist")

	// ErrSprintReferenceMissing is returned when a metric write references a
	// sprint id that does not exist (foreign key violation).
	ErrSprintReferenceMissing = errors.New("referenced sprint does not exist")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an empty dynamic update).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
