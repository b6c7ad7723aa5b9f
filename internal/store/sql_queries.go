package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/agiletrack/sprint-roi/models"
)

// psql is the shared statement builder producing $1-style placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Raw queries for single-row operations. Dynamic list and update queries are
// built with squirrel below.
const (
	createUser = `INSERT INTO users (username, email, first_name, last_name, role, password_hash)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, username, email, first_name, last_name, role, password_hash, is_staff, is_superuser, is_active, date_joined;`

	findUserByUsername = `SELECT id, username, email, first_name, last_name, role, password_hash, is_staff, is_superuser, is_active, date_joined
    FROM users
    WHERE username = $1;`

	getUser = `SELECT id, username, email, first_name, last_name, role, password_hash, is_staff, is_superuser, is_active, date_joined
    FROM users
    WHERE id = $1;`

	createProject = `INSERT INTO projects (name, description)
    VALUES ($1, $2)
    RETURNING id, name, description, created_at;`

	// sprint_count is derived on every read; it has no backing column.
	getProject = `SELECT id, name, description, created_at,
        (SELECT COUNT(*) FROM sprints WHERE sprints.project_id = projects.id) AS sprint_count
    FROM projects
    WHERE id = $1;`

	deleteProject = `DELETE FROM projects WHERE id = $1;`

	createSprint = `INSERT INTO sprints (project_id, start_date, end_date)
    VALUES ($1, $2, $3)
    RETURNING id, project_id, start_date, end_date, created_at;`

	getSprint = `SELECT sprints.id, sprints.project_id, projects.name AS project_name,
        sprints.start_date, sprints.end_date, sprints.created_at,
        sprint_metrics.id, sprint_metrics.cost, sprint_metrics.estimated_business_value, sprint_metrics.velocity
    FROM sprints
    JOIN projects ON projects.id = sprints.project_id
    LEFT JOIN sprint_metrics ON sprint_metrics.sprint_id = sprints.id
    WHERE sprints.id = $1;`

	listSprintsByProject = `SELECT sprints.id, sprints.project_id, projects.name AS project_name,
        sprints.start_date, sprints.end_date, sprints.created_at,
        sprint_metrics.id, sprint_metrics.cost, sprint_metrics.estimated_business_value, sprint_metrics.velocity
    FROM sprints
    JOIN projects ON projects.id = sprints.project_id
    LEFT JOIN sprint_metrics ON sprint_metrics.sprint_id = sprints.id
    WHERE sprints.project_id = $1
    ORDER BY sprints.start_date DESC;`

	deleteSprint = `DELETE FROM sprints WHERE id = $1;`

	createMetric = `INSERT INTO sprint_metrics (sprint_id, cost, estimated_business_value, velocity)
    VALUES ($1, $2, $3, $4)
    RETURNING id, sprint_id, cost, estimated_business_value, velocity;`

	getMetric = `SELECT id, sprint_id, cost, estimated_business_value, velocity
    FROM sprint_metrics
    WHERE id = $1;`

	listAllMetrics = `SELECT id, sprint_id, cost, estimated_business_value, velocity
    FROM sprint_metrics
    ORDER BY id;`

	deleteMetric = `DELETE FROM sprint_metrics WHERE id = $1;`
)

// listSpec is the declarative list behavior of one resource: which columns
// free-text search scans, which query parameters filter exactly, which
// ordering fields are accepted, and the order applied when none (or an
// unknown one) is requested.
type listSpec struct {
	searchColumns []string
	filterColumns map[string]string // query parameter -> column
	orderColumns  map[string]string // ordering field -> column
	defaultOrder  string
}

var projectListSpec = listSpec{
	searchColumns: []string{"name", "description"},
	orderColumns: map[string]string{
		"name":       "name",
		"created_at": "created_at",
	},
	defaultOrder: "created_at DESC",
}

var sprintListSpec = listSpec{
	filterColumns: map[string]string{
		"project": "sprints.project_id",
	},
	orderColumns: map[string]string{
		"start_date": "sprints.start_date",
		"end_date":   "sprints.end_date",
		"created_at": "sprints.created_at",
	},
	defaultOrder: "sprints.start_date DESC",
}

var metricListSpec = listSpec{
	orderColumns: map[string]string{
		"cost":                     "cost",
		"estimated_business_value": "estimated_business_value",
		"velocity":                 "velocity",
	},
	defaultOrder: "id ASC",
}

var userListSpec = listSpec{
	searchColumns: []string{"username", "email", "first_name", "last_name"},
	filterColumns: map[string]string{
		"role": "role",
	},
	orderColumns: map[string]string{
		"username":    "username",
		"date_joined": "date_joined",
	},
	defaultOrder: "username ASC",
}

// where applies the spec's search and exact-match filters to b.
func (s listSpec) where(b sq.SelectBuilder, q models.ListQuery) sq.SelectBuilder {
	if q.Search != "" && len(s.searchColumns) > 0 {
		pattern := "%" + q.Search + "%"
		or := make(sq.Or, 0, len(s.searchColumns))
		for _, col := range s.searchColumns {
			or = append(or, sq.ILike{col: pattern})
		}
		b = b.Where(or)
	}

	for param, col := range s.filterColumns {
		if value := q.Filter(param); value != "" {
			b = b.Where(sq.Eq{col: value})
		}
	}

	return b
}

// orderBy resolves the requested ordering field against the spec's
// whitelist. Unknown or empty fields fall back to the default order, the
// same way the generic ordering backend ignores unrecognized fields.
func (s listSpec) orderBy(requested string) string {
	field := strings.TrimPrefix(requested, "-")
	col, ok := s.orderColumns[field]
	if !ok {
		return s.defaultOrder
	}

	if strings.HasPrefix(requested, "-") {
		return col + " DESC"
	}
	return col + " ASC"
}

// paginate applies ordering and the fixed page window to b.
func (s listSpec) paginate(b sq.SelectBuilder, q models.ListQuery) sq.SelectBuilder {
	return b.OrderBy(s.orderBy(q.Ordering)).
		Limit(uint64(models.PageSize)).
		Offset(uint64(q.Offset()))
}

func buildProjectListQuery(q models.ListQuery) (string, []any, error) {
	b := psql.Select(
		"id", "name", "description", "created_at",
		"(SELECT COUNT(*) FROM sprints WHERE sprints.project_id = projects.id) AS sprint_count",
	).From("projects")

	b = projectListSpec.where(b, q)
	b = projectListSpec.paginate(b, q)
	return b.ToSql()
}

func buildProjectCountQuery(q models.ListQuery) (string, []any, error) {
	b := psql.Select("COUNT(*)").From("projects")
	b = projectListSpec.where(b, q)
	return b.ToSql()
}

func buildSprintListQuery(q models.ListQuery) (string, []any, error) {
	b := psql.Select(
		"sprints.id", "sprints.project_id", "projects.name AS project_name",
		"sprints.start_date", "sprints.end_date", "sprints.created_at",
		"sprint_metrics.id", "sprint_metrics.cost", "sprint_metrics.estimated_business_value", "sprint_metrics.velocity",
	).From("sprints").
		Join("projects ON projects.id = sprints.project_id").
		LeftJoin("sprint_metrics ON sprint_metrics.sprint_id = sprints.id")

	b = sprintListSpec.where(b, q)
	b = sprintListSpec.paginate(b, q)
	return b.ToSql()
}

func buildSprintCountQuery(q models.ListQuery) (string, []any, error) {
	b := psql.Select("COUNT(*)").From("sprints")
	b = sprintListSpec.where(b, q)
	return b.ToSql()
}

func buildMetricListQuery(q models.ListQuery) (string, []any, error) {
	b := psql.Select("id", "sprint_id", "cost", "estimated_business_value", "velocity").
		From("sprint_metrics")

	b = metricListSpec.where(b, q)
	b = metricListSpec.paginate(b, q)
	return b.ToSql()
}

func buildMetricCountQuery(q models.ListQuery) (string, []any, error) {
	b := psql.Select("COUNT(*)").From("sprint_metrics")
	b = metricListSpec.where(b, q)
	return b.ToSql()
}

func buildUserListQuery(q models.ListQuery) (string, []any, error) {
	b := psql.Select(
		"id", "username", "email", "first_name", "last_name", "role",
		"password_hash", "is_staff", "is_superuser", "is_active", "date_joined",
	).From("users")

	b = userListSpec.where(b, q)
	b = userListSpec.paginate(b, q)
	return b.ToSql()
}

func buildUserCountQuery(q models.ListQuery) (string, []any, error) {
	b := psql.Select("COUNT(*)").From("users")
	b = userListSpec.where(b, q)
	return b.ToSql()
}

// buildProjectUpdateQuery builds a dynamic UPDATE touching only the fields
// present in upd. Callers must not pass an empty update.
func buildProjectUpdateQuery(id int64, upd models.ProjectUpdate) (string, []any, error) {
	b := psql.Update("projects")
	if upd.Name != nil {
		b = b.Set("name", *upd.Name)
	}
	if upd.Description != nil {
		b = b.Set("description", *upd.Description)
	}

	return b.Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, description, created_at").
		ToSql()
}

// buildSprintUpdateQuery builds a dynamic UPDATE touching only the fields
// present in upd. Callers must not pass an empty update.
func buildSprintUpdateQuery(id int64, upd models.SprintUpdate) (string, []any, error) {
	b := psql.Update("sprints")
	if upd.ProjectID != nil {
		b = b.Set("project_id", *upd.ProjectID)
	}
	if upd.StartDate != nil {
		b = b.Set("start_date", *upd.StartDate)
	}
	if upd.EndDate != nil {
		b = b.Set("end_date", *upd.EndDate)
	}

	return b.Where(sq.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()
}

// buildMetricUpdateQuery builds a dynamic UPDATE touching only the fields
// present in upd. Callers must not pass an empty update.
func buildMetricUpdateQuery(id int64, upd models.SprintMetricUpdate) (string, []any, error) {
	b := psql.Update("sprint_metrics")
	if upd.SprintID != nil {
		b = b.Set("sprint_id", *upd.SprintID)
	}
	if upd.Cost != nil {
		b = b.Set("cost", *upd.Cost)
	}
	if upd.EstimatedBusinessValue != nil {
		b = b.Set("estimated_business_value", *upd.EstimatedBusinessValue)
	}
	if upd.Velocity != nil {
		b = b.Set("velocity", *upd.Velocity)
	}

	return b.Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, sprint_id, cost, estimated_business_value, velocity").
		ToSql()
}
