package models

import "time"

// Sprint is a time-boxed iteration belonging to exactly one project.
//
// ProjectName is a denormalized, read-only lookup of the owning project's
// name resolved by a join on read. Metrics embeds the associated
// SprintMetric when one exists and serializes as null otherwise.
type Sprint struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"project"`
	ProjectName string    `json:"project_name"`
	StartDate   Date      `json:"start_date"`
	EndDate     Date      `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`

	// Metrics is the 1:1 related financial snapshot, nil when absent.
	Metrics *SprintMetric `json:"metrics"`
}

// TableName returns the name of the database table
// associated with the Sprint model.
func (s Sprint) TableName() string {
	return "sprints"
}

// SprintUpdate describes a partial update of a sprint.
// Nil fields are left untouched.
type SprintUpdate struct {
	ProjectID *int64 `json:"project"`
	StartDate *Date  `json:"start_date"`
	EndDate   *Date  `json:"end_date"`
}

// Empty reports whether the update carries no changes at all.
func (u SprintUpdate) Empty() bool {
	return u.ProjectID == nil && u.StartDate == nil && u.EndDate == nil
}
