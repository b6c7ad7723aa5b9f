package models

import "time"

// Project is a named unit of work owning zero or more sprints.
//
// CreatedAt is assigned by the database at insert time and never mutated.
// SprintCount is a computed column (a subquery over the sprints table); it is
// populated on every read and never written.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	// SprintCount is the number of sprints belonging to this project.
	// Derived on read; not a stored column.
	SprintCount int64 `json:"sprint_count"`
}

// TableName returns the name of the database table
// associated with the Project model.
func (p Project) TableName() string {
	return "projects"
}

// ProjectUpdate describes a partial update of a project.
// Nil fields are left untouched.
type ProjectUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Empty reports whether the update carries no changes at all.
func (u ProjectUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil
}
