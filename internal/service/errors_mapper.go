package service

import (
	"errors"
	"fmt"

	"github.com/agiletrack/sprint-roi/internal/store"
	"github.com/agiletrack/sprint-roi/internal/validators"
	"github.com/agiletrack/sprint-roi/models"
)

// Messages for constraint violations surfaced as field errors, so a broken
// reference or a duplicate answers like any other validation failure.
const (
	msgInvalidReference = `Invalid pk "%d" - object does not exist.`
	msgDuplicateMetric  = "sprint metric with this sprint already exists."
	msgDuplicateUser    = "A user with that username already exists."
)

// mapSprintWriteError converts constraint violations raised by sprint writes
// into field errors. Other errors pass through unchanged.
func mapSprintWriteError(err error, projectID int64) error {
	if errors.Is(err, store.ErrProjectReferenceMissing) {
		return models.NewFieldError(validators.FieldProject, fmt.Sprintf(msgInvalidReference, projectID))
	}
	return err
}

// mapMetricWriteError converts constraint violations raised by metric writes
// into field errors. Other errors pass through unchanged.
func mapMetricWriteError(err error, sprintID int64) error {
	switch {
	case errors.Is(err, store.ErrSprintReferenceMissing):
		return models.NewFieldError(validators.FieldSprint, fmt.Sprintf(msgInvalidReference, sprintID))
	case errors.Is(err, store.ErrMetricAlreadyExists):
		return models.NewFieldError(validators.FieldSprint, msgDuplicateMetric)
	}
	return err
}

// mapUserWriteError converts the username uniqueness violation into a field
// error. Other errors pass through unchanged.
func mapUserWriteError(err error) error {
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		return models.NewFieldError(validators.FieldUsername, msgDuplicateUser)
	}
	return err
}
