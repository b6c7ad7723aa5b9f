package validators

import (
	"context"
	"fmt"

	"github.com/agiletrack/sprint-roi/models"
)

// Field name constants used to specify which fields must be present.
// Handlers pass the full field set of a resource for create and full-update
// payloads; partial updates pass none and only cross-field rules apply.
const (
	FieldName        = "name"
	FieldDescription = "description"

	FieldProject   = "project"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"

	FieldSprint                 = "sprint"
	FieldCost                   = "cost"
	FieldEstimatedBusinessValue = "estimated_business_value"
	FieldVelocity               = "velocity"

	FieldUsername = "username"
	FieldPassword = "password"
	FieldRole     = "role"
)

// Full field sets per resource, for create and full-update scoping.
var (
	ProjectFields = []string{FieldName}
	SprintFields  = []string{FieldProject, FieldStartDate, FieldEndDate}
	MetricFields  = []string{FieldSprint, FieldCost, FieldEstimatedBusinessValue, FieldVelocity}
)

// minPasswordLength is the floor enforced at registration time.
const minPasswordLength = 8

// ResourceValidator implements [Validator] for every inbound write payload:
// project, sprint and sprint metric updates plus registration credentials.
//
// It supports both value and pointer receivers for every payload type.
type ResourceValidator struct {
}

// NewResourceValidator constructs a new ResourceValidator
// and returns it as the Validator interface.
func NewResourceValidator() Validator {
	return &ResourceValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
// Unknown types return [ErrUnsupportedType].
func (v *ResourceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProjectUpdate:
		return v.validateProject(ctx, value, fields...)
	case *models.ProjectUpdate:
		return v.validateProject(ctx, *value, fields...)

	case models.SprintUpdate:
		return v.validateSprint(ctx, value, fields...)
	case *models.SprintUpdate:
		return v.validateSprint(ctx, *value, fields...)

	case models.SprintMetricUpdate:
		return v.validateMetric(ctx, value, fields...)
	case *models.SprintMetricUpdate:
		return v.validateMetric(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ResourceValidator) validateProject(_ context.Context, upd models.ProjectUpdate, fields ...string) error {
	errs := models.FieldErrors{}
	required := requiredSet(fields)

	if required[FieldName] && upd.Name == nil {
		errs.Add(FieldName, MsgRequired)
	}
	if upd.Name != nil && *upd.Name == "" {
		errs.Add(FieldName, MsgBlank)
	}

	if errs.Empty() {
		return nil
	}
	return errs
}

func (v *ResourceValidator) validateSprint(_ context.Context, upd models.SprintUpdate, fields ...string) error {
	errs := models.FieldErrors{}
	required := requiredSet(fields)

	if required[FieldProject] && upd.ProjectID == nil {
		errs.Add(FieldProject, MsgRequired)
	}
	if required[FieldStartDate] && (upd.StartDate == nil || upd.StartDate.IsZero()) {
		errs.Add(FieldStartDate, MsgRequired)
	}
	if required[FieldEndDate] && (upd.EndDate == nil || upd.EndDate.IsZero()) {
		errs.Add(FieldEndDate, MsgRequired)
	}

	// The ordering rule fires only when the payload itself carries both
	// dates: a partial update touching one date alone is accepted as-is.
	if upd.StartDate != nil && upd.EndDate != nil &&
		!upd.StartDate.IsZero() && !upd.EndDate.IsZero() &&
		upd.EndDate.Before(upd.StartDate.Time) {
		errs.Add(FieldEndDate, MsgEndBeforeStart)
	}

	if errs.Empty() {
		return nil
	}
	return errs
}

func (v *ResourceValidator) validateMetric(_ context.Context, upd models.SprintMetricUpdate, fields ...string) error {
	errs := models.FieldErrors{}
	required := requiredSet(fields)

	if required[FieldSprint] && upd.SprintID == nil {
		errs.Add(FieldSprint, MsgRequired)
	}
	if required[FieldCost] && upd.Cost == nil {
		errs.Add(FieldCost, MsgRequired)
	}
	if required[FieldEstimatedBusinessValue] && upd.EstimatedBusinessValue == nil {
		errs.Add(FieldEstimatedBusinessValue, MsgRequired)
	}
	if required[FieldVelocity] && upd.Velocity == nil {
		errs.Add(FieldVelocity, MsgRequired)
	}

	if upd.Cost != nil && upd.Cost.IsNegative() {
		errs.Add(FieldCost, MsgNonNegative)
	}
	if upd.Velocity != nil && *upd.Velocity < 0 {
		errs.Add(FieldVelocity, MsgNonNegative)
	}

	if errs.Empty() {
		return nil
	}
	return errs
}

func (v *ResourceValidator) validateCredentials(_ context.Context, creds models.Credentials, _ ...string) error {
	errs := models.FieldErrors{}

	if creds.Username == "" {
		errs.Add(FieldUsername, MsgRequired)
	}
	switch {
	case creds.Password == "":
		errs.Add(FieldPassword, MsgRequired)
	case len(creds.Password) < minPasswordLength:
		errs.Add(FieldPassword, fmt.Sprintf(MsgPasswordTooWeak, minPasswordLength))
	}
	if creds.Role != "" && !creds.Role.Valid() {
		errs.Add(FieldRole, fmt.Sprintf(MsgInvalidChoice, string(creds.Role)))
	}

	if errs.Empty() {
		return nil
	}
	return errs
}

func requiredSet(fields []string) map[string]bool {
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
