package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/agiletrack/sprint-roi/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) models.FieldErrors {
	t.Helper()
	var fe models.FieldErrors
	require.ErrorAs(t, err, &fe)
	return fe
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewResourceValidator()
	err := v.Validate(context.Background(), 42)
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidateProject(t *testing.T) {
	v := NewResourceValidator()
	ctx := context.Background()
	name := "Apollo"
	blank := ""

	tests := []struct {
		name    string
		upd     models.ProjectUpdate
		fields  []string
		wantErr map[string][]string
	}{
		{
			name:   "valid full payload",
			upd:    models.ProjectUpdate{Name: &name},
			fields: ProjectFields,
		},
		{
			name:    "missing name on full payload",
			upd:     models.ProjectUpdate{},
			fields:  ProjectFields,
			wantErr: map[string][]string{"name": {MsgRequired}},
		},
		{
			name:    "blank name",
			upd:     models.ProjectUpdate{Name: &blank},
			fields:  ProjectFields,
			wantErr: map[string][]string{"name": {MsgBlank}},
		},
		{
			name: "partial payload omits name",
			upd:  models.ProjectUpdate{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.upd, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, models.FieldErrors(tt.wantErr), fieldErrors(t, err))
		})
	}
}

func TestValidateSprint_DateRule(t *testing.T) {
	v := NewResourceValidator()
	ctx := context.Background()
	projectID := int64(1)
	start := models.NewDate(2026, 1, 19)
	end := models.NewDate(2026, 1, 5)

	err := v.Validate(ctx, models.SprintUpdate{
		ProjectID: &projectID,
		StartDate: &start,
		EndDate:   &end,
	}, SprintFields...)

	fe := fieldErrors(t, err)
	assert.Equal(t, []string{MsgEndBeforeStart}, fe["end_date"])
}

func TestValidateSprint_EqualDatesAllowed(t *testing.T) {
	v := NewResourceValidator()
	projectID := int64(1)
	day := models.NewDate(2026, 1, 5)

	err := v.Validate(context.Background(), models.SprintUpdate{
		ProjectID: &projectID,
		StartDate: &day,
		EndDate:   &day,
	}, SprintFields...)
	assert.NoError(t, err)
}

func TestValidateSprint_PartialSingleDateSkipsRule(t *testing.T) {
	v := NewResourceValidator()
	end := models.NewDate(2020, 1, 1)

	// only one date in the payload: the cross-field rule cannot fire
	err := v.Validate(context.Background(), models.SprintUpdate{EndDate: &end})
	assert.NoError(t, err)
}

func TestValidateSprint_MissingFieldsOnFullPayload(t *testing.T) {
	v := NewResourceValidator()

	err := v.Validate(context.Background(), models.SprintUpdate{}, SprintFields...)
	fe := fieldErrors(t, err)
	assert.Equal(t, []string{MsgRequired}, fe["project"])
	assert.Equal(t, []string{MsgRequired}, fe["start_date"])
	assert.Equal(t, []string{MsgRequired}, fe["end_date"])
}

func TestValidateMetric(t *testing.T) {
	v := NewResourceValidator()
	ctx := context.Background()
	sprintID := int64(3)
	cost := decimal.RequireFromString("1000.00")
	negative := decimal.RequireFromString("-1")
	zero := decimal.Zero
	value := decimal.RequireFromString("1500.00")
	velocity := 21
	negativeVelocity := -1

	tests := []struct {
		name    string
		upd     models.SprintMetricUpdate
		fields  []string
		wantErr map[string][]string
	}{
		{
			name: "valid full payload",
			upd: models.SprintMetricUpdate{
				SprintID: &sprintID, Cost: &cost,
				EstimatedBusinessValue: &value, Velocity: &velocity,
			},
			fields: MetricFields,
		},
		{
			name: "zero cost is a valid stored value",
			upd: models.SprintMetricUpdate{
				SprintID: &sprintID, Cost: &zero,
				EstimatedBusinessValue: &value, Velocity: &velocity,
			},
			fields: MetricFields,
		},
		{
			name:   "all fields missing on full payload",
			upd:    models.SprintMetricUpdate{},
			fields: MetricFields,
			wantErr: map[string][]string{
				"sprint":                   {MsgRequired},
				"cost":                     {MsgRequired},
				"estimated_business_value": {MsgRequired},
				"velocity":                 {MsgRequired},
			},
		},
		{
			name:    "negative cost on partial payload",
			upd:     models.SprintMetricUpdate{Cost: &negative},
			wantErr: map[string][]string{"cost": {MsgNonNegative}},
		},
		{
			name:    "negative velocity",
			upd:     models.SprintMetricUpdate{Velocity: &negativeVelocity},
			wantErr: map[string][]string{"velocity": {MsgNonNegative}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.upd, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, models.FieldErrors(tt.wantErr), fieldErrors(t, err))
		})
	}
}

func TestValidateCredentials(t *testing.T) {
	v := NewResourceValidator()
	ctx := context.Background()

	err := v.Validate(ctx, models.Credentials{Username: "jsmith", Password: "s3cret-pass"})
	assert.NoError(t, err)

	err = v.Validate(ctx, models.Credentials{})
	fe := fieldErrors(t, err)
	assert.Equal(t, []string{MsgRequired}, fe["username"])
	assert.Equal(t, []string{MsgRequired}, fe["password"])

	err = v.Validate(ctx, models.Credentials{Username: "jsmith", Password: "short"})
	fe = fieldErrors(t, err)
	require.Len(t, fe["password"], 1)

	err = v.Validate(ctx, models.Credentials{Username: "jsmith", Password: "s3cret-pass", Role: "boss"})
	fe = fieldErrors(t, err)
	require.Len(t, fe["role"], 1)
}

func TestValidate_PointerPayloads(t *testing.T) {
	v := NewResourceValidator()
	name := "Apollo"

	err := v.Validate(context.Background(), &models.ProjectUpdate{Name: &name}, ProjectFields...)
	assert.NoError(t, err)

	var fe models.FieldErrors
	err = v.Validate(context.Background(), &models.SprintMetricUpdate{}, MetricFields...)
	require.True(t, errors.As(err, &fe))
}
