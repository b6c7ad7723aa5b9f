package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestSprintMetric_ROI(t *testing.T) {
	tests := []struct {
		name    string
		cost    string
		value   string
		wantROI float64
		defined bool
	}{
		{
			name:    "positive return",
			cost:    "1000.00",
			value:   "1500.00",
			wantROI: 0.5,
			defined: true,
		},
		{
			name:    "negative return",
			cost:    "1000.00",
			value:   "500.00",
			wantROI: -0.5,
			defined: true,
		},
		{
			name:    "zero cost means undefined, not zero",
			cost:    "0.00",
			value:   "1000.00",
			defined: false,
		},
		{
			name:    "break even is exactly zero",
			cost:    "1000.00",
			value:   "1000.00",
			wantROI: 0.0,
			defined: true,
		},
		{
			name:    "high return",
			cost:    "1000.00",
			value:   "5000.00",
			wantROI: 4.0,
			defined: true,
		},
		{
			name:    "decimal inputs rounded to 4 places",
			cost:    "987.65",
			value:   "1234.56",
			wantROI: 0.25, // (1234.56-987.65)/987.65 = 0.249998..., rounds to 0.2500
			defined: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := SprintMetric{
				Cost:                   dec(t, tt.cost),
				EstimatedBusinessValue: dec(t, tt.value),
			}

			roi, ok := m.ROI()
			rounded := m.ROIRounded()

			if !tt.defined {
				assert.False(t, ok)
				assert.Nil(t, rounded)
				return
			}

			require.True(t, ok)
			require.NotNil(t, rounded)
			assert.InDelta(t, tt.wantROI, *rounded, 1e-9)

			// Exact decimal check: rounding happens only at the boundary.
			assert.True(t, roi.Round(4).Equal(decimal.NewFromFloat(tt.wantROI).Round(4)),
				"exact roi %s should round to %v", roi, tt.wantROI)
		})
	}
}

func TestSprintMetric_ROI_Idempotent(t *testing.T) {
	m := SprintMetric{
		Cost:                   dec(t, "987.65"),
		EstimatedBusinessValue: dec(t, "1234.56"),
	}

	first := m.ROIRounded()
	second := m.ROIRounded()

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
}

func TestSprintMetric_HighROI(t *testing.T) {
	threshold := decimal.NewFromFloat(0.5)

	above := SprintMetric{Cost: dec(t, "1000.00"), EstimatedBusinessValue: dec(t, "1501.00")}
	exactly := SprintMetric{Cost: dec(t, "1000.00"), EstimatedBusinessValue: dec(t, "1500.00")}
	undefined := SprintMetric{Cost: dec(t, "0.00"), EstimatedBusinessValue: dec(t, "9999.00")}

	assert.True(t, above.HighROI(threshold))
	assert.False(t, exactly.HighROI(threshold), "roi == threshold is not strictly greater")
	assert.False(t, undefined.HighROI(threshold), "undefined roi never qualifies")
}

func TestSprintMetric_MarshalJSON(t *testing.T) {
	m := SprintMetric{
		ID:                     7,
		SprintID:               3,
		Cost:                   dec(t, "1000.00"),
		EstimatedBusinessValue: dec(t, "1500.00"),
		Velocity:               20,
	}

	raw, err := json.Marshal(m)
	require.NoError(t, err)

	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.NotContains(t, got, "id", "internal row id must not be serialized")
	assert.JSONEq(t, `3`, string(got["sprint"]))
	assert.JSONEq(t, `0.5`, string(got["roi"]))
	assert.JSONEq(t, `20`, string(got["velocity"]))
}

func TestSprintMetric_MarshalJSON_NullROI(t *testing.T) {
	m := SprintMetric{
		SprintID:               3,
		Cost:                   dec(t, "0.00"),
		EstimatedBusinessValue: dec(t, "1000.00"),
		Velocity:               10,
	}

	raw, err := json.Marshal(m)
	require.NoError(t, err)

	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &got))

	require.Contains(t, got, "roi")
	assert.Equal(t, "null", string(got["roi"]), "zero cost serializes roi as null, not 0")
}
