package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// SprintMetric is the financial and performance snapshot of one sprint.
//
// Cost and EstimatedBusinessValue are exact decimal currency amounts; all
// arithmetic on them stays in decimal space, and conversion to a binary
// float happens only when the computed ROI crosses the serialization
// boundary.
//
// ID is the internal row identifier used in item URLs. It is not part of
// the wire representation; the sprint reference is.
type SprintMetric struct {
	ID                     int64           `json:"-"`
	SprintID               int64           `json:"sprint"`
	Cost                   decimal.Decimal `json:"cost"`
	EstimatedBusinessValue decimal.Decimal `json:"estimated_business_value"`
	Velocity               int             `json:"velocity"`
}

// TableName returns the name of the database table
// associated with the SprintMetric model.
func (m SprintMetric) TableName() string {
	return "sprint_metrics"
}

// ROI returns (estimated_business_value − cost) / cost as an exact decimal.
// The second return value is false when cost is zero: ROI is undefined in
// that case, which is a designed edge, not an error, and must stay
// distinguishable from a break-even ROI of exactly zero.
func (m SprintMetric) ROI() (decimal.Decimal, bool) {
	if m.Cost.IsZero() {
		return decimal.Decimal{}, false
	}
	return m.EstimatedBusinessValue.Sub(m.Cost).Div(m.Cost), true
}

// ROIRounded returns the ROI as a float rounded to four decimal places for
// transport, or nil when the ROI is undefined (zero cost).
func (m SprintMetric) ROIRounded() *float64 {
	roi, ok := m.ROI()
	if !ok {
		return nil
	}
	f := roi.Round(4).InexactFloat64()
	return &f
}

// HighROI reports whether the metric's ROI is defined and strictly greater
// than the given threshold.
func (m SprintMetric) HighROI(threshold decimal.Decimal) bool {
	roi, ok := m.ROI()
	return ok && roi.GreaterThan(threshold)
}

// MarshalJSON serializes the metric together with its computed roi field.
// The roi is recomputed on every marshal so it can never drift from its
// inputs; it is omitted from storage entirely.
func (m SprintMetric) MarshalJSON() ([]byte, error) {
	type alias SprintMetric
	return json.Marshal(struct {
		alias
		ROI *float64 `json:"roi"`
	}{
		alias: alias(m),
		ROI:   m.ROIRounded(),
	})
}

// SprintMetricUpdate describes a partial update of a sprint metric.
// Nil fields are left untouched.
type SprintMetricUpdate struct {
	SprintID               *int64           `json:"sprint"`
	Cost                   *decimal.Decimal `json:"cost"`
	EstimatedBusinessValue *decimal.Decimal `json:"estimated_business_value"`
	Velocity               *int             `json:"velocity"`
}

// Empty reports whether the update carries no changes at all.
func (u SprintMetricUpdate) Empty() bool {
	return u.SprintID == nil && u.Cost == nil && u.EstimatedBusinessValue == nil && u.Velocity == nil
}
