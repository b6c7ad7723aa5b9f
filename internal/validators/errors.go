package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// User-facing validation messages. The exact wording is part of the API
// contract; existing clients match on these strings.
const (
	MsgRequired        = "This field is required."
	MsgBlank           = "This field may not be blank."
	MsgNonNegative     = "Ensure this value is greater than or equal to 0."
	MsgEndBeforeStart  = "End date must be after or equal to start date."
	MsgInvalidChoice   = "%q is not a valid choice."
	MsgPasswordTooWeak = "Ensure this field has at least %d characters."
)
