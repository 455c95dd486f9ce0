package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownKind is returned when a keyword does not name a catalog rule.
	ErrUnknownKind = errors.New("unknown rule kind")

	// ErrMalformedArgument marks a rule argument that cannot be interpreted
	// for its shape: an unparsable bound or a wrong separator count.
	ErrMalformedArgument = errors.New("malformed rule argument")

	// ErrInvalidPattern marks a Pattern argument that is not a valid regular expression.
	ErrInvalidPattern = errors.New("invalid rule pattern")

	// ErrMissingCompareTarget marks a Compare rule evaluated without a target value.
	ErrMissingCompareTarget = errors.New("compare rule has no target value")
)
