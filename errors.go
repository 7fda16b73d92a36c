package shortguid

import "errors"

// Validation errors returned by the strict conversion family. Sentinel
// variables let callers classify failures with errors.Is instead of string
// comparisons; the concrete errors returned wrap these with detail.

var (
	// ErrInvalidLength is returned when the input does not have the exact
	// length of an encoded value (or, for lenient parsing, of either
	// accepted text form).
	ErrInvalidLength = errors.New("shortguid: invalid length")

	// ErrInvalidFormat is returned when the input has an accepted length but
	// contains characters outside the expected alphabet or is not the
	// canonical encoding of any identifier.
	ErrInvalidFormat = errors.New("shortguid: invalid format")
)
