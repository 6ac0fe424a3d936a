package filt

import "errors"

// Errors returned by filter design and application.
var (
	// ErrInvalidDefinition reports an unrecognized pass type or malformed
	// cutoff frequencies.
	ErrInvalidDefinition = errors.New("filt: invalid filter definition")

	// ErrFilterTooLong reports a derived FIR kernel at least as long as the
	// signal it would be applied to.
	ErrFilterTooLong = errors.New("filt: filter longer than signal")

	// ErrMissingOrder reports an IIR design request without a Butterworth order.
	ErrMissingOrder = errors.New("filt: butterworth order required for IIR design")

	// ErrIncompatibleOption reports an option combination that has no meaning,
	// such as a duration-based length together with an IIR design.
	ErrIncompatibleOption = errors.New("filt: incompatible option combination")

	// ErrShortSignal reports a signal too short to filter with the requested
	// settings.
	ErrShortSignal = errors.New("filt: signal too short")
)
