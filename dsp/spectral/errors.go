package spectral

import "errors"

// Errors returned by spectral estimation functions.
var (
	ErrEmptySignal     = errors.New("spectral: empty signal")
	ErrNaNSignal       = errors.New("spectral: signal contains NaN samples")
	ErrInvalidSegment  = errors.New("spectral: invalid segment parameters")
	ErrInvalidBins     = errors.New("spectral: invalid bin parameters")
	ErrInvalidResample = errors.New("spectral: invalid resampling parameters")
	ErrNilRand         = errors.New("spectral: bootstrap resampling requires an explicit random source")
)
