package filt

import (
	"fmt"

	"github.com/spectralab/ephys-dsp/dsp/core"
)

// PassType identifies the filter class.
type PassType int

const (
	Bandpass PassType = iota
	Bandstop
	Lowpass
	Highpass
)

// String returns the conventional lowercase name of the pass type.
func (p PassType) String() string {
	switch p {
	case Bandpass:
		return "bandpass"
	case Bandstop:
		return "bandstop"
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	default:
		return "unknown"
	}
}

func (p PassType) valid() bool {
	return p >= Bandpass && p <= Highpass
}

// Cutoff is a tagged cutoff-frequency specification. Band filters need both
// edges; lowpass and highpass accept either a single frequency or a band
// from which the relevant edge is taken.
type Cutoff struct {
	lo, hi float64
	isBand bool
}

// Single specifies a one-sided cutoff for lowpass or highpass filters.
func Single(f float64) Cutoff {
	return Cutoff{lo: f, hi: f}
}

// Band specifies a (lo, hi) cutoff pair.
func Band(lo, hi float64) Cutoff {
	return Cutoff{lo: lo, hi: hi, isBand: true}
}

// edges resolves the cutoff against a pass type and sampling rate.
//
// The returned pair is (fLo, fHi); for lowpass fLo is 0 and for highpass
// fHi is the Nyquist frequency, so the pair always brackets the pass band.
func (c Cutoff) edges(pass PassType, fs float64) (float64, float64, error) {
	if !pass.valid() {
		return 0, 0, fmt.Errorf("%w: pass type %d not understood", ErrInvalidDefinition, int(pass))
	}

	if fs <= 0 {
		return 0, 0, fmt.Errorf("%w: sampling rate must be > 0: %g", ErrInvalidDefinition, fs)
	}

	nyq := core.Nyquist(fs)

	switch pass {
	case Bandpass, Bandstop:
		if !c.isBand {
			return 0, 0, fmt.Errorf("%w: %s requires two cutoff frequencies", ErrInvalidDefinition, pass)
		}
		if c.lo <= 0 || c.hi <= c.lo {
			return 0, 0, fmt.Errorf("%w: cutoffs must satisfy 0 < lo < hi, got (%g, %g)",
				ErrInvalidDefinition, c.lo, c.hi)
		}
		if c.hi >= nyq {
			return 0, 0, fmt.Errorf("%w: upper cutoff %g Hz at or above Nyquist %g Hz",
				ErrInvalidDefinition, c.hi, nyq)
		}
		return c.lo, c.hi, nil

	case Lowpass:
		f := c.hi // Single stores the value in both edges; Band contributes its upper edge
		if f <= 0 {
			return 0, 0, fmt.Errorf("%w: lowpass cutoff must be > 0: %g", ErrInvalidDefinition, f)
		}
		if f >= nyq {
			return 0, 0, fmt.Errorf("%w: lowpass cutoff %g Hz at or above Nyquist %g Hz",
				ErrInvalidDefinition, f, nyq)
		}
		return 0, f, nil

	default: // Highpass
		f := c.lo
		if f <= 0 {
			return 0, 0, fmt.Errorf("%w: highpass cutoff must be > 0: %g", ErrInvalidDefinition, f)
		}
		if f >= nyq {
			return 0, 0, fmt.Errorf("%w: highpass cutoff %g Hz at or above Nyquist %g Hz",
				ErrInvalidDefinition, f, nyq)
		}
		return f, nyq, nil
	}
}

// passBandwidth returns the width of the pass (or stop) band in Hz.
func passBandwidth(pass PassType, fLo, fHi float64) float64 {
	switch pass {
	case Bandpass, Bandstop:
		return fHi - fLo
	case Highpass:
		return fHi - fLo // fHi is Nyquist after resolution
	default: // Lowpass
		return fHi
	}
}

// referenceFrequency returns the cutoff that governs cycle-based FIR length.
// The lower edge sets the longest period except for lowpass filters, which
// only have an upper edge.
func referenceFrequency(pass PassType, fLo, fHi float64) float64 {
	if pass == Lowpass {
		return fHi
	}
	return fLo
}
