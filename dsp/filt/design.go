package filt

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/spectralab/ephys-dsp/dsp/core"
	"github.com/spectralab/ephys-dsp/dsp/window"
)

// Kernel is a designed filter as a rational transfer function B(z)/A(z).
// FIR kernels have A = [1].
type Kernel struct {
	B []float64
	A []float64
}

// IsFIR reports whether the kernel is a finite impulse response.
func (k Kernel) IsFIR() bool {
	return len(k.A) == 1
}

// DesignFIR derives a windowed-sinc FIR kernel for the given pass type and
// cutoff.
//
// The kernel length is ceil(fs*seconds) when [WithDuration] is set, and
// otherwise ceil(fs*cycles/ref) where ref is the lower cutoff for bandpass,
// bandstop and highpass filters and the cutoff itself for lowpass filters.
// The length is forced odd so the kernel has a center sample.
//
// sigLen is the length of the signal the kernel will be applied to; a kernel
// at least that long fails with [ErrFilterTooLong]. Pass sigLen <= 0 to skip
// the check when designing a kernel in isolation.
func DesignFIR(pass PassType, fc Cutoff, fs float64, sigLen int, opts ...Option) ([]float64, error) {
	cfg := applyOptions(opts)
	return designFIR(pass, fc, fs, sigLen, cfg)
}

func designFIR(pass PassType, fc Cutoff, fs float64, sigLen int, cfg config) ([]float64, error) {
	fLo, fHi, err := fc.edges(pass, fs)
	if err != nil {
		return nil, err
	}

	length, err := firLength(pass, fLo, fHi, fs, sigLen, cfg)
	if err != nil {
		return nil, err
	}

	switch pass {
	case Lowpass:
		return sincLowpass(fHi/fs, length), nil
	case Highpass:
		return spectralInvert(sincLowpass(fLo/fs, length)), nil
	case Bandpass:
		hi := sincLowpass(fHi/fs, length)
		floats.Sub(hi, sincLowpass(fLo/fs, length))
		return hi, nil
	default: // Bandstop
		hi := sincLowpass(fHi/fs, length)
		floats.Sub(hi, sincLowpass(fLo/fs, length))
		return spectralInvert(hi), nil
	}
}

// firLength derives the odd kernel length from the cycle count or duration.
func firLength(pass PassType, fLo, fHi, fs float64, sigLen int, cfg config) (int, error) {
	var length int
	if cfg.seconds > 0 {
		length = int(math.Ceil(fs * cfg.seconds))
	} else {
		ref := referenceFrequency(pass, fLo, fHi)
		length = int(math.Ceil(fs * cfg.cycles / ref))
	}

	length = core.NextOdd(length)

	if sigLen > 0 && length >= sigLen {
		return 0, fmt.Errorf("%w: kernel length %d >= signal length %d; "+
			"shorten the filter with fewer cycles or an explicit duration "+
			"(at the cost of frequency resolution)", ErrFilterTooLong, length, sigLen)
	}

	return length, nil
}

// sincLowpass builds a Hamming-windowed sinc lowpass kernel with unity DC
// gain. fcNorm is the cutoff as a fraction of the sampling rate.
func sincLowpass(fcNorm float64, length int) []float64 {
	out := window.Generate(window.TypeHamming, length)
	center := float64(length-1) / 2

	sum := 0.0
	for n := range out {
		out[n] *= sinc(2 * fcNorm * (float64(n) - center))
		sum += out[n]
	}

	floats.Scale(1/sum, out)

	return out
}

// spectralInvert flips the passband and stopband of a unity-DC-gain kernel,
// producing a kernel with zero DC gain. The input is modified in place.
func spectralInvert(kernel []float64) []float64 {
	floats.Scale(-1, kernel)
	kernel[(len(kernel)-1)/2]++

	return kernel
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}
