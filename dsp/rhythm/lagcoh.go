// Package rhythm quantifies the rhythmicity of neural signals.
//
// Lagged coherence measures how consistently the phase of an oscillation
// advances between adjacent time segments. A sustained oscillation keeps a
// stable phase relationship from one segment to the next and scores near 1;
// broadband noise scores near 0.
package rhythm

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/stat"

	"github.com/spectralab/ephys-dsp/dsp/core"
	"github.com/spectralab/ephys-dsp/dsp/window"
)

// Errors returned by lagged-coherence estimation.
var (
	ErrInvalidRange = errors.New("rhythm: invalid frequency range")
	ErrShortSignal  = errors.New("rhythm: signal too short")
)

// Option configures lagged-coherence estimation.
type Option func(*config)

type config struct {
	cycles float64
	stepHz float64
}

func defaultConfig() config {
	return config{cycles: 3, stepHz: 1}
}

// WithCycles sets the segment length in cycles of the probed frequency.
// The default is 3.
func WithCycles(n float64) Option {
	return func(c *config) {
		if n > 0 {
			c.cycles = n
		}
	}
}

// WithFrequencyStep sets the spacing in Hz of the probed frequencies.
// The default is 1 Hz.
func WithFrequencyStep(hz float64) Option {
	return func(c *config) {
		if hz > 0 {
			c.stepHz = hz
		}
	}
}

// LaggedCoherence estimates the rhythmicity of sig in the frequency range
// [fLo, fHi] as the mean lagged coherence over the probed frequencies.
func LaggedCoherence(sig []float64, fs float64, fLo, fHi float64, opts ...Option) (float64, error) {
	_, lcs, err := LaggedCoherenceSpectrum(sig, fs, fLo, fHi, opts...)
	if err != nil {
		return 0, err
	}

	return stat.Mean(lcs, nil), nil
}

// LaggedCoherenceSpectrum estimates lagged coherence at each probed
// frequency in [fLo, fHi], returning the frequency axis and the
// per-frequency coherence values.
func LaggedCoherenceSpectrum(sig []float64, fs float64, fLo, fHi float64, opts ...Option) ([]float64, []float64, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if fLo <= 0 || fHi < fLo || fHi >= core.Nyquist(fs) {
		return nil, nil, fmt.Errorf("%w: [%g, %g] Hz at fs %g", ErrInvalidRange, fLo, fHi, fs)
	}

	var freqs []float64
	for f := fLo; f <= fHi+1e-9; f += cfg.stepHz {
		freqs = append(freqs, f)
	}

	lcs := make([]float64, len(freqs))
	for i, f := range freqs {
		lc, err := laggedCoherenceAt(sig, fs, f, cfg.cycles)
		if err != nil {
			return nil, nil, err
		}
		lcs[i] = lc
	}

	return freqs, lcs, nil
}

// laggedCoherenceAt splits sig into adjacent segments of cycles periods of
// f, extracts the Fourier coefficient at f from each Hann-windowed segment,
// and measures the phase consistency between neighboring segments.
func laggedCoherenceAt(sig []float64, fs, f, cycles float64) (float64, error) {
	segLen := int(cycles * fs / f)
	nSegs := len(sig) / segLen
	if nSegs < 2 {
		return 0, fmt.Errorf("%w: need at least 2 segments of %d samples at %g Hz, have %d samples",
			ErrShortSignal, segLen, f, len(sig))
	}

	taper := window.Generate(window.TypeHann, segLen)

	coefs := make([]complex128, nSegs)
	for s := range coefs {
		coefs[s] = fourierCoefficient(sig[s*segLen:(s+1)*segLen], taper, f, fs)
	}

	var num complex128
	var powA, powB float64
	for s := 0; s+1 < nSegs; s++ {
		num += coefs[s] * cmplx.Conj(coefs[s+1])
		powA += absSquared(coefs[s])
		powB += absSquared(coefs[s+1])
	}

	den := math.Sqrt(powA * powB)
	if den == 0 {
		return 0, nil
	}

	return cmplx.Abs(num) / den, nil
}

// fourierCoefficient computes the single-bin coefficient
// sum_n w[n]*x[n]*e^{-i 2 pi f n / fs} with an incrementally rotated
// phasor, avoiding a full FFT for one frequency of interest.
func fourierCoefficient(seg, taper []float64, f, fs float64) complex128 {
	w := 2 * math.Pi * f / fs
	rot := complex(math.Cos(w), -math.Sin(w))

	phasor := complex(1, 0)
	var sum complex128
	for n, x := range seg {
		sum += complex(x*taper[n], 0) * phasor
		phasor *= rot
	}

	return sum
}

func absSquared(c complex128) float64 {
	return real(c)*real(c) + imag(c)*imag(c)
}
