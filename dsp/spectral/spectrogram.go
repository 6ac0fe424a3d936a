package spectral

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/spectralab/ephys-dsp/dsp/window"
)

// Spectrogram is a short-time Fourier power estimate: Power[k][t] is the
// density-scaled power at Freqs[k] in the slice centered at Times[t].
type Spectrogram struct {
	Freqs []float64
	Times []float64
	Power [][]float64
}

// Slices returns the number of time slices.
func (s Spectrogram) Slices() int {
	if len(s.Power) == 0 {
		return 0
	}
	return len(s.Power[0])
}

// ComputeSpectrogram slides a tapered window over sig and computes the
// one-sided power spectral density of each slice.
//
// The defaults are two seconds of data per segment (capped at the signal
// length), 50% overlap and a Hann window; see [WithSegment] and
// [WithWindow]. Frequencies ascend from 0 to the Nyquist frequency.
func ComputeSpectrogram(sig []float64, fs float64, opts ...Option) (Spectrogram, error) {
	cfg := applyOptions(opts)
	return computeSpectrogram(sig, fs, cfg)
}

func computeSpectrogram(sig []float64, fs float64, cfg config) (Spectrogram, error) {
	if len(sig) == 0 {
		return Spectrogram{}, ErrEmptySignal
	}
	if fs <= 0 {
		return Spectrogram{}, fmt.Errorf("%w: sampling rate must be > 0: %g", ErrInvalidSegment, fs)
	}
	if i := firstNaN(sig); i >= 0 {
		return Spectrogram{}, fmt.Errorf("%w: first at sample %d; interpolate or drop gaps before spectral estimation", ErrNaNSignal, i)
	}

	nperseg := cfg.nperseg
	if nperseg <= 0 {
		nperseg = int(2 * fs)
		if nperseg > len(sig) {
			nperseg = len(sig)
		}
	}
	if nperseg > len(sig) {
		return Spectrogram{}, fmt.Errorf("%w: nperseg %d exceeds signal length %d",
			ErrInvalidSegment, nperseg, len(sig))
	}

	noverlap := cfg.noverlap
	if !cfg.overlapSet {
		noverlap = nperseg / 2
	}
	if noverlap < 0 || noverlap >= nperseg {
		return Spectrogram{}, fmt.Errorf("%w: noverlap %d must be in [0, nperseg)",
			ErrInvalidSegment, noverlap)
	}

	step := nperseg - noverlap
	nSlices := (len(sig)-nperseg)/step + 1
	nFreqs := nperseg/2 + 1

	coeffs := window.Generate(cfg.window, nperseg, window.WithPeriodic())
	scale := 1 / (fs * window.SumSquares(coeffs))

	fft := fourier.NewFFT(nperseg)
	buf := make([]float64, nperseg)
	bins := make([]complex128, nFreqs)

	out := Spectrogram{
		Freqs: make([]float64, nFreqs),
		Times: make([]float64, nSlices),
		Power: make([][]float64, nFreqs),
	}
	for k := range out.Freqs {
		out.Freqs[k] = float64(k) * fs / float64(nperseg)
		out.Power[k] = make([]float64, nSlices)
	}

	for t := 0; t < nSlices; t++ {
		off := t * step
		out.Times[t] = (float64(off) + float64(nperseg)/2) / fs

		vecmath.MulBlock(buf, sig[off:off+nperseg], coeffs)
		bins = fft.Coefficients(bins, buf)

		for k, c := range bins {
			re, im := real(c), imag(c)
			p := (re*re + im*im) * scale
			// One-sided spectrum: interior bins carry the mirrored half.
			if k != 0 && !(nperseg%2 == 0 && k == nFreqs-1) {
				p *= 2
			}
			out.Power[k][t] = p
		}
	}

	return out, nil
}

// firstNaN returns the index of the first NaN sample, or -1.
func firstNaN(sig []float64) int {
	for i, v := range sig {
		if math.IsNaN(v) {
			return i
		}
	}
	return -1
}
