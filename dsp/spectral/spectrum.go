package spectral

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"
)

// PSD is a power spectral density: parallel frequency and power axes, with
// frequencies ascending from 0 to Nyquist and non-negative power.
type PSD struct {
	Freqs []float64
	Power []float64
}

// ComputeSpectrum estimates the power spectral density of sig.
//
// The method defaults to the Welch mean over a spectrogram; [WithMethod]
// selects the median-aggregated variant or the median-filtered FFT, and
// [WithSegment] controls the segmentation of the first two.
func ComputeSpectrum(sig []float64, fs float64, opts ...Option) (PSD, error) {
	cfg := applyOptions(opts)

	if cfg.method == MethodMedfilt {
		return medfiltSpectrum(sig, fs, cfg)
	}

	spg, err := computeSpectrogram(sig, fs, cfg)
	if err != nil {
		return PSD{}, err
	}

	out := PSD{
		Freqs: spg.Freqs,
		Power: make([]float64, len(spg.Freqs)),
	}

	for k, row := range spg.Power {
		if cfg.method == MethodMedian {
			out.Power[k] = median(row)
		} else {
			out.Power[k] = stat.Mean(row, nil)
		}
	}

	return out, nil
}

// medfiltSpectrum computes a single FFT of the whole signal, takes the
// squared magnitude, and median-filters it along the frequency axis.
func medfiltSpectrum(sig []float64, fs float64, cfg config) (PSD, error) {
	if len(sig) == 0 {
		return PSD{}, ErrEmptySignal
	}
	if fs <= 0 {
		return PSD{}, fmt.Errorf("%w: sampling rate must be > 0: %g", ErrInvalidSegment, fs)
	}
	if i := firstNaN(sig); i >= 0 {
		return PSD{}, fmt.Errorf("%w: first at sample %d; interpolate or drop gaps before spectral estimation", ErrNaNSignal, i)
	}

	fftSize := nextPowerOf2(len(sig))

	inData := make([]complex128, fftSize)
	for i, v := range sig {
		inData[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return PSD{}, fmt.Errorf("spectral: fft plan: %w", err)
	}

	bins := make([]complex128, fftSize)
	if err := plan.Forward(bins, inData); err != nil {
		return PSD{}, fmt.Errorf("spectral: fft: %w", err)
	}

	nFreqs := fftSize/2 + 1
	re := make([]float64, nFreqs)
	im := make([]float64, nFreqs)
	for k := 0; k < nFreqs; k++ {
		re[k] = real(bins[k])
		im[k] = imag(bins[k])
	}

	power := make([]float64, nFreqs)
	vecmath.Power(power, re, im)

	width := medfiltWidth(cfg.medfiltHz, fs, fftSize)

	out := PSD{
		Freqs: make([]float64, nFreqs),
		Power: slidingMedian(power, width),
	}
	for k := range out.Freqs {
		out.Freqs[k] = float64(k) * fs / float64(fftSize)
	}

	return out, nil
}

// medfiltWidth converts a filter width in Hz to an odd sample count on the
// FFT frequency grid, at least 3.
func medfiltWidth(hz, fs float64, fftSize int) int {
	width := int(math.Round(hz * float64(fftSize) / fs))
	if width < 3 {
		width = 3
	}
	if width%2 == 0 {
		width++
	}

	return width
}

// slidingMedian median-filters x with an odd window, shrinking the window
// near the edges instead of zero-padding.
func slidingMedian(x []float64, width int) []float64 {
	half := width / 2
	out := make([]float64, len(x))

	for i := range x {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half + 1
		if hi > len(x) {
			hi = len(x)
		}
		out[i] = median(x[lo:hi])
	}

	return out
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}

	return size
}
