package spectral

import (
	"fmt"
	"math"

	"github.com/spectralab/ephys-dsp/dsp/core"
)

// histConfig extends the spectrogram configuration with histogram binning.
type histConfig struct {
	nbins          int
	fMin, fMax     float64
	clipLo, clipHi float64
}

func defaultHistConfig() histConfig {
	return histConfig{
		nbins:  50,
		fMin:   0,
		fMax:   100,
		clipLo: 0.1,
		clipHi: 99.9,
	}
}

// HistOption configures spectral histogram binning.
type HistOption func(*histConfig)

// WithBins sets the number of log-power bins. The default is 50.
func WithBins(n int) HistOption {
	return func(c *histConfig) {
		c.nbins = n
	}
}

// WithFrequencyRange restricts the histogram to frequencies in [lo, hi] Hz.
// The default range is 0 to 100 Hz.
func WithFrequencyRange(lo, hi float64) HistOption {
	return func(c *histConfig) {
		c.fMin = lo
		c.fMax = hi
	}
}

// WithClipPercentiles clips extreme log-power values to the given
// percentiles before binning, stabilizing the bin edges against outliers.
// The defaults are 0.1 and 99.9.
func WithClipPercentiles(lo, hi float64) HistOption {
	return func(c *histConfig) {
		c.clipLo = lo
		c.clipHi = hi
	}
}

// SpectralHist computes a spectrogram of sig, takes log10 power and
// histograms the values independently at each frequency across time slices.
//
// It returns the restricted frequency axis, the shared log-power bin edges
// (nbins+1 values), and the per-frequency bin counts. Spectrogram
// segmentation follows the same defaults and [Option] values as
// [ComputeSpectrogram].
func SpectralHist(sig []float64, fs float64, histOpts []HistOption, opts ...Option) ([]float64, []float64, [][]float64, error) {
	hcfg := defaultHistConfig()
	for _, opt := range histOpts {
		if opt != nil {
			opt(&hcfg)
		}
	}

	if hcfg.nbins <= 0 {
		return nil, nil, nil, fmt.Errorf("%w: nbins must be > 0: %d", ErrInvalidBins, hcfg.nbins)
	}
	if hcfg.fMax <= hcfg.fMin {
		return nil, nil, nil, fmt.Errorf("%w: empty frequency range [%g, %g]",
			ErrInvalidBins, hcfg.fMin, hcfg.fMax)
	}
	if hcfg.clipHi <= hcfg.clipLo || hcfg.clipLo < 0 || hcfg.clipHi > 100 {
		return nil, nil, nil, fmt.Errorf("%w: clip percentiles (%g, %g)",
			ErrInvalidBins, hcfg.clipLo, hcfg.clipHi)
	}

	spg, err := ComputeSpectrogram(sig, fs, opts...)
	if err != nil {
		return nil, nil, nil, err
	}

	// Restrict the frequency axis and move to log power.
	var freqs []float64
	var logPower [][]float64
	var all []float64
	for k, f := range spg.Freqs {
		if f < hcfg.fMin || f > hcfg.fMax {
			continue
		}
		row := make([]float64, len(spg.Power[k]))
		for t, p := range spg.Power[k] {
			row[t] = math.Log10(p)
		}
		freqs = append(freqs, f)
		logPower = append(logPower, row)
		all = append(all, row...)
	}

	if len(freqs) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: no frequencies in [%g, %g]",
			ErrInvalidBins, hcfg.fMin, hcfg.fMax)
	}

	lo := percentile(all, hcfg.clipLo)
	hi := percentile(all, hcfg.clipHi)

	edges := make([]float64, hcfg.nbins+1)
	span := hi - lo
	for i := range edges {
		edges[i] = lo + span*float64(i)/float64(hcfg.nbins)
	}

	hist := make([][]float64, len(freqs))
	for k, row := range logPower {
		hist[k] = make([]float64, hcfg.nbins)
		for _, v := range row {
			v = core.Clamp(v, lo, hi)

			idx := hcfg.nbins - 1
			if span > 0 {
				idx = int((v - lo) / span * float64(hcfg.nbins))
				if idx >= hcfg.nbins {
					idx = hcfg.nbins - 1
				}
			}
			hist[k][idx]++
		}
	}

	return freqs, edges, hist, nil
}
