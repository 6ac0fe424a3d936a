package spectral

import "github.com/spectralab/ephys-dsp/dsp/window"

// Method selects the PSD aggregation strategy.
type Method int

const (
	// MethodMean is the standard Welch estimate: the mean over the
	// spectrogram of the signal.
	MethodMean Method = iota

	// MethodMedian aggregates the spectrogram with the median instead of the
	// mean, diminishing the effect of outlier power values from artifacts.
	MethodMedian

	// MethodMedfilt median-filters the squared magnitude of a single
	// whole-signal FFT. No segmentation is involved.
	MethodMedfilt
)

// String returns the conventional name of the method.
func (m Method) String() string {
	switch m {
	case MethodMean:
		return "mean"
	case MethodMedian:
		return "median"
	case MethodMedfilt:
		return "medfilt"
	default:
		return "unknown"
	}
}

// Option configures spectral estimation.
type Option func(*config)

type config struct {
	method     Method
	nperseg    int
	noverlap   int
	overlapSet bool
	window     window.Type
	medfiltHz  float64
}

func defaultConfig() config {
	return config{
		window:    window.TypeHann,
		medfiltHz: 1,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithMethod selects the PSD estimation method. The default is [MethodMean].
func WithMethod(m Method) Option {
	return func(c *config) {
		c.method = m
	}
}

// WithSegment sets the segment length and overlap, in samples, for
// spectrogram-based estimates. The defaults are two seconds of data
// (capped at the signal length) and 50% overlap.
func WithSegment(nperseg, noverlap int) Option {
	return func(c *config) {
		c.nperseg = nperseg
		c.noverlap = noverlap
		c.overlapSet = true
	}
}

// WithSegmentLength sets the segment length in samples, keeping the default
// 50% overlap.
func WithSegmentLength(nperseg int) Option {
	return func(c *config) {
		c.nperseg = nperseg
	}
}

// WithWindow selects the tapering window for spectrogram segments.
// The default is Hann.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

// WithMedianFilterWidth sets the width in Hz of the frequency-domain median
// filter used by [MethodMedfilt]. The default is 1 Hz.
func WithMedianFilterWidth(hz float64) Option {
	return func(c *config) {
		if hz > 0 {
			c.medfiltHz = hz
		}
	}
}
