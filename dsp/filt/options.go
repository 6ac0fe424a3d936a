package filt

import "go.uber.org/zap"

// Option configures filter design, validation and application.
type Option func(*config)

type config struct {
	cycles         float64
	seconds        float64
	useIIR         bool
	order          int
	edgeRemoval    bool
	validate       bool
	lowDB, highDB  float64
	responsePoints int
	report         *Report
	logger         *zap.Logger
}

func defaultConfig() config {
	return config{
		cycles:         3,
		edgeRemoval:    true,
		validate:       true,
		lowDB:          -20,
		highDB:         -3,
		responsePoints: 512,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.report == nil {
		cfg.report = NewReport(cfg.logger)
	} else if cfg.logger != nil && cfg.report.logger == nil {
		cfg.report.logger = cfg.logger
	}

	return cfg
}

// WithCycles sets the FIR kernel length in cycles of the reference cutoff
// frequency. The default is 3. Ignored when a duration is set.
func WithCycles(n float64) Option {
	return func(c *config) {
		if n > 0 {
			c.cycles = n
		}
	}
}

// WithDuration sets the FIR kernel length to an explicit duration in seconds,
// overriding the cycle count. Incompatible with IIR designs.
func WithDuration(seconds float64) Option {
	return func(c *config) {
		if seconds > 0 {
			c.seconds = seconds
		}
	}
}

// WithIIR selects a Butterworth IIR design of the given order instead of the
// default FIR design.
func WithIIR(order int) Option {
	return func(c *config) {
		c.useIIR = true
		c.order = order
	}
}

// WithoutEdgeRemoval keeps the edge samples of an FIR-filtered signal instead
// of masking them with NaN.
func WithoutEdgeRemoval() Option {
	return func(c *config) {
		c.edgeRemoval = false
	}
}

// WithoutValidation skips the frequency-response quality checks.
func WithoutValidation() Option {
	return func(c *config) {
		c.validate = false
	}
}

// WithThresholds sets the transition-band attenuation thresholds in dB.
// The defaults are -20 dB and -3 dB.
func WithThresholds(lowDB, highDB float64) Option {
	return func(c *config) {
		if lowDB < highDB {
			c.lowDB = lowDB
			c.highDB = highDB
		}
	}
}

// WithResponsePoints sets the frequency-grid density used for validation.
func WithResponsePoints(n int) Option {
	return func(c *config) {
		if n > 1 {
			c.responsePoints = n
		}
	}
}

// WithReport collects advisories into the given report instead of a private
// one, so the caller can inspect them after the call.
func WithReport(r *Report) Option {
	return func(c *config) {
		c.report = r
	}
}

// WithLogger forwards advisories to the given logger as structured warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
