package filt

import (
	"math"
)

// Properties holds the frequency response and bandwidth figures of a
// designed filter.
type Properties struct {
	Freqs []float64
	DB    []float64

	// PassBandwidth is the width of the pass (or stop) band in Hz.
	PassBandwidth float64

	// TransitionBandwidth is the widest span between the low- and
	// high-threshold crossings of the response. NaN when the response never
	// attenuates below the low threshold, in which case no figure is
	// meaningful.
	TransitionBandwidth float64
}

// CheckProperties computes the frequency response of a transfer function and
// verifies the design quality against the cutoff specification.
//
// All findings are advisory: they are emitted into the configured [Report]
// and never alter or reject the design. The default transition thresholds
// are -20 dB and -3 dB; override with [WithThresholds].
func CheckProperties(b, a []float64, fs float64, pass PassType, fc Cutoff, opts ...Option) (Properties, error) {
	cfg := applyOptions(opts)
	return checkProperties(b, a, fs, pass, fc, cfg)
}

func checkProperties(b, a []float64, fs float64, pass PassType, fc Cutoff, cfg config) (Properties, error) {
	fLo, fHi, err := fc.edges(pass, fs)
	if err != nil {
		return Properties{}, err
	}

	freqs, db := FrequencyResponse(b, a, fs, cfg.responsePoints)

	props := Properties{
		Freqs:               freqs,
		DB:                  db,
		PassBandwidth:       passBandwidth(pass, fLo, fHi),
		TransitionBandwidth: math.NaN(),
	}

	minDB := db[0]
	for _, v := range db[1:] {
		if v < minDB {
			minDB = v
		}
	}

	if minDB >= cfg.lowDB {
		cfg.report.addf(AdvisoryInsufficientAttenuation,
			"filter attenuation never goes below %g dB; increase filter length", cfg.lowDB)
		return props, nil
	}

	if pass == Bandpass {
		if db[0] >= cfg.lowDB {
			cfg.report.addf(AdvisoryStopbandEdge,
				"low-frequency stopband never attenuated by more than %g dB; increase filter length",
				math.Abs(cfg.lowDB))
		}
		if db[len(db)-1] >= cfg.lowDB {
			cfg.report.addf(AdvisoryStopbandEdge,
				"high-frequency stopband never attenuated by more than %g dB; increase filter length",
				math.Abs(cfg.lowDB))
		}
	}

	props.TransitionBandwidth = transitionBandwidth(freqs, db, cfg.lowDB, cfg.highDB)

	if props.TransitionBandwidth > props.PassBandwidth {
		cfg.report.addf(AdvisoryWideTransitionBand,
			"transition bandwidth %.1f Hz exceeds the pass/stop bandwidth %.1f Hz; "+
			"frequency resolution is being sacrificed",
			props.TransitionBandwidth, props.PassBandwidth)
	}

	return props, nil
}

// transitionBandwidth finds the widest frequency span between crossings in
// and out of the (low, high) dB corridor. Crossings are detected as sign
// changes of the thresholded mask and consumed in successive pairs.
func transitionBandwidth(freqs, db []float64, low, high float64) float64 {
	var crossings []int
	prev := low < db[0] && db[0] < high
	for i := 1; i < len(db); i++ {
		cur := low < db[i] && db[i] < high
		if cur != prev {
			crossings = append(crossings, i-1)
		}
		prev = cur
	}

	widest := 0.0
	for i := 0; i+1 < len(crossings); i += 2 {
		span := freqs[crossings[i+1]] - freqs[crossings[i]]
		if span > widest {
			widest = span
		}
	}

	return widest
}
