package filt

import (
	"fmt"

	"go.uber.org/zap"
)

// AdvisoryKind classifies a non-fatal design-quality condition.
type AdvisoryKind int

const (
	// AdvisoryInsufficientAttenuation: the response never reaches the low
	// transition threshold anywhere on the frequency grid.
	AdvisoryInsufficientAttenuation AdvisoryKind = iota

	// AdvisoryStopbandEdge: a bandpass stopband edge never reaches the low
	// transition threshold.
	AdvisoryStopbandEdge

	// AdvisoryWideTransitionBand: the transition band is wider than the pass
	// band, sacrificing frequency resolution.
	AdvisoryWideTransitionBand

	// AdvisoryIIRNotchOnly: an IIR design was requested for something other
	// than a bandstop filter.
	AdvisoryIIRNotchOnly

	// AdvisoryIIREdgeArtifacts: edge-artifact removal was requested together
	// with an IIR design, which does not support it.
	AdvisoryIIREdgeArtifacts
)

// String returns a short identifier for the advisory kind.
func (k AdvisoryKind) String() string {
	switch k {
	case AdvisoryInsufficientAttenuation:
		return "insufficient-attenuation"
	case AdvisoryStopbandEdge:
		return "stopband-edge"
	case AdvisoryWideTransitionBand:
		return "wide-transition-band"
	case AdvisoryIIRNotchOnly:
		return "iir-notch-only"
	case AdvisoryIIREdgeArtifacts:
		return "iir-edge-artifacts"
	default:
		return "unknown"
	}
}

// Advisory is a single non-fatal diagnostic emitted during design or
// validation. Advisories never alter results.
type Advisory struct {
	Kind    AdvisoryKind
	Message string
}

// Report collects advisories from a filter call so callers and tests can
// assert on emitted diagnostics without capturing process output.
//
// The zero value is ready to use. A Report with an attached logger also
// forwards each advisory as a structured warning.
type Report struct {
	advisories []Advisory
	logger     *zap.Logger
}

// NewReport returns an empty report that logs advisories to logger.
// A nil logger disables logging.
func NewReport(logger *zap.Logger) *Report {
	return &Report{logger: logger}
}

// Advisories returns the advisories collected so far, in emission order.
func (r *Report) Advisories() []Advisory {
	if r == nil {
		return nil
	}
	return r.advisories
}

// Has reports whether an advisory of the given kind was emitted.
func (r *Report) Has(kind AdvisoryKind) bool {
	if r == nil {
		return false
	}
	for _, a := range r.advisories {
		if a.Kind == kind {
			return true
		}
	}
	return false
}

func (r *Report) addf(kind AdvisoryKind, format string, args ...any) {
	if r == nil {
		return
	}

	msg := fmt.Sprintf(format, args...)
	r.advisories = append(r.advisories, Advisory{Kind: kind, Message: msg})

	if r.logger != nil {
		r.logger.Warn("filter design advisory",
			zap.String("advisory", kind.String()),
			zap.String("detail", msg),
		)
	}
}
