package filt

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/spectralab/ephys-dsp/dsp/core"
)

// DesignButterworth designs an IIR Butterworth filter of the given order,
// returning the transfer-function coefficients (numerator b, denominator a).
//
// Cutoffs are normalized by the Nyquist frequency before design. The design
// follows the classic analog-prototype route: Butterworth poles, frequency
// pre-warping, band transform, bilinear transform.
//
// IIR filtering in this package is only recommended for bandstop (notch)
// use; any other pass type emits an advisory.
func DesignButterworth(pass PassType, fc Cutoff, order int, fs float64, opts ...Option) ([]float64, []float64, error) {
	cfg := applyOptions(opts)
	return designButterworth(pass, fc, order, fs, cfg)
}

func designButterworth(pass PassType, fc Cutoff, order int, fs float64, cfg config) ([]float64, []float64, error) {
	if order <= 0 {
		return nil, nil, fmt.Errorf("%w: got order %d", ErrMissingOrder, order)
	}

	fLo, fHi, err := fc.edges(pass, fs)
	if err != nil {
		return nil, nil, err
	}

	if pass != Bandstop {
		cfg.report.addf(AdvisoryIIRNotchOnly,
			"IIR filters are not recommended other than for notch (bandstop) use; got %s", pass)
	}

	nyq := core.Nyquist(fs)

	zeros, poles, gain := butterPrototype(order)

	// Pre-warp the normalized cutoffs. The virtual sampling rate of 2
	// matches the normalized frequency convention.
	const fs2 = 2.0
	switch pass {
	case Lowpass:
		warped := 2 * fs2 * math.Tan(math.Pi*(fHi/nyq)/fs2)
		zeros, poles, gain = lpToLP(zeros, poles, gain, warped)
	case Highpass:
		warped := 2 * fs2 * math.Tan(math.Pi*(fLo/nyq)/fs2)
		zeros, poles, gain = lpToHP(zeros, poles, gain, warped)
	case Bandpass:
		w1 := 2 * fs2 * math.Tan(math.Pi*(fLo/nyq)/fs2)
		w2 := 2 * fs2 * math.Tan(math.Pi*(fHi/nyq)/fs2)
		zeros, poles, gain = lpToBP(zeros, poles, gain, math.Sqrt(w1*w2), w2-w1)
	default: // Bandstop
		w1 := 2 * fs2 * math.Tan(math.Pi*(fLo/nyq)/fs2)
		w2 := 2 * fs2 * math.Tan(math.Pi*(fHi/nyq)/fs2)
		zeros, poles, gain = lpToBS(zeros, poles, gain, math.Sqrt(w1*w2), w2-w1)
	}

	zeros, poles, gain = bilinear(zeros, poles, gain, fs2)

	b := polyFromRoots(zeros)
	a := polyFromRoots(poles)

	bre := make([]float64, len(b))
	for i, c := range b {
		bre[i] = real(c) * gain
	}

	are := make([]float64, len(a))
	for i, c := range a {
		are[i] = real(c)
	}

	return bre, are, nil
}

// butterPrototype returns the zeros, poles and gain of an order-n analog
// Butterworth lowpass prototype with cutoff 1 rad/s.
func butterPrototype(n int) ([]complex128, []complex128, float64) {
	poles := make([]complex128, n)
	for i := 0; i < n; i++ {
		m := float64(-n + 1 + 2*i)
		poles[i] = -cmplx.Exp(complex(0, math.Pi*m/float64(2*n)))
	}

	return nil, poles, 1
}

func lpToLP(zeros, poles []complex128, gain, wo float64) ([]complex128, []complex128, float64) {
	degree := len(poles) - len(zeros)

	z := make([]complex128, len(zeros))
	for i, r := range zeros {
		z[i] = r * complex(wo, 0)
	}

	p := make([]complex128, len(poles))
	for i, r := range poles {
		p[i] = r * complex(wo, 0)
	}

	return z, p, gain * math.Pow(wo, float64(degree))
}

func lpToHP(zeros, poles []complex128, gain, wo float64) ([]complex128, []complex128, float64) {
	degree := len(poles) - len(zeros)

	z := make([]complex128, 0, len(poles))
	for _, r := range zeros {
		z = append(z, complex(wo, 0)/r)
	}
	for i := 0; i < degree; i++ {
		z = append(z, 0)
	}

	p := make([]complex128, len(poles))
	for i, r := range poles {
		p[i] = complex(wo, 0) / r
	}

	return z, p, gain * real(prodNeg(zeros)/prodNeg(poles))
}

func lpToBP(zeros, poles []complex128, gain, wo, bw float64) ([]complex128, []complex128, float64) {
	degree := len(poles) - len(zeros)

	z := bandRoots(zeros, wo, bw)
	for i := 0; i < degree; i++ {
		z = append(z, 0)
	}

	p := bandRoots(poles, wo, bw)

	return z, p, gain * math.Pow(bw, float64(degree))
}

func lpToBS(zeros, poles []complex128, gain, wo, bw float64) ([]complex128, []complex128, float64) {
	degree := len(poles) - len(zeros)

	z := stopRoots(zeros, wo, bw)
	for i := 0; i < degree; i++ {
		z = append(z, complex(0, wo), complex(0, -wo))
	}

	p := stopRoots(poles, wo, bw)

	return z, p, gain * real(prodNeg(zeros)/prodNeg(poles))
}

// bandRoots maps each lowpass root r to the conjugate pair
// r*bw/2 +/- sqrt((r*bw/2)^2 - wo^2).
func bandRoots(roots []complex128, wo, bw float64) []complex128 {
	out := make([]complex128, 0, 2*len(roots))
	for _, r := range roots {
		s := r * complex(bw/2, 0)
		d := cmplx.Sqrt(s*s - complex(wo*wo, 0))
		out = append(out, s+d, s-d)
	}

	return out
}

// stopRoots maps each lowpass root r to the conjugate pair
// (bw/2)/r +/- sqrt(((bw/2)/r)^2 - wo^2).
func stopRoots(roots []complex128, wo, bw float64) []complex128 {
	out := make([]complex128, 0, 2*len(roots))
	for _, r := range roots {
		s := complex(bw/2, 0) / r
		d := cmplx.Sqrt(s*s - complex(wo*wo, 0))
		out = append(out, s+d, s-d)
	}

	return out
}

// bilinear maps analog zeros and poles into the z-plane with the bilinear
// transform at virtual sampling rate fs2. Excess poles contribute digital
// zeros at z = -1.
func bilinear(zeros, poles []complex128, gain, fs2 float64) ([]complex128, []complex128, float64) {
	degree := len(poles) - len(zeros)
	k2 := complex(2*fs2, 0)

	z := make([]complex128, 0, len(poles))
	num := complex(1, 0)
	for _, r := range zeros {
		z = append(z, (k2+r)/(k2-r))
		num *= k2 - r
	}
	for i := 0; i < degree; i++ {
		z = append(z, -1)
	}

	p := make([]complex128, len(poles))
	den := complex(1, 0)
	for i, r := range poles {
		p[i] = (k2 + r) / (k2 - r)
		den *= k2 - r
	}

	return z, p, gain * real(num/den)
}

// polyFromRoots expands a monic polynomial from its roots, highest power
// first. Conjugate root pairs make the imaginary parts cancel.
func polyFromRoots(roots []complex128) []complex128 {
	coeffs := []complex128{1}
	for _, r := range roots {
		next := make([]complex128, len(coeffs)+1)
		for i, c := range coeffs {
			next[i] += c
			next[i+1] -= c * r
		}
		coeffs = next
	}

	return coeffs
}

func prodNeg(roots []complex128) complex128 {
	out := complex(1, 0)
	for _, r := range roots {
		out *= -r
	}

	return out
}
