package spectral

import "math"

// RotatePowerLaw rotates a power spectrum about an axis frequency: power at
// frequency f is scaled by (f/fRotation)^deltaF. A positive exponent tilts
// the spectrum counter-clockwise on a log-log plot, boosting frequencies
// above the axis; a negative exponent tilts it clockwise.
//
// The DC bin passes through unscaled to avoid the singularity at f = 0.
// Rotating by deltaF and then -deltaF about the same axis restores the
// original spectrum.
func RotatePowerLaw(psd PSD, deltaF, fRotation float64) PSD {
	out := PSD{
		Freqs: append([]float64(nil), psd.Freqs...),
		Power: make([]float64, len(psd.Power)),
	}

	for i, p := range psd.Power {
		f := psd.Freqs[i]
		if f <= 0 {
			out.Power[i] = p
			continue
		}
		out.Power[i] = p * math.Pow(f/fRotation, deltaF)
	}

	return out
}
