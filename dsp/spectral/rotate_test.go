package spectral_test

import (
	"math"
	"testing"

	"github.com/spectralab/ephys-dsp/dsp/spectral"
	"github.com/spectralab/ephys-dsp/internal/testutil"
)

func flatPSD(n int, df float64) spectral.PSD {
	psd := spectral.PSD{
		Freqs: make([]float64, n),
		Power: make([]float64, n),
	}
	for k := range psd.Freqs {
		psd.Freqs[k] = float64(k) * df
		psd.Power[k] = 1
	}
	return psd
}

func TestRotatePowerLaw(t *testing.T) {
	psd := flatPSD(501, 1)

	rot := spectral.RotatePowerLaw(psd, -1, 20)

	// The rotation frequency is the pivot.
	if math.Abs(rot.Power[20]-1) > 1e-12 {
		t.Fatalf("power at the pivot = %v, want 1", rot.Power[20])
	}
	// A -1 exponent halves the power one octave up and doubles it one down.
	if math.Abs(rot.Power[40]-0.5) > 1e-12 {
		t.Fatalf("power at 40 Hz = %v, want 0.5", rot.Power[40])
	}
	if math.Abs(rot.Power[10]-2) > 1e-12 {
		t.Fatalf("power at 10 Hz = %v, want 2", rot.Power[10])
	}

	// The DC bin cannot follow a power law and passes through unchanged.
	if rot.Power[0] != 1 {
		t.Fatalf("DC power = %v, want untouched 1", rot.Power[0])
	}

	// The input is not modified.
	for k, p := range psd.Power {
		if p != 1 {
			t.Fatalf("input modified at bin %d: %v", k, p)
		}
	}
}

func TestRotatePowerLaw_RoundTrip(t *testing.T) {
	sig := testutil.Noise(9, 1, 5000)
	psd, err := spectral.ComputeSpectrum(sig, fs)
	if err != nil {
		t.Fatalf("ComputeSpectrum: %v", err)
	}

	back := spectral.RotatePowerLaw(spectral.RotatePowerLaw(psd, -1.5, 30), 1.5, 30)
	testutil.RequireSliceNearlyEqual(t, back.Power, psd.Power, 1e-12)
}
