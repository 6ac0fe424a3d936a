package rhythm_test

import (
	"errors"
	"testing"

	"github.com/spectralab/ephys-dsp/dsp/rhythm"
	"github.com/spectralab/ephys-dsp/internal/testutil"
)

const fs = 1000.0

func TestLaggedCoherence_PureSine(t *testing.T) {
	sig := testutil.Sine(10, fs, 1, 10000)

	freqs, lcs, err := rhythm.LaggedCoherenceSpectrum(sig, fs, 8, 12)
	if err != nil {
		t.Fatalf("LaggedCoherenceSpectrum: %v", err)
	}
	if len(freqs) != 5 {
		t.Fatalf("got %d probed frequencies, want 5", len(freqs))
	}

	for k, f := range freqs {
		if f == 10 && lcs[k] < 0.99 {
			t.Fatalf("lagged coherence at 10 Hz = %v, want ~1", lcs[k])
		}
		if lcs[k] < 0 || lcs[k] > 1+1e-9 {
			t.Fatalf("lagged coherence at %v Hz = %v outside [0, 1]", f, lcs[k])
		}
	}
}

func TestLaggedCoherence_NoiseScoresLow(t *testing.T) {
	sig := testutil.Noise(21, 1, 10000)

	lc, err := rhythm.LaggedCoherence(sig, fs, 5, 15)
	if err != nil {
		t.Fatalf("LaggedCoherence: %v", err)
	}
	if lc > 0.4 {
		t.Fatalf("lagged coherence of white noise = %v, want well below 1", lc)
	}
}

func TestLaggedCoherence_BurstsBeatNoise(t *testing.T) {
	burst := testutil.BurstNoise(3, 10, fs, 10000, 2000, 0, 5000)
	noise := testutil.Noise(4, 0.5, 10000)

	lcBurst, err := rhythm.LaggedCoherence(burst, fs, 8, 12)
	if err != nil {
		t.Fatalf("LaggedCoherence(burst): %v", err)
	}
	lcNoise, err := rhythm.LaggedCoherence(noise, fs, 8, 12)
	if err != nil {
		t.Fatalf("LaggedCoherence(noise): %v", err)
	}

	if lcBurst < 0.6 {
		t.Fatalf("bursty oscillation scored %v, want rhythmic (> 0.6)", lcBurst)
	}
	if lcBurst < 2*lcNoise {
		t.Fatalf("bursty oscillation (%v) not clearly above noise (%v)", lcBurst, lcNoise)
	}
}

func TestLaggedCoherence_Options(t *testing.T) {
	sig := testutil.Sine(10, fs, 1, 10000)

	freqs, _, err := rhythm.LaggedCoherenceSpectrum(sig, fs, 8, 12,
		rhythm.WithFrequencyStep(0.5), rhythm.WithCycles(4))
	if err != nil {
		t.Fatalf("LaggedCoherenceSpectrum: %v", err)
	}
	if len(freqs) != 9 {
		t.Fatalf("got %d probed frequencies at 0.5 Hz steps, want 9", len(freqs))
	}
}

func TestLaggedCoherence_Errors(t *testing.T) {
	sig := testutil.Sine(10, fs, 1, 10000)

	if _, err := rhythm.LaggedCoherence(sig, fs, 0, 12); !errors.Is(err, rhythm.ErrInvalidRange) {
		t.Fatalf("zero lower bound: got %v, want ErrInvalidRange", err)
	}
	if _, err := rhythm.LaggedCoherence(sig, fs, 12, 8); !errors.Is(err, rhythm.ErrInvalidRange) {
		t.Fatalf("inverted range: got %v, want ErrInvalidRange", err)
	}
	if _, err := rhythm.LaggedCoherence(sig, fs, 8, 600); !errors.Is(err, rhythm.ErrInvalidRange) {
		t.Fatalf("range above Nyquist: got %v, want ErrInvalidRange", err)
	}

	// Two 3-cycle segments at 1 Hz need 6000 samples.
	short := testutil.Sine(1, fs, 1, 4000)
	if _, err := rhythm.LaggedCoherence(short, fs, 1, 1); !errors.Is(err, rhythm.ErrShortSignal) {
		t.Fatalf("short signal: got %v, want ErrShortSignal", err)
	}
}
