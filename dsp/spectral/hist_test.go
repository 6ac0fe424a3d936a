package spectral_test

import (
	"errors"
	"testing"

	"github.com/spectralab/ephys-dsp/dsp/spectral"
	"github.com/spectralab/ephys-dsp/internal/testutil"
)

func TestSpectralHist_Layout(t *testing.T) {
	sig := testutil.BurstNoise(11, 10, fs, 5000, 1000, 0, 3000)

	freqs, edges, hist, err := spectral.SpectralHist(sig, fs, []spectral.HistOption{
		spectral.WithBins(20),
		spectral.WithFrequencyRange(0, 80),
	})
	if err != nil {
		t.Fatalf("SpectralHist: %v", err)
	}

	if len(edges) != 21 {
		t.Fatalf("got %d edges, want 21", len(edges))
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			t.Fatalf("edges not ascending: %v", edges)
		}
	}

	if len(hist) != len(freqs) {
		t.Fatalf("got %d rows for %d frequencies", len(hist), len(freqs))
	}
	for _, f := range freqs {
		if f < 0 || f > 80 {
			t.Fatalf("frequency %v outside requested range", f)
		}
	}

	// Every time slice lands in exactly one bin per frequency. The default
	// segmentation of a 5 s signal yields 4 slices.
	for k, row := range hist {
		sum := 0.0
		for _, c := range row {
			sum += c
		}
		if sum != 4 {
			t.Fatalf("row %d counts sum to %v, want 4", k, sum)
		}
	}
}

func TestSpectralHist_Validation(t *testing.T) {
	sig := testutil.Noise(1, 1, 5000)

	_, _, _, err := spectral.SpectralHist(sig, fs, []spectral.HistOption{spectral.WithBins(0)})
	if !errors.Is(err, spectral.ErrInvalidBins) {
		t.Fatalf("zero bins: got %v, want ErrInvalidBins", err)
	}

	_, _, _, err = spectral.SpectralHist(sig, fs, []spectral.HistOption{
		spectral.WithFrequencyRange(80, 0),
	})
	if !errors.Is(err, spectral.ErrInvalidBins) {
		t.Fatalf("inverted range: got %v, want ErrInvalidBins", err)
	}

	_, _, _, err = spectral.SpectralHist(sig, fs, []spectral.HistOption{
		spectral.WithClipPercentiles(99, 1),
	})
	if !errors.Is(err, spectral.ErrInvalidBins) {
		t.Fatalf("inverted percentiles: got %v, want ErrInvalidBins", err)
	}
}
