package filt

import (
	"errors"
	"testing"

	"github.com/spectralab/ephys-dsp/internal/testutil"
)

func TestFiltFilt_ConstantPassesExactly(t *testing.T) {
	b, a, err := DesignButterworth(Lowpass, Single(30), 4, 1000, WithoutValidation())
	if err != nil {
		t.Fatalf("DesignButterworth: %v", err)
	}

	x := make([]float64, 200)
	for i := range x {
		x[i] = 1
	}

	y, err := FiltFilt(b, a, x)
	if err != nil {
		t.Fatalf("FiltFilt: %v", err)
	}
	if len(y) != len(x) {
		t.Fatalf("output length = %d, want %d", len(y), len(x))
	}

	// The startup-state trick makes a unity-DC-gain filter pass a constant
	// with no transient at all.
	testutil.RequireSliceNearlyEqual(t, y, x, 1e-9)
}

func TestFiltFilt_ZeroPhase(t *testing.T) {
	b, a, err := DesignButterworth(Lowpass, Single(30), 4, 1000, WithoutValidation())
	if err != nil {
		t.Fatalf("DesignButterworth: %v", err)
	}

	// A 5 Hz tone sits deep in the passband; after the forward and backward
	// passes it must come out unshifted and unscaled.
	x := testutil.Sine(5, 1000, 1, 1000)
	y, err := FiltFilt(b, a, x)
	if err != nil {
		t.Fatalf("FiltFilt: %v", err)
	}

	if md := testutil.MaxAbsDiff(t, y[100:900], x[100:900]); md > 1e-3 {
		t.Fatalf("zero-phase output deviates by %v from the input tone", md)
	}
}

func TestFiltFilt_ShortSignal(t *testing.T) {
	b, a, err := DesignButterworth(Lowpass, Single(30), 4, 1000, WithoutValidation())
	if err != nil {
		t.Fatalf("DesignButterworth: %v", err)
	}

	// Order 4 needs more than 3*4 = 12 samples.
	_, err = FiltFilt(b, a, make([]float64, 12))
	if !errors.Is(err, ErrShortSignal) {
		t.Fatalf("got %v, want ErrShortSignal", err)
	}
}

func TestFiltFilt_PureGain(t *testing.T) {
	x := []float64{1, 2, 3}
	y, err := FiltFilt([]float64{2}, []float64{1}, x)
	if err != nil {
		t.Fatalf("FiltFilt: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, y, []float64{4, 8, 12}, 1e-12)
}

func TestNormalizeTF(t *testing.T) {
	b, a, err := normalizeTF([]float64{2, 4}, []float64{2, 0, 2})
	if err != nil {
		t.Fatalf("normalizeTF: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, b, []float64{1, 2, 0}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, a, []float64{1, 0, 1}, 1e-12)

	if _, _, err := normalizeTF(nil, []float64{1}); !errors.Is(err, ErrInvalidDefinition) {
		t.Fatalf("empty numerator: got %v, want ErrInvalidDefinition", err)
	}
	if _, _, err := normalizeTF([]float64{1}, []float64{0, 1}); !errors.Is(err, ErrInvalidDefinition) {
		t.Fatalf("zero leading denominator: got %v, want ErrInvalidDefinition", err)
	}
}

func TestLFilter_MovingAverage(t *testing.T) {
	b := []float64{0.5, 0.5}
	a := []float64{1, 0}
	z := make([]float64, 1)
	x := []float64{1, 1, 1, 1}
	y := make([]float64, len(x))

	lfilter(b, a, z, x, y)
	testutil.RequireSliceNearlyEqual(t, y, []float64{0.5, 1, 1, 1}, 1e-12)
}
