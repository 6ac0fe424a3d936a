package filt

import (
	"math"
	"testing"
)

func TestCheckProperties_Bandpass(t *testing.T) {
	k, err := DesignFIR(Bandpass, Band(8, 12), 1000, 0)
	if err != nil {
		t.Fatalf("DesignFIR: %v", err)
	}

	report := NewReport(nil)
	props, err := CheckProperties(k, []float64{1}, 1000, Bandpass, Band(8, 12), WithReport(report))
	if err != nil {
		t.Fatalf("CheckProperties: %v", err)
	}

	if props.PassBandwidth != 4 {
		t.Fatalf("pass bandwidth = %v, want 4", props.PassBandwidth)
	}
	if math.IsNaN(props.TransitionBandwidth) || props.TransitionBandwidth <= 0 {
		t.Fatalf("transition bandwidth = %v, want finite positive", props.TransitionBandwidth)
	}
	if len(props.Freqs) != len(props.DB) {
		t.Fatalf("response length mismatch: %d freqs, %d dB values", len(props.Freqs), len(props.DB))
	}

	// A 3-cycle kernel for a 4 Hz band transitions over more than 4 Hz.
	if props.TransitionBandwidth <= props.PassBandwidth {
		t.Fatalf("expected transition (%v Hz) wider than pass band (%v Hz)",
			props.TransitionBandwidth, props.PassBandwidth)
	}
	if !report.Has(AdvisoryWideTransitionBand) {
		t.Fatalf("expected wide transition band advisory, got %v", report.Advisories())
	}
}

func TestCheckProperties_NarrowTransition(t *testing.T) {
	// A long kernel transitions quickly relative to a wide band.
	k, err := DesignFIR(Bandpass, Band(8, 30), 1000, 0, WithCycles(7))
	if err != nil {
		t.Fatalf("DesignFIR: %v", err)
	}

	report := NewReport(nil)
	props, err := CheckProperties(k, []float64{1}, 1000, Bandpass, Band(8, 30), WithReport(report))
	if err != nil {
		t.Fatalf("CheckProperties: %v", err)
	}

	if report.Has(AdvisoryWideTransitionBand) {
		t.Fatalf("unexpected wide transition advisory: transition=%v pass=%v",
			props.TransitionBandwidth, props.PassBandwidth)
	}
}

func TestCheckProperties_InsufficientAttenuation(t *testing.T) {
	// A gentle two-tap kernel never gets anywhere near -20 dB.
	k := []float64{0.9, 0.1}

	report := NewReport(nil)
	props, err := CheckProperties(k, []float64{1}, 1000, Lowpass, Single(30), WithReport(report))
	if err != nil {
		t.Fatalf("CheckProperties: %v", err)
	}

	if !report.Has(AdvisoryInsufficientAttenuation) {
		t.Fatalf("expected insufficient attenuation advisory, got %v", report.Advisories())
	}
	if !math.IsNaN(props.TransitionBandwidth) {
		t.Fatalf("transition bandwidth = %v, want NaN when nothing is attenuated", props.TransitionBandwidth)
	}
}

func TestTransitionBandwidth(t *testing.T) {
	freqs := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	tests := []struct {
		name string
		db   []float64
		want float64
	}{
		{
			name: "single rising edge",
			db:   []float64{-40, -40, -10, -10, -10, 0, 0, 0, 0, 0},
			want: 3,
		},
		{
			name: "rise and fall takes the widest",
			db:   []float64{-40, -10, 0, 0, 0, -10, -10, -10, -40, -40},
			want: 3,
		},
		{
			name: "no crossings",
			db:   []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := transitionBandwidth(freqs, tt.db, -20, -3)
			if got != tt.want {
				t.Fatalf("transitionBandwidth = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFrequencyResponse_Shape(t *testing.T) {
	// y[n] = x[n] is flat at 0 dB everywhere.
	freqs, db := FrequencyResponse([]float64{1}, []float64{1}, 1000, 128)
	if len(freqs) != 128 || len(db) != 128 {
		t.Fatalf("got %d/%d points, want 128", len(freqs), len(db))
	}
	if freqs[0] != 0 {
		t.Fatalf("first frequency = %v, want 0", freqs[0])
	}
	if freqs[len(freqs)-1] >= 500 {
		t.Fatalf("last frequency = %v, want below Nyquist", freqs[len(freqs)-1])
	}
	for i, v := range db {
		if math.Abs(v) > 1e-12 {
			t.Fatalf("identity response at %v Hz = %v dB, want 0", freqs[i], v)
		}
	}
}
