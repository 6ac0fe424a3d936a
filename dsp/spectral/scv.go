package spectral

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

// SCV computes the spectral coefficient of variation: std/mean of the power
// at each frequency across time slices of a spectrogram.
//
// The default segmentation is one second per segment with no overlap, so
// the slices are independent. A stationary noise signal scores near 1 at
// every frequency; a consistently oscillating band scores below 1.
func SCV(sig []float64, fs float64, opts ...Option) ([]float64, []float64, error) {
	cfg := scvConfig(opts, len(sig), fs)

	spg, err := computeSpectrogram(sig, fs, cfg)
	if err != nil {
		return nil, nil, err
	}

	scv := make([]float64, len(spg.Freqs))
	for k, row := range spg.Power {
		scv[k] = coefficientOfVariation(row)
	}

	return spg.Freqs, scv, nil
}

// SCVBootstrap computes bootstrap-resampled SCV estimates: nDraws slices
// are drawn with replacement from a non-overlapping spectrogram, nReps
// times, and the SCV is computed per draw.
//
// The result is indexed [frequency][repetition]; averaging over repetitions
// gives a smoothed SCV estimate. rng must be non-nil so runs are
// reproducible under a fixed seed.
func SCVBootstrap(sig []float64, fs float64, nDraws, nReps int, rng *rand.Rand, opts ...Option) ([]float64, [][]float64, error) {
	if rng == nil {
		return nil, nil, ErrNilRand
	}
	if nDraws <= 0 || nReps <= 0 {
		return nil, nil, fmt.Errorf("%w: draws %d, repetitions %d", ErrInvalidResample, nDraws, nReps)
	}

	cfg := scvConfig(opts, len(sig), fs)
	cfg.noverlap = 0
	cfg.overlapSet = true

	spg, err := computeSpectrogram(sig, fs, cfg)
	if err != nil {
		return nil, nil, err
	}

	nSlices := spg.Slices()
	scv := make([][]float64, len(spg.Freqs))
	for k := range scv {
		scv[k] = make([]float64, nReps)
	}

	draw := make([]int, nDraws)
	sample := make([]float64, nDraws)

	for rep := 0; rep < nReps; rep++ {
		for i := range draw {
			draw[i] = rng.Intn(nSlices)
		}

		for k, row := range spg.Power {
			for i, t := range draw {
				sample[i] = row[t]
			}
			scv[k][rep] = coefficientOfVariation(sample)
		}
	}

	return spg.Freqs, scv, nil
}

// SCVRolling computes a time-varying SCV map by sliding a window of
// winSlices consecutive spectrogram slices, advanced by step slices.
//
// The result is indexed [frequency][window]; the returned times mark each
// window's center, so the map visualizes non-stationarity over the
// recording.
func SCVRolling(sig []float64, fs float64, winSlices, step int, opts ...Option) ([]float64, []float64, [][]float64, error) {
	if winSlices <= 0 || step <= 0 {
		return nil, nil, nil, fmt.Errorf("%w: window %d slices, step %d", ErrInvalidResample, winSlices, step)
	}

	cfg := scvConfig(opts, len(sig), fs)

	spg, err := computeSpectrogram(sig, fs, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	nWins := (spg.Slices()-winSlices)/step + 1
	if nWins < 1 {
		return nil, nil, nil, fmt.Errorf("%w: window of %d slices exceeds the %d available",
			ErrInvalidResample, winSlices, spg.Slices())
	}

	times := make([]float64, nWins)
	for w := range times {
		times[w] = spg.Times[w*step+winSlices/2]
	}

	scv := make([][]float64, len(spg.Freqs))
	for k, row := range spg.Power {
		scv[k] = make([]float64, nWins)
		for w := 0; w < nWins; w++ {
			scv[k][w] = coefficientOfVariation(row[w*step : w*step+winSlices])
		}
	}

	return spg.Freqs, times, scv, nil
}

// scvConfig applies options with SCV defaults: one-second segments and no
// overlap unless the caller says otherwise.
func scvConfig(opts []Option, sigLen int, fs float64) config {
	cfg := applyOptions(opts)

	if cfg.nperseg <= 0 {
		cfg.nperseg = int(fs)
		if cfg.nperseg > sigLen {
			cfg.nperseg = sigLen
		}
	}
	if !cfg.overlapSet {
		cfg.noverlap = 0
		cfg.overlapSet = true
	}

	return cfg
}

func coefficientOfVariation(x []float64) float64 {
	mean := stat.Mean(x, nil)
	if mean == 0 {
		return 0
	}

	return stat.PopStdDev(x, nil) / mean
}
