// Package testutil provides deterministic signal generators and tolerance
// assertions for tests.
package testutil

import (
	"math"
	"math/rand"
)

// Sine generates a deterministic sine wave.
func Sine(freqHz, fs, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / fs
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Noise generates white noise with a fixed seed for reproducibility.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = amplitude * rng.NormFloat64()
	}
	return out
}

// AddBurst adds a sinusoidal burst of the given frequency to sig in place,
// starting at sample start and lasting length samples.
func AddBurst(sig []float64, freqHz, fs, amplitude float64, start, length int) {
	step := 2 * math.Pi * freqHz / fs
	for i := 0; i < length && start+i < len(sig); i++ {
		sig[start+i] += amplitude * math.Sin(step*float64(i))
	}
}

// BurstNoise generates the canonical test signal: seeded white noise with
// sinusoidal bursts at the given start samples.
func BurstNoise(seed int64, freqHz, fs float64, length, burstLen int, starts ...int) []float64 {
	sig := Noise(seed, 1, length)
	for _, s := range starts {
		AddBurst(sig, freqHz, fs, 2, s, burstLen)
	}
	return sig
}

// InjectNaN replaces the samples at the given positions with NaN.
func InjectNaN(sig []float64, positions ...int) []float64 {
	for _, p := range positions {
		if p >= 0 && p < len(sig) {
			sig[p] = math.NaN()
		}
	}
	return sig
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}
