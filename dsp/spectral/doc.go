// Package spectral estimates power spectral densities and spectral
// variability measures from neural time series.
//
// [ComputeSpectrum] provides three PSD estimators: the Welch mean over a
// spectrogram, a median variant robust to artifact-driven outliers, and a
// median-filtered whole-signal FFT. [SpectralHist] bins log-power values
// per frequency across time slices, [SCV] and its resampled variants
// quantify relative power variability, and [RotatePowerLaw] tilts a
// spectrum about an axis frequency.
//
// All functions are pure transformations of their arguments; the bootstrap
// resampler takes an explicit random source so results are reproducible.
package spectral
