// Package filt designs and applies digital filters to neural time series.
//
// The package covers FIR windowed-sinc and IIR Butterworth designs for
// bandpass, bandstop, lowpass and highpass filtering. [Filter] is the
// one-shot entry point: it designs a kernel from the pass type and cutoff,
// checks the design quality, and applies the kernel with NaN-gap and
// edge-artifact handling.
//
// Design-quality checks are advisory only. They are collected in a [Report]
// that callers inspect after the call; no computation is ever blocked or
// silently corrected. Fatal conditions (malformed cutoffs, kernels longer
// than the signal, missing Butterworth order) are returned as errors that
// wrap the package sentinels.
package filt
