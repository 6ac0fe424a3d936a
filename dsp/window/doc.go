// Package window generates tapering windows for spectral analysis and
// FIR filter design.
//
// Windows are generated in symmetric form by default; pass [WithPeriodic]
// for the FFT-framing form used when averaging overlapping segments.
package window
