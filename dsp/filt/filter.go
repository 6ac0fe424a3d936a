package filt

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Filter designs a filter from the pass type and cutoff and applies it to
// sig. The default design is a 3-cycle FIR kernel; see the package options
// for IIR, explicit lengths and diagnostics.
//
// NaN-marked gaps in sig are stripped before filtering and restored in the
// output, so gap positions survive filtering and the output always has the
// same length as the input. With the default edge-artifact removal, the
// first and last ceil(L/2) filtered samples are additionally NaN for an FIR
// kernel of length L.
func Filter(sig []float64, fs float64, pass PassType, fc Cutoff, opts ...Option) ([]float64, error) {
	out, _, err := FilterKernel(sig, fs, pass, fc, opts...)
	return out, err
}

// FilterKernel behaves like [Filter] and additionally returns the designed
// kernel for inspection.
func FilterKernel(sig []float64, fs float64, pass PassType, fc Cutoff, opts ...Option) ([]float64, Kernel, error) {
	cfg := applyOptions(opts)

	if len(sig) == 0 {
		return nil, Kernel{}, fmt.Errorf("%w: empty signal", ErrShortSignal)
	}

	if cfg.useIIR {
		if cfg.seconds > 0 {
			return nil, Kernel{}, fmt.Errorf(
				"%w: duration-based length only applies to FIR designs", ErrIncompatibleOption)
		}
		if cfg.edgeRemoval {
			cfg.report.addf(AdvisoryIIREdgeArtifacts,
				"edge artifacts are not removed when using an IIR filter")
		}
	}

	clean, gaps := splitNaN(sig)
	if len(clean) == 0 {
		return nil, Kernel{}, fmt.Errorf("%w: signal is all NaN", ErrShortSignal)
	}

	var (
		kernel   Kernel
		filtered []float64
	)

	if cfg.useIIR {
		b, a, err := designButterworth(pass, fc, cfg.order, fs, cfg)
		if err != nil {
			return nil, Kernel{}, err
		}
		kernel = Kernel{B: b, A: a}

		if cfg.validate {
			if _, err := checkProperties(b, a, fs, pass, fc, cfg); err != nil {
				return nil, Kernel{}, err
			}
		}

		filtered, err = FiltFilt(b, a, clean)
		if err != nil {
			return nil, Kernel{}, err
		}
	} else {
		k, err := designFIR(pass, fc, fs, len(clean), cfg)
		if err != nil {
			return nil, Kernel{}, err
		}
		kernel = Kernel{B: k, A: []float64{1}}

		if cfg.validate {
			if _, err := checkProperties(k, kernel.A, fs, pass, fc, cfg); err != nil {
				return nil, Kernel{}, err
			}
		}

		filtered = convolveSame(clean, k)

		if cfg.edgeRemoval {
			maskEdges(filtered, len(k))
		}
	}

	return restoreNaN(filtered, gaps), kernel, nil
}

// convolveSame convolves sig with kernel and returns the centered portion
// with the same length as sig. The inner loop scales the kernel by each
// input sample and accumulates, which vectorizes well.
func convolveSame(sig, kernel []float64) []float64 {
	n := len(sig)
	m := len(kernel)

	full := make([]float64, n+m-1)
	temp := make([]float64, m)
	for i, x := range sig {
		vecmath.ScaleBlock(temp, kernel, x)
		vecmath.AddBlockInPlace(full[i:i+m], temp)
	}

	start := (m - 1) / 2

	return full[start : start+n]
}

// maskEdges replaces the first and last ceil(m/2) samples with NaN; those
// samples are contaminated by the implicit zero padding at the boundary.
func maskEdges(sig []float64, m int) {
	nRmv := (m + 1) / 2
	if 2*nRmv >= len(sig) {
		nRmv = len(sig)
	}

	for i := 0; i < nRmv; i++ {
		sig[i] = math.NaN()
	}
	for i := len(sig) - nRmv; i < len(sig); i++ {
		sig[i] = math.NaN()
	}
}

// splitNaN returns sig with NaN samples removed, plus the gap mask needed to
// restore them.
func splitNaN(sig []float64) ([]float64, []bool) {
	gaps := make([]bool, len(sig))
	clean := make([]float64, 0, len(sig))

	for i, v := range sig {
		if math.IsNaN(v) {
			gaps[i] = true
			continue
		}
		clean = append(clean, v)
	}

	return clean, gaps
}

// restoreNaN scatters filtered back into a full-length slice with NaN at
// the recorded gap positions.
func restoreNaN(filtered []float64, gaps []bool) []float64 {
	out := make([]float64, len(gaps))
	j := 0
	for i := range out {
		if gaps[i] {
			out[i] = math.NaN()
			continue
		}
		out[i] = filtered[j]
		j++
	}

	return out
}
