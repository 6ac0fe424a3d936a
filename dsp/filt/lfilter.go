package filt

import (
	"fmt"
)

// lfilter applies the transfer function B(z)/A(z) to x in Direct-Form II
// Transposed, starting from the given state. z must have length
// max(len(b),len(a))-1; b and a must already be normalized to a[0] = 1 and
// padded to equal length. The state is updated in place.
func lfilter(b, a, z, x, y []float64) {
	n := len(b)
	if n == 1 {
		for i, xi := range x {
			y[i] = b[0] * xi
		}
		return
	}

	for i, xi := range x {
		yi := b[0]*xi + z[0]
		for j := 0; j < n-2; j++ {
			z[j] = b[j+1]*xi + z[j+1] - a[j+1]*yi
		}
		z[n-2] = b[n-1]*xi - a[n-1]*yi
		y[i] = yi
	}
}

// normalizeTF pads b and a to a common length and divides through by a[0].
func normalizeTF(b, a []float64) ([]float64, []float64, error) {
	if len(b) == 0 || len(a) == 0 {
		return nil, nil, fmt.Errorf("%w: empty transfer function", ErrInvalidDefinition)
	}
	if a[0] == 0 {
		return nil, nil, fmt.Errorf("%w: leading denominator coefficient is zero", ErrInvalidDefinition)
	}

	n := len(b)
	if len(a) > n {
		n = len(a)
	}

	bn := make([]float64, n)
	an := make([]float64, n)
	copy(bn, b)
	copy(an, a)

	inv := 1 / a[0]
	for i := range bn {
		bn[i] *= inv
		an[i] *= inv
	}

	return bn, an, nil
}

// stepState returns the per-unit-input steady state of the Direct-Form II
// Transposed delay line. Scaling it by the first processed sample kills the
// startup transient of a forward pass.
func stepState(b, a []float64) []float64 {
	n := len(b)
	if n == 1 {
		return nil
	}

	sumB, sumA := 0.0, 0.0
	for i := range b {
		sumB += b[i]
		sumA += a[i]
	}
	kdc := sumB / sumA

	si := make([]float64, n-1)
	acc := 0.0
	for j := n - 2; j >= 0; j-- {
		acc += b[j+1] - kdc*a[j+1]
		si[j] = acc
	}

	return si
}

// FiltFilt applies the transfer function forward and backward over x,
// cancelling phase distortion. The signal is extended at both ends with an
// odd reflection of 3*(max(len(b),len(a))-1) samples to suppress edge
// transients; signals shorter than that fail with [ErrShortSignal].
func FiltFilt(b, a, x []float64) ([]float64, error) {
	bn, an, err := normalizeTF(b, a)
	if err != nil {
		return nil, err
	}

	padlen := 3 * (len(bn) - 1)
	if padlen == 0 {
		out := make([]float64, len(x))
		scale := bn[0] * bn[0]
		for i, xi := range x {
			out[i] = scale * xi
		}
		return out, nil
	}

	if len(x) <= padlen {
		return nil, fmt.Errorf("%w: zero-phase filtering needs more than %d samples, got %d",
			ErrShortSignal, padlen, len(x))
	}

	si := stepState(bn, an)

	// Odd reflection about the first and last samples.
	ext := make([]float64, padlen+len(x)+padlen)
	for i := 0; i < padlen; i++ {
		ext[i] = 2*x[0] - x[padlen-i]
	}
	copy(ext[padlen:], x)
	last := len(x) - 1
	for i := 0; i < padlen; i++ {
		ext[padlen+len(x)+i] = 2*x[last] - x[last-1-i]
	}

	z := make([]float64, len(si))
	y := make([]float64, len(ext))

	// Forward pass.
	for j := range si {
		z[j] = si[j] * ext[0]
	}
	lfilter(bn, an, z, ext, y)

	// Backward pass.
	reverse(y)
	for j := range si {
		z[j] = si[j] * y[0]
	}
	lfilter(bn, an, z, y, y)
	reverse(y)

	out := make([]float64, len(x))
	copy(out, y[padlen:padlen+len(x)])

	return out, nil
}

func reverse(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
