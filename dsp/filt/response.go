package filt

import (
	"math"
	"math/cmplx"

	"github.com/spectralab/ephys-dsp/dsp/core"
)

// FrequencyResponse computes the magnitude response of a transfer function
// in dB over n evenly spaced frequencies from 0 (inclusive) to Nyquist
// (exclusive).
func FrequencyResponse(b, a []float64, fs float64, n int) ([]float64, []float64) {
	if n <= 0 {
		n = defaultConfig().responsePoints
	}

	freqs := make([]float64, n)
	db := make([]float64, n)

	for k := range freqs {
		w := math.Pi * float64(k) / float64(n)
		freqs[k] = w * fs / (2 * math.Pi)
		db[k] = core.LinearToDB(cmplx.Abs(evalTransfer(b, a, w)))
	}

	return freqs, db
}

// evalTransfer evaluates H(e^{-jw}) = B(e^{-jw}) / A(e^{-jw}) by Horner's
// rule in powers of e^{-jw}.
func evalTransfer(b, a []float64, w float64) complex128 {
	e := cmplx.Exp(complex(0, -w))

	num := complex(0, 0)
	for i := len(b) - 1; i >= 0; i-- {
		num = num*e + complex(b[i], 0)
	}

	den := complex(0, 0)
	for i := len(a) - 1; i >= 0; i-- {
		den = den*e + complex(a[i], 0)
	}

	return num / den
}
