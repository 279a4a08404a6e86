package analysis

import (
	"errors"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

var ErrTooShort = errors.New("analysis: need at least 4 samples")

// PowerSpectrum returns |X_k| for k in [0, N/2) after zero-padding the
// samples to a power of two. The mean is removed first so the DC bin
// does not dominate.
func PowerSpectrum(samples []float64) []float64 {
	n := 1
	for n < len(samples) {
		n *= 2
	}

	mean := 0.0
	for _, v := range samples {
		mean += v
	}
	if len(samples) > 0 {
		mean /= float64(len(samples))
	}

	padded := make([]float64, n)
	for i, v := range samples {
		padded[i] = v - mean
	}

	spectrum := fft.FFTReal(padded)
	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency returns the frequency in Hz of the strongest non-DC
// bin for samples taken every dt seconds.
func DominantFrequency(samples []float64, dt float64) (float64, error) {
	if len(samples) < 4 || !(dt > 0) {
		return 0, ErrTooShort
	}

	ps := PowerSpectrum(samples)
	maxIdx := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[maxIdx] {
			maxIdx = i
		}
	}

	n := 2 * len(ps)
	return float64(maxIdx) / (float64(n) * dt), nil
}
