package analysis

import (
	"math"
	"testing"
)

func TestDominantFrequency(t *testing.T) {
	dt := 0.01
	freq := 3.0
	samples := make([]float64, 1024)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * freq * float64(i) * dt)
	}

	got, err := DominantFrequency(samples, dt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resolution := 1 / (float64(len(samples)) * dt)
	if math.Abs(got-freq) > resolution {
		t.Errorf("expected %.3f Hz, got %.3f Hz", freq, got)
	}
}

func TestPowerSpectrumLength(t *testing.T) {
	ps := PowerSpectrum(make([]float64, 500))
	if len(ps) != 256 {
		t.Errorf("expected 256 bins after padding to 512, got %d", len(ps))
	}
}

func TestPowerSpectrumRemovesMean(t *testing.T) {
	samples := []float64{5, 5, 5, 5, 5, 5, 5, 5}
	ps := PowerSpectrum(samples)
	for i, v := range ps {
		if v > 1e-12 {
			t.Errorf("bin %d should be empty for a constant signal, got %e", i, v)
		}
	}
}

func TestDominantFrequencyTooShort(t *testing.T) {
	if _, err := DominantFrequency([]float64{1, 2}, 0.1); err != ErrTooShort {
		t.Errorf("expected ErrTooShort, got %v", err)
	}
}
