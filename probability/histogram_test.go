package probability

import (
	"errors"
	"testing"

	"github.com/quantsim/optmc/models"
)

func TestHistogram_CountsAndDividers(t *testing.T) {
	sample := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	h, err := Histogram(sample, 5)
	if err != nil {
		t.Fatalf("Histogram err: %v", err)
	}
	if len(h.Counts) != 5 {
		t.Fatalf("expected 5 bins, got %d", len(h.Counts))
	}
	if len(h.Dividers) != 6 {
		t.Fatalf("expected 6 dividers, got %d", len(h.Dividers))
	}

	total := 0.0
	for _, c := range h.Counts {
		total += c
	}
	if total != float64(len(sample)) {
		t.Fatalf("counts sum to %v, want %d (maximum must land in the last bin)", total, len(sample))
	}

	for i := 1; i < len(h.Dividers); i++ {
		if h.Dividers[i] <= h.Dividers[i-1] {
			t.Fatalf("dividers not strictly increasing at %d: %v", i, h.Dividers)
		}
	}
}

func TestHistogram_SimulatedSampleCoversAllPaths(t *testing.T) {
	gbm, err := models.NewGBM(models.Parameters{S0: 100, R: 0.03, Sigma: 0.4, T: 0.25})
	if err != nil {
		t.Fatalf("NewGBM err: %v", err)
	}
	sample, err := gbm.Simulate(models.NewNormalSource(11), 50_000)
	if err != nil {
		t.Fatalf("Simulate err: %v", err)
	}

	h, err := Histogram(sample, 40)
	if err != nil {
		t.Fatalf("Histogram err: %v", err)
	}
	total := 0.0
	for _, c := range h.Counts {
		total += c
	}
	if total != 50_000 {
		t.Fatalf("counts sum to %v, want 50000", total)
	}
}

func TestHistogram_SingleBinAndDegenerateSample(t *testing.T) {
	h, err := Histogram([]float64{3, 7, 5}, 1)
	if err != nil {
		t.Fatalf("Histogram err: %v", err)
	}
	if len(h.Counts) != 1 || h.Counts[0] != 3 {
		t.Fatalf("single bin should hold everything: %v", h.Counts)
	}

	// All-equal sample still bins cleanly.
	h, err = Histogram([]float64{4, 4, 4, 4}, 3)
	if err != nil {
		t.Fatalf("Histogram err: %v", err)
	}
	total := 0.0
	for _, c := range h.Counts {
		total += c
	}
	if total != 4 {
		t.Fatalf("degenerate sample lost values: %v", h.Counts)
	}
}

func TestHistogram_InvalidInputs(t *testing.T) {
	if _, err := Histogram(nil, 10); !errors.Is(err, models.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter for empty sample, got %v", err)
	}
	if _, err := Histogram([]float64{1, 2}, 0); !errors.Is(err, models.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter for zero bins, got %v", err)
	}
}
