package probability

import (
	"fmt"
	"math"
	"sort"

	"github.com/quantsim/optmc/models"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// HistogramData is the boundary contract handed to the visualization
// consumer: bin dividers (len bins+1) and the count per bin (len bins).
type HistogramData struct {
	Dividers []float64 `json:"dividers"`
	Counts   []float64 `json:"counts"`
}

// Histogram bins a price sample into equal-width intervals spanning
// [min, max]. The final bin is right-closed so the sample maximum is
// counted. The input slice is not modified.
func Histogram(sample []float64, bins int) (HistogramData, error) {
	if len(sample) == 0 {
		return HistogramData{}, fmt.Errorf("%w: sample must not be empty", models.ErrInvalidParameter)
	}
	if bins < 1 {
		return HistogramData{}, fmt.Errorf("%w: bin count must be at least 1, got %d", models.ErrInvalidParameter, bins)
	}

	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		// Degenerate sample, give it a unit-wide bin range.
		lo -= 0.5
		hi += 0.5
	}

	dividers := make([]float64, bins+1)
	floats.Span(dividers, lo, hi)
	// stat.Histogram treats bins as half-open [lo, hi), nudge the top
	// divider so the maximum lands in the last bin.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)
	return HistogramData{Dividers: dividers, Counts: counts}, nil
}
