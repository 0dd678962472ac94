package models

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestNormalSource_BatchLengthAndFreshness(t *testing.T) {
	src := NewNormalSource(42)

	first, err := src.DrawBatch(1000)
	if err != nil {
		t.Fatalf("DrawBatch err: %v", err)
	}
	if len(first) != 1000 {
		t.Fatalf("batch length mismatch: got=%d", len(first))
	}

	// A second call must advance the generator, not replay the batch.
	second, err := src.DrawBatch(1000)
	if err != nil {
		t.Fatalf("DrawBatch err: %v", err)
	}
	identical := true
	for i := range first {
		if first[i] != second[i] {
			identical = false
			break
		}
	}
	if identical {
		t.Fatal("consecutive batches are identical, generator did not advance")
	}
}

func TestNormalSource_SeedDeterminism(t *testing.T) {
	a, err := NewNormalSource(7).DrawBatch(500)
	if err != nil {
		t.Fatalf("DrawBatch err: %v", err)
	}
	b, err := NewNormalSource(7).DrawBatch(500)
	if err != nil {
		t.Fatalf("DrawBatch err: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("position %d differs across identically seeded sources: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestNormalSource_Moments(t *testing.T) {
	draws, err := NewNormalSource(99).DrawBatch(200_000)
	if err != nil {
		t.Fatalf("DrawBatch err: %v", err)
	}

	mean := stat.Mean(draws, nil)
	variance := stat.Variance(draws, nil)

	// Std error of the mean is ~1/sqrt(200k) ~ 0.0022.
	if math.Abs(mean) > 0.02 {
		t.Fatalf("sample mean too far from 0: %v", mean)
	}
	if math.Abs(variance-1) > 0.05 {
		t.Fatalf("sample variance too far from 1: %v", variance)
	}
}

func TestNormalSource_InvalidBatchSize(t *testing.T) {
	src := NewNormalSource(1)
	for _, n := range []int{0, -1, -100} {
		if _, err := src.DrawBatch(n); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("DrawBatch(%d): expected ErrInvalidParameter, got %v", n, err)
		}
	}
}
