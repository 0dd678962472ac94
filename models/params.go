package models

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned whenever a pricing request carries a
// malformed input (non-positive spot, volatility, expiry or strike, or a
// path count below one). Callers should test with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// Parameters holds the Black-Scholes-Merton model inputs shared by the
// simulation and the closed-form pricer.
type Parameters struct {
	S0    float64 `json:"s0"`    // spot price of the underlying
	R     float64 `json:"r"`     // annualized risk-free rate
	Sigma float64 `json:"sigma"` // annualized volatility
	T     float64 `json:"t"`     // time to expiry in years
}

// Validate rejects parameter sets outside the model's domain before any
// randomness is consumed.
func (p Parameters) Validate() error {
	switch {
	case !(p.S0 > 0) || math.IsInf(p.S0, 0):
		return fmt.Errorf("%w: spot price s0 must be positive and finite, got %v", ErrInvalidParameter, p.S0)
	case !(p.Sigma > 0) || math.IsInf(p.Sigma, 0):
		return fmt.Errorf("%w: volatility sigma must be positive and finite, got %v", ErrInvalidParameter, p.Sigma)
	case !(p.T > 0) || math.IsInf(p.T, 0):
		return fmt.Errorf("%w: time to expiry t must be positive and finite, got %v", ErrInvalidParameter, p.T)
	case math.IsNaN(p.R) || math.IsInf(p.R, 0):
		return fmt.Errorf("%w: risk-free rate r must be finite, got %v", ErrInvalidParameter, p.R)
	}
	return nil
}

// ValidateStrike rejects non-positive or non-finite exercise prices.
func ValidateStrike(k float64) error {
	if !(k > 0) || math.IsInf(k, 0) {
		return fmt.Errorf("%w: strike k must be positive and finite, got %v", ErrInvalidParameter, k)
	}
	return nil
}

// ValidatePathCount rejects simulation sizes below one path.
func ValidatePathCount(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: path count n must be at least 1, got %d", ErrInvalidParameter, n)
	}
	return nil
}
