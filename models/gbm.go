package models

import (
	"math"
)

// GBM is the geometric Brownian motion terminal-price model. The drift and
// diffusion terms are precomputed once so batch evaluation is a single
// multiply-exp per draw.
type GBM struct {
	Params Parameters

	drift float64 // (r - 0.5*sigma^2) * t
	vol   float64 // sigma * sqrt(t)
}

// NewGBM validates the parameters up front so every later evaluation is
// guaranteed to stay in the model's domain.
func NewGBM(p Parameters) (*GBM, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &GBM{
		Params: p,
		drift:  (p.R - 0.5*p.Sigma*p.Sigma) * p.T,
		vol:    p.Sigma * math.Sqrt(p.T),
	}, nil
}

// TerminalPrice maps one standard-normal draw to a terminal stock price:
//
//	s0 * exp((r - 0.5*sigma^2)*t + sigma*sqrt(t)*z)
//
// The result is strictly positive for any finite z.
func (g *GBM) TerminalPrice(z float64) float64 {
	return g.Params.S0 * math.Exp(g.drift+g.vol*z)
}

// TerminalPrices applies TerminalPrice elementwise, preserving length and
// ordering: index i of the result is derived from index i of z.
func (g *GBM) TerminalPrices(z []float64) []float64 {
	prices := make([]float64, len(z))
	for i, zi := range z {
		prices[i] = g.TerminalPrice(zi)
	}
	return prices
}

// Simulate draws n fresh standard normals from src and returns the
// corresponding terminal prices.
func (g *GBM) Simulate(src *NormalSource, n int) ([]float64, error) {
	draws, err := src.DrawBatch(n)
	if err != nil {
		return nil, err
	}
	return g.TerminalPrices(draws), nil
}
