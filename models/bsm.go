package models

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	maxIterations = 100
	epsilon       = 1e-8
)

// BSMResult bundles the closed-form price with its first-order Greeks.
type BSMResult struct {
	Price float64 `json:"price"`
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
	Rho   float64 `json:"rho"`
}

// BSMCall computes the exact Black-Scholes-Merton value of a European call.
func BSMCall(p Parameters, k float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if err := ValidateStrike(k); err != nil {
		return 0, err
	}
	return bsmPrice(p.S0, k, p.T, p.R, p.Sigma, true), nil
}

// BSMPut computes the exact Black-Scholes-Merton value of a European put.
func BSMPut(p Parameters, k float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if err := ValidateStrike(k); err != nil {
		return 0, err
	}
	return bsmPrice(p.S0, k, p.T, p.R, p.Sigma, false), nil
}

// BSMGreeks computes the closed-form price together with delta, gamma,
// theta, vega and rho.
func BSMGreeks(p Parameters, k float64, isCall bool) (BSMResult, error) {
	if err := p.Validate(); err != nil {
		return BSMResult{}, err
	}
	if err := ValidateStrike(k); err != nil {
		return BSMResult{}, err
	}

	S, T, r, sigma := p.S0, p.T, p.R, p.Sigma
	d1 := (math.Log(S/k) + (r+0.5*sigma*sigma)*T) / (sigma * math.Sqrt(T))
	d2 := d1 - sigma*math.Sqrt(T)

	var delta, price float64
	if isCall {
		delta = normCDF(d1)
		price = S*normCDF(d1) - k*math.Exp(-r*T)*normCDF(d2)
	} else {
		delta = normCDF(d1) - 1
		price = k*math.Exp(-r*T)*normCDF(-d2) - S*normCDF(-d1)
	}

	gamma := normPDF(d1) / (S * sigma * math.Sqrt(T))
	vega := S * normPDF(d1) * math.Sqrt(T)
	theta := -(S*normPDF(d1)*sigma)/(2*math.Sqrt(T)) - r*k*math.Exp(-r*T)*normCDF(d2)
	rho := k * T * math.Exp(-r*T) * normCDF(d2)
	if !isCall {
		theta = theta + r*k*math.Exp(-r*T)
		rho = -k * T * math.Exp(-r*T) * normCDF(-d2)
	}

	return BSMResult{
		Price: price,
		Delta: delta,
		Gamma: gamma,
		Theta: theta,
		Vega:  vega,
		Rho:   rho,
	}, nil
}

// ImpliedVolatility inverts the closed-form price by Newton-Raphson on
// vega. Returns NaN when the iteration fails to converge.
func ImpliedVolatility(targetPrice float64, p Parameters, k float64, isCall bool) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if err := ValidateStrike(k); err != nil {
		return 0, err
	}

	sigma := 0.5 // Initial guess
	for i := 0; i < maxIterations; i++ {
		price := bsmPrice(p.S0, k, p.T, p.R, sigma, isCall)
		vega := bsmVega(p.S0, k, p.T, p.R, sigma)

		diff := price - targetPrice
		if math.Abs(diff) < epsilon {
			return sigma, nil
		}

		sigma = sigma - diff/vega
		if sigma <= 0 {
			sigma = 0.0001 // Avoid negative volatility
		}
	}
	return math.NaN(), nil // Failed to converge
}

func bsmPrice(S, k, T, r, sigma float64, isCall bool) float64 {
	d1 := (math.Log(S/k) + (r+0.5*sigma*sigma)*T) / (sigma * math.Sqrt(T))
	d2 := d1 - sigma*math.Sqrt(T)

	if isCall {
		return S*normCDF(d1) - k*math.Exp(-r*T)*normCDF(d2)
	}
	return k*math.Exp(-r*T)*normCDF(-d2) - S*normCDF(-d1)
}

func bsmVega(S, k, T, r, sigma float64) float64 {
	d1 := (math.Log(S/k) + (r+0.5*sigma*sigma)*T) / (sigma * math.Sqrt(T))
	return S * normPDF(d1) * math.Sqrt(T)
}

// normCDF calculates the cumulative distribution function of the standard
// normal distribution
func normCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// normPDF calculates the probability density function of the standard
// normal distribution
func normPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / math.Sqrt(2*math.Pi)
}
