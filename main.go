package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/quantsim/optmc/models"
	"github.com/quantsim/optmc/probability"
	"github.com/xhhuango/json"
)

type report struct {
	Params      models.Parameters             `json:"params"`
	Strike      float64                       `json:"strike"`
	Seed        uint64                        `json:"seed"`
	Call        probability.Estimate          `json:"monte_carlo_call"`
	Put         probability.Estimate          `json:"monte_carlo_put"`
	CallClosed  models.BSMResult              `json:"closed_form_call"`
	PutClosed   models.BSMResult              `json:"closed_form_put"`
	Summary     probability.Summary           `json:"terminal_price_summary"`
	Histogram   probability.HistogramData     `json:"terminal_price_histogram"`
	Convergence []probability.ConvergencePoint `json:"convergence"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults and environment")
	}

	params := models.Parameters{
		S0:    envFloat("S0", 100),
		R:     envFloat("R", 0.03),
		Sigma: envFloat("SIGMA", 0.4),
		T:     envFloat("T", 0.25),
	}
	strike := envFloat("K", 105)
	paths := envInt("PATHS", 1_000_000)
	bins := envInt("BINS", 50)
	seed := envUint("SEED", uint64(time.Now().UnixNano()))

	gbm, err := models.NewGBM(params)
	if err != nil {
		log.Fatalf("Bad model parameters: %s", err)
	}

	fmt.Printf("Pricing call: s0=%.2f r=%.4f sigma=%.4f t=%.4f k=%.2f paths=%d\n",
		params.S0, params.R, params.Sigma, params.T, strike, paths)

	estimator, err := probability.NewEstimator(gbm, strike, seed)
	if err != nil {
		log.Fatalf("Bad strike: %s", err)
	}

	start := time.Now()
	call, err := estimator.CallPrice(paths)
	if err != nil {
		log.Fatalf("Monte Carlo call failed: %s", err)
	}
	put, err := estimator.PutPrice(paths)
	if err != nil {
		log.Fatalf("Monte Carlo put failed: %s", err)
	}
	fmt.Printf("Monte Carlo call: %.4f (stderr %.4f), put: %.4f (stderr %.4f) in %v\n",
		call.Value, call.StdError, put.Value, put.StdError, time.Since(start))

	callClosed, err := models.BSMGreeks(params, strike, true)
	if err != nil {
		log.Fatalf("Closed-form call failed: %s", err)
	}
	putClosed, err := models.BSMGreeks(params, strike, false)
	if err != nil {
		log.Fatalf("Closed-form put failed: %s", err)
	}
	fmt.Printf("Closed-form call: %.4f, put: %.4f\n", callClosed.Price, putClosed.Price)
	fmt.Printf("Monte Carlo vs closed-form gap: %.4f\n", call.Value-callClosed.Price)

	src := models.NewNormalSource(seed)
	sample, err := gbm.Simulate(src, paths)
	if err != nil {
		log.Fatalf("Terminal price simulation failed: %s", err)
	}
	summary, err := probability.Summarize(sample)
	if err != nil {
		log.Fatalf("Summary failed: %s", err)
	}
	histogram, err := probability.Histogram(sample, bins)
	if err != nil {
		log.Fatalf("Histogram failed: %s", err)
	}
	fmt.Printf("Terminal price mean: %.4f, stddev: %.4f, median: %.4f\n",
		summary.Mean, summary.StdDev, summary.Median)

	sizes := []int{1_000, 10_000, 100_000, paths}
	convergence, err := probability.ConvergenceStudy(gbm, strike, sizes, seed+1)
	if err != nil {
		log.Fatalf("Convergence study failed: %s", err)
	}
	for _, point := range convergence {
		fmt.Printf("n=%-9d estimate=%.4f stderr=%.4f gap=%.4f\n",
			point.Paths, point.Estimate, point.StdError, point.AbsGap)
	}

	out := report{
		Params:      params,
		Strike:      strike,
		Seed:        seed,
		Call:        call,
		Put:         put,
		CallClosed:  callClosed,
		PutClosed:   putClosed,
		Summary:     summary,
		Histogram:   histogram,
		Convergence: convergence,
	}

	jreport, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Printf("Error marshalling report: %s\n", err.Error())
		return
	}

	f := "report.json"
	err = ioutil.WriteFile(f, jreport, 0644)
	if err != nil {
		fmt.Printf("Error writing to file %s: %s\n", f, err.Error())
		return
	}

	fmt.Printf("Successfully wrote pricing report to %s\n", f)
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("Bad value for %s: %s", key, v)
	}
	return f
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("Bad value for %s: %s", key, v)
	}
	return i
}

func envUint(key string, fallback uint64) uint64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	u, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		log.Fatalf("Bad value for %s: %s", key, v)
	}
	return u
}
