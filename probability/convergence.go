package probability

import (
	"math"

	"github.com/quantsim/optmc/models"
	mpb "github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"
)

// ConvergencePoint records one rung of a convergence ladder: the Monte
// Carlo estimate at a given path count and its gap to the closed form.
type ConvergencePoint struct {
	Paths      int     `json:"paths"`
	Estimate   float64 `json:"estimate"`
	StdError   float64 `json:"std_error"`
	ClosedForm float64 `json:"closed_form"`
	AbsGap     float64 `json:"abs_gap"`
}

// ConvergenceStudy prices the call at each path count in sizes and compares
// against the closed-form value, reporting progress on a terminal bar. Each
// rung runs on its own seed stream so the gaps are independent draws.
func ConvergenceStudy(gbm *models.GBM, strike float64, sizes []int, seed uint64) ([]ConvergencePoint, error) {
	if len(sizes) == 0 {
		return nil, nil
	}

	closedForm, err := models.BSMCall(gbm.Params, strike)
	if err != nil {
		return nil, err
	}

	p := mpb.New(mpb.WithWidth(64))
	bar := p.AddBar(int64(len(sizes)),
		mpb.PrependDecorators(
			decor.Name("Convergence"),
			decor.Percentage(decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("(%d / %d)", decor.WCSyncSpace),
		),
	)

	points := make([]ConvergencePoint, 0, len(sizes))
	for i, n := range sizes {
		est, err := NewEstimator(gbm, strike, seed+uint64(i))
		if err != nil {
			return nil, err
		}
		estimate, err := est.CallPrice(n)
		if err != nil {
			return nil, err
		}
		points = append(points, ConvergencePoint{
			Paths:      n,
			Estimate:   estimate.Value,
			StdError:   estimate.StdError,
			ClosedForm: closedForm,
			AbsGap:     math.Abs(estimate.Value - closedForm),
		})
		bar.Increment()
	}
	p.Wait()

	return points, nil
}
