package probability

import (
	"math"
	"runtime"
	"sync"

	"github.com/quantsim/optmc/models"
	"github.com/shirou/gopsutil/cpu"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// seedStride separates per-worker generator streams derived from one seed.
const seedStride = 0x9e3779b97f4a7c15

// Estimate is a Monte Carlo present-value estimate together with the
// statistical quality of the run that produced it.
type Estimate struct {
	Value    float64 `json:"value"`
	StdError float64 `json:"std_error"`
	Paths    int     `json:"paths"`
}

// Estimator prices a European option on a GBM underlying by simulation.
// A fixed seed and worker count reproduce the estimate exactly.
type Estimator struct {
	gbm     *models.GBM
	strike  float64
	seed    uint64
	workers int
}

// NewEstimator binds an estimator to a model, a strike and a seed. The
// worker count is detected once at construction.
func NewEstimator(gbm *models.GBM, strike float64, seed uint64) (*Estimator, error) {
	if err := models.ValidateStrike(strike); err != nil {
		return nil, err
	}
	return &Estimator{
		gbm:     gbm,
		strike:  strike,
		seed:    seed,
		workers: workerCount(),
	}, nil
}

// CallPrice estimates the discounted expected payoff of a call over n paths.
func (e *Estimator) CallPrice(n int) (Estimate, error) {
	return e.price(n, true)
}

// PutPrice estimates the discounted expected payoff of a put over n paths.
func (e *Estimator) PutPrice(n int) (Estimate, error) {
	return e.price(n, false)
}

func (e *Estimator) price(n int, isCall bool) (Estimate, error) {
	if err := models.ValidatePathCount(n); err != nil {
		return Estimate{}, err
	}

	shards := e.workers
	if shards < 1 {
		shards = 1
	}
	if n < shards {
		shards = 1
	}
	pathsPerShard := n / shards
	remainder := n % shards

	sums := make([]float64, shards)
	sumSqs := make([]float64, shards)

	var wg sync.WaitGroup
	for i := 0; i < shards; i++ {
		paths := pathsPerShard
		if i == shards-1 {
			paths += remainder
		}

		wg.Add(1)
		go func(shard, paths int) {
			defer wg.Done()
			dist := distuv.Normal{
				Mu:    0,
				Sigma: 1,
				Src:   rand.NewSource(e.seed + uint64(shard)*seedStride),
			}

			var sum, sumSq float64
			for j := 0; j < paths; j++ {
				sT := e.gbm.TerminalPrice(dist.Rand())
				var payoff float64
				if isCall {
					payoff = math.Max(sT-e.strike, 0)
				} else {
					payoff = math.Max(e.strike-sT, 0)
				}
				sum += payoff
				sumSq += payoff * payoff
			}
			sums[shard] = sum
			sumSqs[shard] = sumSq
		}(i, paths)
	}
	wg.Wait()

	// Merge shard totals in index order so a fixed seed and worker count
	// reproduce the estimate bit for bit.
	var totalSum, totalSumSq float64
	for i := 0; i < shards; i++ {
		totalSum += sums[i]
		totalSumSq += sumSqs[i]
	}

	discount := math.Exp(-e.gbm.Params.R * e.gbm.Params.T)
	mean := totalSum / float64(n)

	var stdErr float64
	if n > 1 {
		variance := (totalSumSq - totalSum*totalSum/float64(n)) / float64(n-1)
		if variance > 0 {
			stdErr = discount * math.Sqrt(variance/float64(n))
		}
	}

	return Estimate{
		Value:    mean * discount,
		StdError: stdErr,
		Paths:    n,
	}, nil
}

func workerCount() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}
