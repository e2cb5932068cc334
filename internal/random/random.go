// Package random is the shared random number source of a tracking worker.
//
// A Source is not safe for concurrent use; every worker owns one, seeded
// explicitly so that a run is reproducible for a fixed seed and call order.
package random

import (
	"math"
	"math/rand/v2"
)

type Source struct {
	rng *rand.Rand
}

func New(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Uniform draws from [lo, hi).
func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

func (s *Source) Normal(mean, stddev float64) float64 {
	return math.FMA(stddev, s.rng.NormFloat64(), mean)
}

// Landau draws from the standard Landau distribution (mode near -0.2228),
// the maximally skewed stable law with alpha = 1 and scale pi/2, using the
// Chambers-Mallows-Stuck construction.
func (s *Source) Landau() float64 {
	for {
		v := s.Uniform(-math.Pi/2., math.Pi/2.)
		w := s.rng.ExpFloat64()
		halfPiV := math.Pi/2. + v
		if halfPiV <= 0 || w <= 0 {
			continue
		}
		return halfPiV*math.Tan(v) - math.Log(w*math.Cos(v)/halfPiV)
	}
}
