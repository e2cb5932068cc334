package track

import (
	"fmt"
	"io"
	"log"
	"maps"
	"slices"
	"sync"

	"github.com/wildstyl3r/collimc/internal/crosssection"
	"github.com/wildstyl3r/collimc/internal/model"
	"github.com/wildstyl3r/collimc/internal/particle"
	"github.com/wildstyl3r/collimc/internal/random"
	"github.com/wildstyl3r/collimc/internal/scatter"
)

// Run describes a batch of particles sent through one jaw.
type Run struct {
	Jaw             Jaw
	Particles       int
	Threads         int
	Seed            uint64
	ScatterType     crosssection.ScatterType
	ReferenceEnergy float64 // [GeV]
	Source          particle.HaloSource
	Verbose         bool
	Logger          *log.Logger
}

type Result struct {
	Jaw          Jaw
	Particles    int
	Lost         []float64 // absorption positions [m]
	Depths       []float64 // absorption depths into the jaw [m]
	SurvivorDP   []float64
	Steps        int
	Interactions map[string]int
	ProcessTypes []string
	Fractions    []float64
}

// AbsorbedFraction is the share of particles lost in the jaw.
func (r *Result) AbsorbedFraction() float64 {
	if r.Particles == 0 {
		return 0
	}
	return float64(len(r.Lost)) / float64(r.Particles)
}

type event struct {
	lost    []float64
	outcome Outcome
	dp      float64
	err     error
}

// Execute tracks the particles with Threads workers. Worker w owns a
// scattering model and a random source seeded with Seed+w, and tracks every
// particle i with i mod Threads = w, so the result only depends on the seed
// and the thread count.
func (r Run) Execute() (Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	threads := max(r.Threads, 1)

	res := Result{
		Jaw:          r.Jaw,
		Particles:    r.Particles,
		Interactions: make(map[string]int),
	}

	var computeWg, stateWg sync.WaitGroup
	eventflow := make(chan event, 1024)
	var firstErr error
	stateWg.Add(1)
	go func() {
		defer stateWg.Done()
		for e := range eventflow {
			if e.err != nil {
				if firstErr == nil {
					firstErr = e.err
				}
				continue
			}
			res.Steps += e.outcome.Steps
			if e.outcome.Absorbed {
				res.Lost = append(res.Lost, e.lost...)
				res.Depths = append(res.Depths, e.outcome.Depth)
			} else {
				res.SurvivorDP = append(res.SurvivorDP, e.dp)
			}
		}
	}()

	models := make([]*model.ScatteringModel, threads)
	status := []string{"//", "==", "\\\\", "||"}
	for w := range threads {
		rng := random.New(r.Seed + uint64(w))
		m := model.New(rng, scatter.Defaults(rng), model.WithLogger(logger), model.WithVerbose(r.Verbose && w == 0))
		m.SetScatterType(r.ScatterType)
		models[w] = m
		jaw := r.Jaw

		computeWg.Add(1)
		go func() {
			defer computeWg.Done()
			counter := 0
			for i := w; i < r.Particles; i += threads {
				counter++
				if r.Verbose && w == 0 {
					fmt.Fprint(logger.Writer(), "\r"+status[counter&0b11])
				}
				p := r.Source.New(rng)
				var lost []float64
				out, err := jaw.Collimate(m, &p, r.ReferenceEnergy, &lost)
				eventflow <- event{lost: lost, outcome: out, dp: p.DP, err: err}
				if err != nil {
					return
				}
			}
		}()
	}

	computeWg.Wait()
	if r.Verbose {
		fmt.Fprintln(logger.Writer())
	}
	close(eventflow)
	stateWg.Wait()

	if firstErr != nil {
		return res, firstErr
	}
	// workers report in arbitrary order
	slices.Sort(res.Lost)
	slices.Sort(res.Depths)
	slices.Sort(res.SurvivorDP)
	for _, m := range models {
		for label, n := range m.Interactions() {
			res.Interactions[label] += n
		}
	}
	res.ProcessTypes = models[0].ProcessTypes()
	res.Fractions = models[0].Fractions(r.Jaw.Material)
	if res.Fractions == nil {
		for _, m := range models[1:] {
			if f := m.Fractions(r.Jaw.Material); f != nil {
				res.Fractions = f
				break
			}
		}
	}
	maps.DeleteFunc(res.Interactions, func(_ string, n int) bool { return n == 0 })
	return res, nil
}
