package model

import (
	"io"
	"log"
	"maps"
	"os"

	"github.com/tebeka/atexit"
	"github.com/wildstyl3r/collimc/internal/crosssection"
	"github.com/wildstyl3r/collimc/internal/material"
	"github.com/wildstyl3r/collimc/internal/particle"
)

// Process is one physical scattering process. Configure sets the process up
// for a material and its cross sections, after which Sigma reports the
// process cross section in barns. Scatter applies the interaction to p and
// reports whether the particle was absorbed.
type Process interface {
	Configure(mat *material.Material, cs *crosssection.CrossSections)
	Sigma() float64
	ProcessType() string
	Scatter(p *particle.PSvector, E float64) bool
}

type RandomSource interface {
	Uniform(lo, hi float64) float64
	Normal(mean, stddev float64) float64
	Landau() float64
}

type CrossSectionsBuilder func(mat *material.Material, energy float64, st crosssection.ScatterType) (*crosssection.CrossSections, error)

// ScatteringModel samples interactions of particles with collimator
// material. Cross sections are cached per material and scatter type for the
// lifetime of the model.
//
// A ScatteringModel is not safe for concurrent use: run one per worker.
type ScatteringModel struct {
	Processes []Process

	scatterType   crosssection.ScatterType
	rng           RandomSource
	build         CrossSectionsBuilder
	crossSections map[cacheKey]*cacheEntry
	active        *cacheEntry
	interactions  map[string]int

	verbose bool
	logger  *log.Logger
	fatalf  func(format string, args ...any)
}

type Option func(*ScatteringModel)

func WithBuilder(build CrossSectionsBuilder) Option {
	return func(m *ScatteringModel) { m.build = build }
}

func WithLogger(logger *log.Logger) Option {
	return func(m *ScatteringModel) { m.logger = logger }
}

func WithVerbose(verbose bool) Option {
	return func(m *ScatteringModel) { m.verbose = verbose }
}

// WithFatalHandler replaces the handler invoked when the process selection
// invariant is broken. The default terminates the program through atexit.
func WithFatalHandler(fatalf func(format string, args ...any)) Option {
	return func(m *ScatteringModel) { m.fatalf = fatalf }
}

func New(rng RandomSource, processes []Process, opts ...Option) *ScatteringModel {
	m := &ScatteringModel{
		Processes:     processes,
		scatterType:   crosssection.SixTrack,
		rng:           rng,
		build:         crosssection.New,
		crossSections: make(map[cacheKey]*cacheEntry),
		interactions:  make(map[string]int),
		logger:        log.New(os.Stderr, "", 0),
		fatalf:        atexit.Fatalf,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard, "", 0)
	}
	return m
}

// SetScatterType selects the physics model for cross sections built from now
// on. Entries built under another scatter type stay cached under their own
// key.
func (m *ScatteringModel) SetScatterType(st crosssection.ScatterType) {
	m.scatterType = st
}

func (m *ScatteringModel) ScatterType() crosssection.ScatterType {
	return m.scatterType
}

// Fractions returns the normalised process probabilities for mat under the
// current scatter type, or nil if mat has not been sampled yet.
func (m *ScatteringModel) Fractions(mat *material.Material) []float64 {
	entry, ok := m.crossSections[m.key(mat)]
	if !ok {
		return nil
	}
	return append([]float64(nil), entry.fraction...)
}

// Interactions returns how many times each process type was selected.
func (m *ScatteringModel) Interactions() map[string]int {
	return maps.Clone(m.interactions)
}

// ProcessTypes lists the process labels in selection order.
func (m *ScatteringModel) ProcessTypes() []string {
	types := make([]string, len(m.Processes))
	for i, p := range m.Processes {
		types[i] = p.ProcessType()
	}
	return types
}
