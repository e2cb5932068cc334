// Package scatter implements the proton-matter interaction processes
// selected by the scattering model, with the kinematics of the K2 model:
// momentum transfers t are sampled from exponential (nuclear, pp) or 1/t^2
// (Rutherford) distributions and turned into a transverse kick sqrt(t)/p at
// a uniform azimuth.
package scatter

import (
	"math"

	"github.com/wildstyl3r/collimc/internal/crosssection"
	"github.com/wildstyl3r/collimc/internal/material"
	"github.com/wildstyl3r/collimc/internal/model"
	"github.com/wildstyl3r/collimc/internal/particle"
)

type Random interface {
	Uniform(lo, hi float64) float64
}

// Rutherford momentum transfer limits [GeV^2]
const (
	RutherfordTLow  = 0.9982e-3
	RutherfordTHigh = 1.0
)

type process struct {
	label string
	sigma float64
	rng   Random
}

func (p *process) Sigma() float64 {
	return p.sigma
}

func (p *process) ProcessType() string {
	return p.label
}

// exponentialT samples t from exp(-b t).
func (p *process) exponentialT(slope float64) float64 {
	return -math.Log(1.-p.rng.Uniform(0, 1)) / slope
}

// kick deflects the particle by sqrt(t)/E at a random azimuth.
func (p *process) kick(ps *particle.PSvector, E0, t float64) {
	theta := math.Sqrt(t) / ps.Energy(E0)
	phi := p.rng.Uniform(0, 2.*math.Pi)
	ps.XP += theta * math.Cos(phi)
	ps.YP += theta * math.Sin(phi)
}

type ElasticPN struct {
	process
	slope float64
}

func NewElasticPN(rng Random) *ElasticPN {
	return &ElasticPN{process: process{label: "Elastic pn", rng: rng}}
}

func (e *ElasticPN) Configure(mat *material.Material, cs *crosssection.CrossSections) {
	e.sigma = cs.SigmaPNElastic
	e.slope = cs.NuclearSlope
}

func (e *ElasticPN) Scatter(p *particle.PSvector, E float64) bool {
	e.kick(p, E, e.exponentialT(e.slope))
	return false
}

type ElasticPP struct {
	process
	slope float64
}

func NewElasticPP(rng Random) *ElasticPP {
	return &ElasticPP{process: process{label: "Elastic pp", rng: rng}}
}

func (e *ElasticPP) Configure(mat *material.Material, cs *crosssection.CrossSections) {
	e.sigma = cs.EffectiveNucleons * cs.SigmaPPElastic
	e.slope = cs.PPSlope
}

func (e *ElasticPP) Scatter(p *particle.PSvector, E float64) bool {
	e.kick(p, E, e.exponentialT(e.slope))
	return false
}

// SingleDiffractive excites one proton into a diffractive system of mass
// squared xm2, taking the fraction xm2/s of the particle momentum.
type SingleDiffractive struct {
	process
	slope float64
	s     float64
}

func NewSingleDiffractive(rng Random) *SingleDiffractive {
	return &SingleDiffractive{process: process{label: "Single Diffractive", rng: rng}}
}

func (sd *SingleDiffractive) Configure(mat *material.Material, cs *crosssection.CrossSections) {
	sd.sigma = cs.EffectiveNucleons * cs.SigmaPPSD
	sd.slope = cs.PPSlope
	sd.s = cs.CentreOfMass2
}

func (sd *SingleDiffractive) Scatter(p *particle.PSvector, E float64) bool {
	xm2 := math.Exp(sd.rng.Uniform(0, 1) * math.Log(0.15*sd.s))
	var bsd float64
	switch {
	case xm2 < 2.:
		bsd = 2. * sd.slope
	case xm2 <= 5.:
		bsd = (106. - 17.*xm2) * sd.slope / 36.
	default:
		bsd = 7. * sd.slope / 12.
	}
	t := sd.exponentialT(bsd)
	p.DP = (1.+p.DP)*(1.-xm2/sd.s) - 1.
	sd.kick(p, E, t)
	return false
}

type Rutherford struct {
	process
}

func NewRutherford(rng Random) *Rutherford {
	return &Rutherford{process: process{label: "Rutherford", rng: rng}}
}

func (r *Rutherford) Configure(mat *material.Material, cs *crosssection.CrossSections) {
	r.sigma = cs.SigmaRutherford
}

// Scatter samples t from 1/t^2 on [RutherfordTLow, RutherfordTHigh].
func (r *Rutherford) Scatter(p *particle.PSvector, E float64) bool {
	u := r.rng.Uniform(0, 1)
	t := 1. / (1./RutherfordTLow - u*(1./RutherfordTLow-1./RutherfordTHigh))
	r.kick(p, E, t)
	return false
}

// Inelastic interactions destroy the proton.
type Inelastic struct {
	process
}

func NewInelastic(rng Random) *Inelastic {
	return &Inelastic{process: process{label: "Inelastic", rng: rng}}
}

func (in *Inelastic) Configure(mat *material.Material, cs *crosssection.CrossSections) {
	in.sigma = cs.SigmaPNInelastic
}

func (in *Inelastic) Scatter(p *particle.PSvector, E float64) bool {
	return true
}

// Defaults returns the full process set in selection order.
func Defaults(rng Random) []model.Process {
	return []model.Process{
		NewRutherford(rng),
		NewElasticPN(rng),
		NewElasticPP(rng),
		NewSingleDiffractive(rng),
		NewInelastic(rng),
	}
}
