package model

import (
	"math"

	"github.com/wildstyl3r/collimc/internal/constants"
	"github.com/wildstyl3r/collimc/internal/material"
	"github.com/wildstyl3r/collimc/internal/particle"
)

var root12 = math.Sqrt(12.0)

// Straggle applies multiple Coulomb scattering over the path length x using
// the Highland formula with the mean of the entry and exit energies.
func (m *ScatteringModel) Straggle(p *particle.PSvector, x float64, mat *material.Material, E1, E2 float64) {
	if x <= 0 {
		return
	}
	scaledx := x / mat.RadiationLength
	Eav := (E1 + E2) / 2.0
	theta0 := 13.6 * constants.MeV * math.Sqrt(scaledx) * (1.0 + 0.038*math.Log(scaledx)) / Eav

	thetaPlaneX := m.rng.Normal(0, 1) * theta0
	thetaPlaneY := m.rng.Normal(0, 1) * theta0

	xPlane := m.rng.Normal(0, 1)*x*theta0/root12 + x*thetaPlaneX/2
	yPlane := m.rng.Normal(0, 1)*x*theta0/root12 + x*thetaPlaneY/2

	p.X += xPlane
	p.XP += thetaPlaneX
	p.Y += yPlane
	p.YP += thetaPlaneY
}

// DeathReport records the longitudinal position at which a particle was
// absorbed, x into an element starting at position.
func (m *ScatteringModel) DeathReport(p *particle.PSvector, x, position float64, lost *[]float64) {
	*lost = append(*lost, x+position)
}
