package model

import (
	"github.com/wildstyl3r/collimc/internal/material"
	"github.com/wildstyl3r/collimc/internal/particle"
)

// ParticleScatter picks a process with probability equal to its fraction and
// applies it to p. It reports whether the particle was absorbed.
//
// The fractions of mat must have been computed by PathLength. Running out of
// processes means the fractions do not sum to one; that corrupts every
// result downstream, so the run is terminated.
func (m *ScatteringModel) ParticleScatter(p *particle.PSvector, mat *material.Material, E float64) bool {
	entry, ok := m.crossSections[m.key(mat)]
	if !ok {
		m.fatalf("ScatteringModel.ParticleScatter: no cross sections for %s (%s), PathLength must be called first", mat.Symbol, m.scatterType)
		return false
	}
	if entry != m.active {
		m.activate(entry)
	}

	r := m.rng.Uniform(0, 1)
	for i := range entry.fraction {
		r -= entry.fraction[i]
		if r < 0 {
			m.interactions[m.Processes[i].ProcessType()]++
			return m.Processes[i].Scatter(p, E)
		}
	}

	m.fatalf("should never get this message: ScatteringModel.ParticleScatter: scattering past r < 0, r = %g", r)
	return false
}
