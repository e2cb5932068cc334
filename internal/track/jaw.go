package track

import (
	"fmt"

	"github.com/wildstyl3r/collimc/internal/constants"
	"github.com/wildstyl3r/collimc/internal/material"
	"github.com/wildstyl3r/collimc/internal/model"
	"github.com/wildstyl3r/collimc/internal/particle"
)

// DefaultEnergyCut is the total energy below which a particle is considered
// stopped in the jaw. A zero Jaw.EnergyCut selects it; cuts must not fall
// below constants.ProtonMass or the Landau loss has no defined velocity.
const DefaultEnergyCut = 1. * constants.GeV

// Jaw is a block of material of a given length whose entrance face sits at
// Position along the beam line.
type Jaw struct {
	Name      string
	Material  *material.Material
	Length    float64 // [m]
	Position  float64 // [m]
	EnergyCut float64 // [GeV]
}

type Outcome struct {
	Absorbed bool
	Steps    int
	Depth    float64 // [m] into the jaw at exit or absorption
}

// Collimate tracks p through the jaw, alternating free flights with
// interactions until the particle leaves the far face or is absorbed.
// Absorptions are appended to lost as longitudinal positions.
func (j *Jaw) Collimate(m *model.ScatteringModel, p *particle.PSvector, E0 float64, lost *[]float64) (Outcome, error) {
	cut := j.EnergyCut
	if cut == 0 {
		cut = DefaultEnergyCut
	}
	var out Outcome
	z := 0.
	for {
		out.Steps++
		E1 := p.Energy(E0)
		step, err := m.PathLength(j.Material, E0)
		if err != nil {
			return out, fmt.Errorf("jaw %s: %w", j.Name, err)
		}
		last := z+step >= j.Length
		if last {
			step = j.Length - z
		}

		if m.ScatterType().UsesLandauLoss() {
			m.EnergyLossLandau(p, step, j.Material, E0)
		} else {
			m.EnergyLoss(p, step, j.Material, E0, E1)
		}
		E2 := p.Energy(E0)
		m.Straggle(p, step, j.Material, E1, E2)

		if E2 < cut {
			m.DeathReport(p, z+step, j.Position, lost)
			out.Absorbed = true
			out.Depth = z + step
			return out, nil
		}
		if last {
			out.Depth = j.Length
			return out, nil
		}

		z += step
		if m.ParticleScatter(p, j.Material, E0) {
			m.DeathReport(p, z, j.Position, lost)
			out.Absorbed = true
			out.Depth = z
			return out, nil
		}
	}
}
