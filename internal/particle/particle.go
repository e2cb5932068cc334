package particle

// PSvector is the phase-space state of a single particle relative to the
// reference orbit.
type PSvector struct {
	X  float64 // [m]
	XP float64 // [rad]
	Y  float64 // [m]
	YP float64 // [rad]
	CT float64 // [m]
	DP float64 // relative momentum deviation
}

// Energy of the particle for reference energy E0.
func (p *PSvector) Energy(E0 float64) float64 {
	return E0 * (1. + p.DP)
}

type Random interface {
	Uniform(lo, hi float64) float64
	Normal(mean, stddev float64) float64
}

// HaloSource produces particles impacting the entrance face of a jaw:
// uniformly spread over ImpactWidth into the material, gaussian in the
// other coordinates.
type HaloSource struct {
	ImpactWidth float64 // [m]
	SigmaY      float64 // [m]
	SigmaXP     float64 // [rad]
	SigmaYP     float64 // [rad]
	SigmaDP     float64
}

func (h HaloSource) New(rng Random) PSvector {
	p := PSvector{
		X:  rng.Uniform(0, h.ImpactWidth),
		XP: rng.Normal(0, h.SigmaXP),
		Y:  rng.Normal(0, h.SigmaY),
		YP: rng.Normal(0, h.SigmaYP),
	}
	if h.SigmaDP > 0 {
		p.DP = rng.Normal(0, h.SigmaDP)
	}
	return p
}
