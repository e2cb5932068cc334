package model

import (
	"math"

	"github.com/wildstyl3r/collimc/internal/constants"
	"github.com/wildstyl3r/collimc/internal/material"
	"github.com/wildstyl3r/collimc/internal/particle"
)

// Landau-based ionisation loss
const (
	mottSeriesLimit = 1.202001688211
	mottMomentum    = 0.843 // [MeV]
	densityExponent = 3.
)

var xi1 = 2.0 * math.Pi * constants.ElectronRadius * constants.ElectronRadius * constants.ElectronMass * constants.SpeedOfLight * constants.SpeedOfLight

// EnergyLoss applies a constant dE/dx loss over the path length x.
func (m *ScatteringModel) EnergyLoss(p *particle.PSvector, x float64, mat *material.Material, E0, E1 float64) {
	dp := x * mat.SixtrackdEdx
	p.DP = ((E1 - dp) - E0) / E0
}

// EnergyLossLandau applies an ionisation loss over the path length x sampled
// from the Landau distribution, with density effect and Mott corrections.
func (m *ScatteringModel) EnergyLossLandau(p *particle.PSvector, x float64, mat *material.Material, E0 float64) {
	E1 := E0 * (1 + p.DP)
	gamma := E1 / constants.ProtonMass
	beta := math.Sqrt(1 - (1 / (gamma * gamma)))
	I := mat.MeanExcitationEnergy / constants.EV // [eV]

	land := m.rng.Landau()

	massRatio := constants.ElectronMassMeV / constants.ProtonMassMeV
	tmax := (2 * constants.ElectronMassMeV * beta * beta * gamma * gamma) / (1 + (2 * gamma * massRatio) + massRatio*massRatio) // [MeV]

	xi0 := xi1 * mat.ElectronDensity
	xi := (xi0 * x / (beta * beta)) / constants.ElectronCharge * (constants.EV / constants.MeV) // [MeV]

	delta := densityCorrection(I, mat.PlasmaEnergy/constants.EV, beta*gamma)
	F := mottCorrection(beta, tmax)

	IMeV := I * constants.EV / constants.MeV
	deltaE := xi * (math.Log(2*constants.ElectronMassMeV*beta*beta*gamma*gamma*xi/(IMeV*IMeV)) - (beta * beta) - delta + F + 0.20)

	dp := ((xi * land) - deltaE) * constants.MeV
	p.DP = ((E1 - dp) - E0) / E0
}

// densityCorrection is the Sternheimer density effect term delta for mean
// excitation and plasma energies in eV.
func densityCorrection(I, plasmaEnergy, betaGamma float64) float64 {
	C := 1 + 2*math.Log(I/plasmaEnergy)
	var C0, C1 float64
	if I < 100 {
		C1 = 2.0
		if C <= 3.681 {
			C0 = 0.2
		} else {
			C0 = 0.326*C - 1.0
		}
	} else {
		C1 = 3.0
		if C <= 5.215 {
			C0 = 0.2
		} else {
			C0 = 0.326*C - 1.5
		}
	}

	ddx := math.Log10(betaGamma)
	switch {
	case ddx > C1:
		return 4.606*ddx - C
	case ddx >= C0:
		xa := C / 4.606
		a := 4.606 * (xa - C0) / math.Pow(C1-C0, densityExponent)
		return 4.606*ddx - C + a*math.Pow(C1-ddx, densityExponent)
	default:
		return 0.
	}
}

// mottCorrection for tmax in MeV.
func mottCorrection(beta, tmax float64) float64 {
	G := math.Pi * constants.FineStructureConstant * beta / 2.0
	q := (2 * tmax * constants.ElectronMassMeV) / (mottMomentum * mottMomentum)
	S := math.Log(1 + q)
	L1 := 0.0
	yL2 := constants.FineStructureConstant / beta
	L2 := -yL2 * yL2 * mottSeriesLimit
	return G - S + 2*(L1+L2)
}
