package config

import "github.com/wildstyl3r/collimc/internal/utils"

var unitToSI = map[string]float64{
	"eV":  1e-9, // [GeV]
	"keV": 1e-6, // [GeV]
	"MeV": 1e-3, // [GeV]
	"GeV": 1,    // [GeV]
	"TeV": 1e3,  // [GeV]
	"m":   1,    // [m]
	"cm":  1e-2, // [m]
	"mm":  1e-3, // [m]
}

type UnitClass int

const (
	Length UnitClass = iota
	Energy
)

var unitsInClass = map[UnitClass][]string{
	Length: {"mm", "cm", "m"},
	Energy: {"eV", "keV", "MeV", "GeV", "TeV"},
}

var classesOfUnits = map[string]UnitClass{
	"eV":  Energy,
	"keV": Energy,
	"MeV": Energy,
	"GeV": Energy,
	"TeV": Energy,
	"m":   Length,
	"cm":  Length,
	"mm":  Length,
}

type UnitElement = struct {
	Class UnitClass
	Power int
}

// checkUnits completes units with the defaults of every class left out and
// reports units that are unknown or share a class with an earlier one.
func checkUnits(units []string) (extended, conflicts []string) {
	classes := map[UnitClass]struct{}{}
	for _, unit := range units {
		class, known := classesOfUnits[unit]
		if !known {
			conflicts = append(conflicts, unit)
			continue
		}
		if _, some := classes[class]; some {
			conflicts = append(conflicts, unit)
		} else {
			classes[class] = struct{}{}
		}
	}
	extended = append([]string{}, units...)
	for _, unit := range defaultUnits {
		if _, some := classes[classesOfUnits[unit]]; !some {
			extended = append(extended, unit)
		}
	}
	return
}

// SI converts v expressed in units to the internal system (GeV, m) when
// direct is set, and back otherwise.
func SI(v float64, classes []UnitElement, units []string, direct bool) float64 {
	for i := range classes {
		uc := classes[i]
		unit := utils.Intersect(unitsInClass[uc.Class], units)
		if unit == nil {
			continue
		}
		absPower := utils.IntAbs(uc.Power)
		if direct == (uc.Power > 0) {
			for range absPower {
				v *= unitToSI[*unit]
			}
		} else {
			for range absPower {
				v /= unitToSI[*unit]
			}
		}
	}
	return v
}
