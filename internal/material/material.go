package material

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/wildstyl3r/collimc/internal/constants"
)

var ErrUnknownMaterial = errors.New("material: unknown material")

// Material holds the bulk properties of a collimator material. Reference
// cross sections are quoted at crosssection.ReferenceEnergy.
type Material struct {
	Symbol               string
	Name                 string
	AtomicNumber         float64
	AtomicMass           float64 // [g mol^-1]
	Density              float64 // [kg m^-3]
	ElectronDensity      float64 // [m^-3]
	MeanExcitationEnergy float64 // [GeV]
	PlasmaEnergy         float64 // [GeV]
	RadiationLength      float64 // [m]
	SixtrackdEdx         float64 // [GeV m^-1]

	SigmaPNTotal     float64 // [b]
	SigmaPNInelastic float64 // [b]
	SigmaRutherford  float64 // [b]
	NuclearSlope     float64 // [GeV^-2]
}

// DensityGramsPerCm3 returns the density in [g cm^-3].
func (m *Material) DensityGramsPerCm3() float64 {
	return m.Density * 1e-3
}

// Complete fills the derivable fields left unset.
func (m *Material) Complete() {
	if m.ElectronDensity == 0 && m.AtomicMass > 0 {
		// rho [g m^-3] * N_A / A * Z
		m.ElectronDensity = m.Density * 1e3 * constants.Avogadro / m.AtomicMass * m.AtomicNumber
	}
	if m.NuclearSlope == 0 && m.AtomicMass > 0 {
		m.NuclearSlope = 14.1 * math.Pow(m.AtomicMass, 2./3.)
	}
}

var builtin = []Material{
	{
		Symbol: "Be", Name: "Beryllium",
		AtomicNumber: 4, AtomicMass: 9.012, Density: 1848,
		MeanExcitationEnergy: 63.7 * constants.EV, PlasmaEnergy: 26.10 * constants.EV,
		RadiationLength: 0.3528, SixtrackdEdx: 0.55,
		SigmaPNTotal: 0.268, SigmaPNInelastic: 0.199, SigmaRutherford: 0.000035, NuclearSlope: 74.7,
	},
	{
		Symbol: "C", Name: "Graphite",
		AtomicNumber: 6, AtomicMass: 12.011, Density: 1670,
		MeanExcitationEnergy: 78.0 * constants.EV, PlasmaEnergy: 28.80 * constants.EV,
		RadiationLength: 0.2557, SixtrackdEdx: 0.68,
		SigmaPNTotal: 0.331, SigmaPNInelastic: 0.231, SigmaRutherford: 0.000076, NuclearSlope: 70.0,
	},
	{
		Symbol: "Al", Name: "Aluminium",
		AtomicNumber: 13, AtomicMass: 26.982, Density: 2700,
		MeanExcitationEnergy: 166.0 * constants.EV, PlasmaEnergy: 32.86 * constants.EV,
		RadiationLength: 0.0890, SixtrackdEdx: 0.81,
		SigmaPNTotal: 0.634, SigmaPNInelastic: 0.421, SigmaRutherford: 0.00034, NuclearSlope: 120.3,
	},
	{
		Symbol: "Cu", Name: "Copper",
		AtomicNumber: 29, AtomicMass: 63.546, Density: 8960,
		MeanExcitationEnergy: 322.0 * constants.EV, PlasmaEnergy: 58.27 * constants.EV,
		RadiationLength: 0.01436, SixtrackdEdx: 1.69,
		SigmaPNTotal: 1.232, SigmaPNInelastic: 0.782, SigmaRutherford: 0.00153, NuclearSlope: 217.8,
	},
	{
		Symbol: "W", Name: "Tungsten",
		AtomicNumber: 74, AtomicMass: 183.84, Density: 19300,
		MeanExcitationEnergy: 727.0 * constants.EV, PlasmaEnergy: 80.32 * constants.EV,
		RadiationLength: 0.0035, SixtrackdEdx: 2.97,
		SigmaPNTotal: 2.767, SigmaPNInelastic: 1.650, SigmaRutherford: 0.0768, NuclearSlope: 440.3,
	},
	{
		Symbol: "Pb", Name: "Lead",
		AtomicNumber: 82, AtomicMass: 207.2, Density: 11350,
		MeanExcitationEnergy: 823.0 * constants.EV, PlasmaEnergy: 61.07 * constants.EV,
		RadiationLength: 0.0056, SixtrackdEdx: 1.44,
		SigmaPNTotal: 2.960, SigmaPNInelastic: 1.770, SigmaRutherford: 0.0907, NuclearSlope: 455.3,
	},
}

// Database maps material symbols to materials.
type Database map[string]*Material

// NewDatabase returns a database seeded with the built-in materials.
func NewDatabase() Database {
	db := make(Database, len(builtin))
	for i := range builtin {
		m := builtin[i]
		m.Complete()
		db[m.Symbol] = &m
	}
	return db
}

func (db Database) Get(symbol string) (*Material, error) {
	m, ok := db[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownMaterial, symbol, strings.Join(db.Symbols(), ", "))
	}
	return m, nil
}

// Add inserts or replaces a material, completing derivable fields.
func (db Database) Add(m Material) *Material {
	m.Complete()
	db[m.Symbol] = &m
	return db[m.Symbol]
}

func (db Database) Symbols() []string {
	symbols := make([]string, 0, len(db))
	for s := range db {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}
