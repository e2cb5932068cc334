package constants

// Base units: energies in GeV, lengths in metres, cross sections in barns.
const (
	GeV = 1.
	TeV = 1e3 * GeV
	MeV = 1e-3 * GeV
	KeV = 1e-6 * GeV
	EV  = 1e-9 * GeV

	Meter      = 1.
	Centimeter = 1e-2 * Meter
	Millimeter = 1e-3 * Meter
)

const ProtonMassMeV float64 = 938.272046                 // [MeV]
const ElectronMassMeV float64 = 0.510998928              // [MeV]
const ProtonMass = ProtonMassMeV * MeV                   // [GeV]
const ElectronRadius float64 = 2.8179403267e-15          // [m]
const ElectronMass float64 = 9.10938291e-31              // [kg]
const SpeedOfLight float64 = 299792458.                  // [m s^-1]
const ElectronCharge = 1.602176565e-19                   // C
const FineStructureConstant float64 = 7.2973525698e-3    //
const Avogadro float64 = 6.02214129e23                   // [mol^-1]
const Quantile95 = 1.96
