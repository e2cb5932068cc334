package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/wildstyl3r/collimc/internal/constants"
	"github.com/wildstyl3r/collimc/internal/crosssection"
	"github.com/wildstyl3r/collimc/internal/material"
	"github.com/wildstyl3r/collimc/internal/particle"
	"github.com/wildstyl3r/collimc/internal/track"
	"github.com/wildstyl3r/collimc/internal/utils"
)

var ErrConfig = errors.New("config: invalid configuration")

type Config struct {
	OutputDir string
	Name      string
	Jaws      map[string]JawParameters
	Materials map[string]MaterialParameters
	RunParameters

	InputUnits  []string
	OutputUnits []string

	scatterType crosssection.ScatterType
}

type RunParameters struct {
	ScatterType     string
	ReferenceEnergy float64 // [GeV]
	Particles       int
	Seed            uint64
	Threads         int
	ImpactWidth     float64 // [m]
	SigmaY          float64 // [m]
	SigmaXP         float64
	SigmaYP         float64
	SigmaDP         float64
	EnergyCut       float64 // [GeV]
	LossBins        int
	MakeDir         bool
	Verbose         bool
	Database        bool
}

type JawParameters struct {
	Material  string
	Length    float64 // [m]
	Position  float64 // [m]
	EnergyCut float64 // [GeV]
}

// MaterialParameters override the fields of a built-in material, or of Base
// when the symbol is new.
type MaterialParameters struct {
	Base                 string
	Name                 string
	AtomicNumber         float64
	AtomicMass           float64 // [g mol^-1]
	Density              float64 // [kg m^-3]
	MeanExcitationEnergy float64
	PlasmaEnergy         float64
	RadiationLength      float64
	SixtrackdEdx         float64
	SigmaPNTotal         float64 // [b]
	SigmaPNInelastic     float64 // [b]
	SigmaRutherford      float64 // [b]
	NuclearSlope         float64 // [GeV^-2]
}

var defaultValues = map[string]any{ // in GeV, m
	"ScatterType":     "SixTrack",
	"ReferenceEnergy": 7000.,
	"Particles":       10000,
	"Seed":            uint64(1),
	"Threads":         1,
	"ImpactWidth":     1e-6,
	"EnergyCut":       1.,
	"LossBins":        100,
}

var defaultUnits = []string{"GeV", "m"}

var valueUnits = map[string][]UnitElement{
	"ReferenceEnergy":      {{Class: Energy, Power: 1}},
	"EnergyCut":            {{Class: Energy, Power: 1}},
	"ImpactWidth":          {{Class: Length, Power: 1}},
	"SigmaY":               {{Class: Length, Power: 1}},
	"Length":               {{Class: Length, Power: 1}},
	"Position":             {{Class: Length, Power: 1}},
	"MeanExcitationEnergy": {{Class: Energy, Power: 1}},
	"PlasmaEnergy":         {{Class: Energy, Power: 1}},
	"RadiationLength":      {{Class: Length, Power: 1}},
	"SixtrackdEdx":         {{Class: Energy, Power: 1}, {Class: Length, Power: -1}},
}

// toSI converts the named float fields of the struct pointed to by target.
func toSI(target any, parameterNames, units []string) {
	targetReflect := reflect.ValueOf(target).Elem()
	for _, name := range parameterNames {
		field := targetReflect.FieldByName(name)
		if field.IsValid() && field.CanFloat() {
			field.SetFloat(SI(field.Float(), valueUnits[name], units, true))
		}
	}
}

// definedFields lists the fields of the struct pointed to by target that are
// present in the TOML file under path.
func definedFields(target any, path []string, meta *toml.MetaData) (defined []string) {
	targetType := reflect.TypeOf(target).Elem()
	for i := range targetType.NumField() {
		field := targetType.Field(i)
		if field.IsExported() && meta.IsDefined(append(slices.Clone(path), field.Name)...) {
			defined = append(defined, field.Name)
		}
	}
	return
}

// LoadConfig decodes a run file, converts every value to GeV and metres and
// fills the run parameters left out with their defaults.
func LoadConfig(configFileName string) (Config, toml.MetaData, error) {
	var config Config
	configFileName = strings.TrimSuffix(configFileName, ".toml")
	meta, err := toml.DecodeFile(configFileName+".toml", &config)
	if err != nil {
		return config, meta, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if config.Name == "" {
		config.Name = utils.GetFilename(configFileName)
	}

	var unitsConflict []string
	config.InputUnits, unitsConflict = checkUnits(config.InputUnits)
	if len(unitsConflict) > 0 {
		return config, meta, fmt.Errorf("%w: found input unit conflict: %v", ErrConfig, unitsConflict)
	}
	if len(config.OutputUnits) == 0 {
		config.OutputUnits = config.InputUnits
	}
	config.OutputUnits, unitsConflict = checkUnits(config.OutputUnits)
	if len(unitsConflict) > 0 {
		return config, meta, fmt.Errorf("%w: found output unit conflict: %v", ErrConfig, unitsConflict)
	}

	discovered := definedFields(&config.RunParameters, nil, &meta)
	toSI(&config.RunParameters, discovered, config.InputUnits)
	runReflect := reflect.ValueOf(&config.RunParameters).Elem()
	for fieldName, value := range defaultValues {
		if !slices.Contains(discovered, fieldName) {
			runReflect.FieldByName(fieldName).Set(reflect.ValueOf(value))
		}
	}

	config.scatterType, err = crosssection.ParseScatterType(config.ScatterType)
	if err != nil {
		return config, meta, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if config.ReferenceEnergy <= 0 {
		return config, meta, fmt.Errorf("%w: non-positive reference energy %g", ErrConfig, config.ReferenceEnergy)
	}
	if config.Particles < 0 {
		return config, meta, fmt.Errorf("%w: negative particle count %d", ErrConfig, config.Particles)
	}

	if len(config.Jaws) == 0 {
		return config, meta, fmt.Errorf("%w: no jaws provided", ErrConfig)
	}
	for name, jaw := range config.Jaws {
		path := []string{"Jaws", name}
		if !meta.IsDefined(append(path, "Material")...) || !meta.IsDefined(append(path, "Length")...) {
			return config, meta, fmt.Errorf("%w: jaw %s lacks key parameters (Material or Length)", ErrConfig, name)
		}
		toSI(&jaw, definedFields(&jaw, path, &meta), config.InputUnits)
		if jaw.Length <= 0 {
			return config, meta, fmt.Errorf("%w: jaw %s has non-positive length", ErrConfig, name)
		}
		if !meta.IsDefined(append(path, "EnergyCut")...) {
			jaw.EnergyCut = config.EnergyCut
		}
		if jaw.EnergyCut < constants.ProtonMass {
			return config, meta, fmt.Errorf("%w: jaw %s energy cut %g GeV is below the proton rest energy", ErrConfig, name, jaw.EnergyCut)
		}
		config.Jaws[name] = jaw
	}
	for symbol, mp := range config.Materials {
		toSI(&mp, definedFields(&mp, []string{"Materials", symbol}, &meta), config.InputUnits)
		config.Materials[symbol] = mp
	}

	return config, meta, nil
}

func (c *Config) ScatterKind() crosssection.ScatterType {
	return c.scatterType
}

// ApplyMaterials merges the material overrides of the run file into db,
// field by field.
func (c *Config) ApplyMaterials(db material.Database, meta *toml.MetaData) error {
	for _, symbol := range slices.Sorted(maps.Keys(c.Materials)) {
		mp := c.Materials[symbol]
		base := symbol
		if mp.Base != "" {
			base = mp.Base
		}
		var merged material.Material
		if existing, err := db.Get(base); err == nil {
			merged = *existing
		} else if mp.Base != "" {
			return fmt.Errorf("%w: material %s: %w", ErrConfig, symbol, err)
		}
		merged.Symbol = symbol

		mpReflect := reflect.ValueOf(&mp).Elem()
		mergedReflect := reflect.ValueOf(&merged).Elem()
		for _, fieldName := range definedFields(&mp, []string{"Materials", symbol}, meta) {
			target := mergedReflect.FieldByName(fieldName)
			if target.IsValid() {
				target.Set(mpReflect.FieldByName(fieldName))
			}
		}
		if merged.Density <= 0 || merged.AtomicMass <= 0 || merged.AtomicNumber <= 0 {
			return fmt.Errorf("%w: material %s lacks density, atomic mass or atomic number", ErrConfig, symbol)
		}
		// derived fields follow the overrides
		merged.ElectronDensity = 0
		if meta.IsDefined("Materials", symbol, "AtomicMass") && !meta.IsDefined("Materials", symbol, "NuclearSlope") {
			merged.NuclearSlope = 0
		}
		db.Add(merged)
	}
	return nil
}

// BuildJaws resolves the jaw materials in db, ordered naturally by name.
func (c *Config) BuildJaws(db material.Database) ([]track.Jaw, error) {
	names := slices.Collect(maps.Keys(c.Jaws))
	utils.SortNatural(names)
	jaws := make([]track.Jaw, 0, len(names))
	for _, name := range names {
		jp := c.Jaws[name]
		mat, err := db.Get(jp.Material)
		if err != nil {
			return nil, fmt.Errorf("%w: jaw %s: %w", ErrConfig, name, err)
		}
		jaws = append(jaws, track.Jaw{
			Name:      name,
			Material:  mat,
			Length:    jp.Length,
			Position:  jp.Position,
			EnergyCut: jp.EnergyCut,
		})
	}
	return jaws, nil
}

func (c *Config) HaloSource() particle.HaloSource {
	return particle.HaloSource{
		ImpactWidth: c.ImpactWidth,
		SigmaY:      c.SigmaY,
		SigmaXP:     c.SigmaXP,
		SigmaYP:     c.SigmaYP,
		SigmaDP:     c.SigmaDP,
	}
}

type envOverrides struct {
	Seed      *uint64 `env:"COLLIMC_SEED"`
	Threads   *int    `env:"COLLIMC_THREADS"`
	OutputDir *string `env:"COLLIMC_OUTPUT_DIR"`
	Verbose   *bool   `env:"COLLIMC_VERBOSE"`
}

// ApplyEnv overrides run parameters from the environment, after loading the
// optional dotenv file.
func (c *Config) ApplyEnv(dotenv string) error {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", dotenv, err)
		}
	}
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if overrides.Seed != nil {
		c.Seed = *overrides.Seed
	}
	if overrides.Threads != nil {
		if *overrides.Threads < 1 {
			return fmt.Errorf("%w: COLLIMC_THREADS must be positive", ErrConfig)
		}
		c.Threads = *overrides.Threads
	}
	if overrides.OutputDir != nil {
		c.OutputDir = *overrides.OutputDir
	}
	if overrides.Verbose != nil {
		c.Verbose = *overrides.Verbose
	}
	return nil
}
