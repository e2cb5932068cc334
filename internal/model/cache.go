package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/wildstyl3r/collimc/internal/crosssection"
	"github.com/wildstyl3r/collimc/internal/material"
	"github.com/wildstyl3r/collimc/internal/utils"
)

var ErrNoCrossSection = errors.New("model: no scattering process with a positive cross section")

type cacheKey struct {
	symbol      string
	scatterType crosssection.ScatterType
}

type cacheEntry struct {
	mat      *material.Material
	cs       *crosssection.CrossSections
	fraction []float64
}

func (m *ScatteringModel) key(mat *material.Material) cacheKey {
	return cacheKey{symbol: mat.Symbol, scatterType: m.scatterType}
}

// PathLength samples the free flight length of a particle of reference
// energy E0 in mat. The first call for a material builds and caches its
// cross sections and the process fractions. An infinite length means no
// interaction.
func (m *ScatteringModel) PathLength(mat *material.Material, E0 float64) (float64, error) {
	entry, err := m.lookup(mat, E0)
	if err != nil {
		return 0, err
	}
	lambda := entry.cs.TotalMeanFreePath()
	return -lambda * math.Log(m.rng.Uniform(0, 1)), nil
}

func (m *ScatteringModel) lookup(mat *material.Material, E0 float64) (*cacheEntry, error) {
	key := m.key(mat)
	entry, found := m.crossSections[key]
	switch {
	case !found:
		return m.rebuild(key, mat, E0)
	case !entry.cs.Matches(mat.Symbol, E0, m.scatterType):
		m.logger.Printf("Warning: ScatteringModel.PathLength: cached cross sections for %s (%s, %g GeV) do not match %g GeV, recalculating",
			mat.Symbol, entry.cs.ScatterType, entry.cs.Energy, E0)
		return m.rebuild(key, mat, E0)
	case entry != m.active:
		m.activate(entry)
	}
	return entry, nil
}

func (m *ScatteringModel) rebuild(key cacheKey, mat *material.Material, E0 float64) (*cacheEntry, error) {
	cs, err := m.build(mat, E0, m.scatterType)
	if err != nil {
		return nil, fmt.Errorf("cross sections for %s: %w", mat.Symbol, err)
	}
	entry := &cacheEntry{
		mat:      mat,
		cs:       cs,
		fraction: make([]float64, len(m.Processes)),
	}
	if err := m.configure(entry); err != nil {
		// the processes now hold the rejected cross sections
		m.active = nil
		return nil, err
	}
	m.crossSections[key] = entry
	return entry, nil
}

// configure sets every process up for the entry and derives the normalised
// fractions from the process cross sections.
func (m *ScatteringModel) configure(entry *cacheEntry) error {
	if m.verbose {
		m.logger.Printf("ScatteringModel.PathLength: MATERIAL = %s", entry.mat.Symbol)
	}
	for i, p := range m.Processes {
		p.Configure(entry.mat, entry.cs)
		entry.fraction[i] = p.Sigma()
		if m.verbose {
			m.logger.Printf("%s\t\t sigma = %g barns", p.ProcessType(), entry.fraction[i])
		}
	}
	sigma := utils.SumSlice(entry.fraction)
	if !(sigma > 0) {
		return fmt.Errorf("%w: %s", ErrNoCrossSection, entry.mat.Symbol)
	}
	for j := range entry.fraction {
		entry.fraction[j] /= sigma
		if m.verbose {
			m.logger.Printf(" Process %d total sigma %10.4g barns fraction %10.4g", j, sigma, entry.fraction[j])
		}
	}
	m.active = entry
	return nil
}

// activate restores the process configuration of a cached entry without
// rebuilding its cross sections.
func (m *ScatteringModel) activate(entry *cacheEntry) {
	for _, p := range m.Processes {
		p.Configure(entry.mat, entry.cs)
	}
	m.active = entry
}
