// Package recorder keeps the absorption positions reported by the tracking
// driver and exports them as CSV or into a SQLite database.
package recorder

import (
	"strconv"
	"sync"

	"github.com/wildstyl3r/collimc/internal/utils"
)

// Recorder receives absorption positions of one jaw.
type Recorder interface {
	Record(jaw, material string, positions []float64) error
}

// Ledger keeps absorptions in memory, keyed by jaw name.
type Ledger struct {
	mu        sync.Mutex
	losses    map[string][]float64
	materials map[string]string
}

func NewLedger() *Ledger {
	return &Ledger{
		losses:    make(map[string][]float64),
		materials: make(map[string]string),
	}
}

func (l *Ledger) Record(jaw, material string, positions []float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.losses[jaw] = append(l.losses[jaw], positions...)
	l.materials[jaw] = material
	return nil
}

func (l *Ledger) Losses(jaw string) []float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]float64(nil), l.losses[jaw]...)
}

func (l *Ledger) Jaws() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	names := make([]string, 0, len(l.losses))
	for name := range l.losses {
		names = append(names, name)
	}
	utils.SortNatural(names)
	return names
}

func (l *Ledger) Total() (n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, losses := range l.losses {
		n += len(losses)
	}
	return
}

// SaveCSV writes one row per absorption: jaw, material, position scaled by
// scale.
func (l *Ledger) SaveCSV(makeDir bool, path, filename string, scale func(float64) float64) error {
	var data utils.CSV
	for _, jaw := range l.Jaws() {
		for _, z := range l.Losses(jaw) {
			if scale != nil {
				z = scale(z)
			}
			data = append(data, []string{jaw, l.materials[jaw], strconv.FormatFloat(z, 'g', -1, 64)})
		}
	}
	return utils.WriteAsCSV(data, makeDir, path, "absorptions", filename, []string{"jaw", "material", "position"})
}
