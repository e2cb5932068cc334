// Package report turns tracking results into CSV outputs selected on the
// command line.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/wildstyl3r/collimc/internal/config"
	"github.com/wildstyl3r/collimc/internal/constants"
	"github.com/wildstyl3r/collimc/internal/track"
	"github.com/wildstyl3r/collimc/internal/utils"
)

type DataExtractor struct {
	result      *track.Result
	bins        int
	outputUnits []string
	makeDir     bool
	verbose     bool
}

func NewDataExtractor(result *track.Result, cfg *config.Config) *DataExtractor {
	return &DataExtractor{
		result:      result,
		bins:        max(cfg.LossBins, 1),
		outputUnits: cfg.OutputUnits,
		makeDir:     cfg.MakeDir,
		verbose:     cfg.Verbose,
	}
}

// Summary prints the absorbed fraction and the survivor momentum spread.
func (de *DataExtractor) Summary(w io.Writer) {
	r := de.result
	fmt.Fprintf(w, "%s (%s, %g m): absorbed %d/%d (%.4f)",
		r.Jaw.Name, r.Jaw.Material.Symbol, r.Jaw.Length, len(r.Lost), r.Particles, r.AbsorbedFraction())
	if len(r.Lost) > 1 {
		mean, variance := utils.MeanAndVariance(r.Depths, true)
		fmt.Fprintf(w, ", depth %g ± %g m", mean, constants.Quantile95*math.Sqrt(variance/float64(len(r.Depths))))
	}
	if len(r.SurvivorDP) > 1 {
		mean, variance := utils.MeanAndVariance(r.SurvivorDP, true)
		fmt.Fprintf(w, ", survivor dp %g (rms %g)", mean, math.Sqrt(variance))
	}
	fmt.Fprintln(w)
	if de.verbose && r.Particles > 0 {
		for _, label := range r.ProcessTypes {
			fmt.Fprintf(w, "  %-20s %.4f per particle\n", label, float64(r.Interactions[label])/float64(r.Particles))
		}
	}
}

func (de *DataExtractor) Save(runName string, df DataFlags) error {
	for name, output := range df.sequentials {
		if !*output.saveFlag && !*df.all {
			continue
		}
		file, err := utils.OpenFile(de.makeDir, df.outputPath, output.fileSuffix, runName+"_"+de.result.Jaw.Name)
		if err != nil {
			return fmt.Errorf("unable to save %s: %w", name, err)
		}
		rows := [][]string{output.columnNames}
		xColumnValue, yColumnValues, yLabels := output.values(de)
		rows = append(rows, append([]string{""}, yLabels...))
		for x := range xColumnValue {
			row := []string{strconv.FormatFloat(config.SI(xColumnValue[x], output.xUnit, de.outputUnits, false), 'f', -1, 64)}
			for i := range yColumnValues[x] {
				row = append(row, strconv.FormatFloat(config.SI(yColumnValues[x][i], output.yUnit, de.outputUnits, false), 'f', -1, 64))
			}
			rows = append(rows, row)
		}
		w := csv.NewWriter(file)
		w.WriteAll(rows)
		file.Close()
		if err := w.Error(); err != nil {
			return fmt.Errorf("error writing csv: %w", err)
		}
		if de.verbose {
			fmt.Println(name + " saved")
		}
	}
	return nil
}
