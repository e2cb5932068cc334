package report

import (
	"slices"

	"github.com/spf13/pflag"
	"github.com/wildstyl3r/collimc/internal/config"
	"github.com/wildstyl3r/collimc/internal/utils"
)

type DataItem struct {
	saveFlag   *bool
	fileSuffix string
}

type SequentialDataItem struct {
	DataItem
	columnNames []string
	values      func(*DataExtractor) (args []float64, values [][]float64, labels []string)
	xUnit       []config.UnitElement
	yUnit       []config.UnitElement
}

type DataFlags struct {
	all         *bool
	sequentials map[string]SequentialDataItem
	outputPath  string
}

// NewDataFlags registers one flag per output on fs.
func NewDataFlags(fs *pflag.FlagSet) DataFlags {
	return DataFlags{
		all: fs.Bool("all", false, "save every available output"),
		sequentials: map[string]SequentialDataItem{
			"Loss map": {
				DataItem: DataItem{
					saveFlag:   fs.BoolP("loss", "l", false, "save histogram of absorption positions"),
					fileSuffix: "loss",
				},
				columnNames: []string{"z", "absorbed per particle"},
				values: func(de *DataExtractor) (args []float64, values [][]float64, labels []string) {
					lo := de.result.Jaw.Position
					hi := lo + de.result.Jaw.Length
					counts := utils.Histogram(de.result.Lost, lo, hi, de.bins)
					width := (hi - lo) / float64(de.bins)
					for i, n := range counts {
						args = append(args, lo+width*(float64(i)+0.5))
						values = append(values, []float64{float64(n) / float64(max(de.result.Particles, 1))})
					}
					return args, values, []string{de.result.Jaw.Name}
				},
				xUnit: []config.UnitElement{{Class: config.Length, Power: 1}},
				yUnit: []config.UnitElement{},
			},
			"Momentum deviation": {
				DataItem: DataItem{
					saveFlag:   fs.BoolP("dp", "d", false, "save momentum deviation histogram of surviving particles"),
					fileSuffix: "dp",
				},
				columnNames: []string{"dp", "survivors"},
				values: func(de *DataExtractor) (args []float64, values [][]float64, labels []string) {
					if len(de.result.SurvivorDP) == 0 {
						return nil, nil, nil
					}
					lo, hi := slices.Min(de.result.SurvivorDP), slices.Max(de.result.SurvivorDP)
					if hi == lo {
						hi = lo + 1e-12
					}
					counts := utils.Histogram(de.result.SurvivorDP, lo, hi, de.bins)
					width := (hi - lo) / float64(de.bins)
					for i, n := range counts {
						args = append(args, lo+width*(float64(i)+0.5))
						values = append(values, []float64{float64(n)})
					}
					return args, values, []string{de.result.Jaw.Name}
				},
			},
			"Interactions": {
				DataItem: DataItem{
					saveFlag:   fs.BoolP("interactions", "i", false, "save interaction counters per process"),
					fileSuffix: "interactions",
				},
				columnNames: []string{"process index", "interactions per particle"},
				values: func(de *DataExtractor) (args []float64, values [][]float64, labels []string) {
					for i, label := range de.result.ProcessTypes {
						args = append(args, float64(i))
						values = append(values, []float64{float64(de.result.Interactions[label]) / float64(max(de.result.Particles, 1))})
						labels = append(labels, label)
					}
					return args, values, labels
				},
			},
			"Fractions": {
				DataItem: DataItem{
					saveFlag:   fs.BoolP("fractions", "f", false, "save process selection fractions"),
					fileSuffix: "fractions",
				},
				columnNames: []string{"process index", "fraction"},
				values: func(de *DataExtractor) (args []float64, values [][]float64, labels []string) {
					for i, f := range de.result.Fractions {
						args = append(args, float64(i))
						values = append(values, []float64{f})
						if i < len(de.result.ProcessTypes) {
							labels = append(labels, de.result.ProcessTypes[i])
						}
					}
					return args, values, labels
				},
			},
		},
	}
}

func (df *DataFlags) SetOutputPath(path string) {
	if path != "" && path[len(path)-1] != '/' {
		df.outputPath = path + "/"
	} else {
		df.outputPath = path
	}
}

func (df *DataFlags) GetOutputPath() string {
	return df.outputPath
}

// Selected reports whether any output was requested.
func (df *DataFlags) Selected() bool {
	if *df.all {
		return true
	}
	for _, output := range df.sequentials {
		if *output.saveFlag {
			return true
		}
	}
	return false
}
