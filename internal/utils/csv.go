package utils

import (
	"encoding/csv"
	"fmt"
	"sort"

	"github.com/facette/natsort"
)

// CSV rows sort naturally by their first column.
type CSV [][]string

func (data CSV) Less(i, j int) bool {
	return data[i][0] != data[j][0] && natsort.Compare(data[i][0], data[j][0])
}

func (data CSV) Len() int {
	return len(data)
}
func (data CSV) Swap(i, j int) {
	data[i], data[j] = data[j], data[i]
}

func WriteAsCSV(data CSV, makeDir bool, path, subpath, filename string, columns []string) error {
	clearName := GetFilename(filename)
	file, err := OpenFile(makeDir, path, subpath, clearName)
	if err != nil {
		return fmt.Errorf("unable to save %s: %w", subpath, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(columns); err != nil {
		return err
	}
	sort.Stable(data)
	if err := w.WriteAll(data); err != nil {
		return fmt.Errorf("error writing csv: %w", err)
	}
	return nil
}

// SortNatural orders names the way a person would, "TCP.2" before "TCP.10".
func SortNatural(names []string) {
	sort.Slice(names, func(i, j int) bool {
		return natsort.Compare(names[i], names[j])
	})
}
