package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"github.com/wildstyl3r/collimc/internal/config"
	"github.com/wildstyl3r/collimc/internal/material"
	"github.com/wildstyl3r/collimc/internal/recorder"
	"github.com/wildstyl3r/collimc/internal/report"
	"github.com/wildstyl3r/collimc/internal/track"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

func newRootCmd() *cobra.Command {
	var (
		input    string
		dotenv   string
		verbose  bool
		threads  int
		seed     uint64
		database bool
	)
	cmd := &cobra.Command{
		Use:   "collimc",
		Short: "Track protons through collimator jaws",
		Args:  cobra.NoArgs,
	}
	flags := cmd.Flags()
	flags.StringVar(&input, "input", "run", "run configuration in toml format")
	flags.StringVar(&dotenv, "env", ".env", "dotenv file with COLLIMC_* overrides")
	flags.BoolVarP(&verbose, "verbose", "v", false, "print progress and per-process counters")
	flags.IntVarP(&threads, "threads", "t", 0, "number of worker goroutines (default from run file)")
	flags.Uint64Var(&seed, "seed", 0, "base random seed (default from run file)")
	flags.BoolVar(&database, "db", false, "store absorptions in a sqlite database")
	dataFlags := report.NewDataFlags(flags)

	cmd.RunE = func(cmd *cobra.Command, args []string) (err error) {
		cmd.SilenceUsage = true
		startTime := time.Now()
		fmt.Printf("Current time: %s\n", startTime.UTC().Format(time.UnixDate))

		cfg, meta, err := config.LoadConfig(input)
		if err != nil {
			return err
		}
		if err := cfg.ApplyEnv(dotenv); err != nil {
			return err
		}
		if flags.Changed("verbose") {
			cfg.Verbose = verbose
		}
		if flags.Changed("threads") {
			cfg.Threads = threads
		}
		if flags.Changed("seed") {
			cfg.Seed = seed
		}
		if flags.Changed("db") {
			cfg.Database = database
		}

		db := material.NewDatabase()
		if err := cfg.ApplyMaterials(db, &meta); err != nil {
			return err
		}
		jaws, err := cfg.BuildJaws(db)
		if err != nil {
			return err
		}

		if cfg.OutputDir != "" && cfg.OutputDir != "." {
			if err := os.MkdirAll(cfg.OutputDir, 0750); err != nil {
				return err
			}
		}
		dataFlags.SetOutputPath(cfg.OutputDir)

		ledger := recorder.NewLedger()
		recorders := []recorder.Recorder{ledger}
		if cfg.Database {
			dbPath := ""
			if cfg.OutputDir != "" {
				dbPath = dataFlags.GetOutputPath() + cfg.Name
			}
			sqlite, openErr := recorder.NewSQLiteRecorder(dbPath)
			if openErr != nil {
				return openErr
			}
			defer closeInto(&err, sqlite, sqlite.Name())
			recorders = append(recorders, sqlite)
		}

		logger := log.New(os.Stderr, "", 0)

		for _, jaw := range jaws {
			fmt.Println("\n" + jaw.Name)
			run := track.Run{
				Jaw:             jaw,
				Particles:       cfg.Particles,
				Threads:         cfg.Threads,
				Seed:            cfg.Seed,
				ScatterType:     cfg.ScatterKind(),
				ReferenceEnergy: cfg.ReferenceEnergy,
				Source:          cfg.HaloSource(),
				Verbose:         cfg.Verbose,
				Logger:          logger,
			}
			result, err := run.Execute()
			if err != nil {
				return err
			}
			for _, r := range recorders {
				if err := r.Record(jaw.Name, jaw.Material.Symbol, result.Lost); err != nil {
					return err
				}
			}
			extractor := report.NewDataExtractor(&result, &cfg)
			extractor.Summary(os.Stdout)
			if err := extractor.Save(cfg.Name, dataFlags); err != nil {
				return err
			}
		}

		if dataFlags.Selected() {
			lengthUnits := []config.UnitElement{{Class: config.Length, Power: 1}}
			err := ledger.SaveCSV(cfg.MakeDir, dataFlags.GetOutputPath(), cfg.Name, func(z float64) float64 {
				return config.SI(z, lengthUnits, cfg.OutputUnits, false)
			})
			if err != nil {
				return err
			}
		}
		fmt.Printf("Absorbed in total: %d\n", ledger.Total())
		fmt.Printf("Elapsed time: %v\n", time.Since(startTime))
		return nil
	}
	return cmd
}

// closeInto closes c and reports its error through err unless err already
// holds one.
func closeInto(err *error, c io.Closer, name string) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("closing %s: %w", name, cerr)
	}
}
