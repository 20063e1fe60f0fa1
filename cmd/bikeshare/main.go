package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spektr-org/bikeshare/config"
	"github.com/spektr-org/bikeshare/engine"
	"github.com/spektr-org/bikeshare/helpers"
	"github.com/spektr-org/bikeshare/prompt"
	"github.com/spektr-org/bikeshare/session"
)

// ============================================================================
// BIKESHARE CLI — Interactive statistics over US bikeshare trips
// ============================================================================

const version = "0.1.0"

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	dataDir := flag.String("data", "", "Directory holding chicago.csv, new_york_city.csv and washington.csv (overrides BIKESHARE_DATA_DIR)")
	envFile := flag.String("env", "", "Load settings from this env file instead of ./.env")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Bikeshare — explore US bikeshare trip data

Usage:
  bikeshare
  bikeshare --data ./data
  bikeshare --env bikeshare.env

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment:
  BIKESHARE_DATA_DIR    Directory with the city CSV files (default ".")
  BIKESHARE_PAGE_SIZE   Raw trips shown per page (default 5)
  BIKESHARE_LOG         Write diagnostic logs to stderr (default false)
  BIKESHARE_TIMINGS     Print "This took ... seconds." per section (default true)
  BIKESHARE_LANGUAGE    Language tag for station name casing (default "en")
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("bikeshare %s\n", version)
		os.Exit(0)
	}

	// ── Config ────────────────────────────────────────────────────────────
	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		fatalf("Failed to load config: %v", err)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	if !cfg.Logging {
		log.SetOutput(io.Discard)
	}
	log.Printf("⚙️ Config: data=%s page=%d timings=%v language=%s", cfg.DataDir, cfg.PageSize, cfg.ShowTimings, cfg.Language)

	// ── Run ───────────────────────────────────────────────────────────────
	load := func(region string) (engine.TripView, error) {
		return helpers.LoadRegion(cfg.DataDir, region)
	}

	s := session.New(prompt.New(os.Stdin, os.Stdout), os.Stdout, load, session.Options{
		PageSize:      cfg.PageSize,
		ShowTimings:   cfg.ShowTimings,
		EngineOptions: []engine.Option{engine.WithLanguage(cfg.Language)},
	})
	if err := s.Run(); err != nil {
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
