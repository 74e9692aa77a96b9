package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"fatigue-monitor/internal/analysis"
	"fatigue-monitor/internal/config"
	"fatigue-monitor/internal/ingest"
	"fatigue-monitor/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	file := flag.String("file", "", "path to the training log CSV export")
	loadMetric := flag.String("load", "", `load formula override: "distance_te" or "tss"`)
	flag.Parse()

	if *file == "" {
		flag.Usage()
		return errors.New("a training log is required: -file <export.csv>")
	}

	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating default config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Created a default config at %s/config.json\n", configDir)
		defaults := config.DefaultConfig()
		cfg = &defaults
	} else if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if *loadMetric != "" {
		cfg.Analysis.LoadMetric = *loadMetric
	}

	// Validate config before any data is read
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	pipeline, err := analysis.NewPipeline(pipelineConfig(cfg))
	if err != nil {
		return err
	}

	rows, err := ingest.ReadFile(*file)
	if err != nil {
		return err
	}

	report, err := pipeline.Run(rows)
	if err != nil {
		return err
	}

	app := tui.NewApp(report, *file, cfg.Display.DistanceUnit)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}

	return nil
}

// pipelineConfig maps the file-based configuration onto the pipeline's
// tuning surface.
func pipelineConfig(cfg *config.Config) analysis.Config {
	a := cfg.Analysis
	pc := analysis.Config{
		TauATL: a.TauATL,
		TauCTL: a.TauCTL,
		Thresholds: analysis.Thresholds{
			Undertrained: a.ACWRThresholds[0],
			Moderate:     a.ACWRThresholds[1],
			High:         a.ACWRThresholds[2],
		},
		EfficiencyWindow: a.EfficiencyWindow,
		Load:             analysis.DefaultLoad,
	}
	if a.LoadMetric == config.LoadMetricTSS {
		pc.Load = analysis.TSSLoad
	}
	return pc
}
