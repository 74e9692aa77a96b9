package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Analysis AnalysisConfig `json:"analysis"`
	Display  DisplayConfig  `json:"display"`
}

// AnalysisConfig holds the pipeline tuning parameters
type AnalysisConfig struct {
	TauATL           float64   `json:"tau_atl"`
	TauCTL           float64   `json:"tau_ctl"`
	ACWRThresholds   []float64 `json:"acwr_thresholds"` // ascending cut points: undertrained / moderate / high
	EfficiencyWindow int       `json:"efficiency_window"`
	LoadMetric       string    `json:"load_metric"` // "distance_te" or "tss"
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	DistanceUnit string `json:"distance_unit"`
}

// Load metric names accepted in the config file
const (
	LoadMetricDistanceTE = "distance_te"
	LoadMetricTSS        = "tss"
)

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Analysis: AnalysisConfig{
			TauATL:           7,
			TauCTL:           42,
			ACWRThresholds:   []float64{0.8, 1.3, 1.5},
			EfficiencyWindow: 10,
			LoadMetric:       LoadMetricDistanceTE,
		},
		Display: DisplayConfig{
			DistanceUnit: "km",
		},
	}
}

// Load reads the configuration from ~/.fatigue-monitor/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Analysis.TauATL == 0 {
		cfg.Analysis.TauATL = defaults.Analysis.TauATL
	}
	if cfg.Analysis.TauCTL == 0 {
		cfg.Analysis.TauCTL = defaults.Analysis.TauCTL
	}
	if len(cfg.Analysis.ACWRThresholds) == 0 {
		cfg.Analysis.ACWRThresholds = defaults.Analysis.ACWRThresholds
	}
	if cfg.Analysis.EfficiencyWindow == 0 {
		cfg.Analysis.EfficiencyWindow = defaults.Analysis.EfficiencyWindow
	}
	if cfg.Analysis.LoadMetric == "" {
		cfg.Analysis.LoadMetric = defaults.Analysis.LoadMetric
	}
	if cfg.Display.DistanceUnit == "" {
		cfg.Display.DistanceUnit = defaults.Display.DistanceUnit
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.fatigue-monitor/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates a config file with the defaults if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	return Save(&example)
}

// Validate checks the tuning parameters against their documented ranges, so
// a bad config file fails before any data is read.
func (c *Config) Validate() error {
	a := c.Analysis
	if a.TauATL < 1 {
		return fmt.Errorf("analysis.tau_atl must be >= 1, got %v", a.TauATL)
	}
	if a.TauCTL <= a.TauATL {
		return fmt.Errorf("analysis.tau_ctl (%v) must be greater than analysis.tau_atl (%v)", a.TauCTL, a.TauATL)
	}
	if len(a.ACWRThresholds) != 3 {
		return fmt.Errorf("analysis.acwr_thresholds must list 3 cut points, got %d", len(a.ACWRThresholds))
	}
	for i := 1; i < len(a.ACWRThresholds); i++ {
		if a.ACWRThresholds[i] <= a.ACWRThresholds[i-1] {
			return errors.New("analysis.acwr_thresholds must be strictly increasing")
		}
	}
	if a.ACWRThresholds[0] <= 0 {
		return errors.New("analysis.acwr_thresholds must be positive")
	}
	if a.EfficiencyWindow < 3 {
		return fmt.Errorf("analysis.efficiency_window must be >= 3, got %d", a.EfficiencyWindow)
	}
	if a.LoadMetric != LoadMetricDistanceTE && a.LoadMetric != LoadMetricTSS {
		return fmt.Errorf("analysis.load_metric must be %q or %q, got %q", LoadMetricDistanceTE, LoadMetricTSS, a.LoadMetric)
	}

	if c.Display.DistanceUnit != "" && c.Display.DistanceUnit != "km" && c.Display.DistanceUnit != "mi" {
		return fmt.Errorf("display.distance_unit must be \"km\" or \"mi\", got %q", c.Display.DistanceUnit)
	}

	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".fatigue-monitor", "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".fatigue-monitor"), nil
}
