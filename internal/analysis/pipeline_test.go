package analysis

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestNewPipelineConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"inverted time constants", func(c *Config) { c.TauATL, c.TauCTL = 42, 7 }},
		{"equal time constants", func(c *Config) { c.TauCTL = c.TauATL }},
		{"acute window below one day", func(c *Config) { c.TauATL = 0 }},
		{"unordered thresholds", func(c *Config) { c.Thresholds = Thresholds{Undertrained: 1.5, Moderate: 1.3, High: 0.8} }},
		{"efficiency window too small", func(c *Config) { c.EfficiencyWindow = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			_, err := NewPipeline(cfg)

			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("err = %v, want *ConfigurationError", err)
			}
		})
	}
}

func TestPipelineEmptyInput(t *testing.T) {
	p, err := NewPipeline(DefaultConfig())
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	_, err = p.Run(nil)

	var insufficient *InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("err = %v, want *InsufficientDataError", err)
	}
}

func TestPipelineAllRowsInvalid(t *testing.T) {
	p, err := NewPipeline(DefaultConfig())
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	_, err = p.Run([]RawSession{
		rawRow(1, "bad", "10", "3", "150"),
		rawRow(2, "2024-03-01", "-5", "3", "150"),
	})

	var insufficient *InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("err = %v, want *InsufficientDataError", err)
	}
}

func TestPipelineConstantWeekScenario(t *testing.T) {
	// Eight consecutive identical days: both EMAs sit at the load value
	// from day one (seeded), ACWR is exactly 1, TSB is exactly 0, and the
	// recommendation is to hold the current load.
	var rows []RawSession
	d := date(2024, 3, 1)
	for i := 1; i <= 8; i++ {
		rows = append(rows, rawRow(i, d.Format("2006-01-02"), "10", "3.0", "150"))
		d = d.AddDate(0, 0, 1)
	}

	p, err := NewPipeline(DefaultConfig())
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	report, err := p.Run(rows)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	last := report.Smoothed[len(report.Smoothed)-1]
	if math.Abs(last.ATL-30) > 1e-9 {
		t.Errorf("final ATL = %v, want 30", last.ATL)
	}
	if math.Abs(last.CTL-30) > 1e-9 {
		t.Errorf("final CTL = %v, want 30", last.CTL)
	}

	latest := report.Risk[len(report.Risk)-1]
	if latest.ACWR == nil || math.Abs(*latest.ACWR-1.0) > 1e-9 {
		t.Errorf("final ACWR = %v, want 1.0", latest.ACWR)
	}
	if latest.Band != BandOptimal {
		t.Errorf("final Band = %v, want optimal", latest.Band)
	}
	if latest.TSB == nil || math.Abs(*latest.TSB) > 1e-9 {
		t.Errorf("final TSB = %v, want 0", latest.TSB)
	}

	if report.Recommendation.Message != MsgMaintain {
		t.Errorf("Recommendation = %q, want %q", report.Recommendation.Message, MsgMaintain)
	}
}

func TestPipelineDetrainingScenario(t *testing.T) {
	// A hard session, then a long gap before an easy one: the acute average
	// decays faster than the chronic one and the latest day classifies as
	// undertrained.
	rows := []RawSession{
		rawRow(1, "2024-03-01", "10", "5.0", "160"),
		rawRow(2, "2024-03-31", "1", "0.1", "120"),
	}

	p, err := NewPipeline(DefaultConfig())
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	report, err := p.Run(rows)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(report.Daily) != 31 {
		t.Fatalf("len(Daily) = %d, want 31", len(report.Daily))
	}

	latest := report.Risk[len(report.Risk)-1]
	if latest.ACWR == nil {
		t.Fatal("latest ACWR is nil")
	}
	if *latest.ACWR >= 0.8 {
		t.Errorf("latest ACWR = %v, want < 0.8", *latest.ACWR)
	}
	if latest.Band != BandUndertrained {
		t.Errorf("latest Band = %v, want undertrained", latest.Band)
	}
}

func TestPipelineCollectsValidationFailures(t *testing.T) {
	rows := []RawSession{
		rawRow(1, "2024-03-01", "10", "3.0", "150"),
		rawRow(2, "garbage", "10", "3.0", "150"),
		rawRow(3, "2024-03-02", "8", "2.5", "abc"),
		rawRow(4, "2024-03-03", "12", "3.5", "155"),
	}

	p, err := NewPipeline(DefaultConfig())
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	report, err := p.Run(rows)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if report.Validation.Dropped != 2 {
		t.Errorf("Dropped = %d, want 2", report.Validation.Dropped)
	}
	if len(report.Sessions) != 2 {
		t.Errorf("len(Sessions) = %d, want 2", len(report.Sessions))
	}
}

func TestPipelineSeriesAlignment(t *testing.T) {
	rows := []RawSession{
		rawRow(1, "2024-03-01", "10", "3.0", "150"),
		rawRow(2, "2024-03-05", "8", "2.5", "145"),
		rawRow(3, "2024-03-09", "16", "4.0", "155"),
	}

	p, err := NewPipeline(DefaultConfig())
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	report, err := p.Run(rows)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(report.Smoothed) != len(report.Daily) {
		t.Errorf("len(Smoothed) = %d, want %d", len(report.Smoothed), len(report.Daily))
	}
	if len(report.Risk) != len(report.Daily) {
		t.Errorf("len(Risk) = %d, want %d", len(report.Risk), len(report.Daily))
	}
	if len(report.Efficiency) != len(report.Sessions) {
		t.Errorf("len(Efficiency) = %d, want %d", len(report.Efficiency), len(report.Sessions))
	}

	for i := range report.Daily {
		if !report.Daily[i].Date.Equal(report.Smoothed[i].Date) || !report.Daily[i].Date.Equal(report.Risk[i].Date) {
			t.Fatalf("series misaligned at index %d", i)
		}
	}

	if report.Summary.Sessions != 3 {
		t.Errorf("Summary.Sessions = %d, want 3", report.Summary.Sessions)
	}
	if report.Summary.Days != 9 {
		t.Errorf("Summary.Days = %d, want 9", report.Summary.Days)
	}
}

func TestPipelineCustomLoadFormula(t *testing.T) {
	rows := []RawSession{
		rawRow(1, "2024-03-01", "10", "3.0", "150"),
		rawRow(2, "2024-03-02", "0", "4.0", "150"),
	}

	cfg := DefaultConfig()
	cfg.Load = TSSLoad
	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	report, err := p.Run(rows)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// TE*20, independent of distance.
	if report.Daily[0].Load != 60 {
		t.Errorf("Daily[0].Load = %v, want 60", report.Daily[0].Load)
	}
	if report.Daily[1].Load != 80 {
		t.Errorf("Daily[1].Load = %v, want 80", report.Daily[1].Load)
	}
}

func TestPipelineStateless(t *testing.T) {
	rows := []RawSession{
		rawRow(1, "2024-03-01", "10", "3.0", "150"),
		rawRow(2, "2024-03-04", "8", "2.5", "145"),
	}

	p, err := NewPipeline(DefaultConfig())
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	first, err := p.Run(rows)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	second, err := p.Run(rows)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// No state across runs: identical ins, bit-identical outs.
	for i := range first.Smoothed {
		if first.Smoothed[i] != second.Smoothed[i] {
			t.Fatalf("Smoothed[%d] differs across runs", i)
		}
	}
}

func TestPipelineDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.TauATL != 7 {
		t.Errorf("TauATL = %v, want 7", cfg.TauATL)
	}
	if cfg.TauCTL != 42 {
		t.Errorf("TauCTL = %v, want 42", cfg.TauCTL)
	}
	if cfg.EfficiencyWindow != 10 {
		t.Errorf("EfficiencyWindow = %v, want 10", cfg.EfficiencyWindow)
	}
	if cfg.Thresholds != DefaultThresholds() {
		t.Errorf("Thresholds = %+v, want defaults", cfg.Thresholds)
	}

	s := Session{Date: time.Now(), DistanceKm: 10, AerobicTE: 3, AvgHR: 150}
	if cfg.Load(s) != DefaultLoad(s) {
		t.Error("Load is not the default formula")
	}
}
