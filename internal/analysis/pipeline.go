package analysis

// Config is the tuning surface of the analytics pipeline.
type Config struct {
	TauATL           float64    // acute smoothing time constant, days
	TauCTL           float64    // chronic smoothing time constant, days
	Thresholds       Thresholds // ACWR band cut points
	EfficiencyWindow int        // sessions in the efficiency trend window
	Load             LoadFunc   // session -> scalar load policy
}

// DefaultConfig returns the standard 7/42-day constants, the common ACWR
// cut points, and the distance*TE load formula.
func DefaultConfig() Config {
	return Config{
		TauATL:           7,
		TauCTL:           42,
		Thresholds:       DefaultThresholds(),
		EfficiencyWindow: 10,
		Load:             DefaultLoad,
	}
}

// Pipeline runs the full analytics chain over a raw session log. It holds
// no state between runs; every derived sequence is regenerated in full on
// each Run.
type Pipeline struct {
	cfg Config
}

// NewPipeline validates the configuration and builds a pipeline.
// Configuration problems are fatal here, before any data is touched.
func NewPipeline(cfg Config) (*Pipeline, error) {
	if err := validateTaus(cfg.TauATL, cfg.TauCTL); err != nil {
		return nil, err
	}
	if err := cfg.Thresholds.Validate(); err != nil {
		return nil, err
	}
	if cfg.EfficiencyWindow < minTrendSamples {
		return nil, &ConfigurationError{Param: "efficiency_window", Reason: "must be >= 3"}
	}
	if cfg.Load == nil {
		cfg.Load = DefaultLoad
	}
	return &Pipeline{cfg: cfg}, nil
}

// Report is the full output of one pipeline run: the canonical log, every
// derived sequence, and the single recommendation for the latest day.
type Report struct {
	Sessions   []Session
	Validation *ValidationReport

	Daily      []DailyLoad
	Smoothed   []SmoothedPoint
	Risk       []RiskPoint
	Efficiency []EfficiencyPoint

	Trend          Trend
	Recommendation Recommendation

	Summary LogSummary
	ByType  []TypeSummary
}

// Run executes the chain: normalize -> resample -> smooth -> risk and
// efficiency -> recommend. Row-level validation failures are collected in
// the report; only an empty usable log is an error.
func (p *Pipeline) Run(rows []RawSession) (*Report, error) {
	sessions, validation := NormalizeSessions(rows)
	if len(sessions) == 0 {
		return nil, &InsufficientDataError{Op: "pipeline", Need: 1, Got: 0}
	}

	daily, err := ResampleDaily(sessions, p.cfg.Load)
	if err != nil {
		return nil, err
	}

	smoothed, err := SmoothLoads(daily, p.cfg.TauATL, p.cfg.TauCTL)
	if err != nil {
		return nil, err
	}

	risk := AnalyzeRisk(smoothed, p.cfg.Thresholds)
	efficiency := ComputeEfficiency(sessions, p.cfg.EfficiencyWindow)
	trend := ClassifyTrend(efficiency, p.cfg.EfficiencyWindow)

	latest := risk[len(risk)-1]

	return &Report{
		Sessions:       sessions,
		Validation:     validation,
		Daily:          daily,
		Smoothed:       smoothed,
		Risk:           risk,
		Efficiency:     efficiency,
		Trend:          trend,
		Recommendation: Recommend(latest, trend),
		Summary:        Summarize(sessions),
		ByType:         SummarizeByType(sessions, risk, p.cfg.Load),
	}, nil
}
