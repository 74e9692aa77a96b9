package analysis

import "time"

// Band classifies the acute:chronic workload ratio into an injury-risk zone.
type Band int

const (
	BandUndefined Band = iota
	BandUndertrained
	BandOptimal
	BandModerateRisk
	BandHighRisk
)

func (b Band) String() string {
	switch b {
	case BandUndertrained:
		return "undertrained"
	case BandOptimal:
		return "optimal"
	case BandModerateRisk:
		return "moderate risk"
	case BandHighRisk:
		return "high risk"
	default:
		return "undefined"
	}
}

// Bands lists every band in ascending risk order, for exhaustive iteration.
var Bands = []Band{BandUndefined, BandUndertrained, BandOptimal, BandModerateRisk, BandHighRisk}

// Thresholds are the ACWR cut points between bands. Sports-science
// literature varies them, so they are configuration, not constants.
// Intervals are half-open with each boundary owned by the higher band:
// acwr == Undertrained classifies as optimal, acwr == Moderate as moderate
// risk, acwr == High as high risk.
type Thresholds struct {
	Undertrained float64 // below: undertrained
	Moderate     float64 // at or above: moderate risk
	High         float64 // at or above: high risk
}

// DefaultThresholds returns the 0.8 / 1.3 / 1.5 cut points common in the
// ACWR literature.
func DefaultThresholds() Thresholds {
	return Thresholds{Undertrained: 0.8, Moderate: 1.3, High: 1.5}
}

// Validate checks that the cut points are positive and strictly ordered.
func (t Thresholds) Validate() error {
	if t.Undertrained <= 0 {
		return &ConfigurationError{Param: "acwr_thresholds", Reason: "cut points must be positive"}
	}
	if !(t.Undertrained < t.Moderate && t.Moderate < t.High) {
		return &ConfigurationError{Param: "acwr_thresholds", Reason: "cut points must be strictly increasing"}
	}
	return nil
}

// Classify maps an ACWR value to its band.
func (t Thresholds) Classify(acwr float64) Band {
	switch {
	case acwr >= t.High:
		return BandHighRisk
	case acwr >= t.Moderate:
		return BandModerateRisk
	case acwr >= t.Undertrained:
		return BandOptimal
	default:
		return BandUndertrained
	}
}

// RiskPoint is the per-day risk state. TSB is nil on the first day of the
// series (no prior day exists); ACWR is nil when CTL is zero, which only
// happens in an all-zero-load window. Both stay nil rather than defaulting
// to zero, since a legitimate rest block must not read as a signal.
type RiskPoint struct {
	Date time.Time
	TSB  *float64
	ACWR *float64
	Band Band
}

// AnalyzeRisk derives TSB and ACWR from a smoothed series.
//
// TSB for day i is the prior day's CTL minus the prior day's ATL: today's
// fatigue is evaluated against yesterday's accumulated state. ACWR for day
// i is ATL/CTL of the same day.
func AnalyzeRisk(smoothed []SmoothedPoint, t Thresholds) []RiskPoint {
	points := make([]RiskPoint, 0, len(smoothed))

	for i, sp := range smoothed {
		p := RiskPoint{Date: sp.Date, Band: BandUndefined}

		if i > 0 {
			prev := smoothed[i-1]
			tsb := prev.CTL - prev.ATL
			p.TSB = &tsb
		}

		if sp.CTL != 0 {
			acwr := sp.ATL / sp.CTL
			p.ACWR = &acwr
			p.Band = t.Classify(acwr)
		}

		points = append(points, p)
	}

	return points
}
