package analysis

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// EfficiencyPoint is the cardiac-efficiency state for one session.
// Efficiency is distance per heart beat rate (km / bpm); higher means more
// ground covered for the same cardiac effort. Baseline is the rolling mean
// of the trailing window and Deviation the percent difference from it; both
// are nil until at least three sessions are in the window.
type EfficiencyPoint struct {
	Date       time.Time
	Efficiency float64
	Baseline   *float64
	Deviation  *float64
}

// minTrendSamples guards trend and baseline computation against reading a
// slope into noise.
const minTrendSamples = 3

// Trend classifies the direction of the recent efficiency series.
type Trend int

const (
	TrendInsufficient Trend = iota
	TrendDeclining
	TrendStable
	TrendImproving
)

func (t Trend) String() string {
	switch t {
	case TrendDeclining:
		return "declining"
	case TrendStable:
		return "stable"
	case TrendImproving:
		return "improving"
	default:
		return "insufficient data"
	}
}

// Trends lists every trend value, for exhaustive iteration.
var Trends = []Trend{TrendInsufficient, TrendDeclining, TrendStable, TrendImproving}

// ComputeEfficiency derives per-session efficiency with a rolling baseline
// over the trailing window of size windowN (the current session included).
func ComputeEfficiency(sessions []Session, windowN int) []EfficiencyPoint {
	points := make([]EfficiencyPoint, 0, len(sessions))

	for i, s := range sessions {
		p := EfficiencyPoint{
			Date:       s.Date,
			Efficiency: s.DistanceKm / float64(s.AvgHR),
		}

		lo := i + 1 - windowN
		if lo < 0 {
			lo = 0
		}
		if n := i + 1 - lo; n >= minTrendSamples {
			var sum float64
			for j := lo; j < i; j++ {
				sum += points[j].Efficiency
			}
			sum += p.Efficiency
			baseline := sum / float64(n)
			p.Baseline = &baseline
			if baseline != 0 {
				dev := (p.Efficiency - baseline) / baseline * 100
				p.Deviation = &dev
			}
		}

		points = append(points, p)
	}

	return points
}

// stableSlopeFraction is the relative slope (per session, as a fraction of
// the window's mean efficiency) below which the trend reads as stable.
const stableSlopeFraction = 0.005

// ClassifyTrend fits a least-squares line through the last windowN
// efficiency values and classifies its slope. Fewer than three sessions in
// the window yields TrendInsufficient, never a spurious direction.
func ClassifyTrend(points []EfficiencyPoint, windowN int) Trend {
	if windowN < len(points) {
		points = points[len(points)-windowN:]
	}
	if len(points) < minTrendSamples {
		return TrendInsufficient
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	var mean float64
	for i, p := range points {
		xs[i] = float64(i)
		ys[i] = p.Efficiency
		mean += p.Efficiency
	}
	mean /= float64(len(points))

	_, slope := stat.LinearRegression(xs, ys, nil, false)

	threshold := stableSlopeFraction * mean
	switch {
	case slope > threshold:
		return TrendImproving
	case slope < -threshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}
