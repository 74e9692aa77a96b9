package analysis

import "fmt"

// Recommendation is the single actionable summary for the most recent day.
type Recommendation struct {
	Band      Band
	Trend     Trend
	Message   string
	Rationale []string
}

// Messages for every decision-table outcome.
const (
	MsgInsufficient = "insufficient history for a recommendation"
	MsgHighRisk     = "reduce load / prioritize recovery"
	MsgCaution      = "caution: reduce intensity"
	MsgMonitor      = "monitor closely"
	MsgMaintain     = "maintain current load"
	MsgIncrease     = "load capacity available to increase training"
)

// Recommend maps the latest risk point and efficiency trend to exactly one
// recommendation. It is a total decision table over band x trend: every
// combination selects a single branch, and an undefined band, missing TSB,
// or insufficient trend data short-circuits to the insufficient-history
// outcome before anything else fires.
func Recommend(latest RiskPoint, trend Trend) Recommendation {
	rec := Recommendation{Band: latest.Band, Trend: trend}

	if latest.Band == BandUndefined || latest.TSB == nil || trend == TrendInsufficient {
		rec.Message = MsgInsufficient
		rec.Rationale = []string{"not enough defined history to evaluate load and efficiency together"}
		return rec
	}

	switch latest.Band {
	case BandHighRisk:
		rec.Message = MsgHighRisk
	case BandModerateRisk:
		if trend == TrendDeclining {
			rec.Message = MsgCaution
		} else {
			rec.Message = MsgMonitor
		}
	case BandOptimal:
		rec.Message = MsgMaintain
	case BandUndertrained:
		rec.Message = MsgIncrease
	}

	rec.Rationale = buildRationale(latest, trend)
	return rec
}

func buildRationale(latest RiskPoint, trend Trend) []string {
	rationale := []string{
		fmt.Sprintf("acute:chronic workload ratio %.2f is in the %s band", *latest.ACWR, latest.Band),
		fmt.Sprintf("training stress balance %+.1f: %s", *latest.TSB, FormDescription(*latest.TSB)),
		fmt.Sprintf("cardiac efficiency trend is %s", trend),
	}
	if latest.Band == BandHighRisk && trend == TrendDeclining {
		rationale = append(rationale, "declining efficiency under high load compounds the injury risk")
	}
	return rationale
}
