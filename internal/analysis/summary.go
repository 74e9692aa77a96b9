package analysis

import "time"

// FormDescription returns a human-readable freshness label for a TSB value.
func FormDescription(tsb float64) string {
	switch {
	case tsb > 5:
		return "fresh - in good shape to train hard"
	case tsb > -5:
		return "balanced - training and recovery in equilibrium"
	case tsb > -10:
		return "moderately fatigued - consider easing off"
	default:
		return "very fatigued - recovery needed"
	}
}

// Workout types inferred from the weekday of a session, following a common
// Tue/Thu/Sat club schedule.
const (
	WorkoutTempo     = "tempo"
	WorkoutIntervals = "intervals"
	WorkoutLongRun   = "long run"
	WorkoutOther     = "other"
)

// ClassifyWorkout labels a session date by its weekday.
func ClassifyWorkout(date time.Time) string {
	switch date.Weekday() {
	case time.Tuesday:
		return WorkoutTempo
	case time.Thursday:
		return WorkoutIntervals
	case time.Saturday:
		return WorkoutLongRun
	default:
		return WorkoutOther
	}
}

// TypeSummary aggregates sessions of one workout type. AvgTSB is the mean
// training stress balance on arrival at those sessions, over the days where
// TSB is defined.
type TypeSummary struct {
	Type        string
	Count       int
	AvgDistance float64
	AvgLoad     float64
	AvgHR       float64
	AvgTSB      *float64
}

// workoutTypeOrder fixes the display order of per-type summaries.
var workoutTypeOrder = []string{WorkoutTempo, WorkoutIntervals, WorkoutLongRun, WorkoutOther}

// SummarizeByType groups sessions by inferred workout type.
func SummarizeByType(sessions []Session, risk []RiskPoint, load LoadFunc) []TypeSummary {
	if load == nil {
		load = DefaultLoad
	}

	tsbByDate := make(map[string]*float64, len(risk))
	for _, rp := range risk {
		tsbByDate[rp.Date.Format("2006-01-02")] = rp.TSB
	}

	acc := make(map[string]*TypeSummary)
	tsbCount := make(map[string]int)
	for _, s := range sessions {
		typ := ClassifyWorkout(s.Date)
		ts, ok := acc[typ]
		if !ok {
			ts = &TypeSummary{Type: typ}
			acc[typ] = ts
		}
		ts.Count++
		ts.AvgDistance += s.DistanceKm
		ts.AvgLoad += load(s)
		ts.AvgHR += float64(s.AvgHR)
		if tsb := tsbByDate[s.Date.Format("2006-01-02")]; tsb != nil {
			if ts.AvgTSB == nil {
				ts.AvgTSB = new(float64)
			}
			*ts.AvgTSB += *tsb
			tsbCount[typ]++
		}
	}

	var summaries []TypeSummary
	for _, typ := range workoutTypeOrder {
		ts, ok := acc[typ]
		if !ok {
			continue
		}
		n := float64(ts.Count)
		ts.AvgDistance /= n
		ts.AvgLoad /= n
		ts.AvgHR /= n
		if ts.AvgTSB != nil {
			*ts.AvgTSB /= float64(tsbCount[typ])
		}
		summaries = append(summaries, *ts)
	}

	return summaries
}

// LogSummary captures headline figures for the whole session log.
type LogSummary struct {
	Sessions      int
	Days          int // inclusive span from first to last session
	TotalDistance float64
	MeanTE        float64
}

// Summarize computes headline figures for a sorted session log.
func Summarize(sessions []Session) LogSummary {
	if len(sessions) == 0 {
		return LogSummary{}
	}

	sum := LogSummary{Sessions: len(sessions)}
	first := sessions[0].Date
	last := sessions[len(sessions)-1].Date
	sum.Days = int(last.Sub(first).Hours()/24) + 1

	for _, s := range sessions {
		sum.TotalDistance += s.DistanceKm
		sum.MeanTE += s.AerobicTE
	}
	sum.MeanTE /= float64(len(sessions))

	return sum
}
