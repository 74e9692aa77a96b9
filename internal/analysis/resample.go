package analysis

import "time"

// DailyLoad is one calendar day's training load. The resampled series is
// contiguous: every day between the first and last session appears exactly
// once, rest days with a load of 0.
type DailyLoad struct {
	Date time.Time
	Load float64
}

// LoadFunc maps a session to its scalar training load. The exact formula is
// a tuning policy, not a constant of the system.
type LoadFunc func(Session) float64

// DefaultLoad scores a session as distance times aerobic training effect.
func DefaultLoad(s Session) float64 {
	return s.DistanceKm * s.AerobicTE
}

// TSSLoad estimates a TSS-like score from aerobic training effect alone
// (TE * 20, mapping a maximal TE of 5 to 100).
func TSSLoad(s Session) float64 {
	return s.AerobicTE * 20
}

// ResampleDaily maps a sorted session log onto a contiguous daily load
// series spanning [first session date, last session date]. Days without a
// session get load 0. A single session yields a one-day series.
func ResampleDaily(sessions []Session, load LoadFunc) ([]DailyLoad, error) {
	if len(sessions) == 0 {
		return nil, &InsufficientDataError{Op: "resample", Need: 1, Got: 0}
	}
	if load == nil {
		load = DefaultLoad
	}

	loadByDate := make(map[string]float64, len(sessions))
	for _, s := range sessions {
		loadByDate[s.Date.Format("2006-01-02")] = load(s)
	}

	start := sessions[0].Date
	end := sessions[len(sessions)-1].Date

	var series []DailyLoad
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		series = append(series, DailyLoad{
			Date: d,
			Load: loadByDate[d.Format("2006-01-02")], // 0 on rest days
		})
	}

	return series, nil
}
