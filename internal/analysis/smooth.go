package analysis

import "time"

// SmoothedPoint carries the exponentially smoothed load state for one day.
// ATL (acute, short window) tracks fatigue; CTL (chronic, long window)
// tracks fitness.
type SmoothedPoint struct {
	Date time.Time
	ATL  float64
	CTL  float64
}

// SmoothLoads computes ATL and CTL over a contiguous daily load series as
// independent exponential moving averages with decay alpha = 2/(tau+1).
//
// Both averages are seeded from the first day's load rather than zero, so a
// log that starts mid-season does not show an artificial ramp-up.
func SmoothLoads(daily []DailyLoad, tauATL, tauCTL float64) ([]SmoothedPoint, error) {
	if err := validateTaus(tauATL, tauCTL); err != nil {
		return nil, err
	}
	if len(daily) == 0 {
		return nil, &InsufficientDataError{Op: "smooth", Need: 1, Got: 0}
	}

	atlDecay := 2.0 / (tauATL + 1.0)
	ctlDecay := 2.0 / (tauCTL + 1.0)

	atl := daily[0].Load
	ctl := daily[0].Load

	series := make([]SmoothedPoint, 0, len(daily))
	series = append(series, SmoothedPoint{Date: daily[0].Date, ATL: atl, CTL: ctl})

	for _, day := range daily[1:] {
		atl = atl + atlDecay*(day.Load-atl)
		ctl = ctl + ctlDecay*(day.Load-ctl)
		series = append(series, SmoothedPoint{Date: day.Date, ATL: atl, CTL: ctl})
	}

	return series, nil
}

func validateTaus(tauATL, tauCTL float64) error {
	if tauATL < 1 {
		return &ConfigurationError{Param: "tau_atl", Reason: "must be >= 1"}
	}
	if tauATL >= tauCTL {
		return &ConfigurationError{Param: "tau_atl", Reason: "acute window must be strictly shorter than chronic window"}
	}
	return nil
}
