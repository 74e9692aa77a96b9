package analysis

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// RawSession is a loosely-typed row as delivered by the ingestion layer.
// All fields are strings; the normalizer owns parsing and validation.
type RawSession struct {
	Row       int // 1-based position in the source, for diagnostics
	Date      string
	Distance  string
	AerobicTE string
	AvgHR     string
}

// Session is the canonical training record. Dates carry no time-of-day and
// are unique within a normalized log. Immutable once created.
type Session struct {
	Date       time.Time // midnight UTC
	DistanceKm float64
	AerobicTE  float64
	AvgHR      int
}

// Accepted date layouts. ISO first; the slash forms show up in Garmin
// Connect exports.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2006/01/02",
}

// NormalizeSessions turns raw rows into a sorted canonical session log.
//
// Rows with an unparseable date, negative distance, negative aerobic TE, or
// non-positive heart rate are dropped and recorded in the returned report.
// Multiple sessions on the same date are merged: distance and aerobic TE
// sum (one training day's total load), and average HR becomes the
// distance-weighted mean of the merged sessions.
func NormalizeSessions(rows []RawSession) ([]Session, *ValidationReport) {
	report := &ValidationReport{}
	byDate := make(map[time.Time]Session)

	for _, row := range rows {
		s, verr := parseRow(row)
		if verr != nil {
			report.add(verr)
			continue
		}

		prev, ok := byDate[s.Date]
		if !ok {
			byDate[s.Date] = s
			continue
		}
		byDate[s.Date] = mergeSessions(prev, s)
	}

	sessions := make([]Session, 0, len(byDate))
	for _, s := range byDate {
		sessions = append(sessions, s)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Date.Before(sessions[j].Date)
	})

	return sessions, report
}

func parseRow(row RawSession) (Session, *ValidationError) {
	date, err := parseDate(row.Date)
	if err != nil {
		return Session{}, &ValidationError{Row: row.Row, Field: "date", Reason: err.Error()}
	}

	distance, err := parseFloat(row.Distance)
	if err != nil {
		return Session{}, &ValidationError{Row: row.Row, Field: "distance_km", Reason: err.Error()}
	}
	if distance < 0 {
		return Session{}, &ValidationError{Row: row.Row, Field: "distance_km", Reason: "must be >= 0"}
	}

	te, err := parseFloat(row.AerobicTE)
	if err != nil {
		return Session{}, &ValidationError{Row: row.Row, Field: "aerobic_te", Reason: err.Error()}
	}
	if te < 0 {
		return Session{}, &ValidationError{Row: row.Row, Field: "aerobic_te", Reason: "must be >= 0"}
	}

	hr, err := parseFloat(row.AvgHR)
	if err != nil {
		return Session{}, &ValidationError{Row: row.Row, Field: "avg_hr", Reason: err.Error()}
	}
	if hr <= 0 {
		return Session{}, &ValidationError{Row: row.Row, Field: "avg_hr", Reason: "must be > 0"}
	}

	return Session{
		Date:       date,
		DistanceKm: distance,
		AerobicTE:  te,
		AvgHR:      int(hr),
	}, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	// Garmin's Spanish locale exports use a decimal comma.
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}

func mergeSessions(a, b Session) Session {
	merged := Session{
		Date:       a.Date,
		DistanceKm: a.DistanceKm + b.DistanceKm,
		AerobicTE:  a.AerobicTE + b.AerobicTE,
	}

	// Distance-weighted mean HR; fall back to a plain mean for zero-distance
	// sessions so the result stays positive.
	totalDist := a.DistanceKm + b.DistanceKm
	if totalDist > 0 {
		weighted := (float64(a.AvgHR)*a.DistanceKm + float64(b.AvgHR)*b.DistanceKm) / totalDist
		merged.AvgHR = int(weighted + 0.5)
	} else {
		merged.AvgHR = (a.AvgHR + b.AvgHR + 1) / 2
	}

	return merged
}
