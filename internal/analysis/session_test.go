package analysis

import (
	"math"
	"testing"
	"time"
)

// Shared test helpers

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func floatPtr(f float64) *float64 {
	return &f
}

func rawRow(row int, date, dist, te, hr string) RawSession {
	return RawSession{Row: row, Date: date, Distance: dist, AerobicTE: te, AvgHR: hr}
}

func TestNormalizeSessionsValid(t *testing.T) {
	rows := []RawSession{
		rawRow(1, "2024-03-05", "12.5", "3.4", "152"),
		rawRow(2, "2024-03-03", "8", "2.1", "140"),
	}

	sessions, report := NormalizeSessions(rows)

	if report.Dropped != 0 {
		t.Fatalf("Dropped = %d, want 0", report.Dropped)
	}
	if len(sessions) != 2 {
		t.Fatalf("len(sessions) = %d, want 2", len(sessions))
	}

	// Sorted ascending by date
	if !sessions[0].Date.Equal(date(2024, 3, 3)) {
		t.Errorf("sessions[0].Date = %v, want 2024-03-03", sessions[0].Date)
	}
	if sessions[1].DistanceKm != 12.5 {
		t.Errorf("sessions[1].DistanceKm = %v, want 12.5", sessions[1].DistanceKm)
	}
	if sessions[1].AerobicTE != 3.4 {
		t.Errorf("sessions[1].AerobicTE = %v, want 3.4", sessions[1].AerobicTE)
	}
	if sessions[1].AvgHR != 152 {
		t.Errorf("sessions[1].AvgHR = %v, want 152", sessions[1].AvgHR)
	}
}

func TestNormalizeSessionsDateLayouts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"iso", "2024-03-05", date(2024, 3, 5)},
		{"slash day first", "05/03/2024", date(2024, 3, 5)},
		{"slash year first", "2024/03/05", date(2024, 3, 5)},
		{"surrounding whitespace", " 2024-03-05 ", date(2024, 3, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions, report := NormalizeSessions([]RawSession{
				rawRow(1, tt.input, "10", "3", "150"),
			})
			if report.Dropped != 0 {
				t.Fatalf("Dropped = %d, want 0", report.Dropped)
			}
			if !sessions[0].Date.Equal(tt.want) {
				t.Errorf("Date = %v, want %v", sessions[0].Date, tt.want)
			}
		})
	}
}

func TestNormalizeSessionsDecimalComma(t *testing.T) {
	sessions, report := NormalizeSessions([]RawSession{
		rawRow(1, "2024-03-05", "12,5", "3,4", "152"),
	})
	if report.Dropped != 0 {
		t.Fatalf("Dropped = %d, want 0", report.Dropped)
	}
	if sessions[0].DistanceKm != 12.5 {
		t.Errorf("DistanceKm = %v, want 12.5", sessions[0].DistanceKm)
	}
}

func TestNormalizeSessionsDropsInvalidRows(t *testing.T) {
	tests := []struct {
		name      string
		row       RawSession
		wantField string
	}{
		{"unparseable date", rawRow(1, "not-a-date", "10", "3", "150"), "date"},
		{"negative distance", rawRow(1, "2024-03-05", "-1", "3", "150"), "distance_km"},
		{"non-numeric distance", rawRow(1, "2024-03-05", "far", "3", "150"), "distance_km"},
		{"negative TE", rawRow(1, "2024-03-05", "10", "-0.5", "150"), "aerobic_te"},
		{"zero heart rate", rawRow(1, "2024-03-05", "10", "3", "0"), "avg_hr"},
		{"negative heart rate", rawRow(1, "2024-03-05", "10", "3", "-60"), "avg_hr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions, report := NormalizeSessions([]RawSession{tt.row})
			if len(sessions) != 0 {
				t.Fatalf("len(sessions) = %d, want 0", len(sessions))
			}
			if report.Dropped != 1 {
				t.Fatalf("Dropped = %d, want 1", report.Dropped)
			}
			if len(report.Errors) != 1 {
				t.Fatalf("len(Errors) = %d, want 1", len(report.Errors))
			}
			if report.Errors[0].Field != tt.wantField {
				t.Errorf("Errors[0].Field = %q, want %q", report.Errors[0].Field, tt.wantField)
			}
		})
	}
}

func TestNormalizeSessionsReportCap(t *testing.T) {
	var rows []RawSession
	for i := 1; i <= 8; i++ {
		rows = append(rows, rawRow(i, "bad", "10", "3", "150"))
	}

	_, report := NormalizeSessions(rows)

	if report.Dropped != 8 {
		t.Errorf("Dropped = %d, want 8", report.Dropped)
	}
	if len(report.Errors) != maxReportedErrors {
		t.Errorf("len(Errors) = %d, want %d", len(report.Errors), maxReportedErrors)
	}
}

func TestNormalizeSessionsMergesDuplicateDates(t *testing.T) {
	// Two activities on the same day count as one training day's total load.
	sessions, report := NormalizeSessions([]RawSession{
		rawRow(1, "2024-03-05", "10", "3.0", "150"),
		rawRow(2, "2024-03-05", "5", "1.5", "120"),
	})

	if report.Dropped != 0 {
		t.Fatalf("Dropped = %d, want 0", report.Dropped)
	}
	if len(sessions) != 1 {
		t.Fatalf("len(sessions) = %d, want 1", len(sessions))
	}

	s := sessions[0]
	if s.DistanceKm != 15 {
		t.Errorf("DistanceKm = %v, want 15", s.DistanceKm)
	}
	if math.Abs(s.AerobicTE-4.5) > 1e-9 {
		t.Errorf("AerobicTE = %v, want 4.5", s.AerobicTE)
	}
	// Distance-weighted HR: (150*10 + 120*5) / 15 = 140
	if s.AvgHR != 140 {
		t.Errorf("AvgHR = %v, want 140", s.AvgHR)
	}
}

func TestNormalizeSessionsMergeZeroDistance(t *testing.T) {
	sessions, _ := NormalizeSessions([]RawSession{
		rawRow(1, "2024-03-05", "0", "0", "100"),
		rawRow(2, "2024-03-05", "0", "0", "120"),
	})

	if len(sessions) != 1 {
		t.Fatalf("len(sessions) = %d, want 1", len(sessions))
	}
	if sessions[0].AvgHR <= 0 {
		t.Errorf("AvgHR = %v, want positive", sessions[0].AvgHR)
	}
}
