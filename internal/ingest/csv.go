// Package ingest reads training-log CSV exports and maps them onto the raw
// rows the analysis pipeline consumes. It deals only with file structure;
// value parsing and validation belong to the normalizer.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"fatigue-monitor/internal/analysis"
)

// Canonical column names the pipeline needs.
const (
	colDate     = "date"
	colDistance = "distance_km"
	colTE       = "aerobic_te"
	colHR       = "avg_hr"
)

// headerAliases maps export-specific column headers (lowercased) onto the
// canonical names. Covers plain English exports and Garmin Connect's
// Spanish ones.
var headerAliases = map[string]string{
	"date":                      colDate,
	"fecha":                     colDate,
	"distance_km":               colDistance,
	"distance":                  colDistance,
	"distancia":                 colDistance,
	"aerobic_te":                colTE,
	"aerobic te":                colTE,
	"te aeróbico":               colTE,
	"te aerobico":               colTE,
	"avg_hr":                    colHR,
	"avg hr":                    colHR,
	"average heart rate":        colHR,
	"frecuencia cardiaca media": colHR,
	"frecuencia cardíaca media": colHR,
}

// ReadFile reads a CSV export from disk.
func ReadFile(path string) ([]analysis.RawSession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}

// Read decodes a CSV export. The first record must be a header naming at
// least the four required columns (any alias form); unknown columns are
// ignored. Data rows keep their source line number for diagnostics.
func Read(r io.Reader) ([]analysis.RawSession, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	columns, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	var rows []analysis.RawSession
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}
		line++

		rows = append(rows, analysis.RawSession{
			Row:       line,
			Date:      field(record, columns[colDate]),
			Distance:  field(record, columns[colDistance]),
			AerobicTE: field(record, columns[colTE]),
			AvgHR:     field(record, columns[colHR]),
		})
	}

	return rows, nil
}

func mapHeader(header []string) (map[string]int, error) {
	columns := make(map[string]int, 4)
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		canonical, ok := headerAliases[key]
		if !ok {
			continue
		}
		if _, dup := columns[canonical]; !dup {
			columns[canonical] = i
		}
	}

	var missing []string
	for _, required := range []string{colDate, colDistance, colTE, colHR} {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	return columns, nil
}

func field(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return record[idx]
}
