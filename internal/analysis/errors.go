package analysis

import "fmt"

// ValidationError describes a single input row that could not be turned
// into a canonical Session.
type ValidationError struct {
	Row    int    // 1-based position in the input sequence
	Field  string // offending field name
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("row %d: invalid %s: %s", e.Row, e.Field, e.Reason)
}

// maxReportedErrors caps how many offending rows a ValidationReport retains.
const maxReportedErrors = 5

// ValidationReport summarizes rows dropped during normalization. Dropped
// rows are never silently ignored: the count is always exact, and the first
// few errors are kept for diagnostics.
type ValidationReport struct {
	Dropped int
	Errors  []*ValidationError
}

func (r *ValidationReport) add(err *ValidationError) {
	r.Dropped++
	if len(r.Errors) < maxReportedErrors {
		r.Errors = append(r.Errors, err)
	}
}

// InsufficientDataError indicates a computation had too little data to
// produce a defined result.
type InsufficientDataError struct {
	Op   string
	Need int
	Got  int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: need at least %d sessions, got %d", e.Op, e.Need, e.Got)
}

// ConfigurationError indicates an invalid tuning parameter. It is raised at
// pipeline construction, before any data is processed.
type ConfigurationError struct {
	Param  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s: %s", e.Param, e.Reason)
}
