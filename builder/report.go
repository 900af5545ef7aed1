package builder

import "fmt"

// Severity classifies an issue found during a build.
type Severity int

const (
	// SeverityCritical indicates an error that aborts the build.
	SeverityCritical Severity = iota
	// SeverityMajor indicates an error that degrades the output but lets the build continue.
	SeverityMajor
	// SeverityMinor indicates an issue that can be safely ignored in most cases.
	SeverityMinor
)

// String returns a human-readable representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityMajor:
		return "MAJOR"
	case SeverityMinor:
		return "MINOR"
	default:
		return "UNKNOWN"
	}
}

// BuildError represents an error encountered during a pipeline stage.
// Errors are accumulated in the report and can be inspected after the
// build completes.
type BuildError struct {
	Stage    string   // pipeline stage (e.g. "sheets", "features")
	Source   string   // specific input within the stage (a sheet file, a feature tag)
	Issue    string   // human-readable description of the issue
	Severity Severity // severity level of the error
}

// Error implements the error interface.
func (e BuildError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("[%s] %s/%s: %s", e.Severity, e.Stage, e.Source, e.Issue)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Stage, e.Issue)
}

// BuildWarning represents a non-critical issue, typically a degraded
// input such as a missing sheet file.
type BuildWarning struct {
	Stage  string
	Source string
	Issue  string
}

// String returns a human-readable representation of the warning.
func (w BuildWarning) String() string {
	if w.Source != "" {
		return fmt.Sprintf("[WARNING] %s/%s: %s", w.Stage, w.Source, w.Issue)
	}
	return fmt.Sprintf("[WARNING] %s: %s", w.Stage, w.Issue)
}

// Report accumulates errors and warnings across the pipeline stages.
type Report struct {
	errors   []BuildError
	warnings []BuildWarning
}

// AddError records a build error.
func (r *Report) AddError(stage, source, issue string, severity Severity) {
	r.errors = append(r.errors, BuildError{
		Stage:    stage,
		Source:   source,
		Issue:    issue,
		Severity: severity,
	})
}

// AddWarning records a build warning.
func (r *Report) AddWarning(stage, source, issue string) {
	r.warnings = append(r.warnings, BuildWarning{
		Stage:  stage,
		Source: source,
		Issue:  issue,
	})
}

// Errors returns all recorded errors.
func (r *Report) Errors() []BuildError { return r.errors }

// Warnings returns all recorded warnings.
func (r *Report) Warnings() []BuildWarning { return r.warnings }

// HasErrors returns true if any errors have been recorded.
func (r *Report) HasErrors() bool { return len(r.errors) > 0 }

// HasCriticalErrors returns true if any critical errors have been recorded.
func (r *Report) HasCriticalErrors() bool {
	for _, err := range r.errors {
		if err.Severity == SeverityCritical {
			return true
		}
	}
	return false
}
