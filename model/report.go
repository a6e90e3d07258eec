package model

import "strings"

// Severity classifies a validation issue.
type Severity int

const (
	// SeverityWarning marks an inconsistency processing can survive
	SeverityWarning Severity = iota

	// SeverityFatal marks a condition that aborts the paper
	SeverityFatal
)

// String returns a string representation of the severity.
func (s Severity) String() string {
	if s == SeverityFatal {
		return "fatal"
	}
	return "warning"
}

// Issue is a single finding from validation or from a recovery
// fallback taken during segmentation.
type Issue struct {
	// Severity is the issue's classification
	Severity Severity

	// Message is a human-readable description
	Message string
}

// ValidationReport is the ordered list of issues found for one paper.
// It is append-only while checks run and read-only afterwards.
type ValidationReport struct {
	// Issues in the order they were found
	Issues []Issue
}

// Add appends an issue to the report.
func (r *ValidationReport) Add(severity Severity, message string) {
	r.Issues = append(r.Issues, Issue{Severity: severity, Message: message})
}

// Warnings returns the warning-severity issues.
func (r *ValidationReport) Warnings() []Issue {
	return r.bySeverity(SeverityWarning)
}

// Fatals returns the fatal-severity issues.
func (r *ValidationReport) Fatals() []Issue {
	return r.bySeverity(SeverityFatal)
}

func (r *ValidationReport) bySeverity(s Severity) []Issue {
	if r == nil {
		return nil
	}
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == s {
			out = append(out, issue)
		}
	}
	return out
}

// HasFatal reports whether any fatal issue was recorded.
func (r *ValidationReport) HasFatal() bool {
	return len(r.Fatals()) > 0
}

// Summary returns a human-readable one-line summary of the report.
func (r *ValidationReport) Summary() string {
	if r == nil || len(r.Issues) == 0 {
		return "no issues"
	}
	var parts []string
	for _, issue := range r.Issues {
		parts = append(parts, issue.Severity.String()+": "+issue.Message)
	}
	return strings.Join(parts, "; ")
}
