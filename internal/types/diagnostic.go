package types

import "fmt"

// Severity classifies how bad a diagnostic is.
type Severity int

const (
	// SeverityWarning marks a recoverable issue: a record was dropped or a
	// value substituted, but the operation completed.
	SeverityWarning Severity = iota

	// SeverityCritical marks a fatal issue: the operation aborted and the
	// result is at best partial.
	SeverityCritical
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	default:
		return "warning"
	}
}

// Diagnostic is one notification recorded during parsing or making a tag.
//
// Diagnostics accumulate in order on the owning tag. Fatal conditions record
// a critical diagnostic before the error propagates; recoverable conditions
// record a warning and are otherwise absorbed. Callers should inspect the
// collected diagnostics after every parse or make call, whether or not it
// returned an error, to judge whether a possibly partial result is usable.
type Diagnostic struct {
	// Severity of the issue.
	Severity Severity

	// Context names the operation, e.g. "parsing Vorbis comment".
	Context string

	// Message describes the issue.
	Message string

	// Offset is the logical byte offset where the issue occurred
	// (0 if not applicable).
	Offset int64
}

// String returns a human-readable diagnostic line.
func (d Diagnostic) String() string {
	if d.Offset > 0 {
		return fmt.Sprintf("%s: %s (at offset %d): %s", d.Severity, d.Context, d.Offset, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.Context, d.Message)
}
