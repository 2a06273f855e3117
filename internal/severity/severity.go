// Package severity provides severity levels for conversion issues.
//
// The levels are ordered from least to most severe: Info < Warning.
//   - SeverityInfo: an item was skipped without affecting other output
//   - SeverityWarning: input was dropped or degraded while converting
package severity

// Severity indicates the severity level of a conversion issue.
type Severity int

const (
	// SeverityInfo indicates informational messages about processing choices,
	// such as an item that was skipped because it has no request or URL.
	SeverityInfo Severity = iota

	// SeverityWarning indicates that part of the input did not make it into
	// the output, such as an unparsable JSON request body.
	SeverityWarning
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity by name, so JSON output reads "warning"
// rather than 1.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
