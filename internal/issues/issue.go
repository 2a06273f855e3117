// Package issues provides the issue type reported by conversions.
package issues

import (
	"fmt"

	"github.com/erraggy/postman2oas/internal/severity"
)

// Issue represents a single lossy decision made during conversion.
type Issue struct {
	// Path locates the Postman item, e.g. "item[2].item[0]"
	Path string `json:"path"`
	// Message is a human-readable description of the issue
	Message string `json:"message"`
	// Severity indicates the severity level of the issue
	Severity severity.Severity `json:"severity"`
	// Item is the name of the Postman item, if it has one
	Item string `json:"item,omitempty"`
	// Operation identifies the generated operation, e.g. "POST /users" (optional)
	Operation string `json:"operation,omitempty"`
	// Context provides additional information about the issue (optional)
	Context string `json:"context,omitempty"`
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	location := i.Path
	if i.Item != "" {
		location = fmt.Sprintf("%s %q", location, i.Item)
	}
	if i.Operation != "" {
		location = fmt.Sprintf("%s (%s)", location, i.Operation)
	}

	result := fmt.Sprintf("%s %s: %s", symbol, location, i.Message)
	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}
	return result
}

// Count returns the number of info and warning issues in list.
func Count(list []Issue) (info, warning int) {
	for _, i := range list {
		switch i.Severity {
		case severity.SeverityInfo:
			info++
		case severity.SeverityWarning:
			warning++
		}
	}
	return info, warning
}
