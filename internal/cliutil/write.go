// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/erraggy/postman2oas/internal/issues"
	"github.com/erraggy/postman2oas/internal/severity"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteIssues prints one line per conversion issue, indented under a
// heading. Info issues are left out unless verbose is set.
func WriteIssues(w io.Writer, list []issues.Issue, verbose bool) {
	shown := 0
	for _, iss := range list {
		if iss.Severity == severity.SeverityInfo && !verbose {
			continue
		}
		if shown == 0 {
			Writef(w, "Issues:\n")
		}
		Writef(w, "  %s\n", iss.String())
		shown++
	}
}
