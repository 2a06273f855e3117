package cliutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/erraggy/postman2oas/internal/issues"
	"github.com/erraggy/postman2oas/internal/severity"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Converted to %s\n", "output/pets_openapi.yaml")
	want := "Converted to output/pets_openapi.yaml\n"
	if got := buf.String(); got != want {
		t.Errorf("Writef() = %q, want %q", got, want)
	}
}

type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, bytes.ErrTooLarge
}

func TestWritef_WriteError(t *testing.T) {
	// Must not panic.
	Writef(errorWriter{}, "This will fail")
}

func TestWriteIssues(t *testing.T) {
	list := []issues.Issue{
		{Path: "item[0]", Message: "skipped: request has no URL", Severity: severity.SeverityInfo},
		{Path: "item[1]", Message: "request body is not valid JSON; body omitted", Severity: severity.SeverityWarning},
	}

	t.Run("warnings only", func(t *testing.T) {
		var buf bytes.Buffer
		WriteIssues(&buf, list, false)
		got := buf.String()
		if !strings.HasPrefix(got, "Issues:\n") {
			t.Errorf("missing heading: %q", got)
		}
		if strings.Contains(got, "skipped") {
			t.Errorf("info issue printed without verbose: %q", got)
		}
		if !strings.Contains(got, "body omitted") {
			t.Errorf("warning missing: %q", got)
		}
	})

	t.Run("verbose", func(t *testing.T) {
		var buf bytes.Buffer
		WriteIssues(&buf, list, true)
		if n := strings.Count(buf.String(), "\n  "); n != 2 {
			t.Errorf("got %d issue lines, want 2: %q", n, buf.String())
		}
	})

	t.Run("nothing to show", func(t *testing.T) {
		var buf bytes.Buffer
		WriteIssues(&buf, list[:1], false)
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})
}
