package issues

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/postman2oas/internal/severity"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name        string
		issue       Issue
		contains    []string
		notContains []string
	}{
		{
			name: "info with item name",
			issue: Issue{
				Path:     "item[0].item[3]",
				Message:  "skipped: request has no URL",
				Severity: severity.SeverityInfo,
				Item:     "Draft",
			},
			contains:    []string{"ℹ", `item[0].item[3] "Draft"`, "skipped: request has no URL"},
			notContains: []string{"Context:", "("},
		},
		{
			name: "warning with operation and context",
			issue: Issue{
				Path:      "item[1]",
				Message:   "request body is not valid JSON; body omitted",
				Severity:  severity.SeverityWarning,
				Operation: "POST /users",
				Context:   "unexpected end of JSON input",
			},
			contains: []string{"⚠", "item[1] (POST /users)", "body omitted", "\n    Context: unexpected end"},
		},
		{
			name:     "unknown severity",
			issue:    Issue{Path: "item[0]", Message: "m", Severity: severity.Severity(42)},
			contains: []string{"? item[0]: m"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.issue.String()
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestCount(t *testing.T) {
	info, warning := Count([]Issue{
		{Severity: severity.SeverityInfo},
		{Severity: severity.SeverityWarning},
		{Severity: severity.SeverityInfo},
	})
	assert.Equal(t, 2, info)
	assert.Equal(t, 1, warning)

	info, warning = Count(nil)
	assert.Zero(t, info)
	assert.Zero(t, warning)
}

func TestIssueJSON(t *testing.T) {
	data, err := json.Marshal(Issue{Path: "item[0]", Message: "m", Severity: severity.SeverityWarning})
	require.NoError(t, err)
	assert.JSONEq(t, `{"path":"item[0]","message":"m","severity":"warning"}`, string(data))
}
