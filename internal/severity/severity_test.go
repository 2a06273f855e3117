package severity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		expected string
	}{
		{"info level", SeverityInfo, "info"},
		{"warning level", SeverityWarning, "warning"},
		{"unknown negative", Severity(-1), "unknown"},
		{"unknown large value", Severity(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.severity.String())
		})
	}
}

func TestSeverityOrdering(t *testing.T) {
	assert.Less(t, SeverityInfo, SeverityWarning)
}

func TestSeverityJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Severity Severity `json:"severity"`
	}{SeverityWarning})
	require.NoError(t, err)
	assert.JSONEq(t, `{"severity":"warning"}`, string(data))
}
