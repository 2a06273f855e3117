package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/postman2oas/converter"
	"github.com/erraggy/postman2oas/internal/fileutil"
	"github.com/erraggy/postman2oas/openapi"
)

type convertInput struct {
	Collection  collectionInput `json:"collection"             jsonschema:"The Postman collection to convert"`
	Format      string          `json:"format,omitempty"       jsonschema:"Output format: yaml (default) or json"`
	Output      string          `json:"output,omitempty"       jsonschema:"File path to write the document. If omitted the document is returned inline."`
	IncludeInfo bool            `json:"include_info,omitempty" jsonschema:"Include informational issues such as skipped items"`
}

type convertIssue struct {
	Severity  string `json:"severity"`
	Path      string `json:"path"`
	Item      string `json:"item,omitempty"`
	Operation string `json:"operation,omitempty"`
	Message   string `json:"message"`
}

type convertOutput struct {
	Title        string          `json:"title"`
	Stats        converter.Stats `json:"stats"`
	Tags         []string        `json:"tags,omitempty"`
	WarningCount int             `json:"warning_count"`
	IssueCount   int             `json:"issue_count"`
	Issues       []convertIssue  `json:"issues,omitempty"`
	Cached       bool            `json:"cached,omitempty"`
	WrittenTo    string          `json:"written_to,omitempty"`
	Document     string          `json:"document,omitempty"`
}

func (s *server) handleConvertCollection(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	format, err := openapi.ParseFormat(input.Format)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	result, cached, err := s.convert(input.Collection, input.IncludeInfo)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		Title:        result.Document.Info.Title,
		Stats:        result.Stats,
		Tags:         result.Document.TagNames(),
		WarningCount: result.WarningCount,
		IssueCount:   len(result.Issues),
		Cached:       cached,
	}
	output.Issues = makeSlice[convertIssue](len(result.Issues))
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, convertIssue{
			Severity:  issue.Severity.String(),
			Path:      issue.Path,
			Item:      issue.Item,
			Operation: issue.Operation,
			Message:   issue.Message,
		})
	}

	data, err := result.Document.MarshalFormat(format)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	if input.Output != "" {
		if err := fileutil.WriteFile(input.Output, data); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), convertOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else {
		output.Document = string(data)
	}

	return nil, output, nil
}
