package converter

import (
	"fmt"

	"github.com/erraggy/postman2oas/internal/issues"
	"github.com/erraggy/postman2oas/internal/severity"
	"github.com/erraggy/postman2oas/openapi"
	"github.com/erraggy/postman2oas/postman"
)

// Severity indicates the severity level of a conversion issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates an item that was skipped
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates input that was dropped while converting
	SeverityWarning = severity.SeverityWarning
)

// ConversionIssue represents a single conversion issue or limitation
type ConversionIssue = issues.Issue

// Stats counts what a conversion visited and produced.
type Stats struct {
	// Folders is the number of folders visited
	Folders int `json:"folders"`
	// Requests is the number of items that carried a request
	Requests int `json:"requests"`
	// Operations is the number of operations in the document
	Operations int `json:"operations"`
	// Paths is the number of distinct paths in the document
	Paths int `json:"paths"`
	// Skipped is the number of items that produced no operation
	Skipped int `json:"skipped"`
}

// ConversionResult contains the results of converting a Postman collection
type ConversionResult struct {
	// Document is the generated OpenAPI 3.0 document
	Document *openapi.Document
	// SourcePath is where the collection was read from, if known
	SourcePath string
	// Stats summarizes the conversion
	Stats Stats
	// Issues lists skipped items and dropped input, in traversal order
	Issues []ConversionIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
}

// HasWarnings returns true if there are any warnings
func (r *ConversionResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// Converter maps Postman collections to OpenAPI documents.
//
// A Converter holds configuration only and may be shared by goroutines.
type Converter struct {
	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool
	// Logger receives debug output about skipped items and dropped input.
	// If nil, logging is disabled (default).
	Logger postman.Logger
}

// New creates a new Converter instance with default settings
func New() *Converter {
	return &Converter{
		IncludeInfo: true,
	}
}

// Convert is a convenience function that reads the collection file at path
// and converts it with default settings.
//
// Example:
//
//	result, err := converter.Convert("api.postman_collection.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, _ := result.Document.MarshalOrderedYAML()
func Convert(collectionPath string) (*ConversionResult, error) {
	return New().Convert(collectionPath)
}

// Convert reads the collection file at path and converts it.
func (c *Converter) Convert(collectionPath string) (*ConversionResult, error) {
	p := &postman.Parser{Logger: c.Logger}
	parsed, err := p.Parse(collectionPath)
	if err != nil {
		return nil, fmt.Errorf("converter: %w", err)
	}
	return c.ConvertParsed(parsed), nil
}

// ConvertParsed converts an already-parsed collection, keeping its source path.
func (c *Converter) ConvertParsed(parsed *postman.ParseResult) *ConversionResult {
	result := c.ConvertCollection(parsed.Collection)
	result.SourcePath = parsed.SourcePath
	return result
}

// ConvertCollection converts coll into an OpenAPI document.
//
// Conversion never fails: items without a request or URL are skipped, and
// unusable bodies are dropped or degraded to strings. Each such decision is
// recorded in the result's Issues. The output is fully determined by coll.
func (c *Converter) ConvertCollection(coll *postman.Collection) *ConversionResult {
	cv := newConversion(c.log())

	title, description := "API Documentation", ""
	var items []postman.Item
	if coll != nil {
		if coll.Info != nil {
			if coll.Info.Name != nil {
				title = *coll.Info.Name
			}
			description = coll.Info.Description.String()
		}
		items = coll.Items
	}

	cv.doc = openapi.NewDocument(title, description)
	cv.visitItems(items, nil, "")
	cv.doc.Tags = cv.sortedTags()

	result := &ConversionResult{
		Document: cv.doc,
		Stats:    cv.stats,
		Issues:   cv.issues,
	}
	result.Stats.Operations = cv.doc.OperationCount()
	result.Stats.Paths = cv.doc.Paths.Len()
	if result.Issues == nil {
		result.Issues = make([]ConversionIssue, 0)
	}

	if !c.IncludeInfo {
		filtered := make([]ConversionIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
	}
	result.InfoCount, result.WarningCount = issues.Count(result.Issues)

	c.log().Debug("converted collection",
		"title", title,
		"paths", result.Stats.Paths,
		"operations", result.Stats.Operations,
		"skipped", result.Stats.Skipped,
	)
	return result
}

// log returns the configured logger, or a no-op logger if none is set.
func (c *Converter) log() postman.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return postman.NopLogger{}
}
