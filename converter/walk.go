package converter

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/postman2oas/openapi"
	"github.com/erraggy/postman2oas/postman"
)

// conversion is the mutable state of a single ConvertCollection call.
type conversion struct {
	log    postman.Logger
	doc    *openapi.Document
	tags   map[string]struct{}
	stats  Stats
	issues []ConversionIssue
	// lower is not safe for concurrent use, hence one per conversion.
	lower cases.Caser
}

func newConversion(log postman.Logger) *conversion {
	return &conversion{
		log:   log,
		tags:  make(map[string]struct{}),
		lower: cases.Lower(language.Und),
	}
}

// itemPath returns the location of the index-th child of parent, e.g.
// "item[2].item[0]".
func itemPath(parent string, index int) string {
	if parent == "" {
		return fmt.Sprintf("item[%d]", index)
	}
	return fmt.Sprintf("%s.item[%d]", parent, index)
}

// visitItems walks items depth-first. tags is the folder path of the
// enclosing folders, outermost first.
func (cv *conversion) visitItems(items []postman.Item, tags []string, parent string) {
	for i, item := range items {
		location := itemPath(parent, i)
		switch it := item.(type) {
		case *postman.Folder:
			cv.stats.Folders++
			childTags := tags
			if it.Name != "" {
				childTags = append(append(make([]string, 0, len(tags)+1), tags...), it.Name)
			}
			cv.visitItems(it.Items, childTags, location)
		case *postman.RequestItem:
			cv.visitRequest(it, tags, location)
		}
	}
}

func (cv *conversion) visitRequest(item *postman.RequestItem, tags []string, location string) {
	req := item.Request
	if req == nil {
		cv.skip(item, location, "item has no request and no child items")
		return
	}
	cv.stats.Requests++
	if req.URL == nil {
		cv.skip(item, location, "request has no URL")
		return
	}

	method := req.HTTPMethod()
	path := buildPath(req.URL.Path)
	ref := opRef{location: location, item: item.Name, operation: strings.ToUpper(method) + " " + path}

	op := &openapi.Operation{
		Summary:     item.Name,
		Description: req.Description.String(),
		Parameters:  buildParameters(req.URL, req.Header),
		RequestBody: cv.requestBody(req, method, ref),
		Responses:   cv.responses(item.Responses, ref),
		Tags:        append(make([]string, 0, len(tags)), tags...),
	}
	for _, tag := range tags {
		cv.tags[tag] = struct{}{}
	}

	// Set keeps the position of an existing method, so a repeated
	// path+method replaces the earlier operation in place.
	pathItem := cv.doc.PathItem(path)
	if _, exists := pathItem.Get(method); exists {
		cv.log.Debug("replacing operation", "operation", ref.operation, "location", location)
	}
	pathItem.Set(method, op)
}

// skip records an item that produced no operation.
func (cv *conversion) skip(item *postman.RequestItem, location, reason string) {
	cv.stats.Skipped++
	cv.log.Debug("skipping item", "location", location, "name", item.Name, "reason", reason)
	cv.issues = append(cv.issues, ConversionIssue{
		Path:     location,
		Message:  "skipped: " + reason,
		Severity: SeverityInfo,
		Item:     item.Name,
	})
}

// opRef identifies the operation being built, for issue reporting.
type opRef struct {
	location  string
	item      string
	operation string
}

// warn records input that was dropped while building ref.
func (cv *conversion) warn(ref opRef, message, context string) {
	cv.log.Warn(message, "location", ref.location, "operation", ref.operation)
	cv.issues = append(cv.issues, ConversionIssue{
		Path:      ref.location,
		Message:   message,
		Severity:  SeverityWarning,
		Item:      ref.item,
		Operation: ref.operation,
		Context:   context,
	})
}

// sortedTags returns every tag seen, deduplicated and in ascending order.
func (cv *conversion) sortedTags() []openapi.Tag {
	names := make([]string, 0, len(cv.tags))
	for name := range cv.tags {
		names = append(names, name)
	}
	sort.Strings(names)

	tags := make([]openapi.Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, openapi.Tag{Name: name})
	}
	return tags
}
