package postman

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/erraggy/postman2oas/oaserrors"
)

// Parser reads Postman collections.
type Parser struct {
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger Logger
}

// New creates a new Parser instance with default settings.
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// ParseResult is a decoded collection plus metadata about its source.
type ParseResult struct {
	// Collection is the decoded input tree.
	Collection *Collection
	// SourcePath is the file the collection was read from, or
	// "ParseReader.json" / "ParseBytes.json" for in-memory sources.
	SourcePath string
	// SourceSize is the size of the input in bytes.
	SourceSize int64
}

// Parse reads and decodes the collection file at path.
func (p *Parser) Parse(path string) (*ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &oaserrors.FileError{Path: path, Op: "read", Cause: err}
	}
	return p.parseBytes(data, path)
}

// ParseReader reads and decodes a collection from r.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &oaserrors.FileError{Op: "read", Cause: err}
	}
	return p.parseBytes(data, "ParseReader.json")
}

// ParseBytes decodes a collection held in memory.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	return p.parseBytes(data, "ParseBytes.json")
}

func (p *Parser) parseBytes(data []byte, source string) (*ParseResult, error) {
	if err := checkSyntax(data, source); err != nil {
		return nil, err
	}
	if err := checkPresence(data, source); err != nil {
		return nil, err
	}

	var coll Collection
	if err := json.Unmarshal(data, &coll); err != nil {
		return nil, newParseError(data, source, "decoding collection", err)
	}

	p.log().Debug("parsed collection",
		"source", source,
		"bytes", len(data),
		"items", len(coll.Items),
		"schema", coll.Info.SchemaVersion(),
	)

	return &ParseResult{
		Collection: &coll,
		SourcePath: source,
		SourceSize: int64(len(data)),
	}, nil
}

func checkSyntax(data []byte, source string) error {
	if json.Valid(data) {
		return nil
	}
	var v any
	err := json.Unmarshal(data, &v)
	if err == nil {
		err = errors.New("malformed JSON")
	}
	return newParseError(data, source, "invalid JSON", err)
}

// newParseError builds a ParseError, locating the failure for syntax errors.
// Offsets of type errors are relative to nested values and are not used.
func newParseError(data []byte, source, msg string, err error) *oaserrors.ParseError {
	pe := &oaserrors.ParseError{Path: source, Message: msg, Cause: err}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		pe.Line, pe.Column = lineColumn(data, syntaxErr.Offset)
	}
	return pe
}

// lineColumn converts a byte offset into 1-based line and column numbers.
func lineColumn(data []byte, offset int64) (line, column int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	before := data[:offset]
	line = bytes.Count(before, []byte("\n")) + 1
	column = int(offset) - (bytes.LastIndexByte(before, '\n') + 1)
	if column == 0 {
		column = 1
	}
	return line, column
}

// collectionSchema is the minimal shape every collection must have. Nothing
// below the top level is checked.
const collectionSchema = `{
	"type": "object",
	"required": ["info", "item"],
	"properties": {
		"info": {"type": "object"},
		"item": {"type": "array"}
	}
}`

var compiledCollectionSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(collectionSchema)))
	if err != nil {
		return nil, fmt.Errorf("postman: decoding collection schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("collection.json", doc); err != nil {
		return nil, fmt.Errorf("postman: adding collection schema: %w", err)
	}
	return compiler.Compile("collection.json")
})

// printer renders validation messages in English.
var printer = message.NewPrinter(language.English)

// checkPresence verifies the top-level "info" object and "item" array.
func checkPresence(data []byte, source string) error {
	schema, err := compiledCollectionSchema()
	if err != nil {
		return err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return newParseError(data, source, "invalid JSON", err)
	}

	err = schema.Validate(doc)
	if err == nil {
		return nil
	}

	formatErr := &oaserrors.InvalidFormatError{
		Path:    source,
		Message: "not a Postman collection",
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var details []string
		collectViolations(validationErr, formatErr, &details)
		if len(formatErr.Missing) == 0 && len(details) > 0 {
			formatErr.Message += ": " + details[0]
		}
	}
	return formatErr
}

func collectViolations(err *jsonschema.ValidationError, formatErr *oaserrors.InvalidFormatError, details *[]string) {
	if len(err.Causes) == 0 && err.ErrorKind != nil {
		if required, ok := err.ErrorKind.(*kind.Required); ok {
			formatErr.Missing = append(formatErr.Missing, required.Missing...)
		} else {
			location := "/"
			if len(err.InstanceLocation) > 0 {
				location += err.InstanceLocation[0]
			}
			*details = append(*details, location+": "+err.ErrorKind.LocalizedString(printer))
		}
	}
	for _, cause := range err.Causes {
		collectViolations(cause, formatErr, details)
	}
}
