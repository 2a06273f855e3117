package converter

import (
	"fmt"
	"io"

	"github.com/erraggy/postman2oas/internal/options"
	"github.com/erraggy/postman2oas/oaserrors"
	"github.com/erraggy/postman2oas/postman"
)

// Option is a function that configures a conversion operation
type Option func(*convertConfig) error

// convertConfig holds configuration for a conversion operation
type convertConfig struct {
	// Input source (exactly one must be set)
	filePath   *string
	reader     io.Reader
	bytes      []byte
	collection *postman.Collection

	// Configuration options
	includeInfo bool
	logger      postman.Logger
}

// ConvertWithOptions converts a Postman collection using functional options.
// This provides a flexible, extensible API that combines input source selection
// and configuration in a single function call.
//
// Example:
//
//	result, err := converter.ConvertWithOptions(
//	    converter.WithFilePath("api.postman_collection.json"),
//	    converter.WithIncludeInfo(false),
//	)
//
// Only reading the input can fail; see postman.ParseWithOptions for the
// error types.
func ConvertWithOptions(opts ...Option) (*ConversionResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("converter: invalid options: %w", err)
	}

	c := &Converter{
		IncludeInfo: cfg.includeInfo,
		Logger:      cfg.logger,
	}

	if cfg.collection != nil {
		return c.ConvertCollection(cfg.collection), nil
	}

	var source postman.Option
	switch {
	case cfg.filePath != nil:
		source = postman.WithFilePath(*cfg.filePath)
	case cfg.reader != nil:
		source = postman.WithReader(cfg.reader)
	default:
		source = postman.WithBytes(cfg.bytes)
	}

	parsed, err := postman.ParseWithOptions(source, postman.WithLogger(c.log()))
	if err != nil {
		return nil, fmt.Errorf("converter: %w", err)
	}
	return c.ConvertParsed(parsed), nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{
		includeInfo: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"must specify an input source (use WithFilePath, WithReader, WithBytes, or WithCollection)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil, cfg.collection != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a collection file as the input source
func WithFilePath(path string) Option {
	return func(cfg *convertConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *convertConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "reader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *convertConfig) error {
		if data == nil {
			return &oaserrors.ConfigError{Option: "bytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithCollection specifies an already decoded collection as the input source
func WithCollection(coll *postman.Collection) Option {
	return func(cfg *convertConfig) error {
		if coll == nil {
			return &oaserrors.ConfigError{Option: "collection", Message: "collection cannot be nil"}
		}
		cfg.collection = coll
		return nil
	}
}

// WithIncludeInfo enables or disables informational messages
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithLogger sets a structured logger for debug output during conversion.
// By default, no logging is performed.
func WithLogger(l postman.Logger) Option {
	return func(cfg *convertConfig) error {
		cfg.logger = l
		return nil
	}
}
