// Package oaserrors provides structured error types for postman2oas.
//
// Import path: github.com/erraggy/postman2oas/oaserrors
//
// These errors only ever come from the boundaries of the system: reading a
// collection, decoding it, checking its top-level shape, serializing the
// generated document, and validating options. The conversion itself never
// fails; lossy decisions it makes are reported as conversion issues instead.
//
// # Error Types
//
//   - [FileError]: reading an input or writing an output failed
//   - [ParseError]: input is not valid JSON, or output could not be serialized
//   - [InvalidFormatError]: input is JSON but lacks the required "info" or "item"
//   - [ConfigError]: invalid options or flags
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel for use with errors.Is():
//
//   - [ErrFile]: Matches any [FileError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrInvalidFormat]: Matches any [InvalidFormatError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	coll, err := postman.ParseWithOptions(postman.WithFilePath("api.postman_collection.json"))
//	if errors.Is(err, oaserrors.ErrInvalidFormat) {
//	    // Not a Postman collection
//	}
//
//	var parseErr *oaserrors.ParseError
//	if errors.As(err, &parseErr) && parseErr.Line > 0 {
//	    fmt.Printf("syntax error on line %d\n", parseErr.Line)
//	}
//
// All error types support chaining through their Cause field:
//
//	var fileErr *oaserrors.FileError
//	if errors.As(err, &fileErr) && errors.Is(fileErr, os.ErrNotExist) {
//	    // The collection file doesn't exist
//	}
package oaserrors
