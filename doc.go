// Package postman2oas converts Postman collections into OpenAPI 3.0 documents.
//
// A Postman collection is an example-oriented tree: folders hold requests, and
// requests carry saved sample responses. An OpenAPI document is a flat map of
// paths to methods to operations. postman2oas restructures the first into the
// second and infers JSON Schemas from the example bodies along the way.
//
// # Overview
//
// The library consists of the following packages:
//
//   - postman: Read Postman collections (v2.0 and v2.1 JSON) into a typed tree
//   - converter: Map a collection onto an OpenAPI document and report issues
//   - infer: Infer an OpenAPI schema from an example JSON value
//   - openapi: The OpenAPI 3.0 object graph with order-preserving JSON/YAML output
//   - jsonvalue: An order-preserving JSON value used for examples
//   - oaserrors: Structured error types shared by all packages
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/postman2oas
//
// Install the command line tool:
//
//	go install github.com/erraggy/postman2oas/cmd/postman2oas@latest
//
// # Quick Start
//
// Convert a collection file and write YAML:
//
//	result, err := converter.Convert("pets.postman_collection.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, issue := range result.Issues {
//		log.Println(issue)
//	}
//	data, err := result.Document.MarshalOrderedYAML()
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.Stdout.Write(data)
//
// Use functional options for other sources:
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithBytes(raw),
//		converter.WithIncludeInfo(false),
//	)
//
// Infer a schema from a JSON example:
//
//	schema, example, err := infer.FromJSON([]byte(`{"id": 1, "tags": ["a"]}`))
//
// # Mapping Rules
//
// Folders become tags on every operation beneath them. Each request becomes the
// operation for its path and lowercase method; a later request for the same
// path and method replaces an earlier one. Path segments written as :name or
// {{name}} become {name} path parameters. Saved responses are grouped by status
// code, with examples keyed by the lowercase response name.
//
// Conversion never fails on a well-formed collection. Items without a request
// or URL are skipped, and bodies that cannot be used are dropped or degraded to
// strings. Each such decision is reported as a ConversionIssue on the result.
//
// # Command Line
//
// The postman2oas command converts a single collection or a whole directory:
//
//	postman2oas convert pets.json
//	postman2oas convert --input-dir collections --output-dir output
//	postman2oas infer response.json
//	postman2oas mcp
//
// Run postman2oas help for the full flag reference.
package postman2oas
