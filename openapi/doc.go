// Package openapi defines the OpenAPI 3.0 object graph produced by the
// converter package.
//
// The model is intentionally narrow: it covers what a Postman collection can
// express (paths, operations, parameters, bodies, responses with examples,
// tags) and nothing else. Every map whose order is visible in the output
// (paths, methods, responses, content types, examples, schema properties) is
// an insertion-ordered [orderedmap.OrderedMap], so serializing the same
// document twice yields identical bytes.
//
// # Serialization
//
// Use [Document.MarshalOrderedJSON], [Document.MarshalOrderedJSONIndent] or
// [Document.MarshalOrderedYAML]. Optional fields that are unset are omitted,
// never emitted as null. Field names follow the OpenAPI wire format
// (requestBody, in, type).
//
//	doc := openapi.NewDocument("Pets", "")
//	data, err := doc.MarshalOrderedYAML()
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.Stdout.Write(data)
//
// # Related Packages
//
//   - [github.com/erraggy/postman2oas/infer] - builds [Schema] values from JSON examples
//   - [github.com/erraggy/postman2oas/converter] - builds a [Document] from a Postman collection
package openapi
