// Package converter maps Postman collections to OpenAPI 3.0 documents.
//
// The collection tree is walked depth-first. Folders contribute their names
// as tags to everything below them; each request with a URL becomes one
// operation at its path and method. Request and response bodies get schemas
// inferred from their examples (see package infer).
//
// # Quick Start
//
// Convert a file using functional options:
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithFilePath("api.postman_collection.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, _ := result.Document.MarshalOrderedYAML()
//
// Or use a reusable Converter instance:
//
//	c := converter.New()
//	c.IncludeInfo = false
//	result1, _ := c.Convert("users.postman_collection.json")
//	result2, _ := c.Convert("orders.postman_collection.json")
//
// # Mapping Rules
//
//   - ":id" path segments and {"value": "id"} segment objects become "{id}"
//   - url.variable entries become required path parameters; query entries and
//     headers (except Content-Type) become parameters required unless disabled
//   - raw bodies of methods other than GET and DELETE become the request body;
//     a JSON body that does not parse is omitted
//   - saved responses sharing a status code are merged by example name; a
//     request without saved responses gets a plain "200" response
//   - a path+method seen twice keeps the later operation
//   - the document's tag list is every folder name used, sorted
//
// # Conversion Issues
//
// Conversion never returns an error for the collection content. Instead,
// skipped items are reported as info issues and dropped input (an invalid
// JSON request body, a content type that cannot be merged into an earlier
// response) as warnings. Issue paths locate the Postman item, e.g.
// "item[2].item[0]".
//
// # Related Packages
//
//   - [github.com/erraggy/postman2oas/postman] - Read collections before conversion
//   - [github.com/erraggy/postman2oas/openapi] - The output model and its serialization
//   - [github.com/erraggy/postman2oas/infer] - Schema inference from examples
package converter
