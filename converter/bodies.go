package converter

import (
	"strconv"
	"strings"

	"github.com/erraggy/postman2oas/infer"
	"github.com/erraggy/postman2oas/jsonvalue"
	"github.com/erraggy/postman2oas/openapi"
	"github.com/erraggy/postman2oas/postman"
)

// Defaults used when a saved response leaves fields out.
const (
	defaultStatusCode  = "200"
	defaultRawBody     = "{}"
	defaultExampleKey  = "example"
	defaultSummary     = "Example response"
	defaultDescription = "Response"
	emptyResponseDesc  = "OK"
)

// contentType resolves the Content-Type of headers, defaulting to JSON.
func contentType(headers []postman.Header) string {
	if ct, ok := postman.ContentType(headers); ok {
		return ct
	}
	return openapi.MediaTypeJSON
}

// requestBody builds the request body of methods other than GET and DELETE
// from a raw-mode body. A JSON body that does not parse is dropped.
func (cv *conversion) requestBody(req *postman.Request, method string, ref opRef) *openapi.RequestBody {
	if method == "get" || method == "delete" {
		return nil
	}
	if req.Body == nil || req.Body.Mode != postman.BodyModeRaw {
		return nil
	}

	ct := contentType(req.Header)
	raw := defaultRawBody
	if req.Body.Raw != nil {
		raw = *req.Body.Raw
	}

	media := &openapi.MediaType{}
	if ct == openapi.MediaTypeJSON {
		schema, example, err := infer.FromJSON([]byte(raw))
		if err != nil {
			cv.warn(ref, "request body is not valid JSON; body omitted", err.Error())
			return nil
		}
		media.Schema = schema
		media.Example = &example
	} else {
		example := jsonvalue.StringValue(raw)
		media.Schema = openapi.StringSchema()
		media.Example = &example
	}

	content := openapi.NewContent()
	content.Set(ct, media)
	return &openapi.RequestBody{Content: content, Required: true}
}

// responses builds the status code map of an operation. Saved responses
// sharing a status code are merged; without any, a bare "200" is emitted.
func (cv *conversion) responses(saved []*postman.Response, ref opRef) *openapi.Responses {
	responses := openapi.NewResponses()

	for _, resp := range saved {
		if resp == nil {
			continue
		}
		code, built := cv.response(resp)
		existing, ok := responses.Get(code)
		if !ok {
			responses.Set(code, built)
			continue
		}
		cv.mergeResponse(existing, built, code, ref)
	}

	if responses.Len() == 0 {
		responses.Set(defaultStatusCode, &openapi.Response{
			Description: emptyResponseDesc,
			Content:     openapi.NewContent(),
		})
	}
	return responses
}

// response converts one saved response. The body becomes a named example;
// JSON that does not parse falls back to a string schema holding the text.
func (cv *conversion) response(resp *postman.Response) (string, *openapi.Response) {
	code := defaultStatusCode
	if resp.Code != nil {
		code = strconv.Itoa(*resp.Code)
	}

	ct := contentType(resp.Header)
	raw := defaultRawBody
	if resp.Body != nil {
		raw = *resp.Body
	}

	schema, example := openapi.StringSchema(), jsonvalue.StringValue(raw)
	if ct == openapi.MediaTypeJSON {
		if s, v, err := infer.FromJSON([]byte(raw)); err == nil {
			schema, example = s, v
		}
	}

	key, summary, description := defaultExampleKey, defaultSummary, defaultDescription
	if resp.Name != nil {
		key = strings.ReplaceAll(cv.lower.String(*resp.Name), " ", "_")
		summary = *resp.Name
		description = *resp.Name
	}

	examples := openapi.NewExamples()
	examples.Set(key, &openapi.Example{Value: example, Summary: summary})

	content := openapi.NewContent()
	content.Set(ct, &openapi.MediaType{Schema: schema, Examples: examples})

	return code, &openapi.Response{Description: description, Content: content}
}

// mergeResponse folds the examples of next into existing, which has the
// same status code. Examples with the same key are replaced. Content types
// that existing does not have are dropped.
func (cv *conversion) mergeResponse(existing, next *openapi.Response, code string, ref opRef) {
	for pair := next.Content.Oldest(); pair != nil; pair = pair.Next() {
		current, ok := existing.Content.Get(pair.Key)
		if !ok {
			cv.warn(ref,
				"response "+code+" already recorded without content type "+pair.Key+"; content dropped",
				"only examples for content types of the first "+code+" response are merged")
			continue
		}
		if pair.Value.Examples == nil {
			continue
		}
		if current.Examples == nil {
			current.Examples = pair.Value.Examples
			continue
		}
		for ex := pair.Value.Examples.Oldest(); ex != nil; ex = ex.Next() {
			current.Examples.Set(ex.Key, ex.Value)
		}
	}
}
