package converter

import (
	"strings"

	"github.com/erraggy/postman2oas/openapi"
	"github.com/erraggy/postman2oas/postman"
)

// buildPath renders URL path segments as an OpenAPI path template.
// ":name" segments and {"value": "name"} objects become "{name}"; other
// strings are kept literally and ignored segments are dropped. The result
// always starts with exactly one "/".
func buildPath(segments []postman.PathSegment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg.Kind {
		case postman.SegmentString:
			if name, ok := strings.CutPrefix(seg.Text, ":"); ok {
				parts = append(parts, "{"+name+"}")
			} else {
				parts = append(parts, seg.Text)
			}
		case postman.SegmentVariable:
			parts = append(parts, "{"+seg.Text+"}")
		}
	}
	return "/" + strings.TrimLeft(strings.Join(parts, "/"), "/")
}

// buildParameters lists path variables, then query entries, then headers
// other than Content-Type. Entries whose key is empty are skipped rather than
// emitted as parameters named "", which no OpenAPI tool accepts; every other
// entry becomes a parameter.
func buildParameters(u *postman.URL, headers []postman.Header) []*openapi.Parameter {
	params := make([]*openapi.Parameter, 0, len(u.Variable)+len(u.Query)+len(headers))

	for _, v := range u.Variable {
		if v.Key == "" {
			continue
		}
		params = append(params, &openapi.Parameter{
			Name:     v.Key,
			In:       openapi.InPath,
			Schema:   openapi.StringSchema(),
			Required: openapi.Bool(true),
		})
	}

	for _, q := range u.Query {
		if q.Key == "" {
			continue
		}
		params = append(params, &openapi.Parameter{
			Name:        q.Key,
			In:          openapi.InQuery,
			Schema:      openapi.StringSchema(),
			Description: q.Description.String(),
			Required:    openapi.Bool(!q.Disabled),
		})
	}

	for _, h := range headers {
		if h.Key == "" || postman.IsContentType(h.Key) {
			continue
		}
		params = append(params, &openapi.Parameter{
			Name:        h.Key,
			In:          openapi.InHeader,
			Schema:      openapi.StringSchema(),
			Description: h.Description.String(),
			Required:    openapi.Bool(!h.Disabled),
		})
	}

	return params
}
