package converter_test

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/erraggy/postman2oas/converter"
)

const petstore = `{
	"info": {"name": "Petstore"},
	"item": [{
		"name": "Pets",
		"item": [{
			"name": "Get pet",
			"request": {
				"method": "GET",
				"url": {"path": ["pets", ":petId"], "variable": [{"key": "petId"}]}
			},
			"response": [{"name": "Found", "code": 200, "body": "{\"id\": 7, \"name\": \"Rex\"}"}]
		}, {
			"name": "Draft"
		}]
	}]
}`

// Example demonstrates basic conversion using functional options
func Example() {
	result, err := converter.ConvertWithOptions(
		converter.WithBytes([]byte(petstore)),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Document.PathKeys())
	op, _ := result.Document.Operation("/pets/{petId}", "get")
	fmt.Println(op.Tags)

	resp, _ := op.Responses.Get("200")
	media, _ := resp.Content.Get("application/json")
	schema, err := json.Marshal(media.Schema)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(schema))
	// Output:
	// [/pets/{petId}]
	// [Pets]
	// {"type":"object","properties":{"id":{"type":"number"},"name":{"type":"string"}},"required":["id","name"]}
}

// Example_handleConversionIssues demonstrates processing conversion issues
func Example_handleConversionIssues() {
	result, err := converter.ConvertWithOptions(
		converter.WithBytes([]byte(petstore)),
	)
	if err != nil {
		log.Fatal(err)
	}

	for _, issue := range result.Issues {
		switch issue.Severity {
		case converter.SeverityWarning:
			fmt.Printf("WARNING [%s]: %s\n", issue.Path, issue.Message)
		case converter.SeverityInfo:
			fmt.Printf("INFO [%s]: %s\n", issue.Path, issue.Message)
		}
	}
	fmt.Printf("operations=%d skipped=%d\n", result.Stats.Operations, result.Stats.Skipped)
	// Output:
	// INFO [item[0].item[1]]: skipped: item has no request and no child items
	// operations=1 skipped=1
}
