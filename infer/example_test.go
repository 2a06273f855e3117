package infer_test

import (
	"fmt"

	"github.com/erraggy/postman2oas/infer"
)

func ExampleFromJSON() {
	schema, _, err := infer.FromJSON([]byte(`{"id": 1, "tags": ["a"], "note": null}`))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(schema.Type)
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		fmt.Printf("%s: %s\n", pair.Key, pair.Value.Type)
	}
	fmt.Println(schema.Required)
	// Output:
	// object
	// id: number
	// tags: array
	// note: string
	// [id tags]
}
