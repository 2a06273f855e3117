package postman_test

import (
	"fmt"
	"strings"

	"github.com/erraggy/postman2oas/postman"
)

func Example() {
	input := `{
		"info": {"name": "Petstore"},
		"item": [
			{"name": "Pets", "item": [
				{"name": "List pets", "request": {"method": "GET", "url": "{{baseUrl}}/pets"}}
			]}
		]
	}`

	result, err := postman.ParseWithOptions(postman.WithReader(strings.NewReader(input)))
	if err != nil {
		fmt.Println(err)
		return
	}

	var walk func(items []postman.Item, depth int)
	walk = func(items []postman.Item, depth int) {
		for _, item := range items {
			switch it := item.(type) {
			case *postman.Folder:
				fmt.Printf("%sfolder %s\n", strings.Repeat("  ", depth), it.Name)
				walk(it.Items, depth+1)
			case *postman.RequestItem:
				fmt.Printf("%srequest %s %s\n", strings.Repeat("  ", depth), it.Request.HTTPMethod(), it.Name)
			}
		}
	}
	walk(result.Collection.Items, 0)
	// Output:
	// folder Pets
	//   request get List pets
}
