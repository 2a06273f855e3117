// Package postman reads Postman collections (format v2.0 and v2.1).
//
// A collection is a tree of items. Items with a non-empty "item" list become
// [*Folder] values; every other item becomes a [*RequestItem], whose Request
// is nil when the item carried no request at all. Walk the tree with a type
// switch:
//
//	switch it := item.(type) {
//	case *postman.Folder:
//	    // recurse into it.Items
//	case *postman.RequestItem:
//	    // it.Request, it.Responses
//	}
//
// Beyond the object forms, the reader accepts the shorthand encodings that
// Postman exports also use: a URL or request given as a string, descriptions
// given as {"content": ..., "type": ...} objects, and string-valued header
// fields.
//
// # Validation
//
// Only the top level is checked: the document must be a JSON object with an
// "info" object and an "item" array. Everything else is decoded leniently.
//
//	result, err := postman.ParseWithOptions(postman.WithFilePath("api.postman_collection.json"))
//	if errors.Is(err, oaserrors.ErrInvalidFormat) {
//	    // not a collection
//	}
package postman
