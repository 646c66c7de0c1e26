// Package menu turns flat server-supplied module and service-link lists
// into categorized, rendered menu fragments, one per category region.
package menu

import "github.com/tidwall/gjson"

// Fixed placeholder text substituted for missing descriptor fields. A
// rendered snippet never contains an empty token.
const (
	PlaceholderID          = "No ID"
	PlaceholderName        = "No Name"
	PlaceholderDescription = "No Description"
	PlaceholderURL         = "No Url"
	PlaceholderFunction    = "No Function"
)

// EmptyMenu is rendered into a bucket's region when the bucket has no
// entries. Writing it (rather than leaving previous content) keeps repeated
// composition idempotent.
const EmptyMenu = `<p class="menu-empty">No entries</p>`

// Link is one service-link descriptor. Parent selects the category bucket.
type Link struct {
	ID           string
	Name         string
	Description  string
	URL          string
	FunctionName string
	Parent       int64
}

// Module is one module descriptor.
type Module struct {
	ID          string
	Name        string
	Description string
	URL         string
	TestURL     string
}

// LinkFromJSON builds a Link from a dynamic JSON value, substituting
// placeholders for absent or empty fields. A missing or non-numeric
// parentId maps to 0, which Categorize treats as the default bucket.
func LinkFromJSON(v gjson.Result) Link {
	return Link{
		ID:           stringOr(v.Get("id"), PlaceholderID),
		Name:         stringOr(v.Get("name"), PlaceholderName),
		Description:  stringOr(v.Get("description"), PlaceholderDescription),
		URL:          stringOr(v.Get("url"), PlaceholderURL),
		FunctionName: stringOr(v.Get("functionName"), PlaceholderFunction),
		Parent:       v.Get("parentId").Int(),
	}
}

// ModuleFromJSON builds a Module from a dynamic JSON value with the same
// placeholder substitution as LinkFromJSON.
func ModuleFromJSON(v gjson.Result) Module {
	return Module{
		ID:          stringOr(v.Get("id"), PlaceholderID),
		Name:        stringOr(v.Get("name"), PlaceholderName),
		Description: stringOr(v.Get("description"), PlaceholderDescription),
		URL:         stringOr(v.Get("url"), PlaceholderURL),
		TestURL:     stringOr(v.Get("testUrl"), PlaceholderURL),
	}
}

func stringOr(v gjson.Result, placeholder string) string {
	if !v.Exists() || v.String() == "" {
		return placeholder
	}
	return v.String()
}
