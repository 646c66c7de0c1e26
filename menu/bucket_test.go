package menu

import (
	"fmt"
	"testing"

	"github.com/tidwall/gjson"
)

func TestCategorizeIsTotal(t *testing.T) {
	links := make([]Link, 0, 12)
	for i, parent := range []int64{-3, 0, 1, 2, 3, 4, 5, 7, 99, 1, 4, 0} {
		links = append(links, Link{ID: fmt.Sprintf("l%d", i), Parent: parent})
	}

	b := Categorize(links)
	if b.Len() != len(links) {
		t.Errorf("buckets hold %d links, want %d (partition must be total)", b.Len(), len(links))
	}
}

func TestCategorizeOutOfRangeLandsInSingle(t *testing.T) {
	for _, parent := range []int64{-1, 0, 5, 42} {
		b := Categorize([]Link{{ID: "x", Parent: parent}})
		if len(b.Single) != 1 {
			t.Errorf("parentId %d: single bucket has %d entries, want 1", parent, len(b.Single))
		}
	}
}

func TestCategorizeStability(t *testing.T) {
	// Links A(1), B(4), C(1): primary renders [A, C], consolidated [B].
	links := []Link{
		{ID: "A", Parent: 1},
		{ID: "B", Parent: 4},
		{ID: "C", Parent: 1},
	}

	b := Categorize(links)
	if len(b.Primary) != 2 || b.Primary[0].ID != "A" || b.Primary[1].ID != "C" {
		t.Errorf("primary bucket = %v, want [A C] in input order", b.Primary)
	}
	if len(b.Consolidated) != 1 || b.Consolidated[0].ID != "B" {
		t.Errorf("consolidated bucket = %v, want [B]", b.Consolidated)
	}
}

func TestByCategory(t *testing.T) {
	b := Categorize([]Link{{ID: "r", Parent: 2}, {ID: "o", Parent: 3}})
	if got := b.ByCategory(CategoryReport); len(got) != 1 || got[0].ID != "r" {
		t.Errorf("ByCategory(report) = %v", got)
	}
	if got := b.ByCategory(CategoryOverview); len(got) != 1 || got[0].ID != "o" {
		t.Errorf("ByCategory(overview) = %v", got)
	}
	if got := b.ByCategory(Category(99)); got != nil {
		t.Errorf("ByCategory(unknown) = %v, want the empty single bucket", got)
	}
}

func TestLinkFromJSONPlaceholders(t *testing.T) {
	v := gjson.Parse(`{"parentId": 2}`)
	l := LinkFromJSON(v)

	if l.ID != PlaceholderID {
		t.Errorf("ID = %q, want %q", l.ID, PlaceholderID)
	}
	if l.Name != PlaceholderName {
		t.Errorf("Name = %q, want %q", l.Name, PlaceholderName)
	}
	if l.Description != PlaceholderDescription {
		t.Errorf("Description = %q, want %q", l.Description, PlaceholderDescription)
	}
	if l.URL != PlaceholderURL {
		t.Errorf("URL = %q, want %q", l.URL, PlaceholderURL)
	}
	if l.FunctionName != PlaceholderFunction {
		t.Errorf("FunctionName = %q, want %q", l.FunctionName, PlaceholderFunction)
	}
	if l.Parent != 2 {
		t.Errorf("Parent = %d, want 2", l.Parent)
	}
}

func TestLinkFromJSONEmptyStringGetsPlaceholder(t *testing.T) {
	l := LinkFromJSON(gjson.Parse(`{"name": "", "id": "7"}`))
	if l.Name != PlaceholderName {
		t.Errorf("empty name = %q, want placeholder", l.Name)
	}
	if l.ID != "7" {
		t.Errorf("ID = %q, want 7", l.ID)
	}
}

func TestLinkFromJSONNonNumericParent(t *testing.T) {
	l := LinkFromJSON(gjson.Parse(`{"parentId": "not-a-number"}`))
	b := Categorize([]Link{l})
	if len(b.Single) != 1 {
		t.Error("non-numeric parentId did not land in the single bucket")
	}
}

func TestModuleFromJSON(t *testing.T) {
	m := ModuleFromJSON(gjson.Parse(`{"id":"3","name":"Admissions","url":"/m/3"}`))
	if m.ID != "3" || m.Name != "Admissions" || m.URL != "/m/3" {
		t.Errorf("ModuleFromJSON = %+v", m)
	}
	if m.Description != PlaceholderDescription {
		t.Errorf("Description = %q, want placeholder", m.Description)
	}
	if m.TestURL != PlaceholderURL {
		t.Errorf("TestURL = %q, want placeholder", m.TestURL)
	}
}

func TestCategoryString(t *testing.T) {
	cases := map[Category]string{
		CategoryPrimary:      "primary",
		CategoryReport:       "report",
		CategoryOverview:     "overview",
		CategoryConsolidated: "consolidated",
		CategorySingle:       "single",
		Category(17):         "single",
	}
	for c, want := range cases {
		if got := c.String(); got != want {
			t.Errorf("Category(%d).String() = %q, want %q", c, got, want)
		}
	}
}
