package catalog

import (
	"testing"

	"github.com/ocastel/tooldex/internal/models"
)

func names(tools []models.Tool) []string {
	out := make([]string, len(tools))
	for i, t := range tools {
		out[i] = t.Name
	}
	return out
}

func TestSearchNoFilters(t *testing.T) {
	tools := sampleTools()
	got := NewSnapshot(tools).Search(Filters{})
	if len(got) != len(tools) {
		t.Fatalf("empty filters returned %d tools, want %d", len(got), len(tools))
	}
	for i := range tools {
		if got[i].Name != tools[i].Name {
			t.Errorf("result[%d] = %q, want %q (store order)", i, got[i].Name, tools[i].Name)
		}
	}
}

func TestSearchCategory(t *testing.T) {
	s := NewSnapshot(sampleTools())

	got := s.Search(Filters{Category: "Image"})
	if len(got) != 1 || got[0].Name != "Midjourney" {
		t.Errorf("Search(category=Image) = %v", names(got))
	}

	// Case-insensitive substring.
	got = s.Search(Filters{Category: "assistant"})
	if len(got) != 2 {
		t.Errorf("Search(category=assistant) = %v, want 2 tools", names(got))
	}
}

func TestSearchTags(t *testing.T) {
	s := NewSnapshot(sampleTools())

	// Requested tag is matched case-insensitively as a substring of the
	// tool's split tags; "ai" matches every tool tagged "AI".
	got := s.Search(Filters{Tags: []string{"ai"}})
	if len(got) != 3 {
		t.Errorf("Search(tags=[ai]) = %v, want all 3", names(got))
	}

	// ANY requested tag is enough.
	got = s.Search(Filters{Tags: []string{"image", "code"}})
	if len(got) != 2 {
		t.Errorf("Search(tags=[image code]) = %v, want 2", names(got))
	}

	got = s.Search(Filters{Tags: []string{"nope"}})
	if len(got) != 0 {
		t.Errorf("Search(tags=[nope]) = %v, want none", names(got))
	}
}

func TestSearchAudience(t *testing.T) {
	s := NewSnapshot(sampleTools())

	// Audience matches against the raw comma-delimited string.
	got := s.Search(Filters{Audience: "designers"})
	if len(got) != 1 || got[0].Name != "Midjourney" {
		t.Errorf("Search(audience=designers) = %v", names(got))
	}
}

func TestSearchFreeText(t *testing.T) {
	s := NewSnapshot(sampleTools())

	cases := []struct {
		term string
		want []string
	}{
		{"copilot", []string{"GitHub Copilot"}},          // name
		{"image generator", []string{"Midjourney"}},      // overview
		{"language model", []string{"ChatGPT"}},          // description
		{"IDE integration", []string{"GitHub Copilot"}},  // features
		{"brainstorming", []string{"ChatGPT"}},           // use cases
		{"zzz-no-match", nil},
	}
	for _, c := range cases {
		got := names(s.Search(Filters{Search: c.term}))
		if len(got) != len(c.want) {
			t.Errorf("Search(%q) = %v, want %v", c.term, got, c.want)
			continue
		}
		for i := range c.want {
			if got[i] != c.want[i] {
				t.Errorf("Search(%q) = %v, want %v", c.term, got, c.want)
			}
		}
	}
}

func TestSearchFiltersAreANDed(t *testing.T) {
	s := NewSnapshot(sampleTools())

	got := s.Search(Filters{Tags: []string{"ai"}, Category: "Code"})
	if len(got) != 1 || got[0].Name != "GitHub Copilot" {
		t.Errorf("combined filters = %v", names(got))
	}

	// A passing tag filter with a failing text filter matches nothing.
	got = s.Search(Filters{Tags: []string{"ai"}, Search: "zzz"})
	if len(got) != 0 {
		t.Errorf("combined filters = %v, want none", names(got))
	}
}

func TestSearchMissingFieldNeverMatches(t *testing.T) {
	s := NewSnapshot([]models.Tool{{Name: "Bare"}})

	if got := s.Search(Filters{Audience: "anyone"}); len(got) != 0 {
		t.Errorf("tool without audience matched audience filter: %v", names(got))
	}
	// An empty filter term still matches an empty field.
	if got := s.Search(Filters{}); len(got) != 1 {
		t.Errorf("no filters should match everything: %v", names(got))
	}
}

func TestSearchAlwaysFromBaseSet(t *testing.T) {
	s := NewSnapshot(sampleTools())

	// A narrow search followed by a broad one returns the broad set;
	// results never compose.
	_ = s.Search(Filters{Category: "Image"})
	got := s.Search(Filters{})
	if len(got) != 3 {
		t.Errorf("second search = %d tools, want 3", len(got))
	}
}
