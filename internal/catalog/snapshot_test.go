package catalog

import (
	"reflect"
	"testing"

	"github.com/ocastel/tooldex/internal/models"
	"github.com/ocastel/tooldex/internal/slug"
)

func slugOf(name string) string { return slug.Make(name) }

func sampleTools() []models.Tool {
	return []models.Tool{
		{
			Name:        "ChatGPT",
			Category:    "AI Assistant",
			Link:        "https://chat.openai.com",
			Overview:    "Conversational AI assistant",
			Description: "ChatGPT is a language model that understands and generates human text.",
			Audience:    "Professionals, students, creators",
			Features:    "Natural conversation, text generation, assistance",
			UseCases:    "Writing, programming, brainstorming",
			Tags:        "AI, chatbot",
			ImageURL:    "https://statics.example.com/chatgpt.png",
		},
		{
			Name:        "Midjourney",
			Category:    "Image Generation",
			Link:        "https://midjourney.com",
			Overview:    "AI image generator",
			Description: "Midjourney creates artistic visuals from text prompts.",
			Audience:    "Artists, designers, creators",
			Features:    "Image generation, artistic styles, high quality",
			UseCases:    "Digital art, design, illustrations",
			Tags:        "AI, image",
			ImageURL:    "https://statics.example.com/midjourney.png",
		},
		{
			Name:        "GitHub Copilot",
			Category:    "Code Assistant",
			Link:        "https://github.com/features/copilot",
			Overview:    "AI programming assistant",
			Description: "GitHub Copilot helps developers write code faster.",
			Audience:    "Developers, programmers",
			Features:    "Autocompletion, code suggestions, IDE integration",
			UseCases:    "Development, debugging, documentation",
			Tags:        "AI, code",
		},
	}
}

func TestSnapshotIndexes(t *testing.T) {
	s := NewSnapshot(sampleTools())

	if got := s.ToolsByCategory("Image Generation"); len(got) != 1 || got[0].Name != "Midjourney" {
		t.Errorf("ToolsByCategory(Image Generation) = %v", got)
	}
	if got := s.ToolsByTag("AI"); len(got) != 3 {
		t.Errorf("ToolsByTag(AI) = %d tools, want 3", len(got))
	}
	// Tag labels are case-sensitive exact matches after trim.
	if got := s.ToolsByTag("ai"); len(got) != 0 {
		t.Errorf("ToolsByTag(ai) = %d tools, want 0", len(got))
	}
	// Misses return empty lists, not nil.
	if got := s.ToolsByCategory("nope"); got == nil || len(got) != 0 {
		t.Errorf("ToolsByCategory(nope) = %v, want empty", got)
	}
	if got := s.ToolsByTag("nope"); got == nil || len(got) != 0 {
		t.Errorf("ToolsByTag(nope) = %v, want empty", got)
	}
}

func TestSnapshotIndexOrder(t *testing.T) {
	s := NewSnapshot(sampleTools())
	got := s.ToolsByTag("AI")
	want := []string{"ChatGPT", "Midjourney", "GitHub Copilot"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("ToolsByTag(AI)[%d] = %q, want %q (store order)", i, got[i].Name, name)
		}
	}
}

func TestSnapshotExcludesEmptyFields(t *testing.T) {
	tools := []models.Tool{
		{Name: "Bare"},
		{Name: "Tagged", Category: "Cat", Tags: "x"},
	}
	s := NewSnapshot(tools)

	if len(s.Categories()) != 1 {
		t.Errorf("categories = %d, want 1 (empty category excluded)", len(s.Categories()))
	}
	if len(s.PopularTags(0)) != 1 {
		t.Errorf("tags = %d, want 1 (empty tags field excluded)", len(s.PopularTags(0)))
	}
}

func TestSnapshotIdempotent(t *testing.T) {
	tools := sampleTools()
	a := NewSnapshot(tools)
	b := NewSnapshot(tools)

	if !reflect.DeepEqual(a.categories, b.categories) {
		t.Error("category index differs across rebuilds of the same list")
	}
	if !reflect.DeepEqual(a.tags, b.tags) {
		t.Error("tag index differs across rebuilds of the same list")
	}
}

func TestFindBySlug(t *testing.T) {
	s := NewSnapshot(sampleTools())

	tool, ok := s.FindBySlug("github-copilot")
	if !ok || tool.Name != "GitHub Copilot" {
		t.Errorf("FindBySlug(github-copilot) = %v, %v", tool, ok)
	}
	if _, ok := s.FindBySlug("no-such-tool"); ok {
		t.Error("FindBySlug should miss for unknown slug")
	}
}

func TestFindBySlugRoundTrip(t *testing.T) {
	tools := sampleTools()
	s := NewSnapshot(tools)
	for _, want := range tools {
		got, ok := s.FindBySlug(slugOf(want.Name))
		if !ok || got.Name != want.Name {
			t.Errorf("FindBySlug(slug(%q)) = %q, %v", want.Name, got.Name, ok)
		}
	}
}

func TestCategoriesSorted(t *testing.T) {
	tools := append(sampleTools(),
		models.Tool{Name: "Claude", Category: "AI Assistant", Tags: "AI"},
	)
	cats := NewSnapshot(tools).Categories()
	if cats[0].Name != "AI Assistant" || cats[0].Count != 2 {
		t.Errorf("Categories[0] = %+v, want AI Assistant with count 2", cats[0])
	}
	if cats[0].Slug != "ai-assistant" {
		t.Errorf("category slug = %q", cats[0].Slug)
	}
	for i := 1; i < len(cats); i++ {
		if cats[i].Count > cats[i-1].Count {
			t.Errorf("categories not sorted by count: %v", cats)
		}
	}
}

func TestPopularTags(t *testing.T) {
	s := NewSnapshot(sampleTools())

	tags := s.PopularTags(0)
	if len(tags) != 4 {
		t.Fatalf("tags = %d, want 4", len(tags))
	}
	if tags[0].Tag != "AI" || tags[0].Count != 3 {
		t.Errorf("top tag = %+v, want AI with count 3", tags[0])
	}

	if got := s.PopularTags(2); len(got) != 2 {
		t.Errorf("PopularTags(2) = %d entries", len(got))
	}
}

func TestStats(t *testing.T) {
	st := NewSnapshot(sampleTools()).Stats()
	want := models.Stats{
		TotalTools:      3,
		TotalCategories: 3,
		TotalTags:       4,
		ToolsWithLink:   3,
		ToolsWithImage:  2,
	}
	if st != want {
		t.Errorf("Stats() = %+v, want %+v", st, want)
	}
}

func TestStatsEmpty(t *testing.T) {
	if st := NewSnapshot(nil).Stats(); st != (models.Stats{}) {
		t.Errorf("Stats() on empty snapshot = %+v", st)
	}
}
