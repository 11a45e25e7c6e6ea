package catalog

import (
	"testing"

	"github.com/ocastel/tooldex/internal/models"
)

func TestStoreReplaceSwapsAtomically(t *testing.T) {
	store := NewStore(sampleTools())

	before := store.Snapshot()
	if len(before.Tools()) != 3 {
		t.Fatalf("initial tools = %d", len(before.Tools()))
	}

	store.Replace([]models.Tool{{Name: "Only", Category: "Solo", Tags: "one"}})

	after := store.Snapshot()
	if len(after.Tools()) != 1 {
		t.Errorf("after replace: %d tools", len(after.Tools()))
	}
	if after.Stats().TotalCategories != 1 || after.Stats().TotalTags != 1 {
		t.Errorf("indexes not rebuilt with records: %+v", after.Stats())
	}

	// The old snapshot stays internally consistent for in-flight reads.
	if len(before.Tools()) != 3 || before.Stats().TotalTools != 3 {
		t.Error("previous snapshot mutated by Replace")
	}
}

func TestStoreDelegation(t *testing.T) {
	store := NewStore(sampleTools())

	if _, ok := store.FindBySlug("chatgpt"); !ok {
		t.Error("FindBySlug miss through store")
	}
	if got := store.Search(Filters{Category: "Image"}); len(got) != 1 {
		t.Errorf("Search through store = %d", len(got))
	}
	if got := store.ToolsByTag("code"); len(got) != 0 {
		t.Errorf("ToolsByTag is exact-label: %d", len(got))
	}
	if got := store.ToolsByTag("AI"); len(got) != 3 {
		t.Errorf("ToolsByTag(AI) = %d", len(got))
	}
}
