package catalog

import (
	"testing"

	"github.com/delvepad/ai-delvepad/internal/model"
)

func TestBuiltIn_ShippedCatalogIsEmpty(t *testing.T) {
	items := BuiltIn(false)
	if items == nil {
		t.Fatal("BuiltIn should return an empty slice, not nil")
	}
	if len(items) != 0 {
		t.Errorf("Expected empty catalog, got %d items", len(items))
	}
}

func TestBuiltIn_Samples(t *testing.T) {
	items := BuiltIn(true)
	if len(items) != len(sampleRows) {
		t.Fatalf("Expected %d sample items, got %d", len(sampleRows), len(items))
	}

	for i, item := range items {
		if item.ID != model.MakeID(item.Title) {
			t.Errorf("Item %d: id %q is not derived from title %q", i, item.ID, item.Title)
		}
		if item.Subject != model.SubjectAI {
			t.Errorf("Item %d: expected subject %q, got %q", i, model.SubjectAI, item.Subject)
		}
		if item.Link() == "" {
			t.Errorf("Item %d: expected a link", i)
		}
	}
}

func TestSamples_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, item := range Samples() {
		if seen[item.ID] {
			t.Errorf("Duplicate sample id %q", item.ID)
		}
		seen[item.ID] = true
	}
}

func TestSamples_ReturnsCopy(t *testing.T) {
	first := Samples()
	first[0].Title = "changed"

	if Samples()[0].Title == "changed" {
		t.Error("Samples should return a fresh slice each call")
	}
}
