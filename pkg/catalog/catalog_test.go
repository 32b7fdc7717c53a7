package catalog

import (
	"context"
	"sync"
	"testing"

	"promptdeck-hq/promptdeck/pkg/providers"
	"promptdeck-hq/promptdeck/pkg/providers/openrouter"
)

// fakeLister returns a scripted model list and counts calls.
type fakeLister struct {
	mu     sync.Mutex
	models []providers.ModelDescriptor
	source openrouter.Source
	calls  int
}

func (f *fakeLister) ListModelsWithSource(ctx context.Context) ([]providers.ModelDescriptor, openrouter.Source) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.models, f.source
}

func (f *fakeLister) set(models []providers.ModelDescriptor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.models = models
}

func (f *fakeLister) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestCatalogRefresh(t *testing.T) {
	lister := &fakeLister{
		models: []providers.ModelDescriptor{
			{ID: "a/one", Name: "One"},
			{ID: "b/two", Name: "Two"},
		},
		source: openrouter.SourceRemote,
	}

	cat := New(lister, "", nil)
	cat.Refresh(context.Background())

	models := cat.Models()
	if len(models) != 2 {
		t.Fatalf("expected 2 models, got %d", len(models))
	}
	if models[0].ID != "a/one" || models[1].ID != "b/two" {
		t.Errorf("catalog order not preserved: %+v", models)
	}

	if !cat.Contains("a/one") {
		t.Error("expected catalog to contain a/one")
	}
	if cat.Contains("c/three") {
		t.Error("catalog must not contain unknown model")
	}

	// A later refresh replaces the snapshot wholesale.
	lister.set([]providers.ModelDescriptor{{ID: "c/three", Name: "Three"}})
	cat.Refresh(context.Background())

	if cat.Contains("a/one") {
		t.Error("stale model survived refresh")
	}
	if !cat.Contains("c/three") {
		t.Error("expected catalog to contain c/three after refresh")
	}
}

func TestCatalogModelsReturnsCopy(t *testing.T) {
	lister := &fakeLister{
		models: []providers.ModelDescriptor{{ID: "a/one", Name: "One"}},
		source: openrouter.SourceFallback,
	}

	cat := New(lister, "", nil)
	cat.Refresh(context.Background())

	models := cat.Models()
	models[0].ID = "mutated"

	if cat.Models()[0].ID != "a/one" {
		t.Error("mutating a returned slice changed the cached snapshot")
	}
}

func TestCatalogStartWithoutSchedule(t *testing.T) {
	lister := &fakeLister{
		models: []providers.ModelDescriptor{{ID: "a/one", Name: "One"}},
		source: openrouter.SourceFallback,
	}

	cat := New(lister, "", nil)
	if err := cat.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer cat.Stop()

	if lister.callCount() != 1 {
		t.Errorf("expected one initial refresh, got %d calls", lister.callCount())
	}
	if len(cat.Models()) != 1 {
		t.Error("initial refresh did not populate the catalog")
	}
}

func TestCatalogStartInvalidSchedule(t *testing.T) {
	lister := &fakeLister{source: openrouter.SourceFallback}

	cat := New(lister, "not a schedule", nil)
	if err := cat.Start(context.Background()); err == nil {
		t.Fatal("expected an error for an invalid schedule")
	}
}

func TestCatalogStartValidSchedule(t *testing.T) {
	lister := &fakeLister{
		models: []providers.ModelDescriptor{{ID: "a/one", Name: "One"}},
		source: openrouter.SourceRemote,
	}

	cat := New(lister, "@every 1h", nil)
	if err := cat.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	cat.Stop()
}

func TestCatalogEmptyBeforeRefresh(t *testing.T) {
	cat := New(&fakeLister{}, "", nil)

	if got := cat.Models(); len(got) != 0 {
		t.Errorf("expected empty catalog before refresh, got %d models", len(got))
	}
	if cat.Contains("anything") {
		t.Error("empty catalog must not contain anything")
	}
}
