package collection

import (
	"testing"
	"time"

	domcol "github.com/kailas-cloud/promptlab/internal/domain/collection"
	domprompt "github.com/kailas-cloud/promptlab/internal/domain/prompt"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	createFn        func(c domcol.Collection) domcol.Collection
	getFn           func(id string) (domcol.Collection, bool)
	listFn          func() []domcol.Collection
	deleteFn        func(id string) bool
	uncategorizedFn func() domcol.Collection
	byCollectionFn  func(collectionID string) []domprompt.Prompt
}

func (m *mockStore) CreateCollection(c domcol.Collection) domcol.Collection {
	if m.createFn != nil {
		return m.createFn(c)
	}
	return c
}

func (m *mockStore) GetCollection(id string) (domcol.Collection, bool) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return domcol.Collection{}, false
}

func (m *mockStore) ListCollections() []domcol.Collection {
	if m.listFn != nil {
		return m.listFn()
	}
	return []domcol.Collection{}
}

func (m *mockStore) DeleteCollection(id string) bool {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return false
}

func (m *mockStore) UncategorizedCollection() domcol.Collection {
	if m.uncategorizedFn != nil {
		return m.uncategorizedFn()
	}
	return domcol.Collection{}
}

func (m *mockStore) PromptsByCollection(collectionID string) []domprompt.Prompt {
	if m.byCollectionFn != nil {
		return m.byCollectionFn(collectionID)
	}
	return []domprompt.Prompt{}
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}

func testCollection(t *testing.T) domcol.Collection {
	t.Helper()
	return domcol.Reconstruct("c1", "Support", "support replies", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}
