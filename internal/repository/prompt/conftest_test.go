package prompt

import (
	"testing"
	"time"

	domprompt "github.com/kailas-cloud/promptlab/internal/domain/prompt"
	"github.com/kailas-cloud/promptlab/internal/domain/prompt/patch"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	createFn       func(p domprompt.Prompt) domprompt.Prompt
	getFn          func(id string) (domprompt.Prompt, bool)
	listFn         func() []domprompt.Prompt
	updateFn       func(id string, p domprompt.Prompt) (domprompt.Prompt, bool)
	patchFn        func(id string, p patch.Patch) (domprompt.Prompt, bool)
	deleteFn       func(id string) bool
	byCollectionFn func(collectionID string) []domprompt.Prompt
}

func (m *mockStore) CreatePrompt(p domprompt.Prompt) domprompt.Prompt {
	if m.createFn != nil {
		return m.createFn(p)
	}
	return p
}

func (m *mockStore) GetPrompt(id string) (domprompt.Prompt, bool) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return domprompt.Prompt{}, false
}

func (m *mockStore) ListPrompts() []domprompt.Prompt {
	if m.listFn != nil {
		return m.listFn()
	}
	return []domprompt.Prompt{}
}

func (m *mockStore) UpdatePrompt(id string, p domprompt.Prompt) (domprompt.Prompt, bool) {
	if m.updateFn != nil {
		return m.updateFn(id, p)
	}
	return domprompt.Prompt{}, false
}

func (m *mockStore) PatchPrompt(id string, p patch.Patch) (domprompt.Prompt, bool) {
	if m.patchFn != nil {
		return m.patchFn(id, p)
	}
	return domprompt.Prompt{}, false
}

func (m *mockStore) DeletePrompt(id string) bool {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return false
}

func (m *mockStore) PromptsByCollection(collectionID string) []domprompt.Prompt {
	if m.byCollectionFn != nil {
		return m.byCollectionFn(collectionID)
	}
	return []domprompt.Prompt{}
}

var testTime = time.Date(2026, 2, 2, 2, 2, 2, 0, time.UTC)

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}

func testPrompt(t *testing.T, id string) domprompt.Prompt {
	t.Helper()
	return domprompt.Reconstruct(id, "Summarize", "Summarize the text", "", "c1", testTime, testTime)
}
