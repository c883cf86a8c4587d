package promptlab

import (
	"context"

	domcol "github.com/kailas-cloud/promptlab/internal/domain/collection"
	domprompt "github.com/kailas-cloud/promptlab/internal/domain/prompt"
	"github.com/kailas-cloud/promptlab/internal/domain/prompt/patch"
	promptuc "github.com/kailas-cloud/promptlab/internal/usecase/prompt"
)

// --- promptUseCase mock ---

type mockPromptUC struct {
	createFn func(ctx context.Context, in promptuc.Input) (domprompt.Prompt, error)
	getFn    func(ctx context.Context, id string) (domprompt.Prompt, error)
	listFn   func(ctx context.Context, f promptuc.Filter) ([]domprompt.Prompt, error)
	updateFn func(ctx context.Context, id string, in promptuc.Input) (domprompt.Prompt, error)
	patchFn  func(ctx context.Context, id string, p patch.Patch) (domprompt.Prompt, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockPromptUC) Create(ctx context.Context, in promptuc.Input) (domprompt.Prompt, error) {
	return m.createFn(ctx, in)
}

func (m *mockPromptUC) Get(ctx context.Context, id string) (domprompt.Prompt, error) {
	return m.getFn(ctx, id)
}

func (m *mockPromptUC) List(ctx context.Context, f promptuc.Filter) ([]domprompt.Prompt, error) {
	return m.listFn(ctx, f)
}

func (m *mockPromptUC) Update(ctx context.Context, id string, in promptuc.Input) (domprompt.Prompt, error) {
	return m.updateFn(ctx, id, in)
}

func (m *mockPromptUC) Patch(ctx context.Context, id string, p patch.Patch) (domprompt.Prompt, error) {
	return m.patchFn(ctx, id, p)
}

func (m *mockPromptUC) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// --- collectionUseCase mock ---

type mockCollectionUC struct {
	createFn        func(ctx context.Context, name, description string) (domcol.Collection, error)
	getFn           func(ctx context.Context, id string) (domcol.Collection, error)
	listFn          func(ctx context.Context) ([]domcol.Collection, error)
	deleteFn        func(ctx context.Context, id string) (int, error)
	promptsFn       func(ctx context.Context, id string) ([]domprompt.Prompt, error)
	uncategorizedFn func(ctx context.Context) (domcol.Collection, error)
}

func (m *mockCollectionUC) Create(ctx context.Context, name, description string) (domcol.Collection, error) {
	return m.createFn(ctx, name, description)
}

func (m *mockCollectionUC) Get(ctx context.Context, id string) (domcol.Collection, error) {
	return m.getFn(ctx, id)
}

func (m *mockCollectionUC) List(ctx context.Context) ([]domcol.Collection, error) {
	return m.listFn(ctx)
}

func (m *mockCollectionUC) Delete(ctx context.Context, id string) (int, error) {
	return m.deleteFn(ctx, id)
}

func (m *mockCollectionUC) Prompts(ctx context.Context, id string) ([]domprompt.Prompt, error) {
	return m.promptsFn(ctx, id)
}

func (m *mockCollectionUC) Uncategorized(ctx context.Context) (domcol.Collection, error) {
	return m.uncategorizedFn(ctx)
}
