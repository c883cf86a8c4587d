package prompt

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/promptlab/internal/domain"
	domprompt "github.com/kailas-cloud/promptlab/internal/domain/prompt"
	"github.com/kailas-cloud/promptlab/internal/domain/prompt/patch"
)

// store is the consumer interface for prompts (ISP).
type store interface {
	CreatePrompt(p domprompt.Prompt) domprompt.Prompt
	GetPrompt(id string) (domprompt.Prompt, bool)
	ListPrompts() []domprompt.Prompt
	UpdatePrompt(id string, p domprompt.Prompt) (domprompt.Prompt, bool)
	PatchPrompt(id string, p patch.Patch) (domprompt.Prompt, bool)
	DeletePrompt(id string) bool
	PromptsByCollection(collectionID string) []domprompt.Prompt
}

// Repo implements usecase/prompt.Repository on top of the in-memory storage.
type Repo struct {
	store store
}

// New creates a prompt repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Create stores a prompt. An existing ID is overwritten.
func (r *Repo) Create(ctx context.Context, p domprompt.Prompt) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("create prompt %s: %w", p.ID(), err)
	}
	r.store.CreatePrompt(p)
	return nil
}

// Get retrieves a prompt by ID.
func (r *Repo) Get(ctx context.Context, id string) (domprompt.Prompt, error) {
	if err := ctx.Err(); err != nil {
		return domprompt.Prompt{}, fmt.Errorf("get prompt %s: %w", id, err)
	}
	p, ok := r.store.GetPrompt(id)
	if !ok {
		return domprompt.Prompt{}, domain.ErrPromptNotFound
	}
	return p, nil
}

// List returns all prompts, or only those of one collection when collectionID is set.
func (r *Repo) List(ctx context.Context, collectionID string) ([]domprompt.Prompt, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	if collectionID != "" {
		return r.store.PromptsByCollection(collectionID), nil
	}
	return r.store.ListPrompts(), nil
}

// Update replaces an existing prompt.
func (r *Repo) Update(ctx context.Context, p domprompt.Prompt) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("update prompt %s: %w", p.ID(), err)
	}
	if _, ok := r.store.UpdatePrompt(p.ID(), p); !ok {
		return domain.ErrPromptNotFound
	}
	return nil
}

// Patch applies a partial update and returns the stored result.
func (r *Repo) Patch(ctx context.Context, id string, p patch.Patch) (domprompt.Prompt, error) {
	if err := ctx.Err(); err != nil {
		return domprompt.Prompt{}, fmt.Errorf("patch prompt %s: %w", id, err)
	}
	updated, ok := r.store.PatchPrompt(id, p)
	if !ok {
		return domprompt.Prompt{}, domain.ErrPromptNotFound
	}
	return updated, nil
}

// Delete removes a prompt.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("delete prompt %s: %w", id, err)
	}
	if !r.store.DeletePrompt(id) {
		return domain.ErrPromptNotFound
	}
	return nil
}
