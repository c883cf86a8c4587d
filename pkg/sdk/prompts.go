package promptlab

import (
	"context"
	"fmt"
	"time"

	promptuc "github.com/kailas-cloud/promptlab/internal/usecase/prompt"
)

// PromptService manages prompts.
type PromptService struct {
	svc promptUseCase
	obs *observer
}

// Create stores a new prompt under a generated ID.
func (s *PromptService) Create(ctx context.Context, in PromptInput) (_ Prompt, err error) {
	start := time.Now()
	defer func() { s.obs.observe("prompt.create", start, err) }()

	p, err := s.svc.Create(ctx, toInternalInput(in))
	if err != nil {
		return Prompt{}, fmt.Errorf("create prompt: %w", err)
	}
	return fromInternalPrompt(p), nil
}

// Get retrieves a prompt by ID.
func (s *PromptService) Get(ctx context.Context, id string) (_ Prompt, err error) {
	start := time.Now()
	defer func() { s.obs.observe("prompt.get", start, err) }()

	p, err := s.svc.Get(ctx, id)
	if err != nil {
		return Prompt{}, fmt.Errorf("get prompt: %w", err)
	}
	return fromInternalPrompt(p), nil
}

// List returns prompts matching the filter, most recently updated first.
func (s *PromptService) List(ctx context.Context, f ListFilter) (_ []Prompt, err error) {
	start := time.Now()
	defer func() { s.obs.observe("prompt.list", start, err) }()

	prompts, err := s.svc.List(ctx, promptuc.Filter{CollectionID: f.CollectionID, Query: f.Query})
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	return fromInternalPrompts(prompts), nil
}

// Update replaces all editable fields of a prompt.
func (s *PromptService) Update(ctx context.Context, id string, in PromptInput) (_ Prompt, err error) {
	start := time.Now()
	defer func() { s.obs.observe("prompt.update", start, err) }()

	p, err := s.svc.Update(ctx, id, toInternalInput(in))
	if err != nil {
		return Prompt{}, fmt.Errorf("update prompt: %w", err)
	}
	return fromInternalPrompt(p), nil
}

// Patch applies a partial update.
func (s *PromptService) Patch(ctx context.Context, id string, p PromptPatch) (_ Prompt, err error) {
	start := time.Now()
	defer func() { s.obs.observe("prompt.patch", start, err) }()

	pt, err := toInternalPatch(p)
	if err != nil {
		return Prompt{}, fmt.Errorf("patch prompt: %w", err)
	}
	updated, err := s.svc.Patch(ctx, id, pt)
	if err != nil {
		return Prompt{}, fmt.Errorf("patch prompt: %w", err)
	}
	return fromInternalPrompt(updated), nil
}

// Delete removes a prompt.
func (s *PromptService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("prompt.delete", start, err) }()

	if err = s.svc.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete prompt: %w", err)
	}
	return nil
}
