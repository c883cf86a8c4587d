package promptlab

import (
	"context"
	"fmt"
	"time"
)

// CollectionService manages collections.
type CollectionService struct {
	svc collectionUseCase
	obs *observer
}

// Create creates a new collection under a generated ID.
func (s *CollectionService) Create(ctx context.Context, name, description string) (_ Collection, err error) {
	start := time.Now()
	defer func() { s.obs.observe("collection.create", start, err) }()

	col, err := s.svc.Create(ctx, name, description)
	if err != nil {
		return Collection{}, fmt.Errorf("create collection: %w", err)
	}
	return fromInternalCollection(col), nil
}

// Get retrieves a collection by ID.
func (s *CollectionService) Get(ctx context.Context, id string) (_ Collection, err error) {
	start := time.Now()
	defer func() { s.obs.observe("collection.get", start, err) }()

	col, err := s.svc.Get(ctx, id)
	if err != nil {
		return Collection{}, fmt.Errorf("get collection: %w", err)
	}
	return fromInternalCollection(col), nil
}

// List returns all collections in creation order.
func (s *CollectionService) List(ctx context.Context) (_ []Collection, err error) {
	start := time.Now()
	defer func() { s.obs.observe("collection.list", start, err) }()

	cols, err := s.svc.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	out := make([]Collection, len(cols))
	for i, c := range cols {
		out[i] = fromInternalCollection(c)
	}
	return out, nil
}

// Delete removes a collection and moves its prompts to Uncategorized.
// Returns how many prompts were moved.
func (s *CollectionService) Delete(ctx context.Context, id string) (_ int, err error) {
	start := time.Now()
	defer func() { s.obs.observe("collection.delete", start, err) }()

	moved, err := s.svc.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete collection: %w", err)
	}
	return moved, nil
}

// Prompts returns the prompts of a collection.
func (s *CollectionService) Prompts(ctx context.Context, id string) (_ []Prompt, err error) {
	start := time.Now()
	defer func() { s.obs.observe("collection.prompts", start, err) }()

	prompts, err := s.svc.Prompts(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("collection prompts: %w", err)
	}
	return fromInternalPrompts(prompts), nil
}

// Uncategorized returns the default collection, creating it on first use.
func (s *CollectionService) Uncategorized(ctx context.Context) (_ Collection, err error) {
	start := time.Now()
	defer func() { s.obs.observe("collection.uncategorized", start, err) }()

	col, err := s.svc.Uncategorized(ctx)
	if err != nil {
		return Collection{}, fmt.Errorf("uncategorized collection: %w", err)
	}
	return fromInternalCollection(col), nil
}
