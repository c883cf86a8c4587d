package collection

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/promptlab/internal/domain"
	domcol "github.com/kailas-cloud/promptlab/internal/domain/collection"
	domprompt "github.com/kailas-cloud/promptlab/internal/domain/prompt"
)

// store is the consumer interface for collections (ISP).
type store interface {
	CreateCollection(c domcol.Collection) domcol.Collection
	GetCollection(id string) (domcol.Collection, bool)
	ListCollections() []domcol.Collection
	DeleteCollection(id string) bool
	UncategorizedCollection() domcol.Collection
	PromptsByCollection(collectionID string) []domprompt.Prompt
}

// Repo implements usecase/collection.Repository on top of the in-memory storage.
type Repo struct {
	store store
}

// New creates a collection repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Create stores a collection. An existing ID is overwritten.
func (r *Repo) Create(ctx context.Context, col domcol.Collection) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("create collection %s: %w", col.ID(), err)
	}
	r.store.CreateCollection(col)
	return nil
}

// Get retrieves a collection by ID.
func (r *Repo) Get(ctx context.Context, id string) (domcol.Collection, error) {
	if err := ctx.Err(); err != nil {
		return domcol.Collection{}, fmt.Errorf("get collection %s: %w", id, err)
	}
	col, ok := r.store.GetCollection(id)
	if !ok {
		return domcol.Collection{}, domain.ErrCollectionNotFound
	}
	return col, nil
}

// List returns all collections in insertion order.
func (r *Repo) List(ctx context.Context) ([]domcol.Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return r.store.ListCollections(), nil
}

// Delete removes a collection. Referencing prompts are left as they are.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("delete collection %s: %w", id, err)
	}
	if !r.store.DeleteCollection(id) {
		return domain.ErrCollectionNotFound
	}
	return nil
}

// Uncategorized returns the default collection, creating it if needed.
func (r *Repo) Uncategorized(ctx context.Context) (domcol.Collection, error) {
	if err := ctx.Err(); err != nil {
		return domcol.Collection{}, fmt.Errorf("uncategorized collection: %w", err)
	}
	return r.store.UncategorizedCollection(), nil
}

// Prompts returns the prompts that reference a collection ID, existing or not.
func (r *Repo) Prompts(ctx context.Context, id string) ([]domprompt.Prompt, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("prompts of collection %s: %w", id, err)
	}
	return r.store.PromptsByCollection(id), nil
}
