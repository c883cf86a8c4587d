package prompt

import (
	"context"

	domcol "github.com/kailas-cloud/promptlab/internal/domain/collection"
	domprompt "github.com/kailas-cloud/promptlab/internal/domain/prompt"
	"github.com/kailas-cloud/promptlab/internal/domain/prompt/patch"
)

// Repository defines the storage contract for prompts.
type Repository interface {
	Create(ctx context.Context, p domprompt.Prompt) error
	Get(ctx context.Context, id string) (domprompt.Prompt, error)
	List(ctx context.Context, collectionID string) ([]domprompt.Prompt, error)
	Update(ctx context.Context, p domprompt.Prompt) error
	Patch(ctx context.Context, id string, p patch.Patch) (domprompt.Prompt, error)
	Delete(ctx context.Context, id string) error
}

// CollectionReader resolves collection references.
type CollectionReader interface {
	Get(ctx context.Context, id string) (domcol.Collection, error)
	Uncategorized(ctx context.Context) (domcol.Collection, error)
}
