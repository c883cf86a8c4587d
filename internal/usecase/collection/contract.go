package collection

import (
	"context"

	domcol "github.com/kailas-cloud/promptlab/internal/domain/collection"
	domprompt "github.com/kailas-cloud/promptlab/internal/domain/prompt"
	"github.com/kailas-cloud/promptlab/internal/domain/prompt/patch"
)

// Repository defines the storage contract for collections.
type Repository interface {
	Create(ctx context.Context, col domcol.Collection) error
	Get(ctx context.Context, id string) (domcol.Collection, error)
	List(ctx context.Context) ([]domcol.Collection, error)
	Delete(ctx context.Context, id string) error
	Uncategorized(ctx context.Context) (domcol.Collection, error)
	Prompts(ctx context.Context, id string) ([]domprompt.Prompt, error)
}

// PromptReassigner moves prompts between collections.
type PromptReassigner interface {
	Patch(ctx context.Context, id string, p patch.Patch) (domprompt.Prompt, error)
}
