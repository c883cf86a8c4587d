package promptlab

import "github.com/kailas-cloud/promptlab/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound           = domain.ErrNotFound
	ErrPromptNotFound     = domain.ErrPromptNotFound
	ErrCollectionNotFound = domain.ErrCollectionNotFound
	ErrInvalidPrompt      = domain.ErrInvalidPrompt
	ErrInvalidCollection  = domain.ErrInvalidCollection
	ErrInvalidPatch       = domain.ErrInvalidPatch
)
