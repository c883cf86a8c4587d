package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrPromptNotFound signals a missing prompt.
	ErrPromptNotFound = fmt.Errorf("prompt %w", ErrNotFound)
	// ErrCollectionNotFound signals a missing collection.
	ErrCollectionNotFound = fmt.Errorf("collection %w", ErrNotFound)

	// ErrInvalidPrompt signals a prompt that failed validation.
	ErrInvalidPrompt = errors.New("invalid prompt")
	// ErrInvalidCollection signals a collection that failed validation.
	ErrInvalidCollection = errors.New("invalid collection")
	// ErrInvalidPatch signals a malformed partial update.
	ErrInvalidPatch = errors.New("invalid patch")
)
