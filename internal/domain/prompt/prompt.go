package prompt

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/kailas-cloud/promptlab/internal/domain/prompt/patch"
)

// Field limits shared with the patch package.
const (
	MaxTitleLength       = patch.MaxTitleLength
	MaxDescriptionLength = patch.MaxDescriptionLength
	MaxContentSize       = patch.MaxContentSize
)

// Prompt is the prompt aggregate (immutable value object).
type Prompt struct {
	id           string
	title        string
	content      string
	description  string
	collectionID string
	createdAt    time.Time
	updatedAt    time.Time
}

// New validates and creates a Prompt stamped with now as both creation and update time.
// Title: 1-200 chars. Content: non-empty, max 160KB. Description: max 500 chars.
func New(id, title, content, description, collectionID string, now time.Time) (Prompt, error) {
	if id == "" {
		return Prompt{}, fmt.Errorf("prompt ID is required")
	}
	if err := validateTitle(title); err != nil {
		return Prompt{}, err
	}
	if err := validateContent(content); err != nil {
		return Prompt{}, err
	}
	if err := validateDescription(description); err != nil {
		return Prompt{}, err
	}

	return Prompt{
		id:           id,
		title:        title,
		content:      content,
		description:  description,
		collectionID: collectionID,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct creates a Prompt without validation (storage hydration).
func Reconstruct(
	id, title, content, description, collectionID string,
	createdAt, updatedAt time.Time,
) Prompt {
	return Prompt{
		id:           id,
		title:        title,
		content:      content,
		description:  description,
		collectionID: collectionID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ID returns the prompt identifier.
func (p Prompt) ID() string { return p.id }

// Title returns the prompt title.
func (p Prompt) Title() string { return p.title }

// Content returns the prompt text.
func (p Prompt) Content() string { return p.content }

// Description returns the optional description.
func (p Prompt) Description() string { return p.description }

// CollectionID returns the referenced collection. It is not guaranteed to exist.
func (p Prompt) CollectionID() string { return p.collectionID }

// CreatedAt returns the creation time.
func (p Prompt) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last-modified time.
func (p Prompt) UpdatedAt() time.Time { return p.updatedAt }

// Replaced validates a full replacement of the editable fields.
// The ID and creation time are kept; the update time is refreshed.
func (p Prompt) Replaced(title, content, description, collectionID string, now time.Time) (Prompt, error) {
	out, err := New(p.id, title, content, description, collectionID, now)
	if err != nil {
		return Prompt{}, err
	}
	out.createdAt = p.createdAt
	out.updatedAt = touch(p.updatedAt, now)
	return out, nil
}

// WithPatch returns a copy with the patched fields applied and the update time refreshed.
// Fields absent from the patch are unchanged.
func (p Prompt) WithPatch(pt patch.Patch, now time.Time) Prompt {
	out := p
	if v := pt.Title(); v != nil {
		out.title = *v
	}
	if v := pt.Content(); v != nil {
		out.content = *v
	}
	if v := pt.Description(); v != nil {
		out.description = *v
	}
	if v := pt.CollectionID(); v != nil {
		out.collectionID = *v
	}
	out.updatedAt = touch(p.updatedAt, now)
	return out
}

// WithCollection returns a copy assigned to another collection.
func (p Prompt) WithCollection(collectionID string, now time.Time) Prompt {
	out := p
	out.collectionID = collectionID
	out.updatedAt = touch(p.updatedAt, now)
	return out
}

// touch keeps the update time monotonic when the clock steps backwards.
func touch(prev, now time.Time) time.Time {
	if now.Before(prev) {
		return prev
	}
	return now
}

func validateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return fmt.Errorf("title too long (max %d)", MaxTitleLength)
	}
	return nil
}

func validateContent(content string) error {
	if content == "" {
		return fmt.Errorf("content is required")
	}
	if len(content) > MaxContentSize {
		return fmt.Errorf("content too large (max %d bytes)", MaxContentSize)
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return fmt.Errorf("description too long (max %d)", MaxDescriptionLength)
	}
	return nil
}
