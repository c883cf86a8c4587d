package patch

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/kailas-cloud/promptlab/internal/domain"
)

// Field limits.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 500
	MaxContentSize       = 163840 // 160KB
)

// Patchable field names as they appear on the wire.
const (
	FieldTitle        = "title"
	FieldContent      = "content"
	FieldDescription  = "description"
	FieldCollectionID = "collection_id"
)

// Patch is a partial prompt update. Nil fields are unchanged.
type Patch struct {
	title        *string
	content      *string
	description  *string
	collectionID *string
}

// New validates and creates a Patch. At least one field must be provided.
func New(title, content, description, collectionID *string) (Patch, error) {
	if title == nil && content == nil && description == nil && collectionID == nil {
		return Patch{}, fmt.Errorf("%w: at least one field must be provided", domain.ErrInvalidPatch)
	}
	if title != nil {
		if *title == "" {
			return Patch{}, fmt.Errorf("%w: title cannot be empty", domain.ErrInvalidPatch)
		}
		if utf8.RuneCountInString(*title) > MaxTitleLength {
			return Patch{}, fmt.Errorf("%w: title too long (max %d)", domain.ErrInvalidPatch, MaxTitleLength)
		}
	}
	if content != nil {
		if *content == "" {
			return Patch{}, fmt.Errorf("%w: content cannot be empty", domain.ErrInvalidPatch)
		}
		if len(*content) > MaxContentSize {
			return Patch{}, fmt.Errorf("%w: content too large (max %d bytes)", domain.ErrInvalidPatch, MaxContentSize)
		}
	}
	if description != nil && utf8.RuneCountInString(*description) > MaxDescriptionLength {
		return Patch{}, fmt.Errorf(
			"%w: description too long (max %d)", domain.ErrInvalidPatch, MaxDescriptionLength,
		)
	}
	return Patch{title: title, content: content, description: description, collectionID: collectionID}, nil
}

// FromFields builds a Patch from a decoded JSON object.
// Unknown field names and non-string values are rejected.
func FromFields(fields map[string]any) (Patch, error) {
	var title, content, description, collectionID *string

	for name, raw := range fields {
		v, ok := raw.(string)
		if !ok {
			return Patch{}, fmt.Errorf("%w: field %q must be a string, got %T", domain.ErrInvalidPatch, name, raw)
		}
		switch name {
		case FieldTitle:
			title = &v
		case FieldContent:
			content = &v
		case FieldDescription:
			description = &v
		case FieldCollectionID:
			collectionID = &v
		default:
			return Patch{}, fmt.Errorf("%w: unknown field %q", domain.ErrInvalidPatch, name)
		}
	}

	return New(title, content, description, collectionID)
}

// Title returns the new title, or nil if unchanged.
func (p Patch) Title() *string { return p.title }

// Content returns the new content, or nil if unchanged.
func (p Patch) Content() *string { return p.content }

// Description returns the new description, or nil if unchanged.
func (p Patch) Description() *string { return p.description }

// CollectionID returns the new collection reference, or nil if unchanged.
func (p Patch) CollectionID() *string { return p.collectionID }

// HasCollectionID reports whether the patch moves the prompt to another collection.
func (p Patch) HasCollectionID() bool { return p.collectionID != nil }

// WithCollectionID returns a copy with the collection reference replaced.
func (p Patch) WithCollectionID(id string) Patch {
	p.collectionID = &id
	return p
}

// Fields returns the sorted wire names of the fields set on the patch.
func (p Patch) Fields() []string {
	var out []string
	if p.title != nil {
		out = append(out, FieldTitle)
	}
	if p.content != nil {
		out = append(out, FieldContent)
	}
	if p.description != nil {
		out = append(out, FieldDescription)
	}
	if p.collectionID != nil {
		out = append(out, FieldCollectionID)
	}
	sort.Strings(out)
	return out
}
