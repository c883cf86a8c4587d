package collection

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/kailas-cloud/promptlab/internal/domain"
)

// Field limits.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

// Collection is the prompt grouping aggregate (immutable value object).
// Names are not unique; only the Uncategorized convention relies on them.
type Collection struct {
	id          string
	name        string
	description string
	createdAt   time.Time
}

// New validates and creates a Collection.
// Name: 1-100 chars. Description: max 500 chars.
func New(id, name, description string, now time.Time) (Collection, error) {
	if id == "" {
		return Collection{}, fmt.Errorf("collection ID is required")
	}
	if name == "" {
		return Collection{}, fmt.Errorf("collection name is required")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return Collection{}, fmt.Errorf("collection name too long (max %d)", MaxNameLength)
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return Collection{}, fmt.Errorf("description too long (max %d)", MaxDescriptionLength)
	}

	return Collection{id: id, name: name, description: description, createdAt: now}, nil
}

// NewUncategorized creates the default collection.
func NewUncategorized(id string, now time.Time) Collection {
	return Collection{
		id:          id,
		name:        domain.UncategorizedName,
		description: domain.UncategorizedDescription,
		createdAt:   now,
	}
}

// Reconstruct creates a Collection without validation (storage hydration).
func Reconstruct(id, name, description string, createdAt time.Time) Collection {
	return Collection{id: id, name: name, description: description, createdAt: createdAt}
}

// ID returns the collection identifier.
func (c Collection) ID() string { return c.id }

// Name returns the display name.
func (c Collection) Name() string { return c.name }

// Description returns the description.
func (c Collection) Description() string { return c.description }

// CreatedAt returns the creation time.
func (c Collection) CreatedAt() time.Time { return c.createdAt }

// IsUncategorized reports whether the collection carries the default name.
func (c Collection) IsUncategorized() bool { return c.name == domain.UncategorizedName }
