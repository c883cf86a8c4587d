// Package storage is the in-memory store for prompts and collections.
//
// State lives only in process memory and is lost on exit. Create operations are
// upserts: writing an existing ID replaces the record in place. Missing records are
// reported with a false ok value, never an error. Nothing links a prompt's
// collection ID to an existing collection; deleting a collection leaves such
// references dangling.
//
// A single RWMutex guards the whole store, so every operation is atomic with
// respect to the others, including the get-or-create of the Uncategorized collection.
// Operations never block on I/O.
package storage

import (
	"context"
	"sync"
	"time"

	"github.com/kailas-cloud/promptlab/internal/domain"
	domcol "github.com/kailas-cloud/promptlab/internal/domain/collection"
	domprompt "github.com/kailas-cloud/promptlab/internal/domain/prompt"
	"github.com/kailas-cloud/promptlab/internal/domain/prompt/patch"
)

// Stats holds record counts.
type Stats struct {
	Prompts     int
	Collections int
}

// Option configures a Storage.
type Option func(*Storage)

// WithClock sets the time source used to stamp partial updates and new default collections.
func WithClock(now func() time.Time) Option {
	return func(s *Storage) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator sets the ID source for the Uncategorized collection.
func WithIDGenerator(newID func() string) Option {
	return func(s *Storage) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// Storage holds prompts and collections in two insertion-ordered maps.
type Storage struct {
	mu          sync.RWMutex
	prompts     keyed[domprompt.Prompt]
	collections keyed[domcol.Collection]
	now         func() time.Time
	newID       func() string
}

// New creates an empty Storage.
func New(opts ...Option) *Storage {
	s := &Storage{
		prompts:     newKeyed[domprompt.Prompt](),
		collections: newKeyed[domcol.Collection](),
		now:         domain.Now,
		newID:       domain.NewID,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// CreatePrompt stores p under its ID, replacing any existing record.
func (s *Storage) CreatePrompt(p domprompt.Prompt) domprompt.Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompts.put(p.ID(), p)
	return p
}

// GetPrompt returns the prompt with the given ID.
func (s *Storage) GetPrompt(id string) (domprompt.Prompt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.prompts.get(id)
}

// ListPrompts returns a snapshot of all prompts in insertion order.
func (s *Storage) ListPrompts() []domprompt.Prompt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.prompts.values()
}

// UpdatePrompt replaces an existing prompt wholesale. Unlike CreatePrompt it never inserts:
// ok is false and nothing is written when id is unknown.
func (s *Storage) UpdatePrompt(id string, p domprompt.Prompt) (domprompt.Prompt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.prompts.has(id) {
		return domprompt.Prompt{}, false
	}
	s.prompts.put(id, p)
	return p, true
}

// PatchPrompt applies the fields named by pt to an existing prompt and stamps its update time.
func (s *Storage) PatchPrompt(id string, pt patch.Patch) (domprompt.Prompt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.prompts.get(id)
	if !ok {
		return domprompt.Prompt{}, false
	}
	updated := existing.WithPatch(pt, s.now())
	s.prompts.put(id, updated)
	return updated, true
}

// DeletePrompt removes a prompt and reports whether it existed.
func (s *Storage) DeletePrompt(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.prompts.remove(id)
}

// PromptsByCollection returns every prompt referencing collectionID (linear scan).
func (s *Storage) PromptsByCollection(collectionID string) []domprompt.Prompt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.prompts.filter(func(p domprompt.Prompt) bool {
		return p.CollectionID() == collectionID
	})
}

// CreateCollection stores c under its ID, replacing any existing record.
// It does not check names, so a second "Uncategorized" can be created this way.
func (s *Storage) CreateCollection(c domcol.Collection) domcol.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.collections.put(c.ID(), c)
	return c
}

// GetCollection returns the collection with the given ID.
func (s *Storage) GetCollection(id string) (domcol.Collection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collections.get(id)
}

// ListCollections returns a snapshot of all collections in insertion order.
func (s *Storage) ListCollections() []domcol.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collections.values()
}

// DeleteCollection removes a collection and reports whether it existed.
// Prompts referencing it are left untouched.
func (s *Storage) DeleteCollection(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.collections.remove(id)
}

// UncategorizedCollection returns the first collection named "Uncategorized",
// creating it when none exists.
func (s *Storage) UncategorizedCollection() domcol.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.collections.find(domcol.Collection.IsUncategorized); ok {
		return c
	}
	c := domcol.NewUncategorized(s.newID(), s.now())
	s.collections.put(c.ID(), c)
	return c
}

// Clear drops every prompt and collection.
func (s *Storage) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompts.reset()
	s.collections.reset()
}

// Stats returns the current record counts.
func (s *Storage) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{Prompts: s.prompts.len(), Collections: s.collections.len()}
}

// Counts returns the prompt and collection counts as a pair.
func (s *Storage) Counts() (prompts, collections int) {
	st := s.Stats()
	return st.Prompts, st.Collections
}

// Ping reports whether the store can serve requests. It only fails on a done context.
func (s *Storage) Ping(ctx context.Context) error {
	return ctx.Err()
}
