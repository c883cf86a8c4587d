package prompt

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/promptlab/internal/domain"
	domprompt "github.com/kailas-cloud/promptlab/internal/domain/prompt"
	"github.com/kailas-cloud/promptlab/internal/domain/prompt/patch"
	"github.com/kailas-cloud/promptlab/internal/logger"
)

// Input carries the editable fields of a prompt for create and full update.
// An empty CollectionID places the prompt in the Uncategorized collection.
type Input struct {
	Title        string
	Content      string
	Description  string
	CollectionID string
}

// Filter narrows List results. Zero values match everything.
type Filter struct {
	CollectionID string
	// Query is a case-insensitive substring matched against title and description.
	Query string
}

// Service handles prompt CRUD.
type Service struct {
	repo  Repository
	colls CollectionReader
	newID func() string
	now   func() time.Time
}

// New creates a prompt service.
func New(repo Repository, colls CollectionReader) *Service {
	return &Service{repo: repo, colls: colls, newID: domain.NewID, now: domain.Now}
}

// WithClock overrides the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// WithIDGenerator overrides the ID source.
func (s *Service) WithIDGenerator(newID func() string) *Service {
	if newID != nil {
		s.newID = newID
	}
	return s
}

// Create validates and stores a new prompt under a freshly generated ID.
func (s *Service) Create(ctx context.Context, in Input) (domprompt.Prompt, error) {
	now := s.now()
	p, err := domprompt.New(s.newID(), in.Title, in.Content, in.Description, in.CollectionID, now)
	if err != nil {
		return domprompt.Prompt{}, fmt.Errorf("validate prompt: %w: %w", domain.ErrInvalidPrompt, err)
	}

	collectionID, err := s.resolveCollection(ctx, in.CollectionID, domain.ErrInvalidPrompt)
	if err != nil {
		return domprompt.Prompt{}, err
	}
	if collectionID != p.CollectionID() {
		p = p.WithCollection(collectionID, now)
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return domprompt.Prompt{}, fmt.Errorf("create prompt: %w", err)
	}

	logger.FromContext(ctx).Debug("prompt created",
		zap.String("prompt_id", p.ID()),
		zap.String("collection_id", p.CollectionID()),
	)
	return p, nil
}

// Get retrieves a prompt by ID.
func (s *Service) Get(ctx context.Context, id string) (domprompt.Prompt, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domprompt.Prompt{}, fmt.Errorf("get prompt: %w", err)
	}
	return p, nil
}

// List returns prompts matching the filter, most recently updated first.
func (s *Service) List(ctx context.Context, f Filter) ([]domprompt.Prompt, error) {
	prompts, err := s.repo.List(ctx, f.CollectionID)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}

	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		matched := prompts[:0:0]
		for _, p := range prompts {
			if strings.Contains(strings.ToLower(p.Title()), q) ||
				strings.Contains(strings.ToLower(p.Description()), q) {
				matched = append(matched, p)
			}
		}
		prompts = matched
	}

	sort.SliceStable(prompts, func(i, j int) bool {
		a, b := prompts[i], prompts[j]
		if !a.UpdatedAt().Equal(b.UpdatedAt()) {
			return a.UpdatedAt().After(b.UpdatedAt())
		}
		return a.ID() < b.ID()
	})
	return prompts, nil
}

// Update replaces the editable fields of an existing prompt.
func (s *Service) Update(ctx context.Context, id string, in Input) (domprompt.Prompt, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return domprompt.Prompt{}, fmt.Errorf("get prompt: %w", err)
	}

	updated, err := existing.Replaced(in.Title, in.Content, in.Description, in.CollectionID, s.now())
	if err != nil {
		return domprompt.Prompt{}, fmt.Errorf("validate prompt: %w: %w", domain.ErrInvalidPrompt, err)
	}

	collectionID, err := s.resolveCollection(ctx, in.CollectionID, domain.ErrInvalidPrompt)
	if err != nil {
		return domprompt.Prompt{}, err
	}
	if collectionID != updated.CollectionID() {
		updated = updated.WithCollection(collectionID, updated.UpdatedAt())
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		return domprompt.Prompt{}, fmt.Errorf("update prompt: %w", err)
	}

	logger.FromContext(ctx).Debug("prompt replaced", zap.String("prompt_id", id))
	return updated, nil
}

// Patch applies a partial update. An empty collection ID in the patch moves the
// prompt to the Uncategorized collection. The prompt must exist before the
// collection is resolved.
func (s *Service) Patch(ctx context.Context, id string, p patch.Patch) (domprompt.Prompt, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return domprompt.Prompt{}, fmt.Errorf("patch prompt: %w", err)
	}
	if p.HasCollectionID() {
		collectionID, err := s.resolveCollection(ctx, *p.CollectionID(), domain.ErrInvalidPatch)
		if err != nil {
			return domprompt.Prompt{}, err
		}
		p = p.WithCollectionID(collectionID)
	}

	updated, err := s.repo.Patch(ctx, id, p)
	if err != nil {
		return domprompt.Prompt{}, fmt.Errorf("patch prompt: %w", err)
	}

	logger.FromContext(ctx).Debug("prompt patched",
		zap.String("prompt_id", id),
		zap.Strings("fields", p.Fields()),
	)
	return updated, nil
}

// Delete removes a prompt.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete prompt: %w", err)
	}
	logger.FromContext(ctx).Debug("prompt deleted", zap.String("prompt_id", id))
	return nil
}

// resolveCollection checks that a collection referenced from a request body exists.
// The empty ID resolves to the Uncategorized collection. An unknown ID is reported
// as the invalid sentinel, not as a missing resource.
func (s *Service) resolveCollection(ctx context.Context, id string, invalid error) (string, error) {
	if id == "" {
		col, err := s.colls.Uncategorized(ctx)
		if err != nil {
			return "", fmt.Errorf("uncategorized collection: %w", err)
		}
		return col.ID(), nil
	}
	if _, err := s.colls.Get(ctx, id); err != nil {
		if errors.Is(err, domain.ErrCollectionNotFound) {
			return "", fmt.Errorf("%w: collection %q does not exist", invalid, id)
		}
		return "", fmt.Errorf("get collection: %w", err)
	}
	return id, nil
}
