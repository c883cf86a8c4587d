package collection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/promptlab/internal/domain"
	domcol "github.com/kailas-cloud/promptlab/internal/domain/collection"
	domprompt "github.com/kailas-cloud/promptlab/internal/domain/prompt"
	"github.com/kailas-cloud/promptlab/internal/domain/prompt/patch"
	"github.com/kailas-cloud/promptlab/internal/logger"
)

// Service handles collection CRUD operations.
type Service struct {
	repo    Repository
	prompts PromptReassigner
	newID   func() string
	now     func() time.Time
}

// New creates a collection service.
func New(repo Repository, prompts PromptReassigner) *Service {
	return &Service{repo: repo, prompts: prompts, newID: domain.NewID, now: domain.Now}
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

// Create validates and stores a new collection.
func (s *Service) Create(ctx context.Context, name, description string) (domcol.Collection, error) {
	col, err := domcol.New(s.newID(), name, description, s.now())
	if err != nil {
		return domcol.Collection{}, fmt.Errorf("validate collection: %w: %w", domain.ErrInvalidCollection, err)
	}

	if err := s.repo.Create(ctx, col); err != nil {
		return domcol.Collection{}, fmt.Errorf("create collection: %w", err)
	}

	logger.FromContext(ctx).Debug("collection created",
		zap.String("collection_id", col.ID()),
		zap.String("name", col.Name()),
	)
	return col, nil
}

// Get retrieves a collection by ID.
func (s *Service) Get(ctx context.Context, id string) (domcol.Collection, error) {
	col, err := s.repo.Get(ctx, id)
	if err != nil {
		return domcol.Collection{}, fmt.Errorf("get collection: %w", err)
	}
	return col, nil
}

// List returns all collections.
func (s *Service) List(ctx context.Context) ([]domcol.Collection, error) {
	cols, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return cols, nil
}

// Prompts returns the prompts of an existing collection.
func (s *Service) Prompts(ctx context.Context, id string) ([]domprompt.Prompt, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}
	prompts, err := s.repo.Prompts(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("collection prompts: %w", err)
	}
	return prompts, nil
}

// Uncategorized returns the default collection, creating it on first use.
func (s *Service) Uncategorized(ctx context.Context) (domcol.Collection, error) {
	col, err := s.repo.Uncategorized(ctx)
	if err != nil {
		return domcol.Collection{}, fmt.Errorf("uncategorized collection: %w", err)
	}
	return col, nil
}

// Delete removes a collection and moves its prompts to the Uncategorized
// collection. Returns the number of prompts moved.
func (s *Service) Delete(ctx context.Context, id string) (int, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return 0, fmt.Errorf("delete collection: %w", err)
	}

	orphans, err := s.repo.Prompts(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("collection prompts: %w", err)
	}
	if len(orphans) == 0 {
		logger.FromContext(ctx).Debug("collection deleted", zap.String("collection_id", id))
		return 0, nil
	}

	target, err := s.repo.Uncategorized(ctx)
	if err != nil {
		return 0, fmt.Errorf("uncategorized collection: %w", err)
	}
	move, err := patch.New(nil, nil, nil, ptr(target.ID()))
	if err != nil {
		return 0, fmt.Errorf("build reassign patch: %w", err)
	}

	moved := 0
	for _, p := range orphans {
		if _, err := s.prompts.Patch(ctx, p.ID(), move); err != nil {
			// Deleted concurrently.
			if errors.Is(err, domain.ErrPromptNotFound) {
				continue
			}
			return moved, fmt.Errorf("reassign prompt %s: %w", p.ID(), err)
		}
		moved++
	}

	logger.FromContext(ctx).Info("collection deleted",
		zap.String("collection_id", id),
		zap.String("reassigned_to", target.ID()),
		zap.Int("reassigned", moved),
	)
	return moved, nil
}

func ptr(s string) *string { return &s }
