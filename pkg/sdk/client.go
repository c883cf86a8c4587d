package promptlab

import (
	"context"
	"fmt"
	"time"

	domcol "github.com/kailas-cloud/promptlab/internal/domain/collection"
	domprompt "github.com/kailas-cloud/promptlab/internal/domain/prompt"
	"github.com/kailas-cloud/promptlab/internal/domain/prompt/patch"
	collectionrepo "github.com/kailas-cloud/promptlab/internal/repository/collection"
	promptrepo "github.com/kailas-cloud/promptlab/internal/repository/prompt"
	"github.com/kailas-cloud/promptlab/internal/storage"
	collectionuc "github.com/kailas-cloud/promptlab/internal/usecase/collection"
	healthuc "github.com/kailas-cloud/promptlab/internal/usecase/health"
	promptuc "github.com/kailas-cloud/promptlab/internal/usecase/prompt"
)

// Internal interfaces, swapped for mocks in tests.
type promptUseCase interface {
	Create(ctx context.Context, in promptuc.Input) (domprompt.Prompt, error)
	Get(ctx context.Context, id string) (domprompt.Prompt, error)
	List(ctx context.Context, f promptuc.Filter) ([]domprompt.Prompt, error)
	Update(ctx context.Context, id string, in promptuc.Input) (domprompt.Prompt, error)
	Patch(ctx context.Context, id string, p patch.Patch) (domprompt.Prompt, error)
	Delete(ctx context.Context, id string) error
}

type collectionUseCase interface {
	Create(ctx context.Context, name, description string) (domcol.Collection, error)
	Get(ctx context.Context, id string) (domcol.Collection, error)
	List(ctx context.Context) ([]domcol.Collection, error)
	Delete(ctx context.Context, id string) (int, error)
	Prompts(ctx context.Context, id string) ([]domprompt.Prompt, error)
	Uncategorized(ctx context.Context) (domcol.Collection, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// storeResetter is the slice of storage the Client manages directly.
type storeResetter interface {
	Clear()
	UncategorizedCollection() domcol.Collection
}

// Client is the promptlab SDK entry point. It is safe for concurrent use.
type Client struct {
	store     storeResetter
	promptSvc promptUseCase
	collSvc   collectionUseCase
	healthSvc healthUseCase
	seed      bool
	obs       *observer
}

// New creates a Client backed by a fresh in-memory store.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, fmt.Errorf("promptlab: %w", err)
	}

	store := storage.New(storage.WithClock(cfg.now), storage.WithIDGenerator(cfg.newID))
	c := wireClient(store, cfg, obs)
	if c.seed {
		store.UncategorizedCollection()
	}
	return c, nil
}

func wireClient(store *storage.Storage, cfg *clientConfig, obs *observer) *Client {
	promptRepo := promptrepo.New(store)
	collRepo := collectionrepo.New(store)

	return &Client{
		store: store,
		promptSvc: promptuc.New(promptRepo, collRepo).
			WithClock(cfg.now).
			WithIDGenerator(cfg.newID),
		collSvc: collectionuc.New(collRepo, promptRepo).
			WithClock(cfg.now).
			WithIDGenerator(cfg.newID),
		healthSvc: healthuc.New(store, store),
		seed:      cfg.seedUncategorized,
		obs:       obs,
	}
}

// Prompts returns the prompt service.
func (c *Client) Prompts() *PromptService {
	return &PromptService{svc: c.promptSvc, obs: c.obs}
}

// Collections returns the collection service.
func (c *Client) Collections() *CollectionService {
	return &CollectionService{svc: c.collSvc, obs: c.obs}
}

// Reset discards every prompt and collection.
// With WithUncategorizedSeed the default collection is recreated.
func (c *Client) Reset() {
	start := time.Now()
	c.store.Clear()
	if c.seed {
		c.store.UncategorizedCollection()
	}
	c.obs.observe("reset", start, nil)
}
