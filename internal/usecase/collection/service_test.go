package collection

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/kailas-cloud/promptlab/internal/domain"
	domcol "github.com/kailas-cloud/promptlab/internal/domain/collection"
	domprompt "github.com/kailas-cloud/promptlab/internal/domain/prompt"
	"github.com/kailas-cloud/promptlab/internal/domain/prompt/patch"
	colrepo "github.com/kailas-cloud/promptlab/internal/repository/collection"
	promptrepo "github.com/kailas-cloud/promptlab/internal/repository/prompt"
	"github.com/kailas-cloud/promptlab/internal/storage"
)

// --- Mocks ---

type mockRepo struct {
	created       domcol.Collection
	getResult     domcol.Collection
	listResult    []domcol.Collection
	uncategorized domcol.Collection
	prompts       []domprompt.Prompt
	deleted       string
	createErr     error
	getErr        error
	listErr       error
	deleteErr     error
	uncatErr      error
	promptsErr    error
}

func (m *mockRepo) Create(_ context.Context, col domcol.Collection) error {
	m.created = col
	return m.createErr
}

func (m *mockRepo) Get(_ context.Context, _ string) (domcol.Collection, error) {
	return m.getResult, m.getErr
}

func (m *mockRepo) List(_ context.Context) ([]domcol.Collection, error) {
	return m.listResult, m.listErr
}

func (m *mockRepo) Delete(_ context.Context, id string) error {
	m.deleted = id
	return m.deleteErr
}

func (m *mockRepo) Uncategorized(_ context.Context) (domcol.Collection, error) {
	return m.uncategorized, m.uncatErr
}

func (m *mockRepo) Prompts(_ context.Context, _ string) ([]domprompt.Prompt, error) {
	return m.prompts, m.promptsErr
}

type mockReassigner struct {
	patched map[string]string
	errs    map[string]error
}

func (m *mockReassigner) Patch(_ context.Context, id string, p patch.Patch) (domprompt.Prompt, error) {
	if err := m.errs[id]; err != nil {
		return domprompt.Prompt{}, err
	}
	if m.patched == nil {
		m.patched = make(map[string]string)
	}
	m.patched[id] = *p.CollectionID()
	return domprompt.Prompt{}, nil
}

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestService(repo Repository, prompts PromptReassigner) *Service {
	n := 0
	return New(repo, prompts).
		WithClock(func() time.Time { return epoch }).
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("c%d", n)
		})
}

func makePrompt(id, collectionID string) domprompt.Prompt {
	return domprompt.Reconstruct(id, "t", "c", "", collectionID, epoch, epoch)
}

// --- Tests ---

func TestCreate_Success(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo, &mockReassigner{})

	col, err := svc.Create(context.Background(), "Writing", "drafts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if col.ID() != "c1" {
		t.Errorf("expected id c1, got %q", col.ID())
	}
	if col.Name() != "Writing" || col.Description() != "drafts" {
		t.Errorf("unexpected fields: %q %q", col.Name(), col.Description())
	}
	if !col.CreatedAt().Equal(epoch) {
		t.Errorf("expected created_at %v, got %v", epoch, col.CreatedAt())
	}
	if repo.created.ID() != "c1" {
		t.Error("expected collection to be stored")
	}
}

func TestCreate_InvalidName(t *testing.T) {
	svc := newTestService(&mockRepo{}, &mockReassigner{})

	_, err := svc.Create(context.Background(), "", "")
	if !errors.Is(err, domain.ErrInvalidCollection) {
		t.Fatalf("expected ErrInvalidCollection, got %v", err)
	}
}

func TestCreate_RepoError(t *testing.T) {
	svc := newTestService(&mockRepo{createErr: errors.New("boom")}, &mockReassigner{})

	if _, err := svc.Create(context.Background(), "x", ""); err == nil {
		t.Fatal("expected error")
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := newTestService(&mockRepo{getErr: domain.ErrCollectionNotFound}, &mockReassigner{})

	_, err := svc.Get(context.Background(), "nope")
	if !errors.Is(err, domain.ErrCollectionNotFound) {
		t.Fatalf("expected ErrCollectionNotFound, got %v", err)
	}
}

func TestList(t *testing.T) {
	cols := []domcol.Collection{
		domcol.Reconstruct("a", "A", "", epoch),
		domcol.Reconstruct("b", "B", "", epoch),
	}
	svc := newTestService(&mockRepo{listResult: cols}, &mockReassigner{})

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 collections, got %d", len(got))
	}
}

func TestPrompts_MissingCollection(t *testing.T) {
	repo := &mockRepo{getErr: domain.ErrCollectionNotFound, prompts: []domprompt.Prompt{makePrompt("p1", "gone")}}
	svc := newTestService(repo, &mockReassigner{})

	_, err := svc.Prompts(context.Background(), "gone")
	if !errors.Is(err, domain.ErrCollectionNotFound) {
		t.Fatalf("expected ErrCollectionNotFound, got %v", err)
	}
}

func TestPrompts_Success(t *testing.T) {
	repo := &mockRepo{prompts: []domprompt.Prompt{makePrompt("p1", "c1"), makePrompt("p2", "c1")}}
	svc := newTestService(repo, &mockReassigner{})

	got, err := svc.Prompts(context.Background(), "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 prompts, got %d", len(got))
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc := newTestService(&mockRepo{deleteErr: domain.ErrCollectionNotFound}, &mockReassigner{})

	_, err := svc.Delete(context.Background(), "nope")
	if !errors.Is(err, domain.ErrCollectionNotFound) {
		t.Fatalf("expected ErrCollectionNotFound, got %v", err)
	}
}

func TestDelete_NoPrompts(t *testing.T) {
	repo := &mockRepo{uncatErr: errors.New("must not be called")}
	svc := newTestService(repo, &mockReassigner{})

	n, err := svc.Delete(context.Background(), "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 reassigned, got %d", n)
	}
	if repo.deleted != "c1" {
		t.Errorf("expected c1 deleted, got %q", repo.deleted)
	}
}

func TestDelete_ReassignsPrompts(t *testing.T) {
	repo := &mockRepo{
		prompts:       []domprompt.Prompt{makePrompt("p1", "c1"), makePrompt("p2", "c1")},
		uncategorized: domcol.NewUncategorized("u", epoch),
	}
	re := &mockReassigner{}
	svc := newTestService(repo, re)

	n, err := svc.Delete(context.Background(), "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 reassigned, got %d", n)
	}
	for _, id := range []string{"p1", "p2"} {
		if re.patched[id] != "u" {
			t.Errorf("expected %s moved to u, got %q", id, re.patched[id])
		}
	}
}

func TestDelete_SkipsConcurrentlyDeletedPrompt(t *testing.T) {
	repo := &mockRepo{
		prompts:       []domprompt.Prompt{makePrompt("p1", "c1"), makePrompt("p2", "c1")},
		uncategorized: domcol.NewUncategorized("u", epoch),
	}
	re := &mockReassigner{errs: map[string]error{"p1": domain.ErrPromptNotFound}}
	svc := newTestService(repo, re)

	n, err := svc.Delete(context.Background(), "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 reassigned, got %d", n)
	}
}

func TestDelete_ReassignError(t *testing.T) {
	repo := &mockRepo{
		prompts:       []domprompt.Prompt{makePrompt("p1", "c1")},
		uncategorized: domcol.NewUncategorized("u", epoch),
	}
	re := &mockReassigner{errs: map[string]error{"p1": errors.New("boom")}}
	svc := newTestService(repo, re)

	if _, err := svc.Delete(context.Background(), "c1"); err == nil {
		t.Fatal("expected error")
	}
}

func TestDelete_WithStorage(t *testing.T) {
	ctx := context.Background()
	st := storage.New()
	svc := New(colrepo.New(st), promptrepo.New(st))

	col, err := svc.Create(ctx, "Work", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	p, err := domprompt.New("p1", "hello", "body", "", col.ID(), epoch)
	if err != nil {
		t.Fatalf("prompt.New: %v", err)
	}
	st.CreatePrompt(p)

	n, err := svc.Delete(ctx, col.ID())
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 reassigned, got %d", n)
	}

	uncat, err := svc.Uncategorized(ctx)
	if err != nil {
		t.Fatalf("uncategorized: %v", err)
	}
	got, ok := st.GetPrompt("p1")
	if !ok {
		t.Fatal("expected prompt to survive")
	}
	if got.CollectionID() != uncat.ID() {
		t.Errorf("expected prompt in %q, got %q", uncat.ID(), got.CollectionID())
	}
	if _, err := svc.Get(ctx, col.ID()); !errors.Is(err, domain.ErrCollectionNotFound) {
		t.Errorf("expected deleted collection gone, got %v", err)
	}
}

func TestDelete_UncategorizedItself(t *testing.T) {
	ctx := context.Background()
	st := storage.New()
	svc := New(colrepo.New(st), promptrepo.New(st))

	first, err := svc.Uncategorized(ctx)
	if err != nil {
		t.Fatalf("uncategorized: %v", err)
	}
	p, err := domprompt.New("p1", "hello", "body", "", first.ID(), epoch)
	if err != nil {
		t.Fatalf("prompt.New: %v", err)
	}
	st.CreatePrompt(p)

	if _, err := svc.Delete(ctx, first.ID()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	second, err := svc.Uncategorized(ctx)
	if err != nil {
		t.Fatalf("uncategorized: %v", err)
	}
	if second.ID() == first.ID() {
		t.Fatal("expected a fresh Uncategorized collection")
	}
	got, _ := st.GetPrompt("p1")
	if got.CollectionID() != second.ID() {
		t.Errorf("expected prompt in %q, got %q", second.ID(), got.CollectionID())
	}
}
