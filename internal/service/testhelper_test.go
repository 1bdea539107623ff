package service

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"newsroom/internal/cache"
	"newsroom/internal/domain"
	"newsroom/internal/validator"
)

// Shared in-memory fakes for the remote stores, with failure injection
// for the consistency-path tests.

type fakePostStore struct {
	mu      sync.Mutex
	nextID  int64
	byID    map[int64]domain.Article
	order   []int64
	created []int64

	failList         error
	failUpdateStatus error

	updateStatusCalls int
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{nextID: 1, byID: make(map[int64]domain.Article)}
}

func (f *fakePostStore) seed(a domain.Article) domain.Article {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a.ID == 0 {
		a.ID = f.nextID
		f.nextID++
	} else if a.ID >= f.nextID {
		f.nextID = a.ID + 1
	}
	f.byID[a.ID] = a
	f.order = append(f.order, a.ID)
	return a
}

func (f *fakePostStore) List(ctx context.Context) ([]domain.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failList != nil {
		return nil, f.failList
	}
	out := make([]domain.Article, 0, len(f.order))
	for _, id := range f.order {
		if a, ok := f.byID[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakePostStore) Get(ctx context.Context, id int64) (*domain.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

func (f *fakePostStore) Create(ctx context.Context, article domain.Article) (*domain.Article, error) {
	now := time.Now().UTC()
	article.CreatedAt = now
	article.UpdatedAt = now
	created := f.seed(article)
	f.mu.Lock()
	f.created = append(f.created, created.ID)
	f.mu.Unlock()
	return &created, nil
}

func (f *fakePostStore) Update(ctx context.Context, id int64, article domain.Article) (*domain.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	article.ID = id
	article.CreatedAt = existing.CreatedAt
	article.UpdatedAt = time.Now().UTC()
	f.byID[id] = article
	return &article, nil
}

func (f *fakePostStore) UpdateStatus(ctx context.Context, id int64, status domain.ArticleStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateStatusCalls++
	if f.failUpdateStatus != nil {
		return f.failUpdateStatus
	}
	a, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Status = status
	a.UpdatedAt = time.Now().UTC()
	f.byID[id] = a
	return nil
}

func (f *fakePostStore) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeReviewStore struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]domain.Review
	order  []int64

	failCreate error

	deletedIDs     []int64
	deletedPostIDs []int64
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{nextID: 1, byID: make(map[int64]domain.Review)}
}

func (f *fakeReviewStore) seed(r domain.Review) domain.Review {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r.ID == 0 {
		r.ID = f.nextID
		f.nextID++
	} else if r.ID >= f.nextID {
		f.nextID = r.ID + 1
	}
	f.byID[r.ID] = r
	f.order = append(f.order, r.ID)
	return r
}

func (f *fakeReviewStore) List(ctx context.Context) ([]domain.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Review, 0, len(f.order))
	for _, id := range f.order {
		if r, ok := f.byID[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewStore) Create(ctx context.Context, review domain.Review) (*domain.Review, error) {
	f.mu.Lock()
	if f.failCreate != nil {
		err := f.failCreate
		f.mu.Unlock()
		return nil, err
	}
	f.mu.Unlock()
	created := f.seed(review)
	return &created, nil
}

func (f *fakeReviewStore) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeReviewStore) DeleteByPost(ctx context.Context, postID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, r := range f.byID {
		if r.PostID == postID {
			delete(f.byID, id)
		}
	}
	f.deletedPostIDs = append(f.deletedPostIDs, postID)
	return nil
}

type fakeCommentStore struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]domain.Comment
	order  []int64

	listCalls int
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{nextID: 1, byID: make(map[int64]domain.Comment)}
}

func (f *fakeCommentStore) seed(c domain.Comment) domain.Comment {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c.ID == 0 {
		c.ID = f.nextID
		f.nextID++
	} else if c.ID >= f.nextID {
		f.nextID = c.ID + 1
	}
	f.byID[c.ID] = c
	f.order = append(f.order, c.ID)
	return c
}

func (f *fakeCommentStore) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	var out []domain.Comment
	for _, id := range f.order {
		if c, ok := f.byID[id]; ok && c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentStore) Create(ctx context.Context, comment domain.Comment) (*domain.Comment, error) {
	created := f.seed(comment)
	return &created, nil
}

func (f *fakeCommentStore) Update(ctx context.Context, id int64, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	now := time.Now().UTC()
	c.Content = content
	c.EditedAt = &now
	f.byID[id] = c
	return nil
}

func (f *fakeCommentStore) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// testEnv wires fakes, caches, protocol and workflow the way main does.
type testEnv struct {
	posts    *fakePostStore
	reviews  *fakeReviewStore
	workflow *ArticleWorkflow
	protocol *ReviewProtocol

	articleCache *cache.Cache[domain.Article]
	reviewCache  *cache.Cache[domain.Review]
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	posts := newFakePostStore()
	reviews := newFakeReviewStore()

	articleCache := cache.New("articles", posts.List)
	reviewCache := cache.New("reviews", reviews.List)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	v := validator.NewValidator()

	protocol := NewReviewProtocol(posts, reviews, articleCache, reviewCache, v, logger)
	workflow := NewArticleWorkflow(posts, reviews, protocol, articleCache, reviewCache, v, logger)

	return &testEnv{
		posts:        posts,
		reviews:      reviews,
		workflow:     workflow,
		protocol:     protocol,
		articleCache: articleCache,
		reviewCache:  reviewCache,
	}
}

func (e *testEnv) refresh(t *testing.T) {
	t.Helper()
	require.NoError(t, e.workflow.Refresh(context.Background()))
}

var (
	alice = domain.Identity{Name: "alice", Role: domain.RoleEditor}
	bob   = domain.Identity{Name: "bob", Role: domain.RoleEditor}
	carol = domain.Identity{Name: "carol", Role: domain.RoleChiefEditor}
	dave  = domain.Identity{Name: "dave", Role: domain.RoleUser}
)
