package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/user/newswire-go/models"
)

// CommentStore keeps comments in memory. Author names are resolved against
// the user store, mirroring the SQL join in store/postgres.
type CommentStore struct {
	mu       sync.Mutex
	comments map[int64]*models.Comment
	nextID   int64
	users    *UserStore
}

// NewCommentStore creates an empty in-memory comment store.
func NewCommentStore(users *UserStore) *CommentStore {
	return &CommentStore{comments: make(map[int64]*models.Comment), nextID: 1, users: users}
}

func (s *CommentStore) Create(_ context.Context, c *models.Comment) error {
	s.mu.Lock()
	c.ID = s.nextID
	s.nextID++
	c.CreatedAt = time.Now()
	stored := *c
	s.comments[c.ID] = &stored
	s.mu.Unlock()

	c.AuthorName = s.users.nameOf(c.AuthorID)
	return nil
}

func (s *CommentStore) ListByNews(_ context.Context, newsID int64) ([]models.Comment, error) {
	s.mu.Lock()
	items := make([]models.Comment, 0)
	for _, c := range s.comments {
		if c.NewsID == newsID {
			items = append(items, *c)
		}
	}
	s.mu.Unlock()

	// Newest first; fall back to ID for entries created within the same tick.
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
	for i := range items {
		items[i].AuthorName = s.users.nameOf(items[i].AuthorID)
	}
	return items, nil
}

func (s *CommentStore) CountByNews(_ context.Context, newsID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, c := range s.comments {
		if c.NewsID == newsID {
			count++
		}
	}
	return count, nil
}

func (s *CommentStore) DeleteByNews(_ context.Context, newsID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for id, c := range s.comments {
		if c.NewsID == newsID {
			delete(s.comments, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *CommentStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.comments)), nil
}
