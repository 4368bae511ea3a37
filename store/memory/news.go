package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/user/newswire-go/apperror"
	"github.com/user/newswire-go/models"
)

// NewsStore keeps articles in memory. It needs the user store to resolve
// author names and the comment store for popularity recomputation and the
// delete cascade, the roles PostgreSQL fills with joins and foreign keys.
type NewsStore struct {
	mu       sync.Mutex
	items    map[int64]*models.News
	nextID   int64
	users    *UserStore
	comments *CommentStore
}

// NewNewsStore creates an empty in-memory news store.
func NewNewsStore(users *UserStore, comments *CommentStore) *NewsStore {
	return &NewsStore{items: make(map[int64]*models.News), nextID: 1, users: users, comments: comments}
}

func (s *NewsStore) Create(_ context.Context, n *models.News) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = s.nextID
	s.nextID++
	n.Likes = []int64{}
	n.Views = 0
	n.Popularity = 0
	n.CreatedAt = time.Now()

	stored := *n
	stored.Likes = append([]int64(nil), n.Likes...)
	s.items[n.ID] = &stored
	return nil
}

func (s *NewsStore) GetByID(_ context.Context, id int64) (*models.News, error) {
	s.mu.Lock()
	n, ok := s.items[id]
	if !ok {
		s.mu.Unlock()
		return nil, apperror.NewNotFoundError(fmt.Sprintf("news %d not found", id), nil)
	}
	copied := s.copyLocked(n)
	s.mu.Unlock()

	copied.AuthorName = s.users.nameOf(copied.AuthorID)
	return copied, nil
}

func (s *NewsStore) List(_ context.Context, f models.NewsFilter) ([]models.News, error) {
	s.mu.Lock()
	items := make([]models.News, 0)
	for _, n := range s.items {
		if f.Status != nil && n.Status != *f.Status {
			continue
		}
		if f.Category != nil && n.Category != *f.Category {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(n.Title), strings.ToLower(f.Search)) {
			continue
		}
		items = append(items, *s.copyLocked(n))
	}
	s.mu.Unlock()

	sortNews(items, f.Sort)
	if f.Limit > 0 {
		offset := f.Offset()
		if offset >= len(items) {
			items = items[:0]
		} else {
			items = items[offset:]
			if len(items) > f.Limit {
				items = items[:f.Limit]
			}
		}
	}
	for i := range items {
		items[i].AuthorName = s.users.nameOf(items[i].AuthorID)
	}
	return items, nil
}

func (s *NewsStore) ListByAuthor(_ context.Context, authorID int64) ([]models.News, error) {
	s.mu.Lock()
	items := make([]models.News, 0)
	for _, n := range s.items {
		if n.AuthorID == authorID {
			items = append(items, *s.copyLocked(n))
		}
	}
	s.mu.Unlock()

	sortNews(items, models.SortNewest)
	for i := range items {
		items[i].AuthorName = s.users.nameOf(items[i].AuthorID)
	}
	return items, nil
}

func (s *NewsStore) Update(_ context.Context, n *models.News) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.items[n.ID]
	if !ok {
		return apperror.NewNotFoundError(fmt.Sprintf("news %d not found", n.ID), nil)
	}
	existing.Title = n.Title
	existing.Content = n.Content
	existing.Category = n.Category
	existing.Status = n.Status
	existing.MediaURL = n.MediaURL
	existing.Likes = append([]int64(nil), n.Likes...)
	existing.UpdatedAt = n.UpdatedAt
	return nil
}

func (s *NewsStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	if _, ok := s.items[id]; !ok {
		s.mu.Unlock()
		return apperror.NewNotFoundError(fmt.Sprintf("news %d not found", id), nil)
	}
	delete(s.items, id)
	s.mu.Unlock()

	_, err := s.comments.DeleteByNews(ctx, id)
	return err
}

func (s *NewsStore) SetStatus(ctx context.Context, id int64, status models.Status) (*models.News, error) {
	s.mu.Lock()
	n, ok := s.items[id]
	if !ok {
		s.mu.Unlock()
		return nil, apperror.NewNotFoundError(fmt.Sprintf("news %d not found", id), nil)
	}
	n.Status = status
	s.mu.Unlock()

	return s.GetByID(ctx, id)
}

func (s *NewsStore) ClearLikes(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.items[id]
	if !ok {
		return apperror.NewNotFoundError(fmt.Sprintf("news %d not found", id), nil)
	}
	n.Likes = []int64{}
	return nil
}

func (s *NewsStore) ToggleLike(_ context.Context, id, userID int64) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.items[id]
	if !ok {
		return 0, false, apperror.NewNotFoundError(fmt.Sprintf("news %d not found", id), nil)
	}

	for i, uid := range n.Likes {
		if uid == userID {
			n.Likes = append(n.Likes[:i], n.Likes[i+1:]...)
			return int64(len(n.Likes)), false, nil
		}
	}
	n.Likes = append(n.Likes, userID)
	return int64(len(n.Likes)), true, nil
}

func (s *NewsStore) IncrementViews(ctx context.Context, id int64) (*models.News, error) {
	s.mu.Lock()
	n, ok := s.items[id]
	if !ok {
		s.mu.Unlock()
		return nil, apperror.NewNotFoundError(fmt.Sprintf("news %d not found", id), nil)
	}
	n.Views++
	s.mu.Unlock()

	return s.GetByID(ctx, id)
}

func (s *NewsStore) RecomputePopularity(ctx context.Context, id int64) (float64, error) {
	commentCount, err := s.comments.CountByNews(ctx, id)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.items[id]
	if !ok {
		return 0, apperror.NewNotFoundError(fmt.Sprintf("news %d not found", id), nil)
	}
	n.Popularity = models.PopularityScore(n.Views, int64(len(n.Likes)), commentCount)
	return n.Popularity, nil
}

func (s *NewsStore) CountByStatus(_ context.Context, status models.Status) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, n := range s.items {
		if n.Status == status {
			count++
		}
	}
	return count, nil
}

func (s *NewsStore) copyLocked(n *models.News) *models.News {
	copied := *n
	copied.Likes = append([]int64(nil), n.Likes...)
	return &copied
}

func sortNews(items []models.News, by models.Sort) {
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch by {
		case models.SortOldest:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.ID < b.ID
		case models.SortTitleAsc:
			return a.Title < b.Title
		case models.SortTitleDesc:
			return a.Title > b.Title
		case models.SortPopular:
			if a.Popularity != b.Popularity {
				return a.Popularity > b.Popularity
			}
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ID > b.ID
		default:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ID > b.ID
		}
	})
}
