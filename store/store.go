// Package store defines the persistence interfaces the services depend on.
// Two implementations exist: store/postgres backed by pgx, and store/memory
// used by tests. Implementations return apperror values so callers can map
// failures to HTTP responses without inspecting driver errors.
package store

import (
	"context"

	"github.com/user/newswire-go/models"
)

// Users persists accounts. Create fails with a ConflictError when the email
// is already registered.
type Users interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, u *models.User) error
	Count(ctx context.Context) (int64, error)
}

// News persists articles. Mutations of shared counters (ToggleLike,
// IncrementViews) must be atomic at the storage layer so concurrent callers
// cannot lose updates; RecomputePopularity derives the score from the current
// counters in a single operation and persists it on the article.
type News interface {
	Create(ctx context.Context, n *models.News) error
	GetByID(ctx context.Context, id int64) (*models.News, error)
	List(ctx context.Context, f models.NewsFilter) ([]models.News, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]models.News, error)
	Update(ctx context.Context, n *models.News) error
	Delete(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, status models.Status) (*models.News, error)
	ClearLikes(ctx context.Context, id int64) error
	ToggleLike(ctx context.Context, id, userID int64) (count int64, liked bool, err error)
	IncrementViews(ctx context.Context, id int64) (*models.News, error)
	RecomputePopularity(ctx context.Context, id int64) (float64, error)
	CountByStatus(ctx context.Context, status models.Status) (int64, error)
}

// Comments persists reader comments. ListByNews returns newest-first with the
// author's display name resolved.
type Comments interface {
	Create(ctx context.Context, c *models.Comment) error
	ListByNews(ctx context.Context, newsID int64) ([]models.Comment, error)
	CountByNews(ctx context.Context, newsID int64) (int64, error)
	DeleteByNews(ctx context.Context, newsID int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}
