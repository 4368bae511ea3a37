// Package comments implements reader comments on news articles. Every new
// comment feeds back into the article's popularity score and emits a
// best-effort notification event.
package comments

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/user/newswire-go/apperror"
	"github.com/user/newswire-go/models"
	"github.com/user/newswire-go/notifier"
	"github.com/user/newswire-go/store"
)

// Service implements comment operations.
type Service struct {
	comments store.Comments
	news     store.News
	events   notifier.Emitter
	log      *zap.Logger
}

// NewService creates a comments service.
func NewService(comments store.Comments, news store.News, events notifier.Emitter, log *zap.Logger) *Service {
	return &Service{comments: comments, news: news, events: events, log: log}
}

// Add creates a comment on an article and recomputes the article's
// popularity. The article must exist; blank content is rejected.
func (s *Service) Add(ctx context.Context, newsID, authorID int64, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.NewValidationError("comment content is required", nil)
	}

	article, err := s.news.GetByID(ctx, newsID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content:  content,
		NewsID:   newsID,
		AuthorID: authorID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	if _, err := s.news.RecomputePopularity(ctx, newsID); err != nil {
		s.log.Warn("popularity recompute failed after comment",
			zap.Int64("news_id", newsID), zap.Error(err))
	}

	s.events.Emit("new_comment", map[string]interface{}{
		"newsId":    newsID,
		"newsTitle": article.Title,
		"commentId": comment.ID,
		"authorId":  authorID,
	})

	return comment, nil
}

// ListByNews returns an article's comments, newest first. The article must
// exist so a missing id is a 404 rather than an empty list.
func (s *Service) ListByNews(ctx context.Context, newsID int64) ([]models.Comment, error) {
	if _, err := s.news.GetByID(ctx, newsID); err != nil {
		return nil, err
	}
	return s.comments.ListByNews(ctx, newsID)
}

// Count returns the total number of comments across all articles.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.comments.Count(ctx)
}
