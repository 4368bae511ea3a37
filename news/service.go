package news

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/user/newswire-go/apperror"
	"github.com/user/newswire-go/models"
	"github.com/user/newswire-go/notifier"
	"github.com/user/newswire-go/store"
)

// Service implements article operations on top of the store.
type Service struct {
	news     store.News
	comments store.Comments
	events   notifier.Emitter
	validate *validator.Validate
	log      *zap.Logger
}

// NewService creates a news service.
func NewService(news store.News, comments store.Comments, events notifier.Emitter, log *zap.Logger) *Service {
	return &Service{
		news:     news,
		comments: comments,
		events:   events,
		validate: validator.New(),
		log:      log,
	}
}

// Create submits a new article. Admin authors publish immediately; everyone
// else enters moderation as pending.
func (s *Service) Create(ctx context.Context, authorID int64, authorRole models.Role, req CreateNewsRequest, mediaURL *string) (*models.News, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperror.NewValidationError("title, content, and category are required", err)
	}
	if !req.Category.Valid() {
		return nil, apperror.NewValidationError("unknown category", nil)
	}

	article := &models.News{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		AuthorID: authorID,
		Status:   models.InitialStatus(authorRole),
		MediaURL: mediaURL,
	}
	if err := s.news.Create(ctx, article); err != nil {
		return nil, err
	}

	s.events.Emit("news_created", map[string]interface{}{
		"newsId":   article.ID,
		"title":    article.Title,
		"category": string(article.Category),
		"status":   string(article.Status),
		"authorId": authorID,
	})

	s.log.Info("article created",
		zap.Int64("news_id", article.ID),
		zap.String("status", string(article.Status)))
	return s.news.GetByID(ctx, article.ID)
}

// Get returns an article with its comments. isLiked reflects the viewer when
// viewerID is non-nil.
func (s *Service) Get(ctx context.Context, id int64, viewerID *int64) (*models.News, bool, []models.Comment, error) {
	article, err := s.news.GetByID(ctx, id)
	if err != nil {
		return nil, false, nil, err
	}

	list, err := s.comments.ListByNews(ctx, id)
	if err != nil {
		return nil, false, nil, err
	}

	isLiked := viewerID != nil && article.LikedBy(*viewerID)
	return article, isLiked, list, nil
}

// List returns articles matching the filter. Public listings default to
// published articles only.
func (s *Service) List(ctx context.Context, f models.NewsFilter) ([]models.News, error) {
	if f.Status == nil {
		published := models.StatusPublished
		f.Status = &published
	} else if !f.Status.Valid() {
		return nil, apperror.NewValidationError("unknown status", nil)
	}
	if f.Category != nil && !f.Category.Valid() {
		return nil, apperror.NewValidationError("unknown category", nil)
	}
	if f.Sort != "" && !f.Sort.Valid() {
		return nil, apperror.NewValidationError("unknown sort option", nil)
	}
	return s.news.List(ctx, f)
}

// ListByStatus returns one page of the admin review queue for a moderation
// state. Page and limit default to 1 and 10.
func (s *Service) ListByStatus(ctx context.Context, callerRole models.Role, status models.Status, page, limit int) ([]models.News, error) {
	if !callerRole.CanModerate() {
		return nil, apperror.NewUnauthorizedError("admin access required", nil)
	}
	if !status.Valid() {
		return nil, apperror.NewValidationError("unknown status", nil)
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return s.news.List(ctx, models.NewsFilter{Status: &status, Sort: models.SortNewest, Page: page, Limit: limit})
}

// ListByAuthor returns every article by one author regardless of status, so
// authors can see their own drafts and pending submissions.
func (s *Service) ListByAuthor(ctx context.Context, authorID int64) ([]models.News, error) {
	return s.news.ListByAuthor(ctx, authorID)
}

// Update edits an article. Only the author or an admin may edit. Editing an
// article that is published or rejected sends it back to pending and wipes
// its likes and comments, the same cascade moderation applies.
func (s *Service) Update(ctx context.Context, id int64, callerID int64, callerRole models.Role, req UpdateNewsRequest, mediaURL *string) (*models.News, error) {
	article, err := s.news.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article.AuthorID != callerID && !callerRole.CanModerate() {
		return nil, apperror.NewUnauthorizedError("you can only edit your own articles", nil)
	}

	if req.Title != "" {
		article.Title = req.Title
	}
	if req.Content != "" {
		article.Content = req.Content
	}
	if req.Category != "" {
		if !req.Category.Valid() {
			return nil, apperror.NewValidationError("unknown category", nil)
		}
		article.Category = req.Category
	}
	if mediaURL != nil {
		article.MediaURL = mediaURL
	}

	backToReview := article.Status == models.StatusPublished || article.Status == models.StatusRejected
	if backToReview {
		article.Status = models.StatusPending
	}

	now := time.Now()
	article.UpdatedAt = &now

	if err := s.news.Update(ctx, article); err != nil {
		return nil, err
	}

	if backToReview {
		if err := s.applyEffects(ctx, id, models.EffectsFor(models.StatusPending)); err != nil {
			return nil, err
		}
	}
	if _, err := s.news.RecomputePopularity(ctx, id); err != nil {
		return nil, err
	}
	return s.news.GetByID(ctx, id)
}

// SetStatus moves an article to a new moderation state. Admin only. Entering
// pending or rejected clears likes and deletes comments.
func (s *Service) SetStatus(ctx context.Context, id int64, callerRole models.Role, status models.Status) (*models.News, error) {
	if !callerRole.CanModerate() {
		return nil, apperror.NewUnauthorizedError("admin access required", nil)
	}
	if !status.Valid() {
		return nil, apperror.NewValidationError("unknown status", nil)
	}

	article, err := s.news.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if err := s.applyEffects(ctx, id, models.EffectsFor(status)); err != nil {
		return nil, err
	}
	if _, err := s.news.RecomputePopularity(ctx, id); err != nil {
		return nil, err
	}

	s.log.Info("article status changed",
		zap.Int64("news_id", article.ID),
		zap.String("status", string(status)))
	return s.news.GetByID(ctx, id)
}

// Like toggles the caller's like on an article and recomputes popularity.
// Liking twice always removes the like.
func (s *Service) Like(ctx context.Context, id, userID int64) (*LikeResponse, error) {
	count, liked, err := s.news.ToggleLike(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.news.RecomputePopularity(ctx, id); err != nil {
		return nil, err
	}
	return &LikeResponse{Likes: count, IsLiked: liked}, nil
}

// View records one view, recomputes popularity, and emits a view event. Views
// are not deduplicated; every call counts. Returns the updated article.
func (s *Service) View(ctx context.Context, id int64) (*ViewResponse, error) {
	article, err := s.news.IncrementViews(ctx, id)
	if err != nil {
		return nil, err
	}
	popularity, err := s.news.RecomputePopularity(ctx, id)
	if err != nil {
		return nil, err
	}
	article.Popularity = popularity

	notified := s.events.Emit("news_view", map[string]interface{}{
		"newsId": article.ID,
		"title":  article.Title,
		"views":  article.Views,
	})

	return &ViewResponse{News: article, Views: article.Views, Popularity: popularity, Notified: notified}, nil
}

// Delete removes an article and its comments. Only the author or an admin may
// delete.
func (s *Service) Delete(ctx context.Context, id, callerID int64, callerRole models.Role) error {
	article, err := s.news.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if article.AuthorID != callerID && !callerRole.CanModerate() {
		return apperror.NewUnauthorizedError("you can only delete your own articles", nil)
	}
	return s.news.Delete(ctx, id)
}

// PublishedCount returns how many articles are currently published.
func (s *Service) PublishedCount(ctx context.Context) (int64, error) {
	return s.news.CountByStatus(ctx, models.StatusPublished)
}

// applyEffects runs the cascade for a status transition: clearing likes and
// bulk-deleting comments when the target state requires it.
func (s *Service) applyEffects(ctx context.Context, id int64, effects models.TransitionEffects) error {
	if effects.ClearLikes {
		if err := s.news.ClearLikes(ctx, id); err != nil {
			return err
		}
	}
	if effects.DeleteComments {
		if _, err := s.comments.DeleteByNews(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
