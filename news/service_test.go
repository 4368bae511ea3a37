package news

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/user/newswire-go/apperror"
	"github.com/user/newswire-go/models"
	"github.com/user/newswire-go/store/memory"
)

// recordingEmitter captures emitted events for assertions.
type recordingEmitter struct {
	events []string
}

func (e *recordingEmitter) Emit(eventType string, _ map[string]interface{}) bool {
	e.events = append(e.events, eventType)
	return true
}

type fixture struct {
	users    *memory.UserStore
	comments *memory.CommentStore
	news     *memory.NewsStore
	emitter  *recordingEmitter
	svc      *Service
	author   *models.User
	admin    *models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	users := memory.NewUserStore()
	commentStore := memory.NewCommentStore(users)
	newsStore := memory.NewNewsStore(users, commentStore)
	emitter := &recordingEmitter{}
	svc := NewService(newsStore, commentStore, emitter, zap.NewNop())

	author := &models.User{Name: "Author", Email: "author@example.com", HashedPassword: "x", Role: models.RoleUser}
	require.NoError(t, users.Create(context.Background(), author))
	admin := &models.User{Name: "Admin", Email: "admin@example.com", HashedPassword: "x", Role: models.RoleAdmin}
	require.NoError(t, users.Create(context.Background(), admin))

	return &fixture{users: users, comments: commentStore, news: newsStore, emitter: emitter, svc: svc, author: author, admin: admin}
}

func (f *fixture) create(t *testing.T, authorID int64, role models.Role) *models.News {
	t.Helper()
	article, err := f.svc.Create(context.Background(), authorID, role, CreateNewsRequest{
		Title:    "Headline",
		Content:  "Body",
		Category: models.CategoryPolitics,
	}, nil)
	require.NoError(t, err)
	return article
}

func TestCreateStatusByRole(t *testing.T) {
	f := newFixture(t)

	byUser := f.create(t, f.author.ID, models.RoleUser)
	assert.Equal(t, models.StatusPending, byUser.Status)
	assert.Equal(t, "Author", byUser.AuthorName)

	byAdmin := f.create(t, f.admin.ID, models.RoleAdmin)
	assert.Equal(t, models.StatusPublished, byAdmin.Status)

	assert.Equal(t, []string{"news_created", "news_created"}, f.emitter.events)
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.author.ID, models.RoleUser, CreateNewsRequest{Content: "Body", Category: models.CategorySports}, nil)
	assert.True(t, apperror.IsValidation(err))

	_, err = f.svc.Create(ctx, f.author.ID, models.RoleUser, CreateNewsRequest{Title: "T", Content: "B", Category: "finance"}, nil)
	assert.True(t, apperror.IsValidation(err))
}

func TestListDefaultsToPublished(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.create(t, f.author.ID, models.RoleUser)
	published := f.create(t, f.admin.ID, models.RoleAdmin)

	list, err := f.svc.List(ctx, models.NewsFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, published.ID, list[0].ID)
}

func TestListRejectsUnknownSort(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.List(context.Background(), models.NewsFilter{Sort: "random"})
	assert.True(t, apperror.IsValidation(err))
}

func TestListByStatusRequiresAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.create(t, f.author.ID, models.RoleUser)

	_, err := f.svc.ListByStatus(ctx, models.RoleUser, models.StatusPending, 0, 0)
	assert.True(t, apperror.IsUnauthorized(err))

	list, err := f.svc.ListByStatus(ctx, models.RoleAdmin, models.StatusPending, 0, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListByStatusPaginates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		f.create(t, f.author.ID, models.RoleUser)
	}

	// Defaults: page 1, 10 per page.
	list, err := f.svc.ListByStatus(ctx, models.RoleAdmin, models.StatusPending, 0, 0)
	require.NoError(t, err)
	assert.Len(t, list, 10)

	list, err = f.svc.ListByStatus(ctx, models.RoleAdmin, models.StatusPending, 2, 10)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = f.svc.ListByStatus(ctx, models.RoleAdmin, models.StatusPending, 3, 10)
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = f.svc.ListByStatus(ctx, models.RoleAdmin, models.StatusPending, 1, 5)
	require.NoError(t, err)
	assert.Len(t, list, 5)
}

func TestUpdateStampsUpdatedAt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	article := f.create(t, f.author.ID, models.RoleUser)
	require.Nil(t, article.UpdatedAt)

	updated, err := f.svc.Update(ctx, article.ID, f.author.ID, models.RoleUser, UpdateNewsRequest{Title: "Edited"}, nil)
	require.NoError(t, err)
	require.NotNil(t, updated.UpdatedAt)
	assert.False(t, updated.UpdatedAt.Before(article.CreatedAt))
}

func TestGetReturnsCommentsAndIsLiked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	article := f.create(t, f.admin.ID, models.RoleAdmin)
	_, err := f.svc.Like(ctx, article.ID, f.author.ID)
	require.NoError(t, err)
	require.NoError(t, f.comments.Create(ctx, &models.Comment{Content: "hi", NewsID: article.ID, AuthorID: f.author.ID}))

	got, isLiked, list, err := f.svc.Get(ctx, article.ID, &f.author.ID)
	require.NoError(t, err)
	assert.True(t, isLiked)
	assert.Len(t, list, 1)
	assert.Equal(t, article.ID, got.ID)

	_, isLiked, _, err = f.svc.Get(ctx, article.ID, nil)
	require.NoError(t, err)
	assert.False(t, isLiked)
}

func TestUpdateOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	article := f.create(t, f.author.ID, models.RoleUser)

	stranger := &models.User{Name: "Other", Email: "other@example.com", HashedPassword: "x", Role: models.RoleUser}
	require.NoError(t, f.users.Create(ctx, stranger))

	_, err := f.svc.Update(ctx, article.ID, stranger.ID, models.RoleUser, UpdateNewsRequest{Title: "Hijacked"}, nil)
	assert.True(t, apperror.IsUnauthorized(err))

	// Admins can edit anyone's article.
	updated, err := f.svc.Update(ctx, article.ID, f.admin.ID, models.RoleAdmin, UpdateNewsRequest{Title: "Moderated"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Moderated", updated.Title)
}

func TestUpdatePublishedGoesBackToPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	article := f.create(t, f.admin.ID, models.RoleAdmin)
	require.Equal(t, models.StatusPublished, article.Status)

	_, err := f.svc.Like(ctx, article.ID, f.author.ID)
	require.NoError(t, err)
	require.NoError(t, f.comments.Create(ctx, &models.Comment{Content: "hi", NewsID: article.ID, AuthorID: f.author.ID}))

	updated, err := f.svc.Update(ctx, article.ID, f.admin.ID, models.RoleAdmin, UpdateNewsRequest{Content: "Corrected"}, nil)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, updated.Status)
	assert.Empty(t, updated.Likes)
	assert.Zero(t, updated.Popularity)

	count, err := f.comments.CountByNews(ctx, article.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUpdatePendingKeepsStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	article := f.create(t, f.author.ID, models.RoleUser)
	require.Equal(t, models.StatusPending, article.Status)

	updated, err := f.svc.Update(ctx, article.ID, f.author.ID, models.RoleUser, UpdateNewsRequest{Title: "Edited"}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)
	assert.Equal(t, "Edited", updated.Title)
}

func TestSetStatusRequiresAdmin(t *testing.T) {
	f := newFixture(t)
	article := f.create(t, f.author.ID, models.RoleUser)

	_, err := f.svc.SetStatus(context.Background(), article.ID, models.RoleUser, models.StatusPublished)
	assert.True(t, apperror.IsUnauthorized(err))
}

func TestSetStatusRejectedClearsEngagement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	article := f.create(t, f.admin.ID, models.RoleAdmin)
	_, err := f.svc.Like(ctx, article.ID, f.author.ID)
	require.NoError(t, err)
	require.NoError(t, f.comments.Create(ctx, &models.Comment{Content: "hi", NewsID: article.ID, AuthorID: f.author.ID}))

	rejected, err := f.svc.SetStatus(ctx, article.ID, models.RoleAdmin, models.StatusRejected)
	require.NoError(t, err)

	assert.Equal(t, models.StatusRejected, rejected.Status)
	assert.Empty(t, rejected.Likes)
	assert.Zero(t, rejected.Popularity)

	count, err := f.comments.CountByNews(ctx, article.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSetStatusPublishKeepsEngagement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	article := f.create(t, f.author.ID, models.RoleUser)
	_, err := f.svc.Like(ctx, article.ID, f.admin.ID)
	require.NoError(t, err)

	published, err := f.svc.SetStatus(ctx, article.ID, models.RoleAdmin, models.StatusPublished)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, published.Status)
	assert.Len(t, published.Likes, 1)
	assert.Equal(t, 1.5, published.Popularity)
}

func TestLikeToggle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	article := f.create(t, f.admin.ID, models.RoleAdmin)

	resp, err := f.svc.Like(ctx, article.ID, f.author.ID)
	require.NoError(t, err)
	assert.True(t, resp.IsLiked)
	assert.Equal(t, int64(1), resp.Likes)

	resp, err = f.svc.Like(ctx, article.ID, f.author.ID)
	require.NoError(t, err)
	assert.False(t, resp.IsLiked)
	assert.Equal(t, int64(0), resp.Likes)

	got, err := f.news.GetByID(ctx, article.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Popularity)
}

func TestViewCountsEveryCall(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	article := f.create(t, f.admin.ID, models.RoleAdmin)

	resp, err := f.svc.View(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Views)
	assert.Equal(t, 0.5, resp.Popularity)
	assert.True(t, resp.Notified)
	require.NotNil(t, resp.News)
	assert.Equal(t, article.ID, resp.News.ID)
	assert.Equal(t, 0.5, resp.News.Popularity)

	resp, err = f.svc.View(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Views)
	assert.Equal(t, 1.0, resp.Popularity)

	assert.Contains(t, f.emitter.events, "news_view")
}

func TestDeleteOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	article := f.create(t, f.author.ID, models.RoleUser)

	stranger := &models.User{Name: "Other", Email: "other@example.com", HashedPassword: "x", Role: models.RoleUser}
	require.NoError(t, f.users.Create(ctx, stranger))

	err := f.svc.Delete(ctx, article.ID, stranger.ID, models.RoleUser)
	assert.True(t, apperror.IsUnauthorized(err))

	require.NoError(t, f.svc.Delete(ctx, article.ID, f.author.ID, models.RoleUser))

	_, err = f.news.GetByID(ctx, article.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestPublishedCount(t *testing.T) {
	f := newFixture(t)

	f.create(t, f.author.ID, models.RoleUser)
	f.create(t, f.admin.ID, models.RoleAdmin)
	f.create(t, f.admin.ID, models.RoleAdmin)

	count, err := f.svc.PublishedCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

// TestEngagementLifecycle walks an article through views, likes, and a
// comment, checking the derived popularity at each step.
func TestEngagementLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	article := f.create(t, f.admin.ID, models.RoleAdmin)

	// Two views: 2 * 0.5 = 1.0
	_, err := f.svc.View(ctx, article.ID)
	require.NoError(t, err)
	resp, err := f.svc.View(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, 1.0, resp.Popularity)

	// One like: + 1.5 = 2.5
	_, err = f.svc.Like(ctx, article.ID, f.author.ID)
	require.NoError(t, err)

	// One comment: + 2 = 4.5
	require.NoError(t, f.comments.Create(ctx, &models.Comment{Content: "hi", NewsID: article.ID, AuthorID: f.author.ID}))
	pop, err := f.news.RecomputePopularity(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, pop)

	// Unlike: - 1.5 = 3.0
	_, err = f.svc.Like(ctx, article.ID, f.author.ID)
	require.NoError(t, err)

	got, err := f.news.GetByID(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.Popularity)
}
