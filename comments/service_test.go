package comments

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

type recordingEmitter struct {
	events []string
}

func (e *recordingEmitter) Emit(eventType string, _ map[string]interface{}) bool {
	e.events = append(e.events, eventType)
	return true
}

func newFixture(t *testing.T) (*Service, *memory.NewsStore, *recordingEmitter, *models.User, *models.News) {
	t.Helper()
	users := memory.NewUserStore()
	commentStore := memory.NewCommentStore(users)
	newsStore := memory.NewNewsStore(users, commentStore)
	emitter := &recordingEmitter{}
	svc := NewService(commentStore, newsStore, emitter, zap.NewNop())

	author := &models.User{Name: "Author", Email: "author@example.com", HashedPassword: "x", Role: models.RoleUser}
	require.NoError(t, users.Create(context.Background(), author))

	article := &models.News{
		Title:    "Headline",
		Content:  "Body",
		Category: models.CategoryPolitics,
		AuthorID: author.ID,
		Status:   models.StatusPublished,
	}
	require.NoError(t, newsStore.Create(context.Background(), article))

	return svc, newsStore, emitter, author, article
}

func TestAddComment(t *testing.T) {
	svc, newsStore, emitter, author, article := newFixture(t)
	ctx := context.Background()

	comment, err := svc.Add(ctx, article.ID, author.ID, "  Great reporting.  ")
	require.NoError(t, err)
	assert.Equal(t, "Great reporting.", comment.Content)
	assert.Equal(t, "Author", comment.AuthorName)
	assert.NotZero(t, comment.ID)

	// One comment bumps popularity by 2.
	got, err := newsStore.GetByID(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.Popularity)

	assert.Equal(t, []string{"new_comment"}, emitter.events)
}

func TestAddCommentValidation(t *testing.T) {
	svc, _, emitter, author, article := newFixture(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, article.ID, author.ID, "   ")
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.Add(ctx, 999, author.ID, "hello")
	assert.True(t, apperror.IsNotFound(err))

	assert.Empty(t, emitter.events)
}

func TestListByNews(t *testing.T) {
	svc, _, _, author, article := newFixture(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, article.ID, author.ID, "first")
	require.NoError(t, err)
	_, err = svc.Add(ctx, article.ID, author.ID, "second")
	require.NoError(t, err)

	list, err := svc.ListByNews(ctx, article.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Content)

	_, err = svc.ListByNews(ctx, 999)
	assert.True(t, apperror.IsNotFound(err))
}

func TestCount(t *testing.T) {
	svc, _, _, author, article := newFixture(t)
	ctx := context.Background()

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = svc.Add(ctx, article.ID, author.ID, "hello")
	require.NoError(t, err)

	count, err = svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
