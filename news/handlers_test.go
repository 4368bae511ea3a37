package news

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/user/newswire-go/auth"
	"github.com/user/newswire-go/config"
	"github.com/user/newswire-go/models"
	"github.com/user/newswire-go/store/memory"
)

type discardEmitter struct{}

func (discardEmitter) Emit(string, map[string]interface{}) bool { return false }

// nullMediaStore avoids touching the filesystem in handler tests.
type nullMediaStore struct{}

func (nullMediaStore) Save(multipart.File, *multipart.FileHeader) (string, error) {
	return "/uploads/test.png", nil
}

func newTestRouter(t *testing.T) (*chi.Mux, *auth.Service) {
	t.Helper()
	users := memory.NewUserStore()
	commentStore := memory.NewCommentStore(users)
	newsStore := memory.NewNewsStore(users, commentStore)

	svc := NewService(newsStore, commentStore, discardEmitter{}, zap.NewNop())
	handlers := NewHandlers(svc, nullMediaStore{}, zap.NewNop())

	authCfg := config.AuthConfig{JWTSecret: "test-secret", RegisterTokenTTL: time.Hour, LoginTokenTTL: time.Hour}
	authSvc := auth.NewService(users, authCfg, zap.NewNop())

	router := chi.NewRouter()
	router.Route("/news", func(r chi.Router) {
		r.Get("/", handlers.HandleList())
		r.With(auth.OptionalJWT(&authCfg)).Get("/{id}", handlers.HandleGet())
		r.Post("/{id}/view", handlers.HandleView())
		r.Group(func(r chi.Router) {
			r.Use(auth.JWTMiddleware(&authCfg))
			r.Post("/", handlers.HandleCreate())
			r.Post("/{id}/like", handlers.HandleLike())
		})
	})
	return router, authSvc
}

func registerAndToken(t *testing.T, authSvc *auth.Service) (string, *models.User) {
	t.Helper()
	resp, err := authSvc.Register(context.Background(), auth.RegisterRequest{
		Name: "Jane", Email: "jane@example.com", Password: "secret1234",
	})
	require.NoError(t, err)
	return resp.Token, resp.User
}

func TestHandleCreateAndGet(t *testing.T) {
	router, authSvc := newTestRouter(t)
	token, _ := registerAndToken(t, authSvc)

	body, err := json.Marshal(CreateNewsRequest{Title: "Headline", Content: "Body", Category: models.CategorySports})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/news", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created NewsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, models.StatusPending, created.News.Status)

	req = httptest.NewRequest(http.MethodGet, "/news/1", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got NewsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Headline", got.News.Title)
	assert.False(t, got.IsLiked)
}

func TestHandleCreateRequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/news", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleGetMalformedID(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/news/not-a-number", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid news id")
}

func TestHandleGetMissingArticle(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/news/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleViewAndLike(t *testing.T) {
	router, authSvc := newTestRouter(t)
	token, _ := registerAndToken(t, authSvc)

	body, err := json.Marshal(CreateNewsRequest{Title: "Headline", Content: "Body", Category: models.CategorySports})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/news", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/news/1/view", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var view ViewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, int64(1), view.Views)
	assert.Equal(t, 0.5, view.Popularity)
	assert.False(t, view.Notified)

	req = httptest.NewRequest(http.MethodPost, "/news/1/like", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var like LikeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &like))
	assert.True(t, like.IsLiked)
	assert.Equal(t, int64(1), like.Likes)
}
