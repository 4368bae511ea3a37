package news

import (
	"encoding/json"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/user/newswire-go/apperror"
	"github.com/user/newswire-go/auth"
	"github.com/user/newswire-go/models"
)

// Handlers exposes the news service over HTTP.
type Handlers struct {
	service *Service
	media   MediaStore
	log     *zap.Logger
}

// NewHandlers creates news handlers.
func NewHandlers(service *Service, media MediaStore, log *zap.Logger) *Handlers {
	return &Handlers{service: service, media: media, log: log}
}

func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, apperror.NewValidationError("invalid news id", err)
	}
	return id, nil
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// articleForm reads title/content/category plus an optional media upload from
// either a multipart form or a JSON body. mediaURL is nil when no file was
// sent.
func (h *Handlers) articleForm(r *http.Request) (title, content string, category models.Category, mediaURL *string, err error) {
	if !isMultipart(r) {
		var body struct {
			Title    string          `json:"title"`
			Content  string          `json:"content"`
			Category models.Category `json:"category"`
		}
		if decodeErr := json.NewDecoder(r.Body).Decode(&body); decodeErr != nil {
			return "", "", "", nil, apperror.NewBadRequestError("invalid request body", decodeErr)
		}
		return body.Title, body.Content, body.Category, nil, nil
	}

	if parseErr := r.ParseMultipartForm(MaxMediaBytes); parseErr != nil {
		return "", "", "", nil, apperror.NewBadRequestError("invalid multipart form", parseErr)
	}
	title = r.FormValue("title")
	content = r.FormValue("content")
	category = models.Category(r.FormValue("category"))

	file, header, fileErr := r.FormFile("media")
	if fileErr == http.ErrMissingFile {
		return title, content, category, nil, nil
	}
	if fileErr != nil {
		return "", "", "", nil, apperror.NewBadRequestError("invalid media upload", fileErr)
	}
	defer file.Close()

	url, saveErr := h.media.Save(file, header)
	if saveErr != nil {
		return "", "", "", nil, saveErr
	}
	return title, content, category, &url, nil
}

// HandleCreate godoc
// @Summary Submit an article
// @Description Accepts JSON or a multipart form with an optional media file.
// @Tags news
// @Accept json
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param body body news.CreateNewsRequest true "article"
// @Success 201 {object} news.NewsResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Router /news [post]
func (h *Handlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
			return
		}

		title, content, category, mediaURL, err := h.articleForm(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		req := CreateNewsRequest{Title: title, Content: content, Category: category}
		article, err := h.service.Create(r.Context(), claims.UserID, claims.Role, req, mediaURL)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusCreated, NewsResponse{News: article})
	}
}

// HandleList godoc
// @Summary List articles
// @Description Filter by status, category, and title search; order with sort.
// Defaults to published articles.
// @Tags news
// @Produce json
// @Param status query string false "status filter, defaults to published"
// @Param category query string false "category filter"
// @Param search query string false "title substring filter"
// @Param sort query string false "newest, oldest, title-asc, title-desc, popular"
// @Success 200 {object} news.NewsListResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Router /news [get]
func (h *Handlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := models.NewsFilter{
			Search: r.URL.Query().Get("search"),
			Sort:   models.Sort(r.URL.Query().Get("sort")),
		}
		if raw := r.URL.Query().Get("status"); raw != "" {
			status := models.Status(raw)
			f.Status = &status
		}
		if raw := r.URL.Query().Get("category"); raw != "" {
			category := models.Category(raw)
			f.Category = &category
		}

		list, err := h.service.List(r.Context(), f)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, NewsListResponse{News: list})
	}
}

// HandleListByStatus godoc
// @Summary List articles by moderation status
// @Description Paginated admin review queue, 10 articles per page by default.
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param status path string true "draft, pending, published, or rejected"
// @Param page query int false "page number, starting at 1"
// @Param limit query int false "articles per page, default 10"
// @Success 200 {object} news.NewsListResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 403 {object} apperror.ErrorResponse
// @Router /news/status/{status} [get]
func (h *Handlers) HandleListByStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
			return
		}

		status := models.Status(chi.URLParam(r, "status"))
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		list, err := h.service.ListByStatus(r.Context(), claims.Role, status, page, limit)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, NewsListResponse{News: list})
	}
}

// HandleListByAuthor godoc
// @Summary List an author's articles
// @Description Returns every article by the author regardless of status.
// @Tags news
// @Produce json
// @Param id path int true "author id"
// @Success 200 {object} news.NewsListResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Router /news/author/{id} [get]
func (h *Handlers) HandleListByAuthor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, err := idParam(r)
		if err != nil {
			auth.WriteError(w, r, apperror.NewValidationError("invalid author id", nil))
			return
		}

		list, err := h.service.ListByAuthor(r.Context(), authorID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, NewsListResponse{News: list})
	}
}

// HandleGet godoc
// @Summary Get one article
// @Description Returns the article with its comments. isLiked reflects the
// caller when a bearer token is presented.
// @Tags news
// @Produce json
// @Param id path int true "news id"
// @Success 200 {object} news.NewsResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /news/{id} [get]
func (h *Handlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		var viewerID *int64
		if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
			viewerID = &claims.UserID
		}

		article, isLiked, list, err := h.service.Get(r.Context(), id, viewerID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, NewsResponse{News: article, IsLiked: isLiked, Comments: list})
	}
}

// HandleUpdate godoc
// @Summary Edit an article
// @Description Author or admin only. Editing a published or rejected article
// sends it back to pending review and clears its likes and comments.
// @Tags news
// @Accept json
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "news id"
// @Param body body news.UpdateNewsRequest true "changes"
// @Success 200 {object} news.NewsResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 403 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /news/{id} [put]
func (h *Handlers) HandleUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
			return
		}

		id, err := idParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		title, content, category, mediaURL, err := h.articleForm(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		req := UpdateNewsRequest{Title: title, Content: content, Category: category}
		article, err := h.service.Update(r.Context(), id, claims.UserID, claims.Role, req, mediaURL)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, NewsResponse{News: article, IsLiked: article.LikedBy(claims.UserID)})
	}
}

// HandleDelete godoc
// @Summary Delete an article
// @Description Author or admin only. The article's comments go with it.
// @Tags news
// @Security BearerAuth
// @Param id path int true "news id"
// @Success 204 "deleted"
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 403 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /news/{id} [delete]
func (h *Handlers) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
			return
		}

		id, err := idParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		if err := h.service.Delete(r.Context(), id, claims.UserID, claims.Role); err != nil {
			auth.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleSetStatus godoc
// @Summary Moderate an article
// @Description Admin only. Moving into pending or rejected clears likes and
// deletes comments.
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "news id"
// @Param body body news.SetStatusRequest true "target status"
// @Success 200 {object} news.NewsResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 403 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /news/{id}/status [put]
func (h *Handlers) HandleSetStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
			return
		}

		id, err := idParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		var req SetStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		article, err := h.service.SetStatus(r.Context(), id, claims.Role, req.Status)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, NewsResponse{News: article})
	}
}

// HandleLike godoc
// @Summary Toggle a like
// @Description Strict toggle; a second call removes the like.
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param id path int true "news id"
// @Success 200 {object} news.LikeResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /news/{id}/like [post]
func (h *Handlers) HandleLike() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
			return
		}

		id, err := idParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		resp, err := h.service.Like(r.Context(), id, claims.UserID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleView godoc
// @Summary Record a view
// @Description Increments the view counter; every call counts.
// @Tags news
// @Produce json
// @Param id path int true "news id"
// @Success 200 {object} news.ViewResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /news/{id}/view [post]
func (h *Handlers) HandleView() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		resp, err := h.service.View(r.Context(), id)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandlePublishedCount godoc
// @Summary Count published articles
// @Tags news
// @Produce json
// @Success 200 {object} news.CountResponse
// @Router /news/count/published [get]
func (h *Handlers) HandlePublishedCount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := h.service.PublishedCount(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, CountResponse{Count: count})
	}
}
