package comments

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/user/newswire-go/apperror"
	"github.com/user/newswire-go/auth"
	"github.com/user/newswire-go/models"
)

// AddCommentRequest is the comment creation payload.
type AddCommentRequest struct {
	Content string `json:"content" example:"Great reporting."`
}

// CommentResponse wraps a single comment.
type CommentResponse struct {
	Comment *models.Comment `json:"comment"`
}

// CommentsResponse wraps an article's comment list.
type CommentsResponse struct {
	Comments []models.Comment `json:"comments"`
}

// CountResponse carries a single counter value.
type CountResponse struct {
	Count int64 `json:"count"`
}

// Handlers exposes the comments service over HTTP.
type Handlers struct {
	service *Service
	log     *zap.Logger
}

// NewHandlers creates comment handlers.
func NewHandlers(service *Service, log *zap.Logger) *Handlers {
	return &Handlers{service: service, log: log}
}

func newsIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, apperror.NewValidationError("invalid news id", err)
	}
	return id, nil
}

// HandleAdd godoc
// @Summary Comment on an article
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "news id"
// @Param body body comments.AddCommentRequest true "comment content"
// @Success 201 {object} comments.CommentResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /news/{id}/comment [post]
func (h *Handlers) HandleAdd() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
			return
		}

		newsID, err := newsIDParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		var req AddCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		comment, err := h.service.Add(r.Context(), newsID, claims.UserID, req.Content)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusCreated, CommentResponse{Comment: comment})
	}
}

// HandleList godoc
// @Summary List an article's comments
// @Tags comments
// @Produce json
// @Param id path int true "news id"
// @Success 200 {object} comments.CommentsResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /news/{id}/comments [get]
func (h *Handlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		newsID, err := newsIDParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		list, err := h.service.ListByNews(r.Context(), newsID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, CommentsResponse{Comments: list})
	}
}

// HandleCount godoc
// @Summary Count all comments
// @Tags comments
// @Produce json
// @Success 200 {object} comments.CountResponse
// @Router /comments/count [get]
func (h *Handlers) HandleCount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := h.service.Count(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, CountResponse{Count: count})
	}
}
