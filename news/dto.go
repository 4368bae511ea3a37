// Package news implements article submission, listing, the moderation state
// machine, likes, and view counting.
package news

import "github.com/user/newswire-go/models"

// CreateNewsRequest is the article submission payload. Media arrives as a
// separate multipart part, not in this struct.
type CreateNewsRequest struct {
	Title    string          `json:"title" validate:"required" example:"City council approves budget"`
	Content  string          `json:"content" validate:"required"`
	Category models.Category `json:"category" validate:"required" example:"politics"`
}

// UpdateNewsRequest is the article edit payload. Empty fields keep their
// current value.
type UpdateNewsRequest struct {
	Title    string          `json:"title"`
	Content  string          `json:"content"`
	Category models.Category `json:"category"`
}

// SetStatusRequest is the admin moderation payload.
type SetStatusRequest struct {
	Status models.Status `json:"status" example:"published"`
}

// NewsResponse wraps a single article. IsLiked reflects the requesting user
// when the request carried a valid token; Comments is populated on the detail
// endpoint only.
type NewsResponse struct {
	News     *models.News     `json:"news"`
	IsLiked  bool             `json:"isLiked"`
	Comments []models.Comment `json:"comments,omitempty"`
}

// NewsListResponse wraps an article listing.
type NewsListResponse struct {
	News []models.News `json:"news"`
}

// LikeResponse is returned by the like toggle.
type LikeResponse struct {
	Likes   int64 `json:"likesCount"`
	IsLiked bool  `json:"isLiked"`
}

// ViewResponse is returned by the view endpoint: the updated article plus the
// new counter values. Notified reports whether the view event was handed to
// the notification channel.
type ViewResponse struct {
	News       *models.News `json:"news"`
	Views      int64        `json:"views"`
	Popularity float64      `json:"popularity"`
	Notified   bool         `json:"notified"`
}

// CountResponse carries a single counter value.
type CountResponse struct {
	Count int64 `json:"count"`
}
