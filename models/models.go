// Package models defines the domain entities shared by the store and service
// layers: users with roles, news articles with their moderation status and
// engagement counters, and comments.
package models

import "time"

// Role is a user's authorization level.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// CanModerate reports whether the role may change article statuses that are
// not a direct consequence of the owner editing their own article.
func (r Role) CanModerate() bool {
	return r == RoleAdmin
}

// User represents a registered account.
type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // never exposed in API responses
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

// Category is the fixed set of news categories.
type Category string

const (
	CategoryPolitics      Category = "politics"
	CategorySports        Category = "sports"
	CategoryTechnology    Category = "technology"
	CategoryEntertainment Category = "entertainment"
)

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryPolitics, CategorySports, CategoryTechnology, CategoryEntertainment:
		return true
	}
	return false
}

// Status is the moderation state of an article.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusPublished Status = "published"
	StatusRejected  Status = "rejected"
)

// Valid reports whether s is one of the four moderation states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusPublished, StatusRejected:
		return true
	}
	return false
}

// TransitionEffects are the side effects of moving an article into a status.
type TransitionEffects struct {
	ClearLikes     bool
	DeleteComments bool
}

// statusEffects declares the cascade rules of the moderation state machine in
// one place, keyed by the target status. Entering pending or rejected wipes
// prior engagement so the article is re-reviewed from a clean slate; every
// call site (owner edit, admin moderation) consults this table instead of
// hard-coding the rules.
var statusEffects = map[Status]TransitionEffects{
	StatusPending:   {ClearLikes: true, DeleteComments: true},
	StatusRejected:  {ClearLikes: true, DeleteComments: true},
	StatusPublished: {},
	StatusDraft:     {},
}

// EffectsFor returns the side effects of transitioning into target.
func EffectsFor(target Status) TransitionEffects {
	return statusEffects[target]
}

// InitialStatus returns the status a freshly created article gets: admins
// publish immediately, everyone else goes through moderation.
func InitialStatus(authorRole Role) Status {
	if authorRole == RoleAdmin {
		return StatusPublished
	}
	return StatusPending
}

// News represents a news article.
type News struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Category   Category   `json:"category"`
	AuthorID   int64      `json:"author_id"`
	AuthorName string     `json:"author_name,omitempty"`
	Status     Status     `json:"status"`
	MediaURL   *string    `json:"media_url,omitempty"`
	Likes      []int64    `json:"likes"`
	Views      int64      `json:"views"`
	Popularity float64    `json:"popularity"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// LikedBy reports whether userID is in the article's likes set.
func (n *News) LikedBy(userID int64) bool {
	for _, id := range n.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// PopularityScore derives the ranking score from the three engagement
// counters. It is always recomputed from current values, never patched
// incrementally.
func PopularityScore(views, likes, comments int64) float64 {
	return float64(views)*0.5 + float64(comments)*2 + float64(likes)*1.5
}

// Comment represents a reader comment on an article. Comments belong to their
// article and are removed in bulk whenever the article re-enters moderation.
type Comment struct {
	ID         int64     `json:"id"`
	Content    string    `json:"content"`
	NewsID     int64     `json:"news_id"`
	AuthorID   int64     `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Sort is a list ordering option for news queries.
type Sort string

const (
	SortNewest    Sort = "newest"
	SortOldest    Sort = "oldest"
	SortTitleAsc  Sort = "title-asc"
	SortTitleDesc Sort = "title-desc"
	SortPopular   Sort = "popular"
)

// Valid reports whether s is a known sort option.
func (s Sort) Valid() bool {
	switch s {
	case SortNewest, SortOldest, SortTitleAsc, SortTitleDesc, SortPopular:
		return true
	}
	return false
}

// NewsFilter narrows and orders a news listing. A nil Status or Category
// leaves that dimension unfiltered; Search matches title substrings. A
// Limit of 0 returns the full result set; otherwise Page (1-based) and
// Limit window the ordered results.
type NewsFilter struct {
	Status   *Status
	Category *Category
	Search   string
	Sort     Sort
	Page     int
	Limit    int
}

// Offset returns the number of rows to skip for the filter's page window.
func (f NewsFilter) Offset() int {
	if f.Limit <= 0 || f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}
