package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/newswire-go/apperror"
	"github.com/user/newswire-go/models"
)

const newsColumns = `n.id, n.title, n.content, n.category, n.author_id, u.name,
	n.status, n.media_url, n.likes, n.views, n.popularity, n.created_at, n.updated_at`

// NewsStore persists articles in PostgreSQL.
type NewsStore struct {
	db *pgxpool.Pool
}

// NewNewsStore creates a NewsStore backed by the given pool.
func NewNewsStore(db *pgxpool.Pool) *NewsStore {
	return &NewsStore{db: db}
}

func (s *NewsStore) Create(ctx context.Context, n *models.News) error {
	query := `INSERT INTO news (title, content, category, author_id, status, media_url)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, likes, views, popularity, created_at`
	err := s.db.QueryRow(ctx, query, n.Title, n.Content, n.Category, n.AuthorID, n.Status, n.MediaURL).
		Scan(&n.ID, &n.Likes, &n.Views, &n.Popularity, &n.CreatedAt)
	if err != nil {
		return apperror.NewDatabaseError("failed to create news", err)
	}
	return nil
}

func (s *NewsStore) GetByID(ctx context.Context, id int64) (*models.News, error) {
	query := fmt.Sprintf(`SELECT %s FROM news n JOIN users u ON u.id = n.author_id WHERE n.id = $1`, newsColumns)
	n, err := scanNews(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("news %d not found", id), nil)
		}
		return nil, apperror.NewDatabaseError("failed to get news", err)
	}
	return n, nil
}

func (s *NewsStore) List(ctx context.Context, f models.NewsFilter) ([]models.News, error) {
	var conditions []string
	var args []any
	argID := 1

	if f.Status != nil {
		conditions = append(conditions, fmt.Sprintf("n.status = $%d", argID))
		args = append(args, *f.Status)
		argID++
	}
	if f.Category != nil {
		conditions = append(conditions, fmt.Sprintf("n.category = $%d", argID))
		args = append(args, *f.Category)
		argID++
	}
	if f.Search != "" {
		conditions = append(conditions, fmt.Sprintf("n.title ILIKE '%%' || $%d || '%%'", argID))
		args = append(args, f.Search)
		argID++
	}

	query := fmt.Sprintf(`SELECT %s FROM news n JOIN users u ON u.id = n.author_id`, newsColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY " + orderClause(f.Sort)
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1)
		args = append(args, f.Limit, f.Offset())
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list news", err)
	}
	defer rows.Close()
	return collectNews(rows)
}

func (s *NewsStore) ListByAuthor(ctx context.Context, authorID int64) ([]models.News, error) {
	query := fmt.Sprintf(`SELECT %s FROM news n JOIN users u ON u.id = n.author_id
	          WHERE n.author_id = $1 ORDER BY n.created_at DESC`, newsColumns)
	rows, err := s.db.Query(ctx, query, authorID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list news by author", err)
	}
	defer rows.Close()
	return collectNews(rows)
}

func (s *NewsStore) Update(ctx context.Context, n *models.News) error {
	query := `UPDATE news
	          SET title = $2, content = $3, category = $4, status = $5,
	              media_url = $6, likes = $7, updated_at = $8
	          WHERE id = $1`
	tag, err := s.db.Exec(ctx, query, n.ID, n.Title, n.Content, n.Category, n.Status, n.MediaURL, n.Likes, n.UpdatedAt)
	if err != nil {
		return apperror.NewDatabaseError("failed to update news", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("news %d not found", n.ID), nil)
	}
	return nil
}

func (s *NewsStore) Delete(ctx context.Context, id int64) error {
	// Comments go with the article via the ON DELETE CASCADE constraint.
	tag, err := s.db.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return apperror.NewDatabaseError("failed to delete news", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("news %d not found", id), nil)
	}
	return nil
}

func (s *NewsStore) SetStatus(ctx context.Context, id int64, status models.Status) (*models.News, error) {
	query := `UPDATE news SET status = $2 WHERE id = $1`
	tag, err := s.db.Exec(ctx, query, id, status)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to set news status", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("news %d not found", id), nil)
	}
	return s.GetByID(ctx, id)
}

func (s *NewsStore) ClearLikes(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `UPDATE news SET likes = '{}' WHERE id = $1`, id)
	if err != nil {
		return apperror.NewDatabaseError("failed to clear likes", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("news %d not found", id), nil)
	}
	return nil
}

// ToggleLike flips the user's membership in the likes set in one statement,
// so concurrent toggles from different users cannot lose each other's writes.
func (s *NewsStore) ToggleLike(ctx context.Context, id, userID int64) (int64, bool, error) {
	query := `UPDATE news
	          SET likes = CASE WHEN $2 = ANY(likes)
	                           THEN array_remove(likes, $2)
	                           ELSE array_append(likes, $2)
	                      END
	          WHERE id = $1
	          RETURNING cardinality(likes), $2 = ANY(likes)`
	var count int64
	var liked bool
	err := s.db.QueryRow(ctx, query, id, userID).Scan(&count, &liked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, apperror.NewNotFoundError(fmt.Sprintf("news %d not found", id), nil)
		}
		return 0, false, apperror.NewDatabaseError("failed to toggle like", err)
	}
	return count, liked, nil
}

// IncrementViews bumps the view counter atomically and returns the updated
// article. Every call counts; views are not deduplicated by viewer.
func (s *NewsStore) IncrementViews(ctx context.Context, id int64) (*models.News, error) {
	tag, err := s.db.Exec(ctx, `UPDATE news SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to increment views", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("news %d not found", id), nil)
	}
	return s.GetByID(ctx, id)
}

// RecomputePopularity derives the score from the article's current counters
// in a single statement and persists it, so reads never need a join.
func (s *NewsStore) RecomputePopularity(ctx context.Context, id int64) (float64, error) {
	query := `UPDATE news n
	          SET popularity = n.views * 0.5
	                         + (SELECT count(*) FROM comments c WHERE c.news_id = n.id) * 2
	                         + cardinality(n.likes) * 1.5
	          WHERE n.id = $1
	          RETURNING n.popularity`
	var popularity float64
	err := s.db.QueryRow(ctx, query, id).Scan(&popularity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperror.NewNotFoundError(fmt.Sprintf("news %d not found", id), nil)
		}
		return 0, apperror.NewDatabaseError("failed to recompute popularity", err)
	}
	return popularity, nil
}

func (s *NewsStore) CountByStatus(ctx context.Context, status models.Status) (int64, error) {
	var count int64
	err := s.db.QueryRow(ctx, `SELECT count(*) FROM news WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, apperror.NewDatabaseError("failed to count news", err)
	}
	return count, nil
}

// orderClause maps a sort option to an ORDER BY expression. Popularity
// ordering breaks ties by recency.
func orderClause(sort models.Sort) string {
	switch sort {
	case models.SortOldest:
		return "n.created_at ASC"
	case models.SortTitleAsc:
		return "n.title ASC"
	case models.SortTitleDesc:
		return "n.title DESC"
	case models.SortPopular:
		return "n.popularity DESC, n.created_at DESC"
	default:
		return "n.created_at DESC"
	}
}

func scanNews(row pgx.Row) (*models.News, error) {
	var n models.News
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.Category, &n.AuthorID, &n.AuthorName,
		&n.Status, &n.MediaURL, &n.Likes, &n.Views, &n.Popularity, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func collectNews(rows pgx.Rows) ([]models.News, error) {
	items := make([]models.News, 0)
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, apperror.NewDatabaseError("failed to scan news row", err)
		}
		items = append(items, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read news rows", err)
	}
	return items, nil
}
