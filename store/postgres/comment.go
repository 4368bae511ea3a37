package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/newswire-go/apperror"
	"github.com/user/newswire-go/models"
)

// CommentStore persists comments in PostgreSQL.
type CommentStore struct {
	db *pgxpool.Pool
}

// NewCommentStore creates a CommentStore backed by the given pool.
func NewCommentStore(db *pgxpool.Pool) *CommentStore {
	return &CommentStore{db: db}
}

func (s *CommentStore) Create(ctx context.Context, c *models.Comment) error {
	query := `INSERT INTO comments (content, news_id, author_id)
	          VALUES ($1, $2, $3)
	          RETURNING id, created_at`
	err := s.db.QueryRow(ctx, query, c.Content, c.NewsID, c.AuthorID).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return apperror.NewDatabaseError("failed to create comment", err)
	}
	return nil
}

func (s *CommentStore) ListByNews(ctx context.Context, newsID int64) ([]models.Comment, error) {
	query := `SELECT c.id, c.content, c.news_id, c.author_id, u.name, c.created_at
	          FROM comments c
	          JOIN users u ON u.id = c.author_id
	          WHERE c.news_id = $1
	          ORDER BY c.created_at DESC, c.id DESC`
	rows, err := s.db.Query(ctx, query, newsID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list comments", err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.Content, &c.NewsID, &c.AuthorID, &c.AuthorName, &c.CreatedAt); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan comment row", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read comment rows", err)
	}
	return comments, nil
}

func (s *CommentStore) CountByNews(ctx context.Context, newsID int64) (int64, error) {
	var count int64
	err := s.db.QueryRow(ctx, `SELECT count(*) FROM comments WHERE news_id = $1`, newsID).Scan(&count)
	if err != nil {
		return 0, apperror.NewDatabaseError(fmt.Sprintf("failed to count comments for news %d", newsID), err)
	}
	return count, nil
}

func (s *CommentStore) DeleteByNews(ctx context.Context, newsID int64) (int64, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM comments WHERE news_id = $1`, newsID)
	if err != nil {
		return 0, apperror.NewDatabaseError("failed to delete comments", err)
	}
	return tag.RowsAffected(), nil
}

func (s *CommentStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM comments`).Scan(&count); err != nil {
		return 0, apperror.NewDatabaseError("failed to count comments", err)
	}
	return count, nil
}
