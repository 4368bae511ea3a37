// Package postgres implements the store interfaces on top of a pgx
// connection pool. Counter and set mutations are single atomic UPDATE
// statements so concurrent requests cannot lose updates.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/newswire-go/apperror"
	"github.com/user/newswire-go/models"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const pgUniqueViolation = "23505"

// UserStore persists users in PostgreSQL.
type UserStore struct {
	db *pgxpool.Pool
}

// NewUserStore creates a UserStore backed by the given pool.
func NewUserStore(db *pgxpool.Pool) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(ctx context.Context, u *models.User) error {
	query := `INSERT INTO users (name, email, password, role)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at`
	err := s.db.QueryRow(ctx, query, u.Name, strings.ToLower(u.Email), u.HashedPassword, u.Role).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.NewConflictError("a user with this email already exists", nil)
		}
		return apperror.NewDatabaseError("failed to create user", err)
	}
	u.Email = strings.ToLower(u.Email)
	return nil
}

func (s *UserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT id, name, email, password, role, created_at FROM users WHERE id = $1`
	return s.scanUser(s.db.QueryRow(ctx, query, id), fmt.Sprintf("user %d not found", id))
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, name, email, password, role, created_at FROM users WHERE email = $1`
	return s.scanUser(s.db.QueryRow(ctx, query, strings.ToLower(email)), "user not found")
}

func (s *UserStore) scanUser(row pgx.Row, notFoundMsg string) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.HashedPassword, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(notFoundMsg, nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}
	return &u, nil
}

func (s *UserStore) Update(ctx context.Context, u *models.User) error {
	query := `UPDATE users SET name = $2, email = $3, password = $4, role = $5 WHERE id = $1`
	tag, err := s.db.Exec(ctx, query, u.ID, u.Name, strings.ToLower(u.Email), u.HashedPassword, u.Role)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.NewConflictError("a user with this email already exists", nil)
		}
		return apperror.NewDatabaseError("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("user %d not found", u.ID), nil)
	}
	return nil
}

func (s *UserStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&count); err != nil {
		return 0, apperror.NewDatabaseError("failed to count users", err)
	}
	return count, nil
}
