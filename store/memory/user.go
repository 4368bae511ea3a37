// Package memory implements the store interfaces with mutex-guarded maps.
// It backs the test suite and local development without a database; the
// behavior, including returned error types, mirrors store/postgres.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/user/newswire-go/apperror"
	"github.com/user/newswire-go/models"
)

// UserStore keeps users in memory.
type UserStore struct {
	mu     sync.Mutex
	users  map[int64]*models.User
	nextID int64
}

// NewUserStore creates an empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[int64]*models.User), nextID: 1}
}

func (s *UserStore) Create(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(u.Email)
	for _, existing := range s.users {
		if existing.Email == email {
			return apperror.NewConflictError("a user with this email already exists", nil)
		}
	}

	u.ID = s.nextID
	s.nextID++
	u.Email = email
	u.CreatedAt = time.Now()

	stored := *u
	s.users[u.ID] = &stored
	return nil
}

func (s *UserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("user %d not found", id), nil)
	}
	copied := *u
	return &copied, nil
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.ToLower(email)
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperror.NewNotFoundError("user not found", nil)
}

func (s *UserStore) Update(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[u.ID]
	if !ok {
		return apperror.NewNotFoundError(fmt.Sprintf("user %d not found", u.ID), nil)
	}

	email := strings.ToLower(u.Email)
	for id, other := range s.users {
		if id != u.ID && other.Email == email {
			return apperror.NewConflictError("a user with this email already exists", nil)
		}
	}

	existing.Name = u.Name
	existing.Email = email
	existing.HashedPassword = u.HashedPassword
	existing.Role = u.Role
	return nil
}

func (s *UserStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.users)), nil
}

// nameOf resolves a user's display name, used to populate author names on
// news and comments the way the SQL implementation does with a join.
func (s *UserStore) nameOf(id int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return u.Name
	}
	return ""
}
