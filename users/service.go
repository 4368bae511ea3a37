// Package users covers account management beyond login: profile updates and
// the public account counter.
package users

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/user/newswire-go/apperror"
	"github.com/user/newswire-go/auth"
	"github.com/user/newswire-go/models"
	"github.com/user/newswire-go/store"
)

// Service implements profile management.
type Service struct {
	users    store.Users
	validate *validator.Validate
	log      *zap.Logger
}

// NewService creates a users service.
func NewService(users store.Users, log *zap.Logger) *Service {
	return &Service{users: users, validate: validator.New(), log: log}
}

// GetProfile returns the account for id.
func (s *Service) GetProfile(ctx context.Context, id int64) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateProfile changes the caller's display name and, when a new password is
// supplied, rotates the credential. A password change requires the current
// password to match.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*models.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperror.NewValidationError("invalid profile update", err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}

	if req.NewPassword != "" {
		if !auth.CheckPassword(user.HashedPassword, req.CurrentPassword) {
			return nil, apperror.NewAuthError("current password is incorrect", nil)
		}
		hashed, err := auth.HashPassword(req.NewPassword)
		if err != nil {
			return nil, err
		}
		user.HashedPassword = hashed
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info("profile updated", zap.Int64("user_id", user.ID))
	return user, nil
}

// Count returns the total number of registered accounts.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}
