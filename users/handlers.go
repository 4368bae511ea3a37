package users

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/user/newswire-go/apperror"
	"github.com/user/newswire-go/auth"
)

// UpdateProfileRequest is the profile update payload. All fields are
// optional; changing the password requires the current one.
type UpdateProfileRequest struct {
	Name            string `json:"name" example:"Jane Reader"`
	CurrentPassword string `json:"currentPassword,omitempty"`
	NewPassword     string `json:"newPassword,omitempty" validate:"omitempty,min=4"`
}

// CountResponse carries a single counter value.
type CountResponse struct {
	Count int64 `json:"count"`
}

// Handlers exposes the users service over HTTP.
type Handlers struct {
	service *Service
	log     *zap.Logger
}

// NewHandlers creates users handlers.
func NewHandlers(service *Service, log *zap.Logger) *Handlers {
	return &Handlers{service: service, log: log}
}

// HandleUpdateProfile godoc
// @Summary Update profile
// @Description Changes the caller's display name and optionally the password.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body users.UpdateProfileRequest true "profile changes"
// @Success 200 {object} auth.UserResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Router /auth/profile [put]
func (h *Handlers) HandleUpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		user, err := h.service.UpdateProfile(r.Context(), claims.UserID, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, auth.UserResponse{User: user})
	}
}

// HandleCount godoc
// @Summary Count registered users
// @Tags auth
// @Produce json
// @Success 200 {object} users.CountResponse
// @Router /auth/count [get]
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
