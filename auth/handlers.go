package auth

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/user/newswire-go/apperror"
)

// Handlers exposes the auth service over HTTP.
type Handlers struct {
	service *Service
	log     *zap.Logger
}

// NewHandlers creates auth handlers.
func NewHandlers(service *Service, log *zap.Logger) *Handlers {
	return &Handlers{service: service, log: log}
}

// HandleRegister godoc
// @Summary Register a new user
// @Description Creates an account and returns the user together with a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body auth.RegisterRequest true "registration details"
// @Success 200 {object} auth.AuthResponse
// @Failure 400 {object} apperror.ErrorResponse "invalid input or duplicate email"
// @Router /auth/register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		resp, err := h.service.Register(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleLogin godoc
// @Summary Log in
// @Description Authenticates by email and password and returns the user with a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body auth.LoginRequest true "login credentials"
// @Success 200 {object} auth.AuthResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 401 {object} apperror.ErrorResponse "invalid credentials"
// @Router /auth/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		resp, err := h.service.Login(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleMe godoc
// @Summary Current user
// @Description Returns the user identified by the presented bearer token.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.UserResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Router /auth/me [get]
func (h *Handlers) HandleMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			WriteError(w, r, apperror.NewAuthError("authentication required", nil))
			return
		}

		user, err := h.service.GetUser(r.Context(), claims.UserID)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		WriteJSON(w, http.StatusOK, UserResponse{User: user})
	}
}

// WriteJSON writes data as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
	}
}

// WriteError converts any error into the standard JSON error response.
// Errors that are not AppErrors become generic 500s so internals never reach
// the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("internal server error", err)
	}
	if appErr.StatusCode() >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	WriteJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
