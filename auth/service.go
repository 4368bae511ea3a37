package auth

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/newswire-go/apperror"
	"github.com/user/newswire-go/config"
	"github.com/user/newswire-go/models"
	"github.com/user/newswire-go/store"
)

// Claims is the JWT payload: the verified identity every authenticated
// operation trusts, including the role used for moderation checks.
type Claims struct {
	UserID int64       `json:"user_id"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Service implements registration, login, and token issuance.
type Service struct {
	users    store.Users
	cfg      config.AuthConfig
	validate *validator.Validate
	log      *zap.Logger
}

// NewService creates an auth service.
func NewService(users store.Users, cfg config.AuthConfig, log *zap.Logger) *Service {
	return &Service{
		users:    users,
		cfg:      cfg,
		validate: validator.New(),
		log:      log,
	}
}

// HashPassword hashes a password with bcrypt. Values that are already bcrypt
// hashes are returned unchanged, so saving a user twice can never double-hash
// the stored credential.
func HashPassword(password string) (string, error) {
	if strings.HasPrefix(password, "$2a$") || strings.HasPrefix(password, "$2b$") || strings.HasPrefix(password, "$2y$") {
		return password, nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperror.NewInternalError("failed to hash password", err)
	}
	return string(hashed), nil
}

// CheckPassword compares a plaintext password against a stored bcrypt hash.
func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// Register creates a user and issues a registration token.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperror.NewValidationError("name, email, and password are required", err)
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:           req.Name,
		Email:          strings.ToLower(req.Email),
		HashedPassword: hashed,
		Role:           models.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.IssueToken(user, s.cfg.RegisterTokenTTL)
	if err != nil {
		return nil, err
	}
	s.log.Info("user registered", zap.Int64("user_id", user.ID))
	return &AuthResponse{User: user, Token: token}, nil
}

// Login authenticates by email and password and issues a login token.
// Unknown email and wrong password produce the same response so the API does
// not reveal which part was wrong.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperror.NewValidationError("email and password are required", err)
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewAuthError("invalid credentials", nil)
		}
		return nil, err
	}

	if !CheckPassword(user.HashedPassword, req.Password) {
		return nil, apperror.NewAuthError("invalid credentials", nil)
	}

	token, err := s.IssueToken(user, s.cfg.LoginTokenTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: user, Token: token}, nil
}

// GetUser returns the user for a verified token's subject.
func (s *Service) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// IssueToken signs an HS256 token carrying the user's id, email, and role.
func (s *Service) IssueToken(user *models.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "newswire",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", apperror.NewInternalError("failed to sign token", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a bearer token string.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	return verifyToken(tokenString, s.cfg.JWTSecret)
}
