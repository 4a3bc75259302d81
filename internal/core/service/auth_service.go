package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bloodconnect/donation-system/internal/core/domain"
	"github.com/bloodconnect/donation-system/internal/core/ports"
)

// AuthService implements administrator registration, login, and token
// verification.
type AuthService struct {
	repo      ports.AdminRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.AdminRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Register creates an admin account with a bcrypt-hashed password. The role
// defaults to Admin when empty.
func (s *AuthService) Register(ctx context.Context, username, email, password, role string) (*domain.Admin, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" {
		return nil, domain.NewValidationError("username", "is required")
	}
	if email == "" {
		return nil, domain.NewValidationError("email", "is required")
	}
	if password == "" {
		return nil, domain.NewValidationError("password", "is required")
	}
	if role == "" {
		role = domain.RoleAdmin
	}
	if role != domain.RoleAdmin && role != domain.RoleSuperAdmin {
		return nil, domain.NewValidationError("role", "must be Admin or SuperAdmin")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &domain.Admin{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, admin)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Str("role", role).Msg("admin account created")
	return created, nil
}

// Login verifies credentials and issues a signed bearer token. Unknown
// username and wrong password fail identically so callers cannot probe
// which field was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	admin, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(admin)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", admin.Username).Msg("admin logged in")
	return token, admin, nil
}

// Verify checks the token signature and expiry and returns the decoded claims.
func (s *AuthService) Verify(token string) (*ports.AdminClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidCredentials
	}

	id, _ := claims["id"].(string)
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	return &ports.AdminClaims{ID: id, Username: username, Role: role}, nil
}

// ListAdmins returns every admin account, newest-first.
func (s *AuthService) ListAdmins(ctx context.Context) ([]*domain.Admin, error) {
	return s.repo.FindAll(ctx)
}

// EnsureDefaultAdmin creates the bootstrap account when the admin store is
// empty. A no-op when any account already exists.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context, username, email, password string) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if _, err := s.Register(ctx, username, email, password, domain.RoleSuperAdmin); err != nil {
		return err
	}

	s.logger.Warn().Str("username", username).Msg("bootstrap admin created; change the default password")
	return nil
}

func (s *AuthService) generateToken(admin *domain.Admin) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":       admin.ID,
		"username": admin.Username,
		"role":     admin.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
