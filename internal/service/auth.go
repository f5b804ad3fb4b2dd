package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Jinxhater/LUXE/internal/domain"
	"github.com/Jinxhater/LUXE/internal/repository"
	apperrors "github.com/Jinxhater/LUXE/pkg/errors"
)

const (
	sessionIDBytes = 32
	defaultName    = "User"
)

const (
	msgNotAuthenticated   = "Not authenticated"
	msgSessionExpired     = "Session expired"
	msgInvalidCredentials = "Invalid email or password"
)

// AuthConfig holds the session and hashing settings.
type AuthConfig struct {
	SessionTTL time.Duration
	BcryptCost int
}

// AuthService registers users and manages their sessions.
type AuthService struct {
	users    repository.UserRepository
	sessions repository.SessionStore
	cfg      AuthConfig
	logger   *slog.Logger
	now      func() time.Time
}

// NewAuthService creates a new auth service.
func NewAuthService(users repository.UserRepository, sessions repository.SessionStore, cfg AuthConfig, logger *slog.Logger) *AuthService {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 7 * 24 * time.Hour
	}
	return &AuthService{
		users:    users,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SessionTTL is the lifetime given to new sessions.
func (s *AuthService) SessionTTL() time.Duration {
	return s.cfg.SessionTTL
}

// RegisterInput holds the parameters for creating an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a USER account and signs it in.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = defaultName
	}

	user, err := s.createUser(ctx, name, input.Email, input.Password, domain.RoleUser)
	if err != nil {
		authAttempts.WithLabelValues("register", "failure").Inc()
		return nil, "", err
	}

	sid, err := s.startSession(ctx, user)
	if err != nil {
		return nil, "", err
	}

	authAttempts.WithLabelValues("register", "success").Inc()
	s.logger.InfoContext(ctx, "user registered", slog.String("user_id", user.ID))
	return user, sid, nil
}

func (s *AuthService) createUser(ctx context.Context, name, email, password, role string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperrors.InvalidInput("email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login checks the credentials and opens a new session. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			authAttempts.WithLabelValues("login", "failure").Inc()
			return nil, "", apperrors.Unauthorized(msgInvalidCredentials)
		}
		return nil, "", fmt.Errorf("get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		authAttempts.WithLabelValues("login", "failure").Inc()
		return nil, "", apperrors.Unauthorized(msgInvalidCredentials)
	}

	sid, err := s.startSession(ctx, user)
	if err != nil {
		return nil, "", err
	}

	authAttempts.WithLabelValues("login", "success").Inc()
	s.logger.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID))
	return user, sid, nil
}

func (s *AuthService) startSession(ctx context.Context, user *domain.User) (string, error) {
	sid, err := newSessionID()
	if err != nil {
		return "", err
	}

	now := s.now()
	session := &domain.Session{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.SessionTTL),
	}
	if err := s.sessions.Put(ctx, sid, session, s.cfg.SessionTTL); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return sid, nil
}

// Session resolves a session id. A blank id is "Not authenticated"; an
// unknown or expired one is "Session expired".
func (s *AuthService) Session(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, apperrors.Unauthorized(msgNotAuthenticated)
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Unauthorized(msgSessionExpired)
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session.Expired(s.now()) {
		return nil, apperrors.Unauthorized(msgSessionExpired)
	}
	return session, nil
}

// Me returns the account behind a session.
func (s *AuthService) Me(ctx context.Context, sessionID string) (*domain.User, error) {
	session, err := s.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Unauthorized(msgSessionExpired)
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return user, nil
}

// Logout deletes the session. Unknown ids are ignored.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// SeedAdmin creates the ADMIN account unless the email is already taken.
func (s *AuthService) SeedAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	_, err := s.createUser(ctx, "Admin", email, password, domain.RoleAdmin)
	switch {
	case err == nil:
		s.logger.InfoContext(ctx, "admin account seeded", slog.String("email", strings.ToLower(email)))
		return nil
	case errors.Is(err, apperrors.ErrAlreadyExists):
		return nil
	default:
		return fmt.Errorf("seed admin: %w", err)
	}
}

func newSessionID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
