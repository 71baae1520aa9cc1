package application

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/rakapradana/goaltrack/internal/domain/entity"
	"github.com/rakapradana/goaltrack/internal/domain/repository"
	"github.com/rakapradana/goaltrack/pkg/helpers"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService implements registration, login and profile lookup. The redis
// client is optional; when present, a session hash is recorded on token issue
// for rate limiting and diagnostics. The JWT stays the sole validity
// authority, so losing redis never locks users out.
type AuthService struct {
	Users  repository.UserRepository
	JWT    *helpers.JWTManager
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Redis: rdb, Logger: logger}
}

// Token is a freshly issued bearer credential.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

func sessionKey(userID string) string {
	return "user:session:" + userID
}

// Register creates a user with a bcrypt-hashed password and issues a token so
// the client can skip a follow-up login.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*entity.User, Token, error) {
	if existing, err := s.Users.GetByEmail(email); err == nil && existing != nil {
		return nil, Token{}, ErrEmailTaken
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, Token{}, err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, Token{}, err
	}
	u := &entity.User{Username: username, Email: email, Password: hash}
	if err := s.Users.Create(u); err != nil {
		return nil, Token{}, err
	}

	tok, err := s.issueToken(ctx, u)
	if err != nil {
		return nil, Token{}, err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID).Info("user registered")
	}
	return u, tok, nil
}

// Login verifies credentials and issues a fresh token. Unknown email and bad
// password are reported distinctly; the HTTP layer maps them to 404 and 401.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, Token, error) {
	u, err := s.Users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Token{}, ErrUserNotFound
		}
		return nil, Token{}, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, Token{}, ErrInvalidCredentials
	}

	tok, err := s.issueToken(ctx, u)
	if err != nil {
		return nil, Token{}, err
	}
	return u, tok, nil
}

func (s *AuthService) GetProfile(userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *AuthService) issueToken(ctx context.Context, u *entity.User) (Token, error) {
	value, exp, err := s.JWT.GenerateToken(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return Token{}, err
	}

	if s.Redis != nil {
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"username":   u.Username,
			"logged_in":  true,
			"created_at": time.Now().UTC().Format(time.RFC3339Nano),
		})
		pipe.Expire(ctx, key, time.Until(exp))
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	return Token{Value: value, ExpiresAt: exp}, nil
}
