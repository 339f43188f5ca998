package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pageza/pantrychef/backend/internal/model"
	"github.com/pageza/pantrychef/backend/internal/types"
)

// AuthService signs users in and out. It is the only component that creates
// or revokes sessions; everything else receives a *types.Session.
type AuthService struct {
	users     UserStore
	sessions  SessionStore
	jwtSecret []byte
	ttl       time.Duration
	now       func() time.Time
}

// Ensure AuthService implements IAuthService
var _ IAuthService = (*AuthService)(nil)

func NewAuthService(users UserStore, sessions SessionStore, jwtSecret string, ttl time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		sessions:  sessions,
		jwtSecret: []byte(jwtSecret),
		ttl:       ttl,
		now:       time.Now,
	}
}

// Register creates an account and opens a session for it.
func (s *AuthService) Register(ctx context.Context, email, password string) (string, *types.Session, error) {
	email = normalizeEmail(email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, &PersistenceError{Op: "look up user", Err: err}
	}
	if existing != nil {
		return "", nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	// A concurrent sign-up can win between the lookup and the insert.
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return "", nil, ErrEmailTaken
		}
		return "", nil, &PersistenceError{Op: "create user", Err: err}
	}

	return s.openSession(ctx, user)
}

// Login checks the password and opens a new session.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *types.Session, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", nil, &PersistenceError{Op: "look up user", Err: err}
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	return s.openSession(ctx, user)
}

// Logout revokes the session. Tokens issued for it stop validating immediately.
func (s *AuthService) Logout(ctx context.Context, sess *types.Session) error {
	if sess == nil {
		return ErrNotAuthenticated
	}
	if err := s.sessions.Delete(ctx, sess.TokenID); err != nil {
		return &PersistenceError{Op: "revoke session", Err: err}
	}
	return nil
}

// ValidateToken verifies the token signature and expiry and that its session is still live.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*types.Session, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrSessionExpired
		}
		return nil, ErrNotAuthenticated
	}
	if !token.Valid || claims.ID == "" || claims.UserID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}

	live, err := s.sessions.Exists(ctx, claims.ID)
	if err != nil {
		return nil, &PersistenceError{Op: "check session", Err: err}
	}
	if !live {
		return nil, ErrSessionExpired
	}

	sess := &types.Session{
		UserID:  claims.UserID,
		Email:   claims.Email,
		TokenID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}
	return sess, nil
}

func (s *AuthService) openSession(ctx context.Context, user *model.User) (string, *types.Session, error) {
	now := s.now()
	sess := &types.Session{
		UserID:    user.ID,
		Email:     user.Email,
		TokenID:   uuid.NewString(),
		ExpiresAt: now.Add(s.ttl),
	}

	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.TokenID,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
		UserID: user.ID,
		Email:  user.Email,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	if err := s.sessions.Put(ctx, *sess, s.ttl); err != nil {
		return "", nil, &PersistenceError{Op: "store session", Err: err}
	}

	return token, sess, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
