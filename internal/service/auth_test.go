package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/pantrychef/backend/internal/mocks"
	"github.com/pageza/pantrychef/backend/internal/model"
	"github.com/pageza/pantrychef/backend/internal/repository"
	"github.com/pageza/pantrychef/backend/internal/service"
	"github.com/pageza/pantrychef/backend/internal/testhelpers"
	"github.com/pageza/pantrychef/backend/internal/types"
)

const testSecret = "test-secret"

func setupAuthTest(t *testing.T) (*service.AuthService, *repository.UserStore) {
	db := testhelpers.SetupSQLite(t)
	client, _ := testhelpers.SetupRedis(t)

	users := repository.NewUserStore(db)
	authSvc := service.NewAuthService(users, repository.NewSessionStore(client), testSecret, time.Hour)
	return authSvc, users
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	authSvc, users := setupAuthTest(t)

	token, sess, err := authSvc.Register(ctx, "  Cook@Example.com ", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "cook@example.com", sess.Email)

	stored, err := users.FindByEmail(ctx, "cook@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.Equal(t, stored.ID, sess.UserID)

	t.Run("should validate the issued token", func(t *testing.T) {
		got, err := authSvc.ValidateToken(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, sess.UserID, got.UserID)
		assert.Equal(t, sess.TokenID, got.TokenID)
	})

	t.Run("should reject a second registration", func(t *testing.T) {
		_, _, err := authSvc.Register(ctx, "cook@example.com", "other-password")

		assert.ErrorIs(t, err, service.ErrEmailTaken)
	})

	t.Run("should log in with the right password", func(t *testing.T) {
		loginToken, loginSess, err := authSvc.Login(ctx, "COOK@example.com", "password123")

		require.NoError(t, err)
		assert.NotEqual(t, token, loginToken)
		assert.NotEqual(t, sess.TokenID, loginSess.TokenID)
	})

	t.Run("should reject the wrong password", func(t *testing.T) {
		_, _, err := authSvc.Login(ctx, "cook@example.com", "wrong")

		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("should reject an unknown email", func(t *testing.T) {
		_, _, err := authSvc.Login(ctx, "nobody@example.com", "password123")

		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("should revoke the session on logout", func(t *testing.T) {
		require.NoError(t, authSvc.Logout(ctx, sess))

		_, err := authSvc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, service.ErrSessionExpired)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	ctx := context.Background()

	t.Run("should reject garbage", func(t *testing.T) {
		authSvc, _ := setupAuthTest(t)

		_, err := authSvc.ValidateToken(ctx, "not-a-token")
		assert.ErrorIs(t, err, service.ErrNotAuthenticated)
	})

	t.Run("should reject a token signed with another secret", func(t *testing.T) {
		authSvc, _ := setupAuthTest(t)
		claims := &types.TokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{ID: uuid.NewString(), ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
			UserID:           uuid.New(),
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
		require.NoError(t, err)

		_, err = authSvc.ValidateToken(ctx, forged)
		assert.ErrorIs(t, err, service.ErrNotAuthenticated)
	})

	t.Run("should report an expired token", func(t *testing.T) {
		authSvc, _ := setupAuthTest(t)
		claims := &types.TokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{ID: uuid.NewString(), ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
			UserID:           uuid.New(),
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = authSvc.ValidateToken(ctx, expired)
		assert.ErrorIs(t, err, service.ErrSessionExpired)
	})
}

func TestAuthService_StoreFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("should wrap user lookup failures", func(t *testing.T) {
		users := new(mocks.MockUserStore)
		sessions := new(mocks.MockSessionStore)
		users.On("FindByEmail", ctx, "cook@example.com").Return(nil, errors.New("db down"))

		_, _, err := service.NewAuthService(users, sessions, testSecret, time.Hour).Login(ctx, "cook@example.com", "pw")

		assert.True(t, service.IsPersistenceError(err))
		sessions.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should fail registration when the session cannot be stored", func(t *testing.T) {
		users := new(mocks.MockUserStore)
		sessions := new(mocks.MockSessionStore)
		users.On("FindByEmail", ctx, "cook@example.com").Return(nil, nil)
		users.On("Create", ctx, mock.AnythingOfType("*model.User")).Return(nil)
		sessions.On("Put", ctx, mock.AnythingOfType("types.Session"), time.Hour).Return(errors.New("redis down"))

		token, sess, err := service.NewAuthService(users, sessions, testSecret, time.Hour).Register(ctx, "cook@example.com", "password123")

		assert.True(t, service.IsPersistenceError(err))
		assert.Empty(t, token)
		assert.Nil(t, sess)
	})

	t.Run("should report a taken email when a concurrent sign-up wins", func(t *testing.T) {
		users := new(mocks.MockUserStore)
		sessions := new(mocks.MockSessionStore)
		users.On("FindByEmail", ctx, "cook@example.com").Return(nil, nil)
		users.On("Create", ctx, mock.AnythingOfType("*model.User")).Return(service.ErrEmailTaken)

		_, _, err := service.NewAuthService(users, sessions, testSecret, time.Hour).Register(ctx, "cook@example.com", "password123")

		assert.ErrorIs(t, err, service.ErrEmailTaken)
		assert.False(t, service.IsPersistenceError(err))
		sessions.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should require a session to log out", func(t *testing.T) {
		sessions := new(mocks.MockSessionStore)

		err := service.NewAuthService(new(mocks.MockUserStore), sessions, testSecret, time.Hour).Logout(ctx, nil)

		assert.ErrorIs(t, err, service.ErrNotAuthenticated)
		sessions.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("should not open a session for a bad password", func(t *testing.T) {
		users := new(mocks.MockUserStore)
		sessions := new(mocks.MockSessionStore)
		users.On("FindByEmail", ctx, "cook@example.com").Return(&model.User{ID: uuid.New(), PasswordHash: "$2a$10$invalid"}, nil)

		_, _, err := service.NewAuthService(users, sessions, testSecret, time.Hour).Login(ctx, "cook@example.com", "pw")

		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
		sessions.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
	})
}
