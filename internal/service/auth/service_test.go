package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-account/internal/config"
	"social-account/internal/domain"
	"social-account/internal/mocks"
	"social-account/internal/service/auth"
)

func newAuth() (auth.Service, *mocks.UserRepository, *mocks.ProfileRepository) {
	users := new(mocks.UserRepository)
	profiles := new(mocks.ProfileRepository)
	cfg := &config.Config{JWTSecret: "test-secret", JWTAccessExpiry: time.Minute}
	return auth.NewService(users, profiles, cfg), users, profiles
}

func TestAuthService_AccessToken(t *testing.T) {
	svc, _, _ := newAuth()

	token, err := svc.IssueAccessToken(&domain.User{ID: 42, Email: "jane@example.com"})
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)

	t.Run("Wrong Secret", func(t *testing.T) {
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{UserID: 42})
		s, err := forged.SignedString([]byte("other"))
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(s)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		old := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
			UserID: 42,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})
		s, err := old.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(s)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestAuthService_ResolveAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, users, profiles := newAuth()
		users.On("GetByID", ctx, int64(42)).Return(&domain.User{ID: 42}, nil).Once()
		profiles.On("GetByUserID", ctx, int64(42)).Return(&domain.Profile{ID: 7, UserID: 42}, nil).Once()

		user, profile, err := svc.ResolveAccount(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), user.ID)
		assert.Equal(t, int64(7), profile.ID)
	})

	t.Run("No Profile", func(t *testing.T) {
		svc, users, profiles := newAuth()
		users.On("GetByID", ctx, int64(42)).Return(&domain.User{ID: 42}, nil).Once()
		profiles.On("GetByUserID", ctx, int64(42)).Return(nil, nil).Once()

		_, _, err := svc.ResolveAccount(ctx, 42)
		assert.ErrorIs(t, err, auth.ErrProfileNotFound)
	})
}
