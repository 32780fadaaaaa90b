package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamehub/internal/api/repository"
	"gamehub/internal/api/service"
	"gamehub/internal/config"
)

func newAuthService(t *testing.T) service.AuthService {
	t.Helper()
	db := setupTestDB(t)
	cfg := &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}
	return service.NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("alice", "s3cret-pass", "alice@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "s3cret-pass", user.Password)

	t.Run("DuplicateUsername", func(t *testing.T) {
		_, err := svc.Register("alice", "other-pass", "alice2@example.com")
		assert.ErrorIs(t, err, service.ErrNameInUse)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := svc.Register("alice2", "other-pass", "alice@example.com")
		assert.ErrorIs(t, err, service.ErrEmailInUse)
	})

	t.Run("LoginSucceeds", func(t *testing.T) {
		token, logged, err := svc.Login("alice", "s3cret-pass")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, user.ID, logged.ID)
	})

	t.Run("LoginRecordsTimestamp", func(t *testing.T) {
		assert.Nil(t, user.LastLogin)

		_, logged, err := svc.Login("alice", "s3cret-pass")
		require.NoError(t, err)
		require.NotNil(t, logged.LastLogin)
		assert.WithinDuration(t, time.Now(), *logged.LastLogin, time.Minute)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, _, err := svc.Login("alice", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		_, _, err := svc.Login("nobody", "whatever")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestValidateToken(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("bob", "hunter2-long", "bob@example.com")
	require.NoError(t, err)
	token, _, err := svc.Login("bob", "hunter2-long")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "bob", claims.Username)

	t.Run("GarbageToken", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.Error(t, err)
	})
}
