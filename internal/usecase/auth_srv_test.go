package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-booking/internal/data/entity"
	"clinic-booking/internal/data/repository"
	"clinic-booking/internal/dto/request"
	"clinic-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthFixture() (*repository.Repository, *fakeUserRepo, *fakeSessionRepo) {
	users := &fakeUserRepo{}
	sessions := &fakeSessionRepo{}
	repo := &repository.Repository{
		User:    users,
		Session: sessions,
		Counter: &fakeCounterRepo{},
	}
	return repo, users, sessions
}

func authConfig() *utils.Config {
	return &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
	}
}

func TestRegisterAssignsSequentialID(t *testing.T) {
	repo, users, _ := newAuthFixture()
	svc := NewAuthService(repo, authConfig(), zap.NewNop())

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret-pass",
		FullName: "Alice Wong",
	})
	require.NoError(t, err)

	assert.Equal(t, "U001", resp.UserID)
	assert.Equal(t, string(entity.RolePatient), resp.Role)

	user := users.byID["U001"]
	require.NotNil(t, user)
	assert.Equal(t, entity.UserStatusActive, user.Status)
	// Stored hash, never the plaintext.
	assert.NotEqual(t, "secret-pass", user.PasswordHash)
	assert.True(t, utils.CheckPassword(user.PasswordHash, "secret-pass"))

	resp2, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "bob@example.com",
		Password: "another-pass",
		FullName: "Bob Lee",
	})
	require.NoError(t, err)
	assert.Equal(t, "U002", resp2.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo, _, _ := newAuthFixture()
	svc := NewAuthService(repo, authConfig(), zap.NewNop())

	req := &request.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret-pass",
		FullName: "Alice Wong",
	}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestLoginCreatesSession(t *testing.T) {
	repo, _, sessions := newAuthFixture()
	svc := NewAuthService(repo, authConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret-pass",
		FullName: "Alice Wong",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret-pass",
	}, "test-agent", "127.0.0.1")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	require.Len(t, sessions.created, 1)
	session := sessions.created[0]
	assert.Equal(t, "U001", session.UserID)
	assert.Equal(t, "test-agent", session.UserAgent)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), session.ExpiresAt, time.Minute)
}

func TestLoginWrongPassword(t *testing.T) {
	repo, _, _ := newAuthFixture()
	svc := NewAuthService(repo, authConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret-pass",
		FullName: "Alice Wong",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	}, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestLoginInactiveAccount(t *testing.T) {
	repo, users, _ := newAuthFixture()
	svc := NewAuthService(repo, authConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret-pass",
		FullName: "Alice Wong",
	})
	require.NoError(t, err)
	users.byEmail["alice@example.com"].Status = entity.UserStatusInactive

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret-pass",
	}, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not active")
}

func TestLogoutRevokesSession(t *testing.T) {
	repo, _, sessions := newAuthFixture()
	svc := NewAuthService(repo, authConfig(), zap.NewNop())

	err := svc.Logout(context.Background(), "some-token")
	require.NoError(t, err)
	assert.Equal(t, []string{"some-token"}, sessions.revoked)
}
