package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"byaura/internal/domain"
	"byaura/pkg/apiclient"
)

func TestLoginEstablishesAdminSession(t *testing.T) {
	admin := &domain.User{ID: 1, Email: "ana@byaura.es", Role: domain.UserRoleAdmin}
	repo := &fakeAuthRepo{
		loginFn: func(ctx context.Context, email, password string) (*domain.LoginResult, error) {
			return &domain.LoginResult{AccessToken: "token-1", TokenType: "bearer", User: admin}, nil
		},
	}
	sessions := &fakeSessions{}
	svc := NewAuthService(repo, sessions, testLogger())

	session, err := svc.Login(context.Background(), "ana@byaura.es", "secret")
	require.NoError(t, err)
	assert.Equal(t, "token-1", session.Token)
	assert.Equal(t, 1, sessions.establishes)
}

func TestLoginRejectsNonAdmin(t *testing.T) {
	repo := &fakeAuthRepo{
		loginFn: func(ctx context.Context, email, password string) (*domain.LoginResult, error) {
			user := &domain.User{ID: 2, Email: "cliente@example.com", Role: domain.UserRoleUser}
			return &domain.LoginResult{AccessToken: "token-2", User: user}, nil
		},
	}
	sessions := &fakeSessions{}
	svc := NewAuthService(repo, sessions, testLogger())

	_, err := svc.Login(context.Background(), "cliente@example.com", "secret")
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	assert.Equal(t, 0, sessions.establishes)
	assert.False(t, sessions.IsAuthenticated())
}

func TestLoginMapsUnauthorizedToInvalidCredentials(t *testing.T) {
	repo := &fakeAuthRepo{
		loginFn: func(ctx context.Context, email, password string) (*domain.LoginResult, error) {
			return nil, &apiclient.RejectedError{StatusCode: http.StatusUnauthorized, Detail: "Incorrect email or password"}
		},
	}
	svc := NewAuthService(repo, &fakeSessions{}, testLogger())

	_, err := svc.Login(context.Background(), "ana@byaura.es", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogoutClearsSession(t *testing.T) {
	sessions := &fakeSessions{session: &domain.Session{Token: "token-1"}}
	svc := NewAuthService(&fakeAuthRepo{}, sessions, testLogger())

	svc.Logout()
	assert.Equal(t, 1, sessions.clears)
	assert.False(t, sessions.IsAuthenticated())
}

func TestChangePasswordRequiresSession(t *testing.T) {
	svc := NewAuthService(&fakeAuthRepo{}, &fakeSessions{}, testLogger())

	err := svc.ChangePassword(context.Background(), "old", "new", "new")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestChangePasswordMismatch(t *testing.T) {
	sessions := &fakeSessions{session: &domain.Session{Token: "token-1"}}
	svc := NewAuthService(&fakeAuthRepo{}, sessions, testLogger())

	err := svc.ChangePassword(context.Background(), "old", "new", "different")
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)
}

func TestChangePasswordSendsPayload(t *testing.T) {
	var got domain.PasswordChangePayload
	repo := &fakeAuthRepo{
		passwordFn: func(ctx context.Context, payload domain.PasswordChangePayload) error {
			got = payload
			return nil
		},
	}
	sessions := &fakeSessions{session: &domain.Session{Token: "token-1"}}
	svc := NewAuthService(repo, sessions, testLogger())

	require.NoError(t, svc.ChangePassword(context.Background(), "old", "new", "new"))
	assert.Equal(t, "old", got.CurrentPassword)
	assert.Equal(t, "new", got.NewPassword)
}
