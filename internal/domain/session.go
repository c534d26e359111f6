package domain

import "context"

// Session pairs the bearer token with the identity it belongs to. Both are
// always present together; a half-persisted pair is treated as no session.
type Session struct {
	Token string
	User  *User
}

// LoginResult is the wire shape of POST /auth/login.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        *User  `json:"user"`
}

type PasswordChangePayload struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type AuthRepository interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, payload UserRegisterPayload) (*User, error)
	ChangePassword(ctx context.Context, payload PasswordChangePayload) error
}

// SessionStore holds the authenticated identity for the running process and
// mirrors it into durable storage so the session survives restarts.
type SessionStore interface {
	Restore() error
	Establish(token string, user *User) error
	Clear()
	Current() *Session
	IsAuthenticated() bool
	AuthHeader() (string, bool)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Logout()
	ChangePassword(ctx context.Context, current, newPassword, confirm string) error
}
