package domain

import (
	"context"
	"strings"
	"time"
)

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      UserRole  `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// UserDraft carries the create-user form fields before any request is built.
type UserDraft struct {
	Email    string
	FullName string
	Password string
	Role     UserRole
}

func (d *UserDraft) Validate() error {
	var missing []string
	if strings.TrimSpace(d.Email) == "" {
		missing = append(missing, "email")
	}
	if d.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

func (d *UserDraft) RegisterPayload() UserRegisterPayload {
	return UserRegisterPayload{
		Email:    strings.TrimSpace(d.Email),
		FullName: strings.TrimSpace(d.FullName),
		Password: d.Password,
	}
}

// The register endpoint never accepts a role; admins are promoted afterwards
// through the toggle-role transition.
type UserRegisterPayload struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type UserUpdate struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type UserRepository interface {
	List(ctx context.Context) ([]*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	Update(ctx context.Context, id int64, update UserUpdate) (*User, error)
	ToggleRole(ctx context.Context, id int64) (*User, error)
	ToggleActive(ctx context.Context, id int64) (*User, error)
	Delete(ctx context.Context, id int64) error
}

type UserService interface {
	ListUsers(ctx context.Context) ([]*User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	CreateUser(ctx context.Context, draft UserDraft) (*User, error)
	UpdateUser(ctx context.Context, id int64, update UserUpdate) (*User, error)
	ToggleUserRole(ctx context.Context, id int64) (*User, error)
	ToggleUserActive(ctx context.Context, id int64) (*User, error)
	DeleteUser(ctx context.Context, id int64) error
}
