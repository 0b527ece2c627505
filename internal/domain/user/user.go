package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"subcommerce/internal/shared/biztime"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailAlreadyTaken = errors.New("email already taken")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidName       = errors.New("name is required")
)

type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	role         Role
	lastLoginAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

var nameCaser = cases.Title(language.Und, cases.NoLower)

// NewUser registers a regular user. The email is lower-cased and the name
// title-cased.
func NewUser(name, email, passwordHash string) (*User, error) {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return nil, ErrInvalidName
	}
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &User{
		name:         nameCaser.String(name),
		email:        email,
		passwordHash: passwordHash,
		role:         RoleUser,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return email, nil
}

// NormalizeEmail exposes the lookup form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) RecordLogin(now time.Time) {
	u.lastLoginAt = &now
	u.updatedAt = now
}

func (u *User) AssignRole(role Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) LastLoginAt() *time.Time {
	return u.lastLoginAt
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) {
	u.id = id
}

type ReconstructParams struct {
	ID           uint
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ReconstructUser(p ReconstructParams) *User {
	role := p.Role
	if !role.IsValid() {
		role = RoleUser
	}
	return &User{
		id:           p.ID,
		name:         p.Name,
		email:        p.Email,
		passwordHash: p.PasswordHash,
		role:         role,
		lastLoginAt:  p.LastLoginAt,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}
}
