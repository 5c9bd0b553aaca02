// internal/domain/user/entity.go
package user

import (
	"errors"
	"strings"
	"time"
)

// User is the Firestore mirror of one Firebase Auth account. The document
// ID equals the Auth UID, which is what makes the sync idempotent.
type User struct {
	UID         string    `firestore:"-" json:"uid"`
	Email       string    `firestore:"email" json:"email"`
	Name        string    `firestore:"name" json:"name"`
	Role        Role      `firestore:"role" json:"role"`
	Permissions []string  `firestore:"permissions" json:"permissions"`
	IsActive    bool      `firestore:"is_active" json:"is_active"`
	CreatedAt   time.Time `firestore:"created_at,serverTimestamp" json:"created_at"`
}

// Patch carries the fields the sync is allowed to rewrite on an existing
// document. created_at is deliberately absent: it survives every re-sync.
type Patch struct {
	Name        string
	Role        Role
	Permissions []string
	IsActive    bool
}

// Errors (single source)
var (
	ErrNotFound     = errors.New("user: not found")
	ErrInvalidUID   = errors.New("user: invalid uid")
	ErrInvalidEmail = errors.New("user: invalid email")
	ErrInvalidRole  = errors.New("user: invalid role")
)

func (u User) validate() error {
	if strings.TrimSpace(u.UID) == "" {
		return ErrInvalidUID
	}
	if strings.TrimSpace(u.Email) == "" {
		return ErrInvalidEmail
	}
	if !IsValidRole(u.Role) {
		return ErrInvalidRole
	}
	return nil
}

// New builds an active user document for the given account. Role and
// permissions are expected to come from AssignRole.
func New(uid, email, name string, role Role, permissions []string) (User, error) {
	u := User{
		UID:         strings.TrimSpace(uid),
		Email:       strings.TrimSpace(email),
		Name:        strings.TrimSpace(name),
		Role:        role,
		Permissions: permissions,
		IsActive:    true,
	}
	if err := u.validate(); err != nil {
		return User{}, err
	}
	return u, nil
}
