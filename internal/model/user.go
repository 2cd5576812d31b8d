package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
// List returns users ordered by creation time, newest first.
type UserStore interface {
	List(ctx context.Context) ([]User, error)
	Insert(ctx context.Context, user NewUser) (User, error)
	Update(ctx context.Context, id uuid.UUID, patch UserPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// User represents a stored user record.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Status    Status
	CreatedAt time.Time
}

// Status enumerates user account states.
type Status string

const (
	// StatusActive marks an active user.
	StatusActive Status = "active"
	// StatusInactive marks an inactive user.
	StatusInactive Status = "inactive"
)

// ParseStatus converts free-form input into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.TrimSpace(s)) {
	case StatusActive:
		return StatusActive, nil
	case StatusInactive:
		return StatusInactive, nil
	default:
		return "", fmt.Errorf("unknown status %q", s)
	}
}

// NewUser carries the client-owned fields of a user to be inserted.
type NewUser struct {
	Name   string
	Email  string
	Phone  string
	Status Status
}

// UserPatch is a partial update. Nil fields are left unchanged.
type UserPatch struct {
	Name   *string
	Email  *string
	Phone  *string
	Status *Status
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Status == nil
}

// Draft holds user-entered form values that are not yet validated.
type Draft struct {
	Name   string
	Email  string
	Phone  string
	Status string
}

// DraftFromUser pre-fills an edit form with the values of an existing user.
func DraftFromUser(u User) Draft {
	return Draft{
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		Status: string(u.Status),
	}
}

// NewUser converts the draft into insertable fields.
// Text fields are trimmed and an empty status defaults to active.
func (d Draft) NewUser() NewUser {
	status := Status(strings.TrimSpace(d.Status))
	if status == "" {
		status = StatusActive
	}

	return NewUser{
		Name:   strings.TrimSpace(d.Name),
		Email:  strings.TrimSpace(d.Email),
		Phone:  strings.TrimSpace(d.Phone),
		Status: status,
	}
}

// Patch converts the draft into a patch that replaces every editable field.
func (d Draft) Patch() UserPatch {
	u := d.NewUser()
	return UserPatch{
		Name:   &u.Name,
		Email:  &u.Email,
		Phone:  &u.Phone,
		Status: &u.Status,
	}
}
