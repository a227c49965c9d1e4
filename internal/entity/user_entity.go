package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleAgent UserRole = "agent"
	UserRoleAdmin UserRole = "admin"
)

// User is a CRM agent. Visitors are never users; they exist only as
// chat session identities.
type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func (u *User) DisplayName() string {
	name := u.FirstName + " " + u.LastName
	if name == " " {
		return u.Email
	}
	return name
}
