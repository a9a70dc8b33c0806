package entity

import (
	"strings"
	"time"
)

// User is the aggregate root for the customer account domain.
// PasswordHash holds a bcrypt hash; the plain password never leaves
// the registration/login request scope.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	Newsletter   bool
	AgreedTerms  bool
	AvatarURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name for display ("Welcome back, ...").
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
