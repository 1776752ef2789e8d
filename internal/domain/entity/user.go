// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// An account can originate from the external identity provider (Subject set) or
// from local registration (PasswordHash set); the two are not exclusive.
type User struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Subject      *string    // The identity provider's stable subject identifier. Nil for local-only accounts.
	Email        string     // The user's primary contact email, used as the local login identifier.
	Name         string     // The user's display name or real name.
	Username     *string    // Optional unique handle chosen at local registration.
	PasswordHash *string    // Bcrypt hash of the local password. Nil for federated-only accounts.
	RefreshToken *string    // The single currently valid refresh token. Nil when logged out.
	StudentID    *string    // Optional student number from the provider profile.
	PhoneNumber  *string    // Optional phone number from the provider profile.
	CreatedAt    time.Time  // Timestamp of when this user account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification to this user's data.
}

// HasPassword reports whether the account supports local password login.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
