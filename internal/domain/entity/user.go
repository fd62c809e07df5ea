// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a registered account.
// A user optionally belongs to exactly one family at a time.
type User struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Name         string     // The user's display name.
	Email        string     // The user's login identifier. Globally unique.
	PasswordHash string     // One-way bcrypt hash of the user's password.
	Role         Role       // ADMIN iff the user created the family they belong to, MEMBER otherwise.
	FamilyID     *uuid.UUID // Foreign key of the family the user belongs to. Nil if the user has no family.
	Family       *Family    // The family the user belongs to. Nil if the user has no family.
	CreatedAt    time.Time  // Timestamp of when this account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification to this account.
}

// HasFamily reports whether the user currently belongs to a family.
func (u *User) HasFamily() bool {
	return u.FamilyID != nil
}
