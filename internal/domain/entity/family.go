package entity

import (
	"time"

	"github.com/google/uuid"
)

// Family is a group of users whose food logs are jointly visible.
// The join code is generated once at creation and never changes.
type Family struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the family.
	Name      string    // Human-readable family name.
	JoinCode  string    // Globally unique, immutable code in the form FIT-XXXX.
	CreatedAt time.Time // Timestamp of when this family was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
