package entity

import (
	"time"

	"github.com/google/uuid"
)

// FoodLog records a single consumption event. Macro values are computed from the
// catalog at creation time, so later catalog edits never rewrite history.
// FamilyID is a snapshot of the user's family at the moment the log was created;
// it is not updated if the user later joins a different family.
type FoodLog struct {
	ID        uuid.UUID    // The Global Unique Identifier (GUID) for the log entry.
	UserID    uuid.UUID    // Foreign key of the owning user.
	User      *User        // The owning user. Populated on reads that need the owner's name.
	FamilyID  *uuid.UUID   // Snapshot of the owner's family at creation time. Nil for family-less users.
	FoodID    uuid.UUID    // Foreign key of the logged food.
	Food      *Food        // The logged food. Populated on reads.
	PortionID uuid.UUID    // Foreign key of the logged portion.
	Portion   *FoodPortion // The logged portion. Populated on reads.
	Calories  float64      // Computed calories for the portion.
	Protein   float64      // Computed protein grams for the portion.
	Carbs     float64      // Computed carbohydrate grams for the portion.
	Fat       float64      // Computed fat grams for the portion.
	MealType  MealType     // Which meal the entry belongs to.
	Date      time.Time    // Calendar date of the entry (server clock at creation).
	CreatedAt time.Time    // Timestamp of when this entry was created.
}
