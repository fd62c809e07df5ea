package entity

import (
	"time"

	"github.com/google/uuid"
)

// Food is immutable reference data describing nutrition values per 100 grams.
// The catalog is seeded once at startup and treated as read-only afterwards.
type Food struct {
	ID              uuid.UUID      // The Global Unique Identifier (GUID) for the food.
	Name            string         // Unique food name, e.g. "Chicken Breast".
	CaloriesPer100g float64        // Calories per 100 grams.
	ProteinPer100g  float64        // Protein grams per 100 grams.
	CarbsPer100g    float64        // Carbohydrate grams per 100 grams.
	FatPer100g      float64        // Fat grams per 100 grams.
	Portions        []*FoodPortion // Named gram-weight references for this food.
	CreatedAt       time.Time      // Timestamp of when this food was seeded.
}

// FoodPortion is a named gram weight for a food, used to scale its per-100g values.
type FoodPortion struct {
	ID     uuid.UUID // The Global Unique Identifier (GUID) for the portion.
	FoodID uuid.UUID // Foreign key of the owning food.
	Label  string    // Human-readable label, e.g. "1 cup (cooked)".
	Grams  float64   // Gram weight of the portion.
}
