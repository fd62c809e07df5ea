package model

import (
	"time"

	"fitfamily/internal/domain/entity"

	"github.com/google/uuid"
)

// FoodModel is the GORM model for the foods table. Macro values are per 100 grams.
type FoodModel struct {
	ID              uuid.UUID           `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name            string              `gorm:"type:varchar(100);uniqueIndex;not null"`
	CaloriesPer100g float64             `gorm:"not null"`
	ProteinPer100g  float64             `gorm:"not null"`
	CarbsPer100g    float64             `gorm:"not null"`
	FatPer100g      float64             `gorm:"not null"`
	Portions        []*FoodPortionModel `gorm:"foreignKey:FoodID"`
	CreatedAt       time.Time           `gorm:"not null"`
}

// TableName specifies the table name for FoodModel.
func (FoodModel) TableName() string {
	return "foods"
}

// FoodPortionModel is the GORM model for the food_portions table.
type FoodPortionModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FoodID uuid.UUID `gorm:"type:uuid;not null;index"`
	Label  string    `gorm:"type:varchar(100);not null"`
	Grams  float64   `gorm:"not null"`
}

// TableName specifies the table name for FoodPortionModel.
func (FoodPortionModel) TableName() string {
	return "food_portions"
}

// ToEntity converts the persistence model to a domain entity.
func (m *FoodModel) ToEntity() *entity.Food {
	food := &entity.Food{
		ID:              m.ID,
		Name:            m.Name,
		CaloriesPer100g: m.CaloriesPer100g,
		ProteinPer100g:  m.ProteinPer100g,
		CarbsPer100g:    m.CarbsPer100g,
		FatPer100g:      m.FatPer100g,
		CreatedAt:       m.CreatedAt,
	}
	for _, portion := range m.Portions {
		food.Portions = append(food.Portions, portion.ToEntity())
	}

	return food
}

// ToEntity converts the persistence model to a domain entity.
func (m *FoodPortionModel) ToEntity() *entity.FoodPortion {
	return &entity.FoodPortion{
		ID:     m.ID,
		FoodID: m.FoodID,
		Label:  m.Label,
		Grams:  m.Grams,
	}
}

// FoodModelFromEntity converts a domain entity to the persistence model.
func FoodModelFromEntity(food *entity.Food) *FoodModel {
	m := &FoodModel{
		ID:              food.ID,
		Name:            food.Name,
		CaloriesPer100g: food.CaloriesPer100g,
		ProteinPer100g:  food.ProteinPer100g,
		CarbsPer100g:    food.CarbsPer100g,
		FatPer100g:      food.FatPer100g,
		CreatedAt:       food.CreatedAt,
	}
	for _, portion := range food.Portions {
		m.Portions = append(m.Portions, &FoodPortionModel{
			ID:     portion.ID,
			FoodID: portion.FoodID,
			Label:  portion.Label,
			Grams:  portion.Grams,
		})
	}

	return m
}
