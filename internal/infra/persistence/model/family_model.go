package model

import (
	"time"

	"fitfamily/internal/domain/entity"

	"github.com/google/uuid"
)

// FamilyModel is the GORM model for the families table.
type FamilyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	JoinCode  string    `gorm:"type:varchar(8);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for FamilyModel.
func (FamilyModel) TableName() string {
	return "families"
}

// ToEntity converts the persistence model to a domain entity.
func (m *FamilyModel) ToEntity() *entity.Family {
	return &entity.Family{
		ID:        m.ID,
		Name:      m.Name,
		JoinCode:  m.JoinCode,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FamilyModelFromEntity converts a domain entity to the persistence model.
func FamilyModelFromEntity(family *entity.Family) *FamilyModel {
	return &FamilyModel{
		ID:        family.ID,
		Name:      family.Name,
		JoinCode:  family.JoinCode,
		CreatedAt: family.CreatedAt,
		UpdatedAt: family.UpdatedAt,
	}
}
