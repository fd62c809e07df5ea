// Package model defines the GORM persistence models and their mappings to domain entities.
package model

import (
	"time"

	"fitfamily/internal/domain/entity"

	"github.com/google/uuid"
)

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID           uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string       `gorm:"type:varchar(100);not null"`
	Email        string       `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string       `gorm:"type:varchar(255);not null"`
	Role         string       `gorm:"type:varchar(16);not null;default:'MEMBER'"`
	FamilyID     *uuid.UUID   `gorm:"type:uuid;index"`
	Family       *FamilyModel `gorm:"foreignKey:FamilyID"`
	CreatedAt    time.Time    `gorm:"not null"`
	UpdatedAt    time.Time    `gorm:"not null"`
}

// TableName specifies the table name for UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts the persistence model to a domain entity.
func (m *UserModel) ToEntity() *entity.User {
	user := &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entity.Role(m.Role),
		FamilyID:     m.FamilyID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Family != nil {
		user.Family = m.Family.ToEntity()
	}

	return user
}

// UserModelFromEntity converts a domain entity to the persistence model.
func UserModelFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		FamilyID:     user.FamilyID,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
