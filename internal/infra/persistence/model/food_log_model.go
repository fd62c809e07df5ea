package model

import (
	"time"

	"fitfamily/internal/domain/entity"

	"github.com/google/uuid"
)

// FoodLogModel is the GORM model for the food_logs table. Macro columns hold
// the values computed at logging time; family_id is a snapshot of the user's
// membership when the entry was created.
type FoodLogModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;index:idx_food_logs_user_date"`
	User      *UserModel        `gorm:"foreignKey:UserID"`
	FamilyID  *uuid.UUID        `gorm:"type:uuid;index:idx_food_logs_family_date"`
	FoodID    uuid.UUID         `gorm:"type:uuid;not null"`
	Food      *FoodModel        `gorm:"foreignKey:FoodID"`
	PortionID uuid.UUID         `gorm:"type:uuid;not null"`
	Portion   *FoodPortionModel `gorm:"foreignKey:PortionID"`
	Calories  float64           `gorm:"not null"`
	Protein   float64           `gorm:"not null"`
	Carbs     float64           `gorm:"not null"`
	Fat       float64           `gorm:"not null"`
	MealType  string            `gorm:"type:varchar(16);not null"`
	Date      time.Time         `gorm:"type:date;not null;index:idx_food_logs_user_date;index:idx_food_logs_family_date"`
	CreatedAt time.Time         `gorm:"not null"`
}

// TableName specifies the table name for FoodLogModel.
func (FoodLogModel) TableName() string {
	return "food_logs"
}

// ToEntity converts the persistence model to a domain entity.
func (m *FoodLogModel) ToEntity() *entity.FoodLog {
	log := &entity.FoodLog{
		ID:        m.ID,
		UserID:    m.UserID,
		FamilyID:  m.FamilyID,
		FoodID:    m.FoodID,
		PortionID: m.PortionID,
		Calories:  m.Calories,
		Protein:   m.Protein,
		Carbs:     m.Carbs,
		Fat:       m.Fat,
		MealType:  entity.MealType(m.MealType),
		Date:      m.Date,
		CreatedAt: m.CreatedAt,
	}
	if m.User != nil {
		log.User = m.User.ToEntity()
	}
	if m.Food != nil {
		log.Food = m.Food.ToEntity()
	}
	if m.Portion != nil {
		log.Portion = m.Portion.ToEntity()
	}

	return log
}

// FoodLogModelFromEntity converts a domain entity to the persistence model.
func FoodLogModelFromEntity(log *entity.FoodLog) *FoodLogModel {
	return &FoodLogModel{
		ID:        log.ID,
		UserID:    log.UserID,
		FamilyID:  log.FamilyID,
		FoodID:    log.FoodID,
		PortionID: log.PortionID,
		Calories:  log.Calories,
		Protein:   log.Protein,
		Carbs:     log.Carbs,
		Fat:       log.Fat,
		MealType:  string(log.MealType),
		Date:      log.Date,
		CreatedAt: log.CreatedAt,
	}
}
