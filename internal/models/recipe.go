package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe is a stored recipe. IDs are assigned on creation and remain valid
// for GET/PATCH/DELETE until the row is removed; deletes are hard deletes.
type Recipe struct {
	ID         uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Difficulty int       `json:"difficulty"`
	Vegetarian bool      `json:"vegetarian"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
