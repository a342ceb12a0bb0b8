package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subcategory belongs to a Category. It is the only taxonomy entity that
// supports deletion, keyed by the (category_id, id) composite.
type Subcategory struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CategoryID uuid.UUID      `gorm:"type:uuid;not null;index" json:"category_id"`
	Category   *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Name       string         `gorm:"column:sub_category_name;not null;index" json:"sub_category_name"`
	Icon       string         `json:"icon"` // public URL of the uploaded icon image
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *Subcategory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
