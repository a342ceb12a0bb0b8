package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Country is the root of the geographic hierarchy. Names are stored
// title-cased and must be unique.
type Country struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string         `gorm:"uniqueIndex;not null" json:"name"`
	Flag      string         `json:"flag"` // public URL of the uploaded flag image
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	States    []State        `gorm:"foreignKey:CountryID" json:"states,omitempty"`
}

func (c *Country) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
