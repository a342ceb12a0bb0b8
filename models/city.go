package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// City belongs to both a Country and a State; the state must belong to the
// same country.
type City struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CountryID uuid.UUID      `gorm:"type:uuid;not null;index" json:"country_id"`
	StateID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"state_id"`
	Country   *Country       `gorm:"foreignKey:CountryID" json:"country,omitempty"`
	State     *State         `gorm:"foreignKey:StateID" json:"state,omitempty"`
	Name      string         `gorm:"column:city_name;not null" json:"city_name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *City) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
