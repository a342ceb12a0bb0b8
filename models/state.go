package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// State belongs to a Country.
type State struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CountryID uuid.UUID      `gorm:"type:uuid;not null;index" json:"country_id"`
	Country   *Country       `gorm:"foreignKey:CountryID" json:"country,omitempty"`
	Name      string         `gorm:"column:state_name;not null;index" json:"state_name"`
	ShortName string         `gorm:"column:short_name" json:"short_name"`
	GST       string         `gorm:"column:gst" json:"gst"` // tax registration code
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Cities    []City         `gorm:"foreignKey:StateID" json:"cities,omitempty"`
}

func (s *State) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
