package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill is a bilingual portfolio skill entry. Skills carry no
// persisted slug; the public slug is derived from the localized
// title at read time.
type Skill struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	TitleVI       string    `gorm:"not null" json:"title_vi"`
	TitleEN       string    `gorm:"not null" json:"title_en"`
	DescriptionVI string    `gorm:"type:text;not null" json:"description_vi"`
	DescriptionEN string    `gorm:"type:text;not null" json:"description_en"`
	IconURL       *string   `json:"icon_url"`
	Highlighted   bool      `gorm:"not null;default:false" json:"highlighted"`
	DisplayOrder  int       `gorm:"not null;default:0;index" json:"display_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (Skill) TableName() string {
	return "skills"
}

// BeforeCreate assigns a UUID primary key.
func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
