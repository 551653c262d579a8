package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Mentor offers one or more bookable sessions.
type Mentor struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Bio       string    `gorm:"type:text;not null" json:"bio"`
	Sessions  []Session `gorm:"foreignKey:MentorID;constraint:OnDelete:RESTRICT" json:"sessions"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *Mentor) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MentorUpdate carries a partial update; nil fields keep their prior value.
type MentorUpdate struct {
	Name *string `json:"name"`
	Bio  *string `json:"bio"`
}
