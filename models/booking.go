package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking is a user's request to attend a session at a preferred date/time.
// There is no confirmation workflow; a booking is a plain record.
type Booking struct {
	ID                string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserName          string    `gorm:"size:255;not null" json:"userName"`
	UserEmail         string    `gorm:"size:255;not null;index" json:"userEmail"`
	PreferredDateTime time.Time `gorm:"not null" json:"preferredDateTime"`
	Message           *string   `gorm:"type:text" json:"message"`
	SessionID         string    `gorm:"type:uuid;index;not null" json:"sessionId"`
	Session           *Session  `gorm:"foreignKey:SessionID" json:"session,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// BookingUpdate carries a partial update; nil fields keep their prior value.
type BookingUpdate struct {
	UserName          *string    `json:"userName"`
	UserEmail         *string    `json:"userEmail"`
	PreferredDateTime *time.Time `json:"preferredDateTime"`
	Message           *string    `json:"message"`
}
