package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is a bookable offering template owned by a mentor. Duration is in
// minutes. MentorID is immutable after creation.
type Session struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Duration    int       `gorm:"not null" json:"duration"`
	Price       float64   `gorm:"not null" json:"price"`
	MentorID    string    `gorm:"type:uuid;index;not null" json:"mentorId"`
	Mentor      *Mentor   `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`
	Bookings    []Booking `gorm:"foreignKey:SessionID;constraint:OnDelete:RESTRICT" json:"bookings"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// SessionUpdate carries a partial update; nil fields keep their prior value.
type SessionUpdate struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Duration    *int     `json:"duration"`
	Price       *float64 `json:"price"`
}
