package repository

import (
	"gorm.io/gorm"

	"mentor-booking-backend/models"
)

type MentorRepository struct {
	db *gorm.DB
}

func NewMentorRepository(db *gorm.DB) *MentorRepository {
	return &MentorRepository{db: db}
}

// FindAll returns every mentor with their sessions.
func (r *MentorRepository) FindAll() ([]models.Mentor, error) {
	var mentors []models.Mentor
	if err := r.db.Preload("Sessions").Find(&mentors).Error; err != nil {
		return nil, err
	}
	for i := range mentors {
		normalizeMentor(&mentors[i])
	}
	return mentors, nil
}

// FindByID returns one mentor with sessions and each session's bookings.
func (r *MentorRepository) FindByID(id string) (*models.Mentor, error) {
	var mentor models.Mentor
	if err := r.db.Preload("Sessions.Bookings").First(&mentor, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	normalizeMentor(&mentor)
	return &mentor, nil
}

func (r *MentorRepository) Create(mentor *models.Mentor) error {
	if err := r.db.Create(mentor).Error; err != nil {
		return err
	}
	normalizeMentor(mentor)
	return nil
}

// Update applies the non-nil fields of upd and returns the updated row.
func (r *MentorRepository) Update(id string, upd models.MentorUpdate) (*models.Mentor, error) {
	var mentor models.Mentor
	if err := r.db.First(&mentor, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	if upd.Name != nil {
		mentor.Name = *upd.Name
	}
	if upd.Bio != nil {
		mentor.Bio = *upd.Bio
	}
	if err := r.db.Save(&mentor).Error; err != nil {
		return nil, err
	}
	normalizeMentor(&mentor)
	return &mentor, nil
}

func (r *MentorRepository) Delete(id string) error {
	res := r.db.Delete(&models.Mentor{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// normalizeMentor keeps relation slices non-nil so listings render as [].
func normalizeMentor(m *models.Mentor) {
	if m.Sessions == nil {
		m.Sessions = []models.Session{}
	}
	for i := range m.Sessions {
		if m.Sessions[i].Bookings == nil {
			m.Sessions[i].Bookings = []models.Booking{}
		}
	}
}
