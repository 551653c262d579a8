package repository

import (
	"gorm.io/gorm"

	"mentor-booking-backend/models"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// FindAll returns every session with its mentor and bookings.
func (r *SessionRepository) FindAll() ([]models.Session, error) {
	var sessions []models.Session
	if err := r.db.Preload("Mentor").Preload("Bookings").Find(&sessions).Error; err != nil {
		return nil, err
	}
	for i := range sessions {
		normalizeSession(&sessions[i])
	}
	return sessions, nil
}

func (r *SessionRepository) FindByID(id string) (*models.Session, error) {
	var session models.Session
	if err := r.db.Preload("Mentor").Preload("Bookings").First(&session, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	normalizeSession(&session)
	return &session, nil
}

// FindByMentor returns the mentor's sessions. An unknown mentor id yields an
// empty list, not an error.
func (r *SessionRepository) FindByMentor(mentorID string) ([]models.Session, error) {
	var sessions []models.Session
	err := r.db.Preload("Mentor").Preload("Bookings").
		Where("mentor_id = ?", mentorID).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		normalizeSession(&sessions[i])
	}
	return sessions, nil
}

// Create persists the session and reloads it with the mentor relation.
func (r *SessionRepository) Create(session *models.Session) error {
	if err := r.db.Create(session).Error; err != nil {
		return err
	}
	if err := r.db.Preload("Mentor").First(session, "id = ?", session.ID).Error; err != nil {
		return err
	}
	normalizeSession(session)
	return nil
}

// Update applies the non-nil fields of upd and returns the updated row with
// its mentor relation. MentorID is never touched here.
func (r *SessionRepository) Update(id string, upd models.SessionUpdate) (*models.Session, error) {
	var session models.Session
	if err := r.db.First(&session, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	if upd.Title != nil {
		session.Title = *upd.Title
	}
	if upd.Description != nil {
		session.Description = *upd.Description
	}
	if upd.Duration != nil {
		session.Duration = *upd.Duration
	}
	if upd.Price != nil {
		session.Price = *upd.Price
	}
	if err := r.db.Save(&session).Error; err != nil {
		return nil, err
	}
	if err := r.db.Preload("Mentor").First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	normalizeSession(&session)
	return &session, nil
}

func (r *SessionRepository) Delete(id string) error {
	res := r.db.Delete(&models.Session{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func normalizeSession(s *models.Session) {
	if s.Bookings == nil {
		s.Bookings = []models.Booking{}
	}
	if s.Mentor != nil && s.Mentor.Sessions == nil {
		s.Mentor.Sessions = []models.Session{}
	}
}
