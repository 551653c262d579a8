package repository

import (
	"gorm.io/gorm"

	"mentor-booking-backend/models"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// FindAll returns every booking, newest first, with session and mentor.
func (r *BookingRepository) FindAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("Session.Mentor").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	normalizeBookings(bookings)
	return bookings, nil
}

func (r *BookingRepository) FindByID(id string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.Preload("Session.Mentor").First(&booking, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	normalizeBooking(&booking)
	return &booking, nil
}

// FindBySession returns a session's bookings ordered soonest first.
func (r *BookingRepository) FindBySession(sessionID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("Session.Mentor").
		Where("session_id = ?", sessionID).
		Order("preferred_date_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	normalizeBookings(bookings)
	return bookings, nil
}

// FindByUser returns a user's bookings ordered most recent preferred time first.
func (r *BookingRepository) FindByUser(userEmail string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("Session.Mentor").
		Where("user_email = ?", userEmail).
		Order("preferred_date_time DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	normalizeBookings(bookings)
	return bookings, nil
}

// Create persists the booking and reloads it with session and mentor.
func (r *BookingRepository) Create(booking *models.Booking) error {
	if err := r.db.Create(booking).Error; err != nil {
		return err
	}
	if err := r.db.Preload("Session.Mentor").First(booking, "id = ?", booking.ID).Error; err != nil {
		return err
	}
	normalizeBooking(booking)
	return nil
}

// Update applies the non-nil fields of upd and returns the updated row with
// session and mentor. SessionID is never touched here.
func (r *BookingRepository) Update(id string, upd models.BookingUpdate) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.First(&booking, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	if upd.UserName != nil {
		booking.UserName = *upd.UserName
	}
	if upd.UserEmail != nil {
		booking.UserEmail = *upd.UserEmail
	}
	if upd.PreferredDateTime != nil {
		booking.PreferredDateTime = *upd.PreferredDateTime
	}
	if upd.Message != nil {
		booking.Message = upd.Message
	}
	if err := r.db.Save(&booking).Error; err != nil {
		return nil, err
	}
	if err := r.db.Preload("Session.Mentor").First(&booking, "id = ?", id).Error; err != nil {
		return nil, err
	}
	normalizeBooking(&booking)
	return &booking, nil
}

func normalizeBooking(b *models.Booking) {
	if b.Session != nil {
		normalizeSession(b.Session)
	}
}

func normalizeBookings(bookings []models.Booking) {
	for i := range bookings {
		normalizeBooking(&bookings[i])
	}
}

func (r *BookingRepository) Delete(id string) error {
	res := r.db.Delete(&models.Booking{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
