// Package controllers holds the HTTP handlers. Each controller combines
// field validation, repository calls and JSON response shaping; routing and
// persistence stay outside.
package controllers

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"mentor-booking-backend/models"
)

var validate = validator.New()

// MentorStore is the mentor data access the handlers depend on.
type MentorStore interface {
	FindAll() ([]models.Mentor, error)
	FindByID(id string) (*models.Mentor, error)
	Create(mentor *models.Mentor) error
	Update(id string, upd models.MentorUpdate) (*models.Mentor, error)
	Delete(id string) error
}

// SessionStore is the session data access the handlers depend on.
type SessionStore interface {
	FindAll() ([]models.Session, error)
	FindByID(id string) (*models.Session, error)
	FindByMentor(mentorID string) ([]models.Session, error)
	Create(session *models.Session) error
	Update(id string, upd models.SessionUpdate) (*models.Session, error)
	Delete(id string) error
}

// BookingStore is the booking data access the handlers depend on.
type BookingStore interface {
	FindAll() ([]models.Booking, error)
	FindByID(id string) (*models.Booking, error)
	FindBySession(sessionID string) ([]models.Booking, error)
	FindByUser(userEmail string) ([]models.Booking, error)
	Create(booking *models.Booking) error
	Update(id string, upd models.BookingUpdate) (*models.Booking, error)
	Delete(id string) error
}

// resolveID merges the dual-path routing contexts: the nested route's path
// parameter wins over the body field when both are supplied.
func resolveID(pathID, bodyID string) string {
	if pathID != "" {
		return pathID
	}
	return bodyID
}

// coerceInt accepts a JSON number or a numeric string. Fractional values are
// rejected rather than truncated.
func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	case int:
		return n, true
	}
	return 0, false
}

// coerceFloat accepts a JSON number or a numeric string.
func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case int:
		return float64(n), true
	}
	return 0, false
}
