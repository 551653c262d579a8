package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"mentor-booking-backend/models"
	"mentor-booking-backend/repository"
	"mentor-booking-backend/validation"
)

type BookingController struct {
	bookings BookingStore
	sessions SessionStore
	log      zerolog.Logger
}

func NewBookingController(bookings BookingStore, sessions SessionStore, log zerolog.Logger) *BookingController {
	return &BookingController{bookings: bookings, sessions: sessions, log: log}
}

func (h *BookingController) List(c echo.Context) error {
	bookings, err := h.bookings.FindAll()
	if err != nil {
		h.log.Error().Err(err).Msg("failed to fetch bookings")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch bookings"})
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *BookingController) Get(c echo.Context) error {
	id := c.Param("id")

	booking, err := h.bookings.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Booking not found"})
		}
		h.log.Error().Err(err).Str("booking_id", id).Msg("failed to fetch booking")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch booking"})
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *BookingController) ListBySession(c echo.Context) error {
	sessionID := c.Param("sessionId")

	bookings, err := h.bookings.FindBySession(sessionID)
	if err != nil {
		h.log.Error().Err(err).Str("session_id", sessionID).Msg("failed to fetch bookings")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch bookings"})
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *BookingController) ListByUser(c echo.Context) error {
	userEmail := c.Param("userEmail")

	bookings, err := h.bookings.FindByUser(userEmail)
	if err != nil {
		h.log.Error().Err(err).Str("user_email", userEmail).Msg("failed to fetch bookings")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch bookings"})
	}
	return c.JSON(http.StatusOK, bookings)
}

type createBookingRequest struct {
	UserName          string  `json:"userName" validate:"required"`
	UserEmail         string  `json:"userEmail" validate:"required"`
	PreferredDateTime string  `json:"preferredDateTime" validate:"required"`
	Message           *string `json:"message"`
	SessionID         string  `json:"sessionId"`
}

// Create serves both POST /api/bookings and POST /api/sessions/:id/bookings;
// a session id in the path takes precedence over one in the body.
func (h *BookingController) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	sessionID := resolveID(c.Param("id"), req.SessionID)
	if validate.Struct(&req) != nil || sessionID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "userName, userEmail, preferredDateTime, and sessionId are required",
		})
	}

	if _, err := h.sessions.FindByID(sessionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Session not found"})
		}
		h.log.Error().Err(err).Str("session_id", sessionID).Msg("failed to verify session")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create booking"})
	}

	if validation.ValidateEmail(req.UserEmail) != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid email format"})
	}

	preferred, err := validation.ValidateFutureDate(req.PreferredDateTime, time.Now())
	if err != nil {
		if errors.Is(err, validation.ErrPastDate) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Preferred date must be in the future"})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid date format"})
	}

	booking := models.Booking{
		UserName:          req.UserName,
		UserEmail:         req.UserEmail,
		PreferredDateTime: preferred,
		Message:           req.Message,
		SessionID:         sessionID,
	}
	if err := h.bookings.Create(&booking); err != nil {
		h.log.Error().Err(err).Str("session_id", sessionID).Msg("failed to create booking")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create booking"})
	}
	return c.JSON(http.StatusCreated, booking)
}

type updateBookingRequest struct {
	UserName          *string `json:"userName"`
	UserEmail         *string `json:"userEmail"`
	PreferredDateTime *string `json:"preferredDateTime"`
	Message           *string `json:"message"`
}

// Update validates only the fields present in the partial payload with the
// same rules as create; empty strings count as absent. SessionID is immutable
// and ignored here.
func (h *BookingController) Update(c echo.Context) error {
	id := c.Param("id")

	var req updateBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	var upd models.BookingUpdate
	if req.UserName != nil && *req.UserName != "" {
		upd.UserName = req.UserName
	}
	if req.UserEmail != nil && *req.UserEmail != "" {
		if validation.ValidateEmail(*req.UserEmail) != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid email format"})
		}
		upd.UserEmail = req.UserEmail
	}
	if req.PreferredDateTime != nil && *req.PreferredDateTime != "" {
		preferred, err := validation.ValidateFutureDate(*req.PreferredDateTime, time.Now())
		if err != nil {
			if errors.Is(err, validation.ErrPastDate) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "Preferred date must be in the future"})
			}
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid date format"})
		}
		upd.PreferredDateTime = &preferred
	}
	if req.Message != nil {
		upd.Message = req.Message
	}

	booking, err := h.bookings.Update(id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Booking not found"})
		}
		h.log.Error().Err(err).Str("booking_id", id).Msg("failed to update booking")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update booking"})
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *BookingController) Delete(c echo.Context) error {
	id := c.Param("id")

	if err := h.bookings.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Booking not found"})
		}
		h.log.Error().Err(err).Str("booking_id", id).Msg("failed to delete booking")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete booking"})
	}
	return c.NoContent(http.StatusNoContent)
}
