package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"mentor-booking-backend/models"
	"mentor-booking-backend/repository"
)

type SessionController struct {
	sessions SessionStore
	mentors  MentorStore
	log      zerolog.Logger
}

func NewSessionController(sessions SessionStore, mentors MentorStore, log zerolog.Logger) *SessionController {
	return &SessionController{sessions: sessions, mentors: mentors, log: log}
}

func (h *SessionController) List(c echo.Context) error {
	sessions, err := h.sessions.FindAll()
	if err != nil {
		h.log.Error().Err(err).Msg("failed to fetch sessions")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch sessions"})
	}
	return c.JSON(http.StatusOK, sessions)
}

func (h *SessionController) Get(c echo.Context) error {
	id := c.Param("id")

	session, err := h.sessions.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Session not found"})
		}
		h.log.Error().Err(err).Str("session_id", id).Msg("failed to fetch session")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch session"})
	}
	return c.JSON(http.StatusOK, session)
}

// ListByMentor serves both GET /api/mentors/:id/sessions and
// GET /api/sessions/mentor/:mentorId. An unknown mentor yields an empty list.
func (h *SessionController) ListByMentor(c echo.Context) error {
	mentorID := resolveID(c.Param("id"), c.Param("mentorId"))

	sessions, err := h.sessions.FindByMentor(mentorID)
	if err != nil {
		h.log.Error().Err(err).Str("mentor_id", mentorID).Msg("failed to fetch sessions")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch sessions"})
	}
	return c.JSON(http.StatusOK, sessions)
}

type createSessionRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Duration    any    `json:"duration" validate:"required"`
	Price       any    `json:"price" validate:"required"`
	MentorID    string `json:"mentorId"`
}

// Create serves both POST /api/sessions and POST /api/mentors/:id/sessions;
// a mentor id in the path takes precedence over one in the body.
func (h *SessionController) Create(c echo.Context) error {
	var req createSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	mentorID := resolveID(c.Param("id"), req.MentorID)
	if validate.Struct(&req) != nil || mentorID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Title, description, duration, price, and mentorId are required",
		})
	}

	if _, err := h.mentors.FindByID(mentorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Mentor not found"})
		}
		h.log.Error().Err(err).Str("mentor_id", mentorID).Msg("failed to verify mentor")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create session"})
	}

	duration, ok := coerceInt(req.Duration)
	if !ok || duration <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Duration must be a positive integer"})
	}
	price, ok := coerceFloat(req.Price)
	if !ok || price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Price must be a non-negative number"})
	}

	session := models.Session{
		Title:       req.Title,
		Description: req.Description,
		Duration:    duration,
		Price:       price,
		MentorID:    mentorID,
	}
	if err := h.sessions.Create(&session); err != nil {
		h.log.Error().Err(err).Str("mentor_id", mentorID).Msg("failed to create session")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create session"})
	}
	return c.JSON(http.StatusCreated, session)
}

type updateSessionRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Duration    any     `json:"duration"`
	Price       any     `json:"price"`
}

// Update validates only the fields present in the partial payload; empty
// strings count as absent. MentorID is immutable and ignored here.
func (h *SessionController) Update(c echo.Context) error {
	id := c.Param("id")

	var req updateSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	var upd models.SessionUpdate
	if req.Title != nil && *req.Title != "" {
		upd.Title = req.Title
	}
	if req.Description != nil && *req.Description != "" {
		upd.Description = req.Description
	}
	if req.Duration != nil {
		duration, ok := coerceInt(req.Duration)
		if !ok || duration <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Duration must be a positive integer"})
		}
		upd.Duration = &duration
	}
	if req.Price != nil {
		price, ok := coerceFloat(req.Price)
		if !ok || price < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Price must be a non-negative number"})
		}
		upd.Price = &price
	}

	session, err := h.sessions.Update(id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Session not found"})
		}
		h.log.Error().Err(err).Str("session_id", id).Msg("failed to update session")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update session"})
	}
	return c.JSON(http.StatusOK, session)
}

func (h *SessionController) Delete(c echo.Context) error {
	id := c.Param("id")

	if err := h.sessions.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Session not found"})
		}
		h.log.Error().Err(err).Str("session_id", id).Msg("failed to delete session")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete session"})
	}
	return c.NoContent(http.StatusNoContent)
}
