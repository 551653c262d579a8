package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"mentor-booking-backend/models"
	"mentor-booking-backend/repository"
)

type MentorController struct {
	mentors MentorStore
	log     zerolog.Logger
}

func NewMentorController(mentors MentorStore, log zerolog.Logger) *MentorController {
	return &MentorController{mentors: mentors, log: log}
}

func (h *MentorController) List(c echo.Context) error {
	mentors, err := h.mentors.FindAll()
	if err != nil {
		h.log.Error().Err(err).Msg("failed to fetch mentors")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch mentors"})
	}
	return c.JSON(http.StatusOK, mentors)
}

func (h *MentorController) Get(c echo.Context) error {
	id := c.Param("id")

	mentor, err := h.mentors.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Mentor not found"})
		}
		h.log.Error().Err(err).Str("mentor_id", id).Msg("failed to fetch mentor")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch mentor"})
	}
	return c.JSON(http.StatusOK, mentor)
}

type createMentorRequest struct {
	Name string `json:"name" validate:"required"`
	Bio  string `json:"bio" validate:"required"`
}

func (h *MentorController) Create(c echo.Context) error {
	var req createMentorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name and bio are required"})
	}

	mentor := models.Mentor{Name: req.Name, Bio: req.Bio}
	if err := h.mentors.Create(&mentor); err != nil {
		h.log.Error().Err(err).Msg("failed to create mentor")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create mentor"})
	}
	return c.JSON(http.StatusCreated, mentor)
}

func (h *MentorController) Update(c echo.Context) error {
	id := c.Param("id")

	var upd models.MentorUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	mentor, err := h.mentors.Update(id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Mentor not found"})
		}
		h.log.Error().Err(err).Str("mentor_id", id).Msg("failed to update mentor")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update mentor"})
	}
	return c.JSON(http.StatusOK, mentor)
}

func (h *MentorController) Delete(c echo.Context) error {
	id := c.Param("id")

	if err := h.mentors.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Mentor not found"})
		}
		h.log.Error().Err(err).Str("mentor_id", id).Msg("failed to delete mentor")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete mentor"})
	}
	return c.NoContent(http.StatusNoContent)
}
