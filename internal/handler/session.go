package handler

import (
	"time"

	"daily-quiz/internal/domain"
	"daily-quiz/internal/dto"
	"daily-quiz/internal/service"
	"daily-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler handles quiz session HTTP requests
type SessionHandler struct {
	service   service.SessionService
	validator *validation.Validator
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(service service.SessionService, validator *validation.Validator) *SessionHandler {
	return &SessionHandler{
		service:   service,
		validator: validator,
	}
}

// StartSession godoc
// @Summary Start a quiz session
// @Description Opens a session over the question set for the given date (default: today)
// @Tags sessions
// @Accept json
// @Produce json
// @Param date query string false "ISO date (YYYY-MM-DD)"
// @Success 201 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) StartSession(c *fiber.Ctx) error {
	date := c.Query("date")
	if errs := h.validator.ValidateDate(date); len(errs) > 0 {
		return errs
	}
	if date == "" {
		date = time.Now().Format(domain.DateLayout)
	}

	session, err := h.service.StartSession(c.Context(), date)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

// GetSession godoc
// @Summary Get session state
// @Description Returns the current question and submission state of a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}

	session, err := h.service.GetSession(c.Context(), sessionID)
	if err != nil {
		return err
	}

	return c.JSON(session)
}

// Submit godoc
// @Summary Submit an answer
// @Description Evaluates the answer for the session's current question
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SubmitRequest true "Answer payload"
// @Success 200 {object} dto.SubmitResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /sessions/{id}/submit [post]
func (h *SessionHandler) Submit(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}

	var req dto.SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateSubmitRequest(&req); len(errs) > 0 {
		return errs
	}

	result, err := h.service.Submit(c.Context(), sessionID, &req)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// Advance godoc
// @Summary Advance to the next question
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /sessions/{id}/advance [post]
func (h *SessionHandler) Advance(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}

	session, err := h.service.Advance(c.Context(), sessionID)
	if err != nil {
		return err
	}

	return c.JSON(session)
}

// RevealHint godoc
// @Summary Reveal the current question's hint
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/hint [post]
func (h *SessionHandler) RevealHint(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}

	session, err := h.service.RevealHint(c.Context(), sessionID)
	if err != nil {
		return err
	}

	return c.JSON(session)
}
