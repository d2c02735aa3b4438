package handler

import (
	"daily-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ProgressHandler handles progress counter HTTP requests
type ProgressHandler struct {
	service service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler instance
func NewProgressHandler(service service.ProgressService) *ProgressHandler {
	return &ProgressHandler{
		service: service,
	}
}

// GetProgress godoc
// @Summary Get progress counters
// @Description Returns the day streak, highest insights, and per-day history
// @Tags progress
// @Produce json
// @Success 200 {object} dto.ProgressResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /progress [get]
func (h *ProgressHandler) GetProgress(c *fiber.Ctx) error {
	progress, err := h.service.GetProgress(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(progress)
}
