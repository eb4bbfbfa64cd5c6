package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/models"
)

const defaultActivityLimit = 50

type activityReader interface {
	ListRecent(ctx context.Context, limit int) ([]models.Activity, error)
}

type ActivityHandler struct {
	log activityReader
}

func NewActivityHandler(log activityReader) *ActivityHandler {
	return &ActivityHandler{log: log}
}

func (h *ActivityHandler) ListActivities(c *fiber.Ctx) error {
	limit := defaultActivityLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must be a positive integer"})
		}
		limit = parsed
	}

	activities, err := h.log.ListRecent(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch activities"})
	}
	return c.JSON(activities)
}
