package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/models"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/services"
)

type sessionApplicationService interface {
	CreateSession(ctx context.Context, input services.CreateSessionInput) (*models.Session, error)
	ListSessions(ctx context.Context) ([]models.SessionWithDetails, error)
	GetSession(ctx context.Context, sessionID string) (*models.SessionWithDetails, error)
}

type SessionHandler struct {
	service sessionApplicationService
}

func NewSessionHandler(service *services.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

type createSessionRequest struct {
	Date           string   `json:"date"`
	Location       string   `json:"location"`
	TotalCost      string   `json:"total_cost"`
	PayerID        string   `json:"payer_id"`
	ParticipantIDs []string `json:"participant_ids"`
}

func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	var req createSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	date, err := time.Parse(time.RFC3339, strings.TrimSpace(req.Date))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be a valid RFC3339 timestamp"})
	}
	totalCost, err := decimal.NewFromString(strings.TrimSpace(req.TotalCost))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "total_cost must be a decimal string"})
	}
	if !totalCost.IsPositive() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "total_cost must be greater than 0"})
	}
	if len(req.ParticipantIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "participant_ids must not be empty"})
	}

	session, err := h.service.CreateSession(c.Context(), services.CreateSessionInput{
		Date:           date,
		Location:       req.Location,
		TotalCost:      totalCost,
		PayerID:        req.PayerID,
		ParticipantIDs: req.ParticipantIDs,
	})
	if err != nil {
		return mapSessionError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *SessionHandler) ListSessions(c *fiber.Ctx) error {
	sessions, err := h.service.ListSessions(c.Context())
	if err != nil {
		return mapSessionError(c, err)
	}
	return c.JSON(sessions)
}

func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	session, err := h.service.GetSession(c.Context(), c.Params("id"))
	if err != nil {
		return mapSessionError(c, err)
	}
	return c.JSON(session)
}

func mapSessionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process session request"})
	}
}
