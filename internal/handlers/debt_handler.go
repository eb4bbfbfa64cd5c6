package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/models"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/services"
)

type debtApplicationService interface {
	ListDebts(ctx context.Context, memberID string) ([]models.DebtWithMembers, error)
	SettleDebt(ctx context.Context, debtID string) (*models.Debt, error)
}

type DebtHandler struct {
	service debtApplicationService
}

func NewDebtHandler(service *services.DebtService) *DebtHandler {
	return &DebtHandler{service: service}
}

func (h *DebtHandler) ListDebts(c *fiber.Ctx) error {
	debts, err := h.service.ListDebts(c.Context(), c.Query("memberId"))
	if err != nil {
		return mapDebtError(c, err)
	}
	return c.JSON(debts)
}

func (h *DebtHandler) SettleDebt(c *fiber.Ctx) error {
	debt, err := h.service.SettleDebt(c.Context(), c.Params("id"))
	if err != nil {
		return mapDebtError(c, err)
	}
	return c.JSON(debt)
}

func mapDebtError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Debt not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process debt request"})
	}
}
