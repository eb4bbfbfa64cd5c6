package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/models"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/repository"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/services"
)

type memberApplicationService interface {
	ListMembers(ctx context.Context) ([]models.Member, error)
	GetMember(ctx context.Context, id string) (*models.Member, error)
	CreateMember(ctx context.Context, input repository.CreateMemberInput) (*models.Member, error)
	UpdateBankDetails(ctx context.Context, id string, input repository.UpdateBankDetailsInput) (*models.Member, error)
}

type summaryApplicationService interface {
	GetMemberFinancialSummary(ctx context.Context, memberID string) (*models.MemberFinancialSummary, error)
	GetMemberLedger(ctx context.Context, memberID string) (*models.MemberLedger, error)
}

type MemberHandler struct {
	service        memberApplicationService
	summaryService summaryApplicationService
}

func NewMemberHandler(
	service *services.MemberService,
	summaryService *services.SummaryService,
) *MemberHandler {
	return &MemberHandler{service: service, summaryService: summaryService}
}

type createMemberRequest struct {
	Name        string  `json:"name"`
	Initials    string  `json:"initials"`
	BankName    *string `json:"bank_name"`
	BankAccount *string `json:"bank_account"`
}

type updateMemberRequest struct {
	BankName    *string `json:"bank_name"`
	BankAccount *string `json:"bank_account"`
}

func (h *MemberHandler) ListMembers(c *fiber.Ctx) error {
	members, err := h.service.ListMembers(c.Context())
	if err != nil {
		return mapMemberError(c, err)
	}
	return c.JSON(members)
}

func (h *MemberHandler) GetMember(c *fiber.Ctx) error {
	member, err := h.service.GetMember(c.Context(), c.Params("id"))
	if err != nil {
		return mapMemberError(c, err)
	}
	return c.JSON(member)
}

func (h *MemberHandler) CreateMember(c *fiber.Ctx) error {
	var req createMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Name == "" || req.Initials == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name and initials are required"})
	}

	member, err := h.service.CreateMember(c.Context(), repository.CreateMemberInput{
		Name:        req.Name,
		Initials:    req.Initials,
		BankName:    req.BankName,
		BankAccount: req.BankAccount,
	})
	if err != nil {
		return mapMemberError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(member)
}

func (h *MemberHandler) UpdateMember(c *fiber.Ctx) error {
	var req updateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	member, err := h.service.UpdateBankDetails(c.Context(), c.Params("id"), repository.UpdateBankDetailsInput{
		BankName:    req.BankName,
		BankAccount: req.BankAccount,
	})
	if err != nil {
		return mapMemberError(c, err)
	}

	return c.JSON(member)
}

func (h *MemberHandler) GetMemberSummary(c *fiber.Ctx) error {
	summary, err := h.summaryService.GetMemberFinancialSummary(c.Context(), c.Params("id"))
	if err != nil {
		return mapMemberError(c, err)
	}
	return c.JSON(summary)
}

func (h *MemberHandler) GetMemberLedger(c *fiber.Ctx) error {
	ledger, err := h.summaryService.GetMemberLedger(c.Context(), c.Params("id"))
	if err != nil {
		return mapMemberError(c, err)
	}
	return c.JSON(ledger)
}

func mapMemberError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Member not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process member request"})
	}
}
