package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/models"
)

type debtAggregator interface {
	List(ctx context.Context, memberID string) ([]models.DebtWithMembers, error)
	SumPendingOwedTo(ctx context.Context, memberID string) (decimal.Decimal, error)
	SumPendingOwedBy(ctx context.Context, memberID string) (decimal.Decimal, error)
}

type memberGetter interface {
	GetByID(ctx context.Context, id string) (*models.Member, error)
}

type SummaryService struct {
	debtRepo   debtAggregator
	memberRepo memberGetter
}

func NewSummaryService(debtRepo debtAggregator, memberRepo memberGetter) *SummaryService {
	return &SummaryService{debtRepo: debtRepo, memberRepo: memberRepo}
}

func (s *SummaryService) GetMemberFinancialSummary(
	ctx context.Context,
	memberID string,
) (*models.MemberFinancialSummary, error) {
	toReceive, err := s.debtRepo.SumPendingOwedTo(ctx, memberID)
	if err != nil {
		return nil, err
	}
	toPay, err := s.debtRepo.SumPendingOwedBy(ctx, memberID)
	if err != nil {
		return nil, err
	}

	return &models.MemberFinancialSummary{
		MemberID:    memberID,
		ToReceive:   toReceive.StringFixed(2),
		ToPay:       toPay.StringFixed(2),
		NetPosition: toReceive.Sub(toPay).StringFixed(2),
	}, nil
}

func (s *SummaryService) GetMemberLedger(ctx context.Context, memberID string) (*models.MemberLedger, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	summary, err := s.GetMemberFinancialSummary(ctx, memberID)
	if err != nil {
		return nil, err
	}

	debts, err := s.debtRepo.List(ctx, memberID)
	if err != nil {
		return nil, err
	}

	debtsOwed := make([]models.DebtWithMembers, 0)
	debtsOwing := make([]models.DebtWithMembers, 0)
	for _, debt := range debts {
		if debt.Status != "pending" {
			continue
		}
		if debt.ToMemberID == memberID {
			debtsOwed = append(debtsOwed, debt)
		}
		if debt.FromMemberID == memberID {
			debtsOwing = append(debtsOwing, debt)
		}
	}

	return &models.MemberLedger{
		Member:     *member,
		Summary:    *summary,
		DebtsOwed:  debtsOwed,
		DebtsOwing: debtsOwing,
	}, nil
}
