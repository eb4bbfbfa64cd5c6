package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/activity"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/models"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/repository"
)

type debtReader interface {
	List(ctx context.Context, memberID string) ([]models.DebtWithMembers, error)
}

type DebtService struct {
	db       *pgxpool.Pool
	debtRepo debtReader
	activity activityRecorder
}

func NewDebtService(db *pgxpool.Pool, debtRepo debtReader, recorder activityRecorder) *DebtService {
	return &DebtService{db: db, debtRepo: debtRepo, activity: recorder}
}

func (s *DebtService) ListDebts(ctx context.Context, memberID string) ([]models.DebtWithMembers, error) {
	return s.debtRepo.List(ctx, memberID)
}

// SettleDebt flips the debt to paid and, when it was the session's last
// pending debt, flips the session to settled in the same transaction. A
// session is settled exactly when none of its debts remain pending.
func (s *DebtService) SettleDebt(ctx context.Context, debtID string) (*models.Debt, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	txDebtRepo := repository.NewDebtRepository(tx)
	txSessionRepo := repository.NewSessionRepository(tx)

	debt, err := txDebtRepo.MarkPaid(ctx, debtID)
	if err != nil {
		return nil, err
	}

	pending, err := txDebtRepo.CountPendingBySession(ctx, debt.SessionID)
	if err != nil {
		return nil, err
	}

	sessionSettled := false
	if pending == 0 {
		if _, err := txSessionRepo.UpdateStatusIfCurrent(ctx, debt.SessionID, "pending", "settled"); err != nil {
			// Settling an already-paid debt finds the session settled
			// already; that is the same end state, not a failure.
			if !errors.Is(err, pgx.ErrNoRows) {
				return nil, err
			}
		} else {
			sessionSettled = true
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if s.activity != nil {
		s.activity.Record(activity.NewEvent("debt.settled", map[string]any{
			"debt_id":        debt.ID,
			"session_id":     debt.SessionID,
			"from_member_id": debt.FromMemberID,
			"to_member_id":   debt.ToMemberID,
			"amount":         debt.Amount.StringFixed(2),
		}))
		if sessionSettled {
			s.activity.Record(activity.NewEvent("session.settled", map[string]any{
				"session_id": debt.SessionID,
			}))
		}
	}

	return debt, nil
}
