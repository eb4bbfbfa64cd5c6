package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/models"
)

type CreateDebtInput struct {
	SessionID    string
	FromMemberID string
	ToMemberID   string
	Amount       decimal.Decimal
}

type DebtRepository struct {
	db DBTX
}

func NewDebtRepository(db DBTX) *DebtRepository {
	return &DebtRepository{db: db}
}

func (r *DebtRepository) Create(ctx context.Context, input CreateDebtInput) (*models.Debt, error) {
	query := `
		INSERT INTO debts (id, session_id, from_member_id, to_member_id, amount, status)
		VALUES ($1, $2, $3, $4, $5, 'pending')
		RETURNING id, session_id, from_member_id, to_member_id, amount, status, created_at
	`

	var debt models.Debt
	err := r.db.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		input.SessionID,
		input.FromMemberID,
		input.ToMemberID,
		input.Amount,
	).Scan(
		&debt.ID,
		&debt.SessionID,
		&debt.FromMemberID,
		&debt.ToMemberID,
		&debt.Amount,
		&debt.Status,
		&debt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &debt, nil
}

// List returns debts joined with both member records, most recent first.
// An empty memberID returns every debt; otherwise only debts where the member
// is the ower or the payee.
func (r *DebtRepository) List(ctx context.Context, memberID string) ([]models.DebtWithMembers, error) {
	query := `
		SELECT d.id, d.session_id, d.from_member_id, d.to_member_id, d.amount, d.status, d.created_at,
			f.id, f.name, f.initials, f.bank_name, f.bank_account, f.created_at,
			t.id, t.name, t.initials, t.bank_name, t.bank_account, t.created_at
		FROM debts d
		JOIN members f ON f.id = d.from_member_id
		JOIN members t ON t.id = d.to_member_id
		WHERE $1 = '' OR d.from_member_id = $1 OR d.to_member_id = $1
		ORDER BY d.created_at DESC
	`
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	debts := make([]models.DebtWithMembers, 0)
	for rows.Next() {
		var debt models.DebtWithMembers
		if err := rows.Scan(
			&debt.ID,
			&debt.SessionID,
			&debt.FromMemberID,
			&debt.ToMemberID,
			&debt.Amount,
			&debt.Status,
			&debt.CreatedAt,
			&debt.FromMember.ID,
			&debt.FromMember.Name,
			&debt.FromMember.Initials,
			&debt.FromMember.BankName,
			&debt.FromMember.BankAccount,
			&debt.FromMember.CreatedAt,
			&debt.ToMember.ID,
			&debt.ToMember.Name,
			&debt.ToMember.Initials,
			&debt.ToMember.BankName,
			&debt.ToMember.BankAccount,
			&debt.ToMember.CreatedAt,
		); err != nil {
			return nil, err
		}
		debts = append(debts, debt)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return debts, nil
}

// MarkPaid flips the debt to paid regardless of its current status, so a
// second settle of the same debt lands in the same end state.
func (r *DebtRepository) MarkPaid(ctx context.Context, debtID string) (*models.Debt, error) {
	query := `
		UPDATE debts
		SET status = 'paid'
		WHERE id = $1
		RETURNING id, session_id, from_member_id, to_member_id, amount, status, created_at
	`
	var debt models.Debt
	err := r.db.QueryRow(ctx, query, debtID).Scan(
		&debt.ID,
		&debt.SessionID,
		&debt.FromMemberID,
		&debt.ToMemberID,
		&debt.Amount,
		&debt.Status,
		&debt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &debt, nil
}

func (r *DebtRepository) CountPendingBySession(ctx context.Context, sessionID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM debts
		WHERE session_id = $1 AND status = 'pending'
	`
	var count int
	if err := r.db.QueryRow(ctx, query, sessionID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DebtRepository) SumPendingOwedTo(ctx context.Context, memberID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM debts
		WHERE to_member_id = $1 AND status = 'pending'
	`
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, memberID).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *DebtRepository) SumPendingOwedBy(ctx context.Context, memberID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM debts
		WHERE from_member_id = $1 AND status = 'pending'
	`
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, memberID).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
