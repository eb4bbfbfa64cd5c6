package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/models"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type CreateMemberInput struct {
	Name        string
	Initials    string
	BankName    *string
	BankAccount *string
}

type UpdateBankDetailsInput struct {
	BankName    *string
	BankAccount *string
}

type MemberRepository struct {
	db DBTX
}

func NewMemberRepository(db DBTX) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Create(ctx context.Context, input CreateMemberInput) (*models.Member, error) {
	query := `
		INSERT INTO members (id, name, initials, bank_name, bank_account)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, initials, bank_name, bank_account, created_at
	`

	var member models.Member
	err := r.db.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		input.Name,
		input.Initials,
		input.BankName,
		input.BankAccount,
	).Scan(
		&member.ID,
		&member.Name,
		&member.Initials,
		&member.BankName,
		&member.BankAccount,
		&member.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepository) GetByID(ctx context.Context, id string) (*models.Member, error) {
	query := `
		SELECT id, name, initials, bank_name, bank_account, created_at
		FROM members
		WHERE id = $1
	`
	var member models.Member
	err := r.db.QueryRow(ctx, query, id).Scan(
		&member.ID,
		&member.Name,
		&member.Initials,
		&member.BankName,
		&member.BankAccount,
		&member.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepository) List(ctx context.Context) ([]models.Member, error) {
	query := `
		SELECT id, name, initials, bank_name, bank_account, created_at
		FROM members
		ORDER BY name ASC, created_at ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]models.Member, 0)
	for rows.Next() {
		var member models.Member
		if err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.Initials,
			&member.BankName,
			&member.BankAccount,
			&member.CreatedAt,
		); err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

func (r *MemberRepository) ListByIDs(ctx context.Context, ids []string) (map[string]models.Member, error) {
	membersByID := make(map[string]models.Member, len(ids))
	if len(ids) == 0 {
		return membersByID, nil
	}

	query := `
		SELECT id, name, initials, bank_name, bank_account, created_at
		FROM members
		WHERE id = ANY($1)
	`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var member models.Member
		if err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.Initials,
			&member.BankName,
			&member.BankAccount,
			&member.CreatedAt,
		); err != nil {
			return nil, err
		}
		membersByID[member.ID] = member
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return membersByID, nil
}

func (r *MemberRepository) UpdateBankDetails(
	ctx context.Context,
	id string,
	input UpdateBankDetailsInput,
) (*models.Member, error) {
	query := `
		UPDATE members
		SET bank_name = COALESCE($2, bank_name),
			bank_account = COALESCE($3, bank_account)
		WHERE id = $1
		RETURNING id, name, initials, bank_name, bank_account, created_at
	`
	var member models.Member
	err := r.db.QueryRow(ctx, query, id, input.BankName, input.BankAccount).Scan(
		&member.ID,
		&member.Name,
		&member.Initials,
		&member.BankName,
		&member.BankAccount,
		&member.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &member, nil
}
