package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/models"
)

type CreateSessionInput struct {
	Date      time.Time
	Location  string
	TotalCost decimal.Decimal
	PayerID   string
}

type SessionRepository struct {
	db DBTX
}

func NewSessionRepository(db DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(
	ctx context.Context,
	input CreateSessionInput,
) (*models.Session, error) {
	query := `
		INSERT INTO sessions (id, date, location, total_cost, payer_id, status)
		VALUES ($1, $2, $3, $4, $5, 'pending')
		RETURNING id, date, location, total_cost, payer_id, status, created_at
	`

	var session models.Session
	err := r.db.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		input.Date,
		input.Location,
		input.TotalCost,
		input.PayerID,
	).Scan(
		&session.ID,
		&session.Date,
		&session.Location,
		&session.TotalCost,
		&session.PayerID,
		&session.Status,
		&session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) GetByID(ctx context.Context, sessionID string) (*models.Session, error) {
	query := `
		SELECT id, date, location, total_cost, payer_id, status, created_at
		FROM sessions
		WHERE id = $1
	`
	var session models.Session
	err := r.db.QueryRow(ctx, query, sessionID).Scan(
		&session.ID,
		&session.Date,
		&session.Location,
		&session.TotalCost,
		&session.PayerID,
		&session.Status,
		&session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) List(ctx context.Context) ([]models.Session, error) {
	query := `
		SELECT id, date, location, total_cost, payer_id, status, created_at
		FROM sessions
		ORDER BY date DESC, created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]models.Session, 0)
	for rows.Next() {
		var session models.Session
		if err := rows.Scan(
			&session.ID,
			&session.Date,
			&session.Location,
			&session.TotalCost,
			&session.PayerID,
			&session.Status,
			&session.CreatedAt,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *SessionRepository) UpdateStatusIfCurrent(
	ctx context.Context,
	sessionID string,
	currentStatus string,
	nextStatus string,
) (*models.Session, error) {
	query := `
		UPDATE sessions
		SET status = $3
		WHERE id = $1 AND status = $2
		RETURNING id, date, location, total_cost, payer_id, status, created_at
	`
	var session models.Session
	err := r.db.QueryRow(ctx, query, sessionID, currentStatus, nextStatus).Scan(
		&session.ID,
		&session.Date,
		&session.Location,
		&session.TotalCost,
		&session.PayerID,
		&session.Status,
		&session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &session, nil
}
