package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/models"
)

type ParticipantRepository struct {
	db DBTX
}

func NewParticipantRepository(db DBTX) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

func (r *ParticipantRepository) Create(
	ctx context.Context,
	sessionID string,
	memberID string,
	shareAmount decimal.Decimal,
) (*models.SessionParticipant, error) {
	query := `
		INSERT INTO session_participants (id, session_id, member_id, share_amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, session_id, member_id, share_amount
	`

	var participant models.SessionParticipant
	err := r.db.QueryRow(ctx, query, uuid.NewString(), sessionID, memberID, shareAmount).Scan(
		&participant.ID,
		&participant.SessionID,
		&participant.MemberID,
		&participant.ShareAmount,
	)
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

func (r *ParticipantRepository) ListBySessionID(
	ctx context.Context,
	sessionID string,
) ([]models.SessionParticipant, error) {
	query := `
		SELECT id, session_id, member_id, share_amount
		FROM session_participants
		WHERE session_id = $1
	`
	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := make([]models.SessionParticipant, 0)
	for rows.Next() {
		var participant models.SessionParticipant
		if err := rows.Scan(
			&participant.ID,
			&participant.SessionID,
			&participant.MemberID,
			&participant.ShareAmount,
		); err != nil {
			return nil, err
		}
		participants = append(participants, participant)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return participants, nil
}

// ListMembersBySessionIDs returns each session's participant members keyed by
// session id, in participant insertion order.
func (r *ParticipantRepository) ListMembersBySessionIDs(
	ctx context.Context,
	sessionIDs []string,
) (map[string][]models.Member, error) {
	membersBySession := make(map[string][]models.Member, len(sessionIDs))
	if len(sessionIDs) == 0 {
		return membersBySession, nil
	}

	query := `
		SELECT sp.session_id, m.id, m.name, m.initials, m.bank_name, m.bank_account, m.created_at
		FROM session_participants sp
		JOIN members m ON m.id = sp.member_id
		WHERE sp.session_id = ANY($1)
		ORDER BY sp.id ASC
	`
	rows, err := r.db.Query(ctx, query, sessionIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var sessionID string
		var member models.Member
		if err := rows.Scan(
			&sessionID,
			&member.ID,
			&member.Name,
			&member.Initials,
			&member.BankName,
			&member.BankAccount,
			&member.CreatedAt,
		); err != nil {
			return nil, err
		}
		membersBySession[sessionID] = append(membersBySession[sessionID], member)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return membersBySession, nil
}
