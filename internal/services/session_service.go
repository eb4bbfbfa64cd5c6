package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/activity"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/ledger"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/models"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/repository"
)

var ErrInvalidInput = errors.New("invalid input")

type sessionReader interface {
	List(ctx context.Context) ([]models.Session, error)
	GetByID(ctx context.Context, sessionID string) (*models.Session, error)
}

type participantReader interface {
	ListMembersBySessionIDs(ctx context.Context, sessionIDs []string) (map[string][]models.Member, error)
}

type memberReader interface {
	ListByIDs(ctx context.Context, ids []string) (map[string]models.Member, error)
}

type SessionService struct {
	db              *pgxpool.Pool
	sessionRepo     sessionReader
	participantRepo participantReader
	memberRepo      memberReader
	activity        activityRecorder
}

func NewSessionService(
	db *pgxpool.Pool,
	sessionRepo sessionReader,
	participantRepo participantReader,
	memberRepo memberReader,
	recorder activityRecorder,
) *SessionService {
	return &SessionService{
		db:              db,
		sessionRepo:     sessionRepo,
		participantRepo: participantRepo,
		memberRepo:      memberRepo,
		activity:        recorder,
	}
}

type CreateSessionInput struct {
	Date           time.Time
	Location       string
	TotalCost      decimal.Decimal
	PayerID        string
	ParticipantIDs []string
}

// CreateSession inserts the session, its participant shares, and one debt per
// non-payer participant as a single transaction. A referenced member that does
// not exist fails the whole unit; no partial rows stay visible.
func (s *SessionService) CreateSession(
	ctx context.Context,
	input CreateSessionInput,
) (*models.Session, error) {
	input.Location = strings.TrimSpace(input.Location)
	if input.Location == "" || strings.TrimSpace(input.PayerID) == "" {
		return nil, ErrInvalidInput
	}
	if !input.TotalCost.IsPositive() {
		return nil, ErrInvalidInput
	}
	if len(input.ParticipantIDs) == 0 {
		return nil, ErrInvalidInput
	}

	share := ledger.EqualShare(input.TotalCost, len(input.ParticipantIDs))
	drafts := ledger.SplitDebts(input.PayerID, input.ParticipantIDs, share)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	txSessionRepo := repository.NewSessionRepository(tx)
	txParticipantRepo := repository.NewParticipantRepository(tx)
	txDebtRepo := repository.NewDebtRepository(tx)

	session, err := txSessionRepo.Create(ctx, repository.CreateSessionInput{
		Date:      input.Date.UTC(),
		Location:  input.Location,
		TotalCost: input.TotalCost,
		PayerID:   input.PayerID,
	})
	if err != nil {
		return nil, err
	}

	for _, memberID := range input.ParticipantIDs {
		if _, err := txParticipantRepo.Create(ctx, session.ID, memberID, share); err != nil {
			return nil, err
		}
	}

	for _, draft := range drafts {
		if _, err := txDebtRepo.Create(ctx, repository.CreateDebtInput{
			SessionID:    session.ID,
			FromMemberID: draft.FromMemberID,
			ToMemberID:   draft.ToMemberID,
			Amount:       draft.Amount,
		}); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if s.activity != nil {
		s.activity.Record(activity.NewEvent("session.created", map[string]any{
			"session_id":        session.ID,
			"location":          session.Location,
			"total_cost":        session.TotalCost.StringFixed(2),
			"payer_id":          session.PayerID,
			"participant_count": len(input.ParticipantIDs),
			"debt_count":        len(drafts),
		}))
	}

	return session, nil
}

func (s *SessionService) ListSessions(ctx context.Context) ([]models.SessionWithDetails, error) {
	sessions, err := s.sessionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	sessionIDs := make([]string, 0, len(sessions))
	payerIDs := make([]string, 0, len(sessions))
	for _, session := range sessions {
		sessionIDs = append(sessionIDs, session.ID)
		payerIDs = append(payerIDs, session.PayerID)
	}

	participantsBySession, err := s.participantRepo.ListMembersBySessionIDs(ctx, sessionIDs)
	if err != nil {
		return nil, err
	}
	payersByID, err := s.memberRepo.ListByIDs(ctx, payerIDs)
	if err != nil {
		return nil, err
	}

	details := make([]models.SessionWithDetails, 0, len(sessions))
	for _, session := range sessions {
		participants := participantsBySession[session.ID]
		if participants == nil {
			participants = make([]models.Member, 0)
		}
		details = append(details, models.SessionWithDetails{
			Session:          session,
			Payer:            payersByID[session.PayerID],
			Participants:     participants,
			ParticipantCount: len(participants),
		})
	}

	return details, nil
}

func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*models.SessionWithDetails, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	participantsBySession, err := s.participantRepo.ListMembersBySessionIDs(ctx, []string{session.ID})
	if err != nil {
		return nil, err
	}
	payersByID, err := s.memberRepo.ListByIDs(ctx, []string{session.PayerID})
	if err != nil {
		return nil, err
	}

	participants := participantsBySession[session.ID]
	if participants == nil {
		participants = make([]models.Member, 0)
	}

	return &models.SessionWithDetails{
		Session:          *session,
		Payer:            payersByID[session.PayerID],
		Participants:     participants,
		ParticipantCount: len(participants),
	}, nil
}
