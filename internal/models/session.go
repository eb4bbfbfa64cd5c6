package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Session struct {
	ID        string          `json:"id"`
	Date      time.Time       `json:"date"`
	Location  string          `json:"location"`
	TotalCost decimal.Decimal `json:"total_cost"`
	PayerID   string          `json:"payer_id"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

type SessionParticipant struct {
	ID          string          `json:"id"`
	SessionID   string          `json:"session_id"`
	MemberID    string          `json:"member_id"`
	ShareAmount decimal.Decimal `json:"share_amount"`
}

type SessionWithDetails struct {
	Session
	Payer            Member   `json:"payer"`
	Participants     []Member `json:"participants"`
	ParticipantCount int      `json:"participant_count"`
}
