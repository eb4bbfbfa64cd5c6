package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Debt struct {
	ID           string          `json:"id"`
	SessionID    string          `json:"session_id"`
	FromMemberID string          `json:"from_member_id"`
	ToMemberID   string          `json:"to_member_id"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

type DebtWithMembers struct {
	Debt
	FromMember Member `json:"from_member"`
	ToMember   Member `json:"to_member"`
}

// MemberFinancialSummary reports amounts as fixed two-decimal strings so the
// client never sees binary-float drift.
type MemberFinancialSummary struct {
	MemberID    string `json:"member_id"`
	ToReceive   string `json:"to_receive"`
	ToPay       string `json:"to_pay"`
	NetPosition string `json:"net_position"`
}

type MemberLedger struct {
	Member     Member                 `json:"member"`
	Summary    MemberFinancialSummary `json:"summary"`
	DebtsOwed  []DebtWithMembers      `json:"debts_owed"`
	DebtsOwing []DebtWithMembers      `json:"debts_owing"`
}
