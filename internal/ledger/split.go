package ledger

import "github.com/shopspring/decimal"

// DebtDraft is a directed obligation derived from a session split, before it
// is persisted as a debt row.
type DebtDraft struct {
	FromMemberID string
	ToMemberID   string
	Amount       decimal.Decimal
}

// EqualShare returns each participant's equal fraction of the total cost,
// rounded half-up to cents. The sum of all shares may differ from the total
// by up to count-1 cents; that drift is accepted, never redistributed.
func EqualShare(totalCost decimal.Decimal, count int) decimal.Decimal {
	return totalCost.Div(decimal.NewFromInt(int64(count))).Round(2)
}

// SplitDebts produces one draft per participant other than the payer, each
// owing the payer exactly the equal share. A session where every participant
// is the payer yields no drafts.
func SplitDebts(payerID string, participantIDs []string, share decimal.Decimal) []DebtDraft {
	drafts := make([]DebtDraft, 0, len(participantIDs))
	for _, memberID := range participantIDs {
		if memberID == payerID {
			continue
		}
		drafts = append(drafts, DebtDraft{
			FromMemberID: memberID,
			ToMemberID:   payerID,
			Amount:       share,
		})
	}
	return drafts
}
