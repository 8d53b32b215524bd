package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// splitTolerance is how far participant shares may drift from the expense amount.
var splitTolerance = decimal.New(1, -2)

// EqualSplit divides amount evenly between members, one share each.
//
// Shares are rounded to cents. Leftover cents go one at a time to the first
// members so the shares always sum to amount exactly; any sub-cent remainder
// lands on the first member.
func EqualSplit(amount decimal.Decimal, members []string) []models.Participant {
	if len(members) == 0 {
		return []models.Participant{}
	}

	cents := amount.Shift(2).Truncate(0)
	subCent := amount.Sub(cents.Shift(-2))

	q, r := cents.QuoRem(decimal.NewFromInt(int64(len(members))), 0)
	base := q.Shift(-2)
	extra := r.IntPart()

	cent := decimal.New(1, -2)
	if extra < 0 {
		cent = cent.Neg()
		extra = -extra
	}

	shares := make([]models.Participant, len(members))
	for i, m := range members {
		share := base
		if int64(i) < extra {
			share = share.Add(cent)
		}
		shares[i] = models.Participant{UserID: m, Amount: share}
	}
	shares[0].Amount = shares[0].Amount.Add(subCent)

	return shares
}

// SplitMatches reports whether the participant shares add up to the expense
// amount, within a cent.
func SplitMatches(expense models.Expense) bool {
	sum := decimal.Zero
	for _, p := range expense.Participants {
		sum = sum.Add(p.Amount)
	}
	return sum.Sub(expense.Amount).Abs().LessThanOrEqual(splitTolerance)
}

// ExpenseShare is the signed effect of one expense on userID: positive when
// others owe them for it, negative when they owe their share, zero when they
// are not involved.
func ExpenseShare(expense models.Expense, userID string) decimal.Decimal {
	share, ok := expense.Share(userID)
	if expense.PaidBy == userID {
		return expense.Amount.Sub(share)
	}
	if ok {
		return share.Neg()
	}
	return decimal.Zero
}
