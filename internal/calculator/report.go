package calculator

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

var hundred = decimal.NewFromInt(100)

// CategoryAmount is one row of a category report.
type CategoryAmount struct {
	Category   models.Category
	Amount     decimal.Decimal
	Percentage decimal.Decimal // Share of the report total, 0..100
}

// CategoryReport attributes the user's spending to categories.
//
// Every category is present, even with a zero amount. Rows are sorted by
// amount descending; ties keep the models.Categories order.
//
// Attribution per expense the user is involved in:
// - As payer: the amount minus their own share (0 if they have no entry)
// - As participant only: their own share
//
// Only the user's first participant entry counts as their share here.
// Percentages are 0 unless the report total is positive.
func CategoryReport(expenses []models.Expense, userID string) []CategoryAmount {
	categories := models.Categories()
	totals := make(map[models.Category]decimal.Decimal, len(categories))

	for _, e := range expenses {
		share, isParticipant := firstShare(e, userID)
		switch {
		case e.PaidBy == userID:
			totals[e.Category] = totals[e.Category].Add(e.Amount.Sub(share))
		case isParticipant:
			totals[e.Category] = totals[e.Category].Add(share)
		}
	}

	total := decimal.Zero
	for _, c := range categories {
		total = total.Add(totals[c])
	}

	report := make([]CategoryAmount, 0, len(categories))
	for _, c := range categories {
		amount := totals[c]
		percentage := decimal.Zero
		if total.IsPositive() {
			percentage = amount.Div(total).Mul(hundred)
		}
		report = append(report, CategoryAmount{
			Category:   c,
			Amount:     amount,
			Percentage: percentage,
		})
	}

	slices.SortStableFunc(report, func(a, b CategoryAmount) int {
		return b.Amount.Cmp(a.Amount)
	})

	return report
}

// firstShare returns the amount of the first participant entry for userID.
func firstShare(e models.Expense, userID string) (decimal.Decimal, bool) {
	for _, p := range e.Participants {
		if p.UserID == userID {
			return p.Amount, true
		}
	}
	return decimal.Zero, false
}
