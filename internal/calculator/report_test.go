package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/models"
)

var epsilon = decimal.New(1, -6)

func TestCategoryReport(t *testing.T) {
	expenses := []models.Expense{
		// Payer with own share: others owe 60.
		expense("e1", "1", "1", "90", models.CategoryFood, share("1", "30"), share("2", "30"), share("3", "30")),
		// Participant only: own share 25.
		expense("e2", "1", "2", "50", models.CategoryRent, share("1", "25"), share("2", "25")),
		// Payer without a share: full amount.
		expense("e3", "2", "1", "15", models.CategoryTransportation, share("2", "15")),
		// Not involved.
		expense("e4", "2", "3", "500", models.CategoryShopping, share("4", "500")),
	}

	report := CategoryReport(expenses, "1")

	require.Len(t, report, len(models.Categories()))
	assert.Equal(t, models.CategoryFood, report[0].Category)
	assert.True(t, d("60").Equal(report[0].Amount))
	assert.Equal(t, models.CategoryRent, report[1].Category)
	assert.True(t, d("25").Equal(report[1].Amount))
	assert.Equal(t, models.CategoryTransportation, report[2].Category)
	assert.True(t, d("15").Equal(report[2].Amount))

	// Zero rows keep enumeration order.
	assert.Equal(t, []models.Category{
		models.CategoryEntertainment,
		models.CategoryShopping,
		models.CategoryUtilities,
		models.CategoryOther,
	}, []models.Category{report[3].Category, report[4].Category, report[5].Category, report[6].Category})

	assert.True(t, d("60").Equal(report[0].Percentage))
	assert.True(t, d("25").Equal(report[1].Percentage))
	assert.True(t, d("15").Equal(report[2].Percentage))
}

func TestCategoryReportTotals(t *testing.T) {
	expenses := []models.Expense{
		expense("e1", "1", "1", "10", models.CategoryFood, share("1", "3.33"), share("2", "3.33"), share("3", "3.34")),
		expense("e2", "1", "2", "7", models.CategoryUtilities, share("1", "7")),
		expense("e3", "1", "3", "11", models.CategoryOther, share("1", "1"), share("3", "10")),
	}

	report := CategoryReport(expenses, "1")

	amount, percentage := decimal.Zero, decimal.Zero
	for i, row := range report {
		amount = amount.Add(row.Amount)
		percentage = percentage.Add(row.Percentage)
		if i > 0 {
			assert.True(t, report[i-1].Amount.GreaterThanOrEqual(row.Amount))
		}
	}

	assert.True(t, d("14.67").Equal(amount), "got %s", amount)
	assert.True(t, percentage.Sub(hundred).Abs().LessThan(epsilon), "got %s", percentage)
}

func TestCategoryReportEmpty(t *testing.T) {
	report := CategoryReport(nil, "1")

	require.Len(t, report, 7)
	for i, row := range report {
		assert.Equal(t, models.Categories()[i], row.Category)
		assert.True(t, row.Amount.IsZero())
		assert.True(t, row.Percentage.IsZero())
	}
}

func TestCategoryReportIsPure(t *testing.T) {
	expenses := []models.Expense{
		expense("e1", "1", "1", "10", models.CategoryFood, share("2", "10")),
	}
	assert.Equal(t, CategoryReport(expenses, "1"), CategoryReport(expenses, "1"))
}

func TestCategoryReportUsesFirstOwnShare(t *testing.T) {
	expenses := []models.Expense{
		// Payer listed twice: only the first entry is their share.
		expense("e1", "1", "1", "90", models.CategoryFood, share("1", "30"), share("1", "30"), share("2", "30")),
		// Participant listed twice: only the first entry counts.
		expense("e2", "1", "2", "40", models.CategoryRent, share("1", "10"), share("1", "15"), share("2", "15")),
	}

	report := CategoryReport(expenses, "1")

	require.Len(t, report, 7)
	assert.Equal(t, models.CategoryFood, report[0].Category)
	assert.True(t, d("60").Equal(report[0].Amount), "got %s", report[0].Amount)
	assert.Equal(t, models.CategoryRent, report[1].Category)
	assert.True(t, d("10").Equal(report[1].Amount), "got %s", report[1].Amount)
}

func TestCategoryReportNonPositiveTotal(t *testing.T) {
	expenses := []models.Expense{
		expense("e1", "1", "1", "-10", models.CategoryRent),
	}

	report := CategoryReport(expenses, "1")

	require.Len(t, report, 7)
	var rent CategoryAmount
	for _, row := range report {
		if row.Category == models.CategoryRent {
			rent = row
		}
		assert.True(t, row.Percentage.IsZero(), "%s: got %s", row.Category, row.Percentage)
	}
	assert.True(t, d("-10").Equal(rent.Amount))
}
