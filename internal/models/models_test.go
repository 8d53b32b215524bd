package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseShare(t *testing.T) {
	e := Expense{
		PaidBy: "1",
		Amount: decimal.NewFromInt(30),
		Participants: []Participant{
			{UserID: "1", Amount: decimal.NewFromInt(10)},
			{UserID: "2", Amount: decimal.NewFromInt(15)},
			{UserID: "2", Amount: decimal.NewFromInt(5)},
		},
	}

	share, ok := e.Share("2")
	require.True(t, ok)
	assert.True(t, share.Equal(decimal.NewFromInt(20)), "got %s", share)

	_, ok = e.Share("3")
	assert.False(t, ok)

	assert.True(t, e.Involves("1"))
	assert.True(t, e.Involves("2"))
	assert.False(t, e.Involves("3"))
}

func TestCloneDoesNotShareSlices(t *testing.T) {
	e := Expense{Participants: []Participant{{UserID: "1"}}}
	c := e.Clone()
	c.Participants[0].UserID = "changed"
	assert.Equal(t, "1", e.Participants[0].UserID)

	g := Group{Members: []string{"1", "2"}}
	gc := g.Clone()
	gc.Members[0] = "changed"
	assert.Equal(t, "1", g.Members[0])
}

func TestUpdatesApplyOnlySetFields(t *testing.T) {
	t.Run("expense", func(t *testing.T) {
		when := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
		e := Expense{ID: "e1", Title: "Pizza", Category: CategoryFood, Notes: "keep"}
		ExpenseUpdate{
			Title:    Ptr("Sushi"),
			Date:     &when,
			Category: Ptr(CategoryEntertainment),
		}.Apply(&e)

		assert.Equal(t, "e1", e.ID)
		assert.Equal(t, "Sushi", e.Title)
		assert.Equal(t, when, e.Date)
		assert.Equal(t, CategoryEntertainment, e.Category)
		assert.Equal(t, "keep", e.Notes)
	})

	t.Run("group members are replaced by copy", func(t *testing.T) {
		members := []string{"1", "4"}
		g := Group{Name: "Roommates", Members: []string{"1", "2"}}
		GroupUpdate{Members: members}.Apply(&g)
		members[0] = "changed"

		assert.Equal(t, []string{"1", "4"}, g.Members)
		assert.Equal(t, "Roommates", g.Name)
	})

	t.Run("settings", func(t *testing.T) {
		s := DefaultSettings()
		SettingsUpdate{IsPremium: Ptr(true), DailyExpenseCount: Ptr(2)}.Apply(&s)

		assert.True(t, s.IsPremium)
		assert.Equal(t, 2, s.DailyExpenseCount)
		assert.Equal(t, "USD", s.Currency)
		assert.Empty(t, s.LastExpenseDate)
	})

	t.Run("settlement", func(t *testing.T) {
		s := Settlement{Status: SettlementPending, Amount: decimal.NewFromInt(5)}
		SettlementUpdate{Status: Ptr(SettlementCompleted)}.Apply(&s)

		assert.True(t, s.IsCompleted())
		assert.True(t, s.Amount.Equal(decimal.NewFromInt(5)))
	})
}

func TestCategories(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 7)
	assert.Equal(t, CategoryFood, cats[0])
	assert.Equal(t, CategoryOther, cats[6])
	assert.True(t, CategoryRent.Valid())
	assert.False(t, Category("groceries").Valid())
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
