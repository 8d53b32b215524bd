package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/service"
)

type sampleExpense struct {
	groupID  string
	title    string
	amount   string
	paidBy   string
	category models.Category
}

// Four same-day expenses so a free user runs into the quota.
var sampleExpenses = []sampleExpense{
	{"1", "Groceries", "84.60", "1", models.CategoryFood},
	{"1", "Electricity", "120", "2", models.CategoryUtilities},
	{"2", "Train tickets", "212.40", "3", models.CategoryTransportation},
	{"2", "Tapas night", "96", "1", models.CategoryFood},
}

// replay drives the ledger the way the app would during a first session.
func replay(ledger *service.LedgerService, strict bool) error {
	me, ok := ledger.FindUser("1")
	if !ok {
		me = ledger.AddUser(models.User{ID: "1", Name: "You", Email: "you@example.com"})
	}
	ledger.SetCurrentUser(me)

	if len(ledger.Groups()) == 0 {
		ledger.AddGroup(models.Group{ID: "1", Name: "Household", Members: []string{me.ID}})
		ledger.AddGroup(models.Group{ID: "2", Name: "Trip", Members: []string{me.ID}})
	}

	for i, s := range sampleExpenses {
		group, ok := ledger.FindGroup(s.groupID)
		if !ok {
			continue
		}
		if !ledger.CanAddExpenseToday() {
			slog.Info("Daily limit reached, upgrading", "remaining_samples", len(sampleExpenses)-i)
			ledger.UpgradeToPremium()
		}

		amount := decimal.RequireFromString(s.amount)
		expense := models.Expense{
			GroupID:      group.ID,
			Title:        s.title,
			Amount:       amount,
			PaidBy:       s.paidBy,
			Date:         time.Now(),
			Category:     s.category,
			Participants: calculator.EqualSplit(amount, group.Members),
		}

		if strict {
			if _, err := ledger.AddExpenseChecked(expense); err != nil {
				return fmt.Errorf("add %q: %w", s.title, err)
			}
			continue
		}
		ledger.AddExpense(expense)
	}

	groups := ledger.GetUserGroups(me.ID)
	if len(groups) == 0 {
		return nil
	}
	for _, debt := range ledger.GetGroupBalances(groups[0].ID).Debts {
		st := ledger.AddSettlement(models.Settlement{
			GroupID:    groups[0].ID,
			FromUserID: debt.From,
			ToUserID:   debt.To,
			Amount:     debt.Amount,
			Date:       time.Now(),
			Status:     models.SettlementPending,
		})
		ledger.UpdateSettlement(st.ID, models.SettlementUpdate{Status: models.Ptr(models.SettlementCompleted)})
	}
	return nil
}

// report logs the derived views for every user and group.
func report(ledger *service.LedgerService) {
	settings := ledger.Settings()
	slog.Info("Settings",
		"currency", settings.Currency,
		"premium", settings.IsPremium,
		"daily_count", settings.DailyExpenseCount,
		"last_expense_date", settings.LastExpenseDate,
	)

	for _, u := range ledger.Users() {
		slog.Info("Balance", "user", u.Name, "balance", ledger.GetUserBalance(u.ID).StringFixed(2))
	}

	for _, g := range ledger.Groups() {
		balances := ledger.GetGroupBalances(g.ID)
		slog.Info("Group", "name", g.Name, "expenses", len(ledger.GetGroupExpenses(g.ID)), "open_debts", len(balances.Debts))
		for _, d := range balances.Debts {
			slog.Info("Debt", "group", g.Name, "from", d.From, "to", d.To, "amount", d.Amount.StringFixed(2))
		}
	}

	if me, ok := ledger.CurrentUser(); ok {
		for _, row := range ledger.GetCategoryReport(me.ID) {
			if row.Amount.IsZero() {
				continue
			}
			slog.Info("Spending",
				"category", row.Category,
				"amount", row.Amount.StringFixed(2),
				"percentage", row.Percentage.StringFixed(1),
			)
		}
	}
}
