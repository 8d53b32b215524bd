package service

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/models"
)

// AddExpense appends expense if today's quota allows it and reports whether
// it was accepted. A rejected expense leaves the ledger untouched.
//
// The expense is stored as given; see AddExpenseChecked for validation.
func (s *LedgerService) AddExpense(expense models.Expense) bool {
	today := s.today()

	settings, decision := s.gate.Record(s.store.Settings(), today)
	if !decision.Allowed() {
		s.metrics.ExpenseRejected(metrics.ReasonQuota)
		s.log.Warn("Daily expense limit reached",
			"group_id", expense.GroupID,
			"daily_count", settings.DailyExpenseCount,
			"limit", s.gate.Limit,
			"date", today,
		)
		return false
	}

	stored := s.store.RecordExpense(expense, settings)
	s.metrics.ExpenseAdded(settings.DailyExpenseCount)
	s.log.Info("Expense added",
		"expense_id", stored.ID,
		"group_id", stored.GroupID,
		"amount", stored.Amount.String(),
		"daily_count", settings.DailyExpenseCount,
		"quota", decision.String(),
	)
	return true
}

// AddExpenseChecked validates expense against the known users and groups
// before handing it to AddExpense. Validation errors wrap
// validation.ErrInvalidExpense.
func (s *LedgerService) AddExpenseChecked(expense models.Expense) (bool, error) {
	if err := s.validator.ValidateExpense(expense, s); err != nil {
		s.metrics.ExpenseRejected(metrics.ReasonValidation)
		s.log.Warn("Expense rejected", "group_id", expense.GroupID, "error", err)
		return false, err
	}
	return s.AddExpense(expense), nil
}

// CanAddExpenseToday reports whether AddExpense would accept an expense now.
func (s *LedgerService) CanAddExpenseToday() bool {
	return s.gate.Allow(s.store.Settings(), s.today())
}

// UpdateExpense merges update into the expense. The quota is not involved.
func (s *LedgerService) UpdateExpense(id string, update models.ExpenseUpdate) {
	n := s.store.UpdateExpense(id, update.Apply)
	s.logUpdate("expense", id, n)
}

// DeleteExpense removes the expense. Settlements are not touched.
func (s *LedgerService) DeleteExpense(id string) {
	n := s.store.DeleteExpense(id)
	if n == 0 {
		s.log.Debug("Delete matched nothing", "entity", "expense", "id", id)
		return
	}
	s.metrics.Mutation("expense", "delete")
	s.log.Info("Expense deleted", "expense_id", id)
}

// Expenses returns a snapshot of every expense in insertion order.
func (s *LedgerService) Expenses() []models.Expense {
	return s.store.Expenses()
}

// FindExpense returns the first expense with the given ID.
func (s *LedgerService) FindExpense(id string) (models.Expense, bool) {
	for _, e := range s.store.Expenses() {
		if e.ID == id {
			return e, true
		}
	}
	return models.Expense{}, false
}

// GetGroupExpenses returns the group's expenses in insertion order.
func (s *LedgerService) GetGroupExpenses(groupID string) []models.Expense {
	var out []models.Expense
	for _, e := range s.store.Expenses() {
		if e.GroupID == groupID {
			out = append(out, e)
		}
	}
	return out
}

// GetExpenseShare returns the signed effect of one expense on userID:
// positive when others owe them, negative when they owe.
// The bool is false when no expense has that ID.
func (s *LedgerService) GetExpenseShare(expenseID, userID string) (decimal.Decimal, bool) {
	e, ok := s.FindExpense(expenseID)
	if !ok {
		return decimal.Zero, false
	}
	return calculator.ExpenseShare(e, userID), true
}
