package service

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
)

// Users returns a snapshot of every user.
func (s *LedgerService) Users() []models.User {
	return s.store.Users()
}

// FindUser returns the first user with the given ID.
func (s *LedgerService) FindUser(id string) (models.User, bool) {
	for _, u := range s.store.Users() {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// HasUser reports whether a user with the given ID exists.
func (s *LedgerService) HasUser(id string) bool {
	_, ok := s.FindUser(id)
	return ok
}

// AddSettlement records a payment between two users.
// Only completed settlements affect balances.
func (s *LedgerService) AddSettlement(settlement models.Settlement) models.Settlement {
	settlement = s.store.AddSettlement(settlement)
	s.metrics.Mutation("settlement", "add")
	s.log.Info("Settlement recorded",
		"settlement_id", settlement.ID,
		"group_id", settlement.GroupID,
		"from", settlement.FromUserID,
		"to", settlement.ToUserID,
		"amount", settlement.Amount.String(),
		"status", settlement.Status,
	)
	return settlement
}

// UpdateSettlement merges update into the settlement, e.g. to complete it.
func (s *LedgerService) UpdateSettlement(id string, update models.SettlementUpdate) {
	n := s.store.UpdateSettlement(id, update.Apply)
	s.logUpdate("settlement", id, n)
}

// Settlements returns a snapshot of every settlement.
func (s *LedgerService) Settlements() []models.Settlement {
	return s.store.Settlements()
}

// GetUserBalance returns the net amount userID is owed (positive) or owes
// (negative) across all expenses and completed settlements.
func (s *LedgerService) GetUserBalance(userID string) decimal.Decimal {
	return calculator.UserBalance(s.store.Expenses(), s.store.Settlements(), userID)
}

// GetCategoryReport returns the user's spending per category, largest first.
func (s *LedgerService) GetCategoryReport(userID string) []calculator.CategoryAmount {
	return calculator.CategoryReport(s.store.Expenses(), userID)
}
