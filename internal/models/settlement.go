package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettlementStatus is the lifecycle state of a settlement.
type SettlementStatus string

const (
	SettlementPending   SettlementStatus = "pending"
	SettlementCompleted SettlementStatus = "completed"
)

// Settlement represents a payment between group members to clear debts.
// Only completed settlements affect balances.
type Settlement struct {
	// ID is the unique identifier for the settlement.
	ID string

	// GroupID is the group this settlement belongs to.
	GroupID string

	// FromUserID is the user who paid (debtor settling up).
	FromUserID string

	// ToUserID is the user who received payment (creditor being paid).
	ToUserID string

	// Amount is the payment amount.
	Amount decimal.Decimal

	// Date is when the payment was made.
	Date time.Time

	// Status is pending until the payment is confirmed.
	Status SettlementStatus
}

// IsCompleted reports whether the settlement counts toward balances.
func (s Settlement) IsCompleted() bool {
	return s.Status == SettlementCompleted
}

// SettlementUpdate carries the fields to merge into an existing settlement.
type SettlementUpdate struct {
	GroupID    *string
	FromUserID *string
	ToUserID   *string
	Amount     *decimal.Decimal
	Date       *time.Time
	Status     *SettlementStatus
}

// Apply merges the non-nil fields of u into s.
func (u SettlementUpdate) Apply(s *Settlement) {
	if u.GroupID != nil {
		s.GroupID = *u.GroupID
	}
	if u.FromUserID != nil {
		s.FromUserID = *u.FromUserID
	}
	if u.ToUserID != nil {
		s.ToUserID = *u.ToUserID
	}
	if u.Amount != nil {
		s.Amount = *u.Amount
	}
	if u.Date != nil {
		s.Date = *u.Date
	}
	if u.Status != nil {
		s.Status = *u.Status
	}
}
