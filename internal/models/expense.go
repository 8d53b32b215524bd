package models

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies an expense for spend reporting.
type Category string

const (
	CategoryFood           Category = "food"
	CategoryTransportation Category = "transportation"
	CategoryEntertainment  Category = "entertainment"
	CategoryShopping       Category = "shopping"
	CategoryUtilities      Category = "utilities"
	CategoryRent           Category = "rent"
	CategoryOther          Category = "other"
)

// Categories returns every category in reporting order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransportation,
		CategoryEntertainment,
		CategoryShopping,
		CategoryUtilities,
		CategoryRent,
		CategoryOther,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return slices.Contains(Categories(), c)
}

// Participant is one user's share of an expense, i.e. what they owe toward it.
type Participant struct {
	UserID string
	Amount decimal.Decimal
}

// Expense represents a single shared cost paid by one user.
type Expense struct {
	// ID is the unique identifier for the expense.
	ID string

	// GroupID is the group this expense belongs to. Not checked for existence.
	GroupID string

	// Title is the human-readable name for the expense.
	Title string

	// Amount is the total paid, in the group's implicit currency.
	Amount decimal.Decimal

	// PaidBy is the user who fronted the money.
	PaidBy string

	// Date is when the expense happened.
	Date time.Time

	// Category is used by the category report.
	Category Category

	// Participants are the per-user shares. They are expected to sum to
	// Amount within a cent, but the store does not enforce it.
	Participants []Participant

	// Notes is optional free text.
	Notes string

	// Receipt is an optional receipt reference.
	Receipt string
}

// Share returns the share userID owes toward the expense and whether the
// user has a participant entry. Multiple entries for the same user are summed.
func (e Expense) Share(userID string) (decimal.Decimal, bool) {
	share := decimal.Zero
	found := false
	for _, p := range e.Participants {
		if p.UserID == userID {
			share = share.Add(p.Amount)
			found = true
		}
	}
	return share, found
}

// Involves reports whether userID paid for or shares in the expense.
func (e Expense) Involves(userID string) bool {
	if e.PaidBy == userID {
		return true
	}
	_, ok := e.Share(userID)
	return ok
}

// Clone returns a copy of e that shares no slices with it.
func (e Expense) Clone() Expense {
	e.Participants = slices.Clone(e.Participants)
	return e
}

// ExpenseUpdate carries the fields to merge into an existing expense.
// Nil fields are left untouched.
type ExpenseUpdate struct {
	GroupID      *string
	Title        *string
	Amount       *decimal.Decimal
	PaidBy       *string
	Date         *time.Time
	Category     *Category
	Participants []Participant
	Notes        *string
	Receipt      *string
}

// Apply merges the set fields of u into e.
// A non-nil Participants slice replaces the shares.
func (u ExpenseUpdate) Apply(e *Expense) {
	if u.GroupID != nil {
		e.GroupID = *u.GroupID
	}
	if u.Title != nil {
		e.Title = *u.Title
	}
	if u.Amount != nil {
		e.Amount = *u.Amount
	}
	if u.PaidBy != nil {
		e.PaidBy = *u.PaidBy
	}
	if u.Date != nil {
		e.Date = *u.Date
	}
	if u.Category != nil {
		e.Category = *u.Category
	}
	if u.Participants != nil {
		e.Participants = slices.Clone(u.Participants)
	}
	if u.Notes != nil {
		e.Notes = *u.Notes
	}
	if u.Receipt != nil {
		e.Receipt = *u.Receipt
	}
}
