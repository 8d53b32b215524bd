// Package storage provides abstractions for the ledger's owned collections.
package storage

import "github.com/mmynk/splitledger/internal/models"

// CascadeResult reports how many records a group delete removed.
type CascadeResult struct {
	Groups      int
	Expenses    int
	Settlements int
}

// Store defines the raw collection operations behind the ledger.
// It holds no business rules beyond the group delete cascade; quota gating,
// timestamps and derived reads live in the service layer.
//
// Read methods return deep copies. Update methods apply fn to every record
// whose ID matches and return the number of records changed.
type Store interface {
	// CurrentUser returns the selected user, if any.
	CurrentUser() (models.User, bool)
	SetCurrentUser(user models.User)

	Users() []models.User
	AddUser(user models.User) models.User
	UpdateUser(id string, fn func(*models.User)) int

	Groups() []models.Group
	AddGroup(group models.Group) models.Group
	UpdateGroup(id string, fn func(*models.Group)) int

	// DeleteGroup removes the group and every expense and settlement
	// referencing it.
	DeleteGroup(id string) CascadeResult

	Expenses() []models.Expense

	// RecordExpense appends the expense and stores settings in one step,
	// so the quota counters never disagree with the expense list.
	RecordExpense(expense models.Expense, settings models.AppSettings) models.Expense
	UpdateExpense(id string, fn func(*models.Expense)) int
	DeleteExpense(id string) int

	Settlements() []models.Settlement
	AddSettlement(settlement models.Settlement) models.Settlement
	UpdateSettlement(id string, fn func(*models.Settlement)) int

	Settings() models.AppSettings
	SaveSettings(settings models.AppSettings)
}
