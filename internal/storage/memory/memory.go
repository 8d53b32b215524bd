// Package memory provides the in-process implementation of storage.Store.
// State lives only for the lifetime of the process.
package memory

import (
	"slices"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store implements storage.Store with plain slices.
// It is not safe for concurrent use; the ledger has a single writer.
type Store struct {
	currentUser *models.User
	users       []models.User
	groups      []models.Group
	expenses    []models.Expense
	settlements []models.Settlement
	settings    models.AppSettings
}

// Option configures a Store at construction.
type Option func(*Store)

// WithDefaults overrides the default currency and language of a fresh store.
// Empty values keep the built-in defaults.
func WithDefaults(currency, language string) Option {
	return func(s *Store) {
		if currency != "" {
			s.settings.Currency = currency
		}
		if language != "" {
			s.settings.Language = language
		}
	}
}

// New creates an empty store with default settings.
func New(opts ...Option) *Store {
	s := &Store{settings: models.DefaultSettings()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) CurrentUser() (models.User, bool) {
	if s.currentUser == nil {
		return models.User{}, false
	}
	return *s.currentUser, true
}

func (s *Store) SetCurrentUser(user models.User) {
	s.currentUser = &user
}

func (s *Store) Users() []models.User {
	return slices.Clone(s.users)
}

// AddUser appends the user, generating an ID if not set.
func (s *Store) AddUser(user models.User) models.User {
	if user.ID == "" {
		user.ID = models.NewID()
	}
	s.users = append(s.users, user)
	return user
}

func (s *Store) UpdateUser(id string, fn func(*models.User)) int {
	n := 0
	for i := range s.users {
		if s.users[i].ID == id {
			fn(&s.users[i])
			n++
		}
	}
	return n
}

func (s *Store) Groups() []models.Group {
	out := make([]models.Group, len(s.groups))
	for i, g := range s.groups {
		out[i] = g.Clone()
	}
	return out
}

// AddGroup appends a copy of the group, generating an ID if not set.
func (s *Store) AddGroup(group models.Group) models.Group {
	if group.ID == "" {
		group.ID = models.NewID()
	}
	group = group.Clone()
	s.groups = append(s.groups, group)
	return group.Clone()
}

func (s *Store) UpdateGroup(id string, fn func(*models.Group)) int {
	n := 0
	for i := range s.groups {
		if s.groups[i].ID == id {
			fn(&s.groups[i])
			n++
		}
	}
	return n
}

func (s *Store) DeleteGroup(id string) storage.CascadeResult {
	var res storage.CascadeResult
	s.groups = slices.DeleteFunc(s.groups, func(g models.Group) bool {
		if g.ID == id {
			res.Groups++
			return true
		}
		return false
	})
	s.expenses = slices.DeleteFunc(s.expenses, func(e models.Expense) bool {
		if e.GroupID == id {
			res.Expenses++
			return true
		}
		return false
	})
	s.settlements = slices.DeleteFunc(s.settlements, func(st models.Settlement) bool {
		if st.GroupID == id {
			res.Settlements++
			return true
		}
		return false
	})
	return res
}

func (s *Store) Expenses() []models.Expense {
	out := make([]models.Expense, len(s.expenses))
	for i, e := range s.expenses {
		out[i] = e.Clone()
	}
	return out
}

// RecordExpense appends a copy of the expense (generating an ID if not set)
// and replaces the settings.
func (s *Store) RecordExpense(expense models.Expense, settings models.AppSettings) models.Expense {
	if expense.ID == "" {
		expense.ID = models.NewID()
	}
	expense = expense.Clone()
	s.expenses = append(s.expenses, expense)
	s.settings = settings
	return expense.Clone()
}

func (s *Store) UpdateExpense(id string, fn func(*models.Expense)) int {
	n := 0
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			fn(&s.expenses[i])
			n++
		}
	}
	return n
}

func (s *Store) DeleteExpense(id string) int {
	before := len(s.expenses)
	s.expenses = slices.DeleteFunc(s.expenses, func(e models.Expense) bool {
		return e.ID == id
	})
	return before - len(s.expenses)
}

func (s *Store) Settlements() []models.Settlement {
	return slices.Clone(s.settlements)
}

// AddSettlement appends the settlement, generating an ID if not set.
func (s *Store) AddSettlement(settlement models.Settlement) models.Settlement {
	if settlement.ID == "" {
		settlement.ID = models.NewID()
	}
	s.settlements = append(s.settlements, settlement)
	return settlement
}

func (s *Store) UpdateSettlement(id string, fn func(*models.Settlement)) int {
	n := 0
	for i := range s.settlements {
		if s.settlements[i].ID == id {
			fn(&s.settlements[i])
			n++
		}
	}
	return n
}

func (s *Store) Settings() models.AppSettings {
	return s.settings
}

func (s *Store) SaveSettings(settings models.AppSettings) {
	s.settings = settings
}
