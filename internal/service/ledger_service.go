package service

import (
	"log/slog"
	"time"

	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/quota"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/internal/validation"
)

// LedgerService is the ledger API used by the presentation layer.
// It records users, groups, expenses and settlements, enforces the daily
// expense quota, and derives balances and reports from the stored history.
//
// LedgerService is not safe for concurrent use.
type LedgerService struct {
	store     storage.Store
	gate      quota.Gate
	now       func() time.Time
	log       *slog.Logger
	metrics   *metrics.Metrics
	validator *validation.Validator
}

// Option configures a LedgerService.
type Option func(*LedgerService)

// WithClock sets the time source used for quota days and group timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *LedgerService) {
		s.now = now
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *LedgerService) {
		s.log = logger
	}
}

// WithMetrics enables Prometheus collection.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *LedgerService) {
		s.metrics = m
	}
}

// WithDailyLimit overrides the free-tier daily expense limit.
func WithDailyLimit(limit int) Option {
	return func(s *LedgerService) {
		s.gate = quota.NewGate(limit)
	}
}

// WithValidator sets the validator used by AddExpenseChecked.
func WithValidator(v *validation.Validator) Option {
	return func(s *LedgerService) {
		s.validator = v
	}
}

// NewLedgerService creates a LedgerService over the given store.
func NewLedgerService(store storage.Store, opts ...Option) *LedgerService {
	s := &LedgerService{
		store: store,
		gate:  quota.NewGate(quota.DefaultDailyLimit),
		now:   time.Now,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.validator == nil {
		s.validator = validation.New()
	}
	return s
}

func (s *LedgerService) today() string {
	return quota.Today(s.now())
}

// SetCurrentUser records who is using the app.
func (s *LedgerService) SetCurrentUser(user models.User) {
	s.store.SetCurrentUser(user)
	s.log.Debug("Current user set", "user_id", user.ID)
}

// CurrentUser returns the current user, if one was set.
func (s *LedgerService) CurrentUser() (models.User, bool) {
	return s.store.CurrentUser()
}

// AddUser appends a user. IDs are not checked for uniqueness.
func (s *LedgerService) AddUser(user models.User) models.User {
	user = s.store.AddUser(user)
	s.metrics.Mutation("user", "add")
	s.log.Info("User added", "user_id", user.ID, "name", user.Name)
	return user
}

// UpdateUser merges update into every user with the given ID.
func (s *LedgerService) UpdateUser(id string, update models.UserUpdate) {
	n := s.store.UpdateUser(id, update.Apply)
	s.logUpdate("user", id, n)
}

// UpdateSettings shallow-merges update into the settings.
func (s *LedgerService) UpdateSettings(update models.SettingsUpdate) {
	settings := s.store.Settings()
	update.Apply(&settings)
	s.store.SaveSettings(settings)
	s.metrics.Mutation("settings", "update")
	s.metrics.DailyCount(settings.DailyExpenseCount)
	s.log.Info("Settings updated",
		"currency", settings.Currency,
		"premium", settings.IsPremium,
		"daily_count", settings.DailyExpenseCount,
	)
}

// ResetDailyExpenseCount zeroes the quota counter and pins it to today.
func (s *LedgerService) ResetDailyExpenseCount() {
	today := s.today()
	s.UpdateSettings(models.SettingsUpdate{
		DailyExpenseCount: models.Ptr(0),
		LastExpenseDate:   &today,
	})
}

// UpgradeToPremium lifts the daily quota. No payment is involved.
func (s *LedgerService) UpgradeToPremium() {
	s.UpdateSettings(models.SettingsUpdate{IsPremium: models.Ptr(true)})
}

// Settings returns a snapshot of the settings.
func (s *LedgerService) Settings() models.AppSettings {
	return s.store.Settings()
}

// logUpdate records an update by ID; n is the number of records it touched.
func (s *LedgerService) logUpdate(entity, id string, n int) {
	if n == 0 {
		s.log.Debug("Update matched nothing", "entity", entity, "id", id)
		return
	}
	s.metrics.Mutation(entity, "update")
	s.log.Info("Record updated", "entity", entity, "id", id, "matched", n)
}
