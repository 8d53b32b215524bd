package models

// Theme is the UI color scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// DateLayout is the calendar-day key format used for LastExpenseDate.
const DateLayout = "2006-01-02"

// AppSettings is the process-wide settings singleton.
type AppSettings struct {
	Currency      string
	Theme         Theme
	Notifications bool
	Language      string

	// IsPremium lifts the daily expense quota.
	IsPremium bool

	// DailyExpenseCount is the number of expenses added on LastExpenseDate.
	// It is still tracked for premium users, for display only.
	DailyExpenseCount int

	// LastExpenseDate is the most recent calendar day (DateLayout) on which
	// an expense was added. Empty means no expense was ever added.
	LastExpenseDate string
}

// DefaultSettings returns the settings of a fresh install.
func DefaultSettings() AppSettings {
	return AppSettings{
		Currency:      "USD",
		Theme:         ThemeLight,
		Notifications: true,
		Language:      "en",
	}
}

// SettingsUpdate carries the settings fields to merge. Nil fields are kept.
type SettingsUpdate struct {
	Currency          *string
	Theme             *Theme
	Notifications     *bool
	Language          *string
	IsPremium         *bool
	DailyExpenseCount *int
	LastExpenseDate   *string
}

// Apply shallow-merges the non-nil fields of u into s.
func (u SettingsUpdate) Apply(s *AppSettings) {
	if u.Currency != nil {
		s.Currency = *u.Currency
	}
	if u.Theme != nil {
		s.Theme = *u.Theme
	}
	if u.Notifications != nil {
		s.Notifications = *u.Notifications
	}
	if u.Language != nil {
		s.Language = *u.Language
	}
	if u.IsPremium != nil {
		s.IsPremium = *u.IsPremium
	}
	if u.DailyExpenseCount != nil {
		s.DailyExpenseCount = *u.DailyExpenseCount
	}
	if u.LastExpenseDate != nil {
		s.LastExpenseDate = *u.LastExpenseDate
	}
}
