package memory

import (
	"time"

	"github.com/mmynk/splitledger/internal/models"
)

// NewSeeded creates a store holding the sample users and groups a fresh
// install starts with. now stamps the groups' CreatedAt and UpdatedAt.
func NewSeeded(now time.Time, opts ...Option) *Store {
	s := New(opts...)
	s.users = seedUsers()
	s.groups = seedGroups(now)
	return s
}

func seedUsers() []models.User {
	return []models.User{
		{ID: "1", Name: "You", Email: "you@example.com"},
		{ID: "2", Name: "Alex", Email: "alex@example.com"},
		{ID: "3", Name: "Sam", Email: "sam@example.com"},
		{ID: "4", Name: "Jordan", Email: "jordan@example.com"},
	}
}

func seedGroups(now time.Time) []models.Group {
	return []models.Group{
		{
			ID:        "1",
			Name:      "Roommates",
			Members:   []string{"1", "2", "3"},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "2",
			Name:      "Trip to Barcelona",
			Members:   []string{"1", "2", "3", "4"},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
