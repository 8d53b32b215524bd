package models

import (
	"slices"
	"time"
)

// Group represents a set of people sharing expenses, e.g. "Roommates".
type Group struct {
	// ID is the unique identifier for the group.
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Trip to Barcelona").
	Name string

	// Members is the ordered list of member user IDs.
	// Uniqueness is expected but not enforced.
	Members []string

	// CreatedAt is when the group was created.
	CreatedAt time.Time

	// UpdatedAt is refreshed on every change to the group.
	UpdatedAt time.Time

	// Avatar is an optional picture reference. Empty means none.
	Avatar string
}

// HasMember reports whether userID appears in the member list.
func (g Group) HasMember(userID string) bool {
	return slices.Contains(g.Members, userID)
}

// Clone returns a copy of g that shares no slices with it.
func (g Group) Clone() Group {
	g.Members = slices.Clone(g.Members)
	return g
}

// GroupUpdate carries the fields to merge into an existing group.
// Nil fields are left untouched. UpdatedAt is maintained by the service.
type GroupUpdate struct {
	Name    *string
	Members []string
	Avatar  *string
}

// Apply merges the set fields of u into group.
// A non-nil Members slice replaces the member list.
func (u GroupUpdate) Apply(group *Group) {
	if u.Name != nil {
		group.Name = *u.Name
	}
	if u.Members != nil {
		group.Members = slices.Clone(u.Members)
	}
	if u.Avatar != nil {
		group.Avatar = *u.Avatar
	}
}
