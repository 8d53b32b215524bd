package models

// User represents a person who can pay for or share in expenses.
type User struct {
	// ID is the unique identifier for the user.
	// Callers usually supply it; an empty ID is filled with a UUID on insert.
	ID string

	// Name is the display name of the user.
	Name string

	// Email is the user's email address.
	Email string

	// Avatar is an optional picture reference. Empty means none.
	Avatar string
}

// UserUpdate carries the fields to merge into an existing user.
// Nil fields are left untouched.
type UserUpdate struct {
	Name   *string
	Email  *string
	Avatar *string
}

// Apply merges the non-nil fields of u into user.
func (u UserUpdate) Apply(user *User) {
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.Avatar != nil {
		user.Avatar = *u.Avatar
	}
}
