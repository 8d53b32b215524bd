package models

import "github.com/google/uuid"

// NewID returns a fresh random identifier (UUID format).
func NewID() string {
	return uuid.New().String()
}

// Ptr returns a pointer to v. Handy for building partial updates.
func Ptr[T any](v T) *T {
	return &v
}
