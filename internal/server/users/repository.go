package users

import (
	"context"
)

// Repository stores registered users.
//
// Save overwrites any existing record with the same name: re-registration
// is last-write-wins. Records live until the repository itself is torn
// down; nothing in this layer deletes them.
type Repository interface {
	Save(ctx context.Context, user *User) error
	Get(ctx context.Context, name string) (*User, error)
}
