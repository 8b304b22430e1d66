package challenges

import (
	"context"
	"errors"
)

// ErrDuplicateAuthID is returned by Create when the attempt token is
// already live. The caller is expected to draw a fresh token and retry.
var ErrDuplicateAuthID = errors.New("auth id already in use")

// Repository stores live authentication attempts.
//
// Take resolves and removes a challenge in one step, enforcing single use:
// a second Take with the same token fails with common.ErrNotFound, as does
// a Take for a challenge that has outlived its TTL.
type Repository interface {
	Create(ctx context.Context, ch *Challenge) error
	Take(ctx context.Context, authID string) (*Challenge, error)
}
