// Package auth implements the verifier side of the Chaum–Pedersen
// identification protocol: registration of public commitments, challenge
// issuance and proof verification. Each attempt moves through
// Registered -> Challenged -> Verified|Rejected; a challenge can only be
// answered once.
package auth

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/server/challenges"
	"github.com/dmitrijs2005/zkpauth/internal/server/config"
	"github.com/dmitrijs2005/zkpauth/internal/server/users"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
)

// authIDBytes sizes the attempt token: 16 random bytes, 32 hex characters.
const authIDBytes = 16

// tokenRetries bounds the regeneration loop on an attempt-token collision.
// With 128-bit tokens a single collision is already vanishingly rare.
const tokenRetries = 5

type Service struct {
	users           users.Repository
	challenges      challenges.Repository
	params          *zkp.Params
	jwtSecret       []byte
	sessionValidity time.Duration
}

func NewService(ur users.Repository, cr challenges.Repository, zp *zkp.Params, cfg *config.Config) *Service {
	return &Service{
		users:           ur,
		challenges:      cr,
		params:          zp,
		jwtSecret:       []byte(cfg.SecretKey),
		sessionValidity: cfg.SessionValidityDuration,
	}
}

// Params exposes the group the verifier runs with.
func (s *Service) Params() *zkp.Params {
	return s.params
}

// Register stores the commitment (y1, y2) for name. Re-registration
// overwrites the previous commitment. No proof of knowledge of the
// underlying secret is demanded at this point; that is protocol scope.
func (s *Service) Register(ctx context.Context, name string, y1, y2 *big.Int) error {
	user := &users.User{
		Name:         name,
		Y1:           y1,
		Y2:           y2,
		RegisteredAt: time.Now(),
	}

	if err := s.users.Save(ctx, user); err != nil {
		return fmt.Errorf("saving user: %w", err)
	}
	return nil
}

// CreateChallenge validates that name is registered, draws a random
// challenge c in [0, q) and a fresh attempt token, and stores the attempt.
// Concurrent attempts for the same name each get their own token and do
// not clobber each other.
func (s *Service) CreateChallenge(ctx context.Context, name string, r1, r2 *big.Int) (string, *big.Int, error) {
	if _, err := s.users.Get(ctx, name); err != nil {
		return "", nil, err
	}

	c, err := zkp.RandomBelow(s.params.Q)
	if err != nil {
		return "", nil, fmt.Errorf("%w: drawing challenge: %v", common.ErrInternal, err)
	}

	for i := 0; i < tokenRetries; i++ {
		authID, err := zkp.RandomToken(authIDBytes)
		if err != nil {
			return "", nil, fmt.Errorf("%w: drawing auth id: %v", common.ErrInternal, err)
		}

		err = s.challenges.Create(ctx, &challenges.Challenge{
			AuthID: authID,
			User:   name,
			R1:     r1,
			R2:     r2,
			C:      c,
		})
		if errors.Is(err, challenges.ErrDuplicateAuthID) {
			continue
		}
		if err != nil {
			return "", nil, fmt.Errorf("%w: storing challenge: %v", common.ErrInternal, err)
		}
		return authID, c, nil
	}

	return "", nil, fmt.Errorf("%w: could not allocate a unique auth id", common.ErrInternal)
}

// VerifyAnswer resolves the attempt for authID, checks the response s
// against the stored commitment and challenge, and issues a session
// credential on success. The attempt is consumed up front, so replaying the
// same token fails with not-found whatever the outcome here.
func (s *Service) VerifyAnswer(ctx context.Context, authID string, answer *big.Int) (string, error) {
	ch, err := s.challenges.Take(ctx, authID)
	if err != nil {
		return "", err
	}

	user, err := s.users.Get(ctx, ch.User)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// the user existed when the challenge was issued
			return "", fmt.Errorf("%w: user %q vanished for auth id %q", common.ErrInternal, ch.User, authID)
		}
		return "", err
	}

	if !s.params.Verify(ch.R1, ch.R2, user.Y1, user.Y2, ch.C, answer) {
		return "", fmt.Errorf("auth id %q: %w", authID, common.ErrInvalidProof)
	}

	sessionID, err := NewSessionToken(user.Name, s.jwtSecret, s.sessionValidity)
	if err != nil {
		return "", fmt.Errorf("%w: signing session token: %v", common.ErrInternal, err)
	}
	return sessionID, nil
}
