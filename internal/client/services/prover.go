// Package services implements the prover side of the identification
// protocol: registration of the public commitment and the interactive
// authentication exchange.
package services

import (
	"context"
	"fmt"
	"math/big"

	"github.com/dmitrijs2005/zkpauth/internal/client/client"
	"github.com/dmitrijs2005/zkpauth/internal/cryptox"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
)

// saltPrefix makes the argon2 salt domain-separated per user, so the same
// password used with two different user names derives two unrelated secrets.
const saltPrefix = "zkpauth/v1/"

type ProverService struct {
	client client.Client
	params *zkp.Params
}

func NewProverService(c client.Client, zp *zkp.Params) *ProverService {
	return &ProverService{client: c, params: zp}
}

// secret derives the long-term exponent x from the user's password.
func (p *ProverService) secret(user string, password []byte) *big.Int {
	salt := []byte(saltPrefix + user)
	return cryptox.DeriveSecret(password, salt, p.params.Q)
}

// Register derives the secret from the password and submits the public
// commitment pair (y1, y2) to the verifier.
func (p *ProverService) Register(ctx context.Context, user string, password []byte) error {
	x := p.secret(user, password)

	y1 := zkp.Exponentiate(p.params.Alpha, x, p.params.P)
	y2 := zkp.Exponentiate(p.params.Beta, x, p.params.P)

	return p.client.Register(ctx, user, zkp.EncodeBytes(y1), zkp.EncodeBytes(y2))
}

// Login runs one full authentication round: commit to a fresh nonce,
// obtain a challenge, answer it, and return the session credential.
func (p *ProverService) Login(ctx context.Context, user string, password []byte) (string, error) {
	x := p.secret(user, password)

	k, err := zkp.RandomBelow(p.params.Q)
	if err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	r1 := zkp.Exponentiate(p.params.Alpha, k, p.params.P)
	r2 := zkp.Exponentiate(p.params.Beta, k, p.params.P)

	authID, cBytes, err := p.client.CreateChallenge(ctx, user, zkp.EncodeBytes(r1), zkp.EncodeBytes(r2))
	if err != nil {
		return "", err
	}

	// A challenge outside [0, q) cannot come from a well-behaved verifier.
	c, err := zkp.ParseBytes(cBytes, p.params.Q)
	if err != nil {
		return "", fmt.Errorf("parsing challenge: %w", err)
	}

	s := p.params.Solve(k, c, x)

	return p.client.VerifyAnswer(ctx, authID, zkp.EncodeBytes(s))
}
