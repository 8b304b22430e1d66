// Package cryptox provides the prover-side secret derivation.
package cryptox

import (
	"math/big"

	"golang.org/x/crypto/argon2"
)

// DeriveSecret derives the prover's secret x from a password and salt using
// Argon2id, reduced into [0, q). The same (password, salt, q) always yields
// the same x, so the prover can re-derive its secret on any machine instead
// of storing it.
func DeriveSecret(password, salt []byte, q *big.Int) *big.Int {
	key := argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
	return new(big.Int).Mod(new(big.Int).SetBytes(key), q)
}

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Use it to drop passwords from memory as soon as the secret has
// been derived.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
