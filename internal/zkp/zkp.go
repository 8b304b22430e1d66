// Package zkp implements the arithmetic of the Chaum–Pedersen
// zero-knowledge identification protocol over a prime-order subgroup:
// modular exponentiation, challenge–response solving and the verification
// predicate, plus the secure random draws both sides need.
package zkp

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
)

// Params holds the group parameters shared out of band between prover and
// verifier: the prime modulus p, the prime order q of the subgroup, and two
// generators alpha and beta of that subgroup.
//
// Soundness requires that nobody knows k with beta = alpha^k. That is a
// trust assumption on parameter selection and cannot be checked here.
type Params struct {
	P     *big.Int
	Q     *big.Int
	Alpha *big.Int
	Beta  *big.Int
}

// Exponentiate returns n^exp mod m.
func Exponentiate(n, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(n, exp, m)
}

// Solve computes the prover's response s = (k - c*x) mod q, always
// normalized into [0, q).
//
// c*x may exceed k, so the subtraction branches on magnitude to keep every
// intermediate value non-negative. The trailing Mod folds the q - 0 = q
// corner of the second branch back to the canonical residue 0.
func (zp *Params) Solve(k, c, x *big.Int) *big.Int {
	cx := new(big.Int).Mul(c, x)
	s := new(big.Int)
	if k.Cmp(cx) >= 0 {
		s.Sub(k, cx)
		return s.Mod(s, zp.Q)
	}
	s.Sub(cx, k)
	s.Mod(s, zp.Q)
	s.Sub(zp.Q, s)
	return s.Mod(s, zp.Q)
}

// Verify reports whether the response s answers the challenge c for the
// commitment (r1, r2) and the registered public values (y1, y2):
//
//	r1 == alpha^s * y1^c mod p
//	r2 == beta^s  * y2^c mod p
//
// An honest prover with r1 = alpha^k, r2 = beta^k and s = (k - c*x) mod q
// satisfies both conditions exactly when the same x underlies y1 and y2.
func (zp *Params) Verify(r1, r2, y1, y2, c, s *big.Int) bool {
	lhs := new(big.Int).Mul(Exponentiate(zp.Alpha, s, zp.P), Exponentiate(y1, c, zp.P))
	lhs.Mod(lhs, zp.P)
	if r1.Cmp(lhs) != 0 {
		return false
	}

	lhs.Mul(Exponentiate(zp.Beta, s, zp.P), Exponentiate(y2, c, zp.P))
	lhs.Mod(lhs, zp.P)
	return r2.Cmp(lhs) == 0
}

// RandomBelow draws a uniform value in [0, bound) from crypto/rand.
// The challenge c and the prover's nonce k both come from here; a
// general-purpose generator is not acceptable for either.
func RandomBelow(bound *big.Int) (*big.Int, error) {
	return rand.Int(rand.Reader, bound)
}

// RandomToken generates a random hexadecimal token from size bytes of
// crypto/rand entropy. The resulting string is 2*size characters long.
func RandomToken(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
