package challenges

import (
	"math/big"
	"time"
)

// Challenge is the ephemeral state of one authentication attempt: the
// prover's one-time commitment (r1, r2) and the challenge c the verifier
// answered it with, keyed by a random attempt token and bound back to the
// registered user name. It is consumed exactly once.
type Challenge struct {
	AuthID    string
	User      string
	R1        *big.Int
	R2        *big.Int
	C         *big.Int
	CreatedAt time.Time
}
