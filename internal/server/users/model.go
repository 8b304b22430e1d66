package users

import (
	"math/big"
	"time"
)

// User is a registered identity together with its public commitment to the
// secret x: y1 = alpha^x mod p and y2 = beta^x mod p. The secret itself
// never reaches the server.
type User struct {
	Name         string
	Y1           *big.Int
	Y2           *big.Int
	RegisteredAt time.Time
}
