package zkp

import (
	"fmt"
	"math/big"

	"github.com/dmitrijs2005/zkpauth/internal/common"
)

// ParseBytes decodes a big-endian unsigned byte string and validates that
// the value falls in [0, max). The empty string decodes to zero. Values at
// or above max are rejected, never clamped.
func ParseBytes(b []byte, max *big.Int) (*big.Int, error) {
	v := new(big.Int).SetBytes(b)
	if v.Cmp(max) >= 0 {
		return nil, fmt.Errorf("%w: value does not fit the group", common.ErrInvalidArgument)
	}
	return v, nil
}

// EncodeBytes returns the canonical big-endian unsigned encoding of v, with
// no leading zero bytes. Zero encodes to the empty string. Decoding a
// canonical encoding with ParseBytes yields the original bytes back.
func EncodeBytes(v *big.Int) []byte {
	return v.Bytes()
}
