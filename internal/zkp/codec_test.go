package zkp

import (
	"errors"
	"math/big"
	"testing"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/stretchr/testify/require"
)

func TestParseBytesRoundTrip(t *testing.T) {
	max := big.NewInt(1 << 20)

	for _, v := range []int64{0, 1, 127, 128, 255, 256, 65535, 1<<20 - 1} {
		enc := EncodeBytes(big.NewInt(v))
		got, err := ParseBytes(enc, max)
		require.NoError(t, err)
		require.Equal(t, big.NewInt(v), got)
		require.Equal(t, enc, EncodeBytes(got))
	}
}

func TestParseBytesEmptyIsZero(t *testing.T) {
	v, err := ParseBytes(nil, big.NewInt(10))
	require.NoError(t, err)
	require.Equal(t, 0, v.Sign())
}

func TestParseBytesRejectsOutOfRange(t *testing.T) {
	max := big.NewInt(256)

	_, err := ParseBytes(EncodeBytes(big.NewInt(256)), max)
	require.Error(t, err)
	require.True(t, errors.Is(err, common.ErrInvalidArgument))

	_, err = ParseBytes(EncodeBytes(big.NewInt(300)), max)
	require.Error(t, err)

	// boundary value just below max is fine
	v, err := ParseBytes(EncodeBytes(big.NewInt(255)), max)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(255), v)
}
