package zkp

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// toyParams returns the small worked example group: p=23, q=11, alpha=4,
// beta=9 (both generators of the order-11 subgroup).
func toyParams() *Params {
	return &Params{
		P:     big.NewInt(23),
		Q:     big.NewInt(11),
		Alpha: big.NewInt(4),
		Beta:  big.NewInt(9),
	}
}

func TestToyExample(t *testing.T) {
	zp := toyParams()

	x := big.NewInt(6)
	k := big.NewInt(7)
	c := big.NewInt(4)

	y1 := Exponentiate(zp.Alpha, x, zp.P)
	y2 := Exponentiate(zp.Beta, x, zp.P)
	require.Equal(t, big.NewInt(2), y1)
	require.Equal(t, big.NewInt(3), y2)

	r1 := Exponentiate(zp.Alpha, k, zp.P)
	r2 := Exponentiate(zp.Beta, k, zp.P)
	require.Equal(t, big.NewInt(8), r1)
	require.Equal(t, big.NewInt(4), r2)

	s := zp.Solve(k, c, x)
	require.Equal(t, big.NewInt(5), s)

	require.True(t, zp.Verify(r1, r2, y1, y2, c, s))

	// a response computed from the wrong secret must not verify
	xFake := big.NewInt(7)
	sFake := zp.Solve(k, c, xFake)
	require.False(t, zp.Verify(r1, r2, y1, y2, c, sFake))
}

func TestVerifyAllChallenges(t *testing.T) {
	zp := toyParams()

	x := big.NewInt(6)
	y1 := Exponentiate(zp.Alpha, x, zp.P)
	y2 := Exponentiate(zp.Beta, x, zp.P)

	for k := int64(0); k < 11; k++ {
		r1 := Exponentiate(zp.Alpha, big.NewInt(k), zp.P)
		r2 := Exponentiate(zp.Beta, big.NewInt(k), zp.P)
		for c := int64(0); c < 11; c++ {
			s := zp.Solve(big.NewInt(k), big.NewInt(c), x)
			require.True(t, zp.Verify(r1, r2, y1, y2, big.NewInt(c), s),
				"k=%d c=%d", k, c)
		}
	}
}

func TestSolveAlwaysInRange(t *testing.T) {
	zp := toyParams()

	tests := []struct {
		name    string
		k, c, x int64
		want    int64
	}{
		{"k dominates", 7, 4, 6, 5},
		{"c*x dominates", 2, 5, 4, 4},   // (2-20) mod 11
		{"difference divides q", 4, 5, 3, 0}, // c*x-k = 11, must fold q to 0
		{"all zero", 0, 0, 0, 0},
		{"k equals c*x", 6, 2, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := zp.Solve(big.NewInt(tt.k), big.NewInt(tt.c), big.NewInt(tt.x))
			require.Equal(t, 0, big.NewInt(tt.want).Cmp(s))
			require.Less(t, s.Cmp(zp.Q), 0)
			require.GreaterOrEqual(t, s.Sign(), 0)
		})
	}
}

func TestDefaultParamsProtocol(t *testing.T) {
	zp := DefaultParams()

	require.Equal(t, 1024, zp.P.BitLen())
	require.Equal(t, 160, zp.Q.BitLen())
	// both generators belong to the order-q subgroup
	require.Equal(t, big.NewInt(1), Exponentiate(zp.Alpha, zp.Q, zp.P))
	require.Equal(t, big.NewInt(1), Exponentiate(zp.Beta, zp.Q, zp.P))

	x, err := RandomBelow(zp.Q)
	require.NoError(t, err)
	k, err := RandomBelow(zp.Q)
	require.NoError(t, err)
	c, err := RandomBelow(zp.Q)
	require.NoError(t, err)

	y1 := Exponentiate(zp.Alpha, x, zp.P)
	y2 := Exponentiate(zp.Beta, x, zp.P)
	r1 := Exponentiate(zp.Alpha, k, zp.P)
	r2 := Exponentiate(zp.Beta, k, zp.P)
	s := zp.Solve(k, c, x)

	require.True(t, zp.Verify(r1, r2, y1, y2, c, s))

	xFake := new(big.Int).Add(x, big.NewInt(1))
	require.False(t, zp.Verify(r1, r2, y1, y2, c, zp.Solve(k, c, xFake)))
}

func TestRandomBelow(t *testing.T) {
	bound := big.NewInt(1000)
	for i := 0; i < 100; i++ {
		v, err := RandomBelow(bound)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v.Sign(), 0)
		require.Less(t, v.Cmp(bound), 0)
	}
}

func TestRandomToken(t *testing.T) {
	a, err := RandomToken(16)
	require.NoError(t, err)
	require.Len(t, a, 32)

	b, err := RandomToken(16)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
