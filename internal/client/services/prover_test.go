package services

import (
	"context"
	"math/big"
	"testing"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toyParams() *zkp.Params {
	return &zkp.Params{
		P:     big.NewInt(23),
		Q:     big.NewInt(11),
		Alpha: big.NewInt(4),
		Beta:  big.NewInt(9),
	}
}

// verifierClient plays the verifier's side of the exchange in-process, so
// the test checks real protocol math rather than call plumbing.
type verifierClient struct {
	params *zkp.Params
	c      *big.Int

	y1, y2 *big.Int
	r1, r2 *big.Int
}

func (v *verifierClient) Register(_ context.Context, _ string, y1, y2 []byte) error {
	v.y1 = new(big.Int).SetBytes(y1)
	v.y2 = new(big.Int).SetBytes(y2)
	return nil
}

func (v *verifierClient) CreateChallenge(_ context.Context, _ string, r1, r2 []byte) (string, []byte, error) {
	v.r1 = new(big.Int).SetBytes(r1)
	v.r2 = new(big.Int).SetBytes(r2)
	return "attempt1", v.c.Bytes(), nil
}

func (v *verifierClient) VerifyAnswer(_ context.Context, _ string, s []byte) (string, error) {
	ok := v.params.Verify(v.r1, v.r2, v.y1, v.y2, v.c, new(big.Int).SetBytes(s))
	if !ok {
		return "", common.ErrInvalidProof
	}
	return "session1", nil
}

func (v *verifierClient) Close() error { return nil }

func TestRegisterThenLogin(t *testing.T) {
	zp := toyParams()
	fake := &verifierClient{params: zp, c: big.NewInt(4)}
	svc := NewProverService(fake, zp)

	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, "peggy", []byte("correct horse")))

	session, err := svc.Login(ctx, "peggy", []byte("correct horse"))
	require.NoError(t, err)
	assert.Equal(t, "session1", session)
}

func TestLoginWrongPassword(t *testing.T) {
	zp := toyParams()
	fake := &verifierClient{params: zp, c: big.NewInt(4)}
	svc := NewProverService(fake, zp)

	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, "peggy", []byte("correct horse")))

	// The derived secrets may collide in the toy group (q = 11); skip the
	// run in that unlucky case rather than assert a false rejection.
	good := svc.secret("peggy", []byte("correct horse"))
	bad := svc.secret("peggy", []byte("battery staple"))
	if good.Cmp(bad) == 0 {
		t.Skip("derived secrets collide in the toy group")
	}

	_, err := svc.Login(ctx, "peggy", []byte("battery staple"))
	assert.ErrorIs(t, err, common.ErrInvalidProof)
}

func TestSecretIsDomainSeparatedByUser(t *testing.T) {
	zp := zkp.DefaultParams()
	svc := NewProverService(nil, zp)

	a := svc.secret("alice", []byte("password"))
	b := svc.secret("bob", []byte("password"))
	assert.NotEqual(t, 0, a.Cmp(b))
}

func TestLoginRejectsOversizedChallenge(t *testing.T) {
	zp := toyParams()
	// c = q is outside the valid range and must be refused client-side.
	fake := &verifierClient{params: zp, c: big.NewInt(11)}
	svc := NewProverService(fake, zp)

	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, "peggy", []byte("correct horse")))

	_, err := svc.Login(ctx, "peggy", []byte("correct horse"))
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}
