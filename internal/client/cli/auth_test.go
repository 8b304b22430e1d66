package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/client/config"
	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProver struct {
	registerErr error
	loginErr    error
	session     string

	user     string
	password string
}

func (f *fakeProver) Register(_ context.Context, user string, password []byte) error {
	f.user = user
	f.password = string(password)
	return f.registerErr
}

func (f *fakeProver) Login(_ context.Context, user string, password []byte) (string, error) {
	f.user = user
	f.password = string(password)
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.session, nil
}

func newTestApp(input string, p proverService) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	app := &App{
		config: &config.Config{RequestTimeout: time.Second},
		prover: p,
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    &out,
	}
	return app, &out
}

func TestRegisterCommand(t *testing.T) {
	restorePassword(t, []byte("correct horse"))

	fake := &fakeProver{}
	app, out := newTestApp("peggy\n", fake)

	require.NoError(t, app.Register(context.Background()))
	assert.Equal(t, "peggy", fake.user)
	assert.Equal(t, "correct horse", fake.password)
	assert.Contains(t, out.String(), "Registered.")
}

func TestRegisterCommandError(t *testing.T) {
	restorePassword(t, []byte("correct horse"))

	fake := &fakeProver{registerErr: common.ErrInvalidArgument}
	app, out := newTestApp("peggy\n", fake)

	err := app.Register(context.Background())
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
	assert.Contains(t, out.String(), "Registration unsuccessful")
}

func TestLoginCommand(t *testing.T) {
	restorePassword(t, []byte("correct horse"))

	fake := &fakeProver{session: "session1"}
	app, out := newTestApp("peggy\n", fake)

	require.NoError(t, app.Login(context.Background()))
	assert.True(t, app.isLoggedIn())
	assert.Equal(t, "peggy", app.userName)
	assert.Contains(t, out.String(), "session1")
}

func TestLoginCommandRejected(t *testing.T) {
	restorePassword(t, []byte("wrong"))

	fake := &fakeProver{loginErr: common.ErrInvalidProof}
	app, out := newTestApp("peggy\n", fake)

	err := app.Login(context.Background())
	assert.ErrorIs(t, err, common.ErrInvalidProof)
	assert.False(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "Login unsuccessful")
}

func TestLogoutCommand(t *testing.T) {
	app, out := newTestApp("", &fakeProver{})
	app.userName = "peggy"
	app.sessionID = "session1"

	require.NoError(t, app.Logout(context.Background()))
	assert.False(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "Logged out.")
}

func TestLoginCommandNoInput(t *testing.T) {
	restorePassword(t, nil)

	// EOF before any user name was typed.
	app, _ := newTestApp("", &fakeProver{})
	err := app.Login(context.Background())
	assert.Error(t, err)
}

// restorePassword stubs readPassword for the duration of the test.
func restorePassword(t *testing.T, pw []byte) {
	t.Helper()
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) {
		return pw, nil
	}
}
