package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplRegisterLoginExit(t *testing.T) {
	restorePassword(t, []byte("correct horse"))

	fake := &fakeProver{session: "session1"}
	// Commands and the user names they prompt for interleave on one stream.
	input := strings.Join([]string{
		"register",
		"peggy",
		"login",
		"peggy",
		"help",
		"exit",
	}, "\n") + "\n"

	app, out := newTestApp(input, fake)
	app.repl(context.Background())

	s := out.String()
	assert.Contains(t, s, "Registered.")
	assert.Contains(t, s, "session1")
	assert.Contains(t, s, "login, logout, exit")
	assert.Contains(t, s, "Bye!")
	assert.True(t, app.isLoggedIn())
}

func TestReplUnknownCommand(t *testing.T) {
	app, out := newTestApp("frobnicate\n", &fakeProver{})
	app.repl(context.Background())
	assert.Contains(t, out.String(), "Unknown command: frobnicate")
}

func TestReplHelpLoggedOut(t *testing.T) {
	app, out := newTestApp("help\nquit\n", &fakeProver{})
	app.repl(context.Background())
	assert.Contains(t, out.String(), "register, login, exit")
}

func TestReplEmptyLineIsIgnored(t *testing.T) {
	app, out := newTestApp("\n\nexit\n", &fakeProver{})
	app.repl(context.Background())
	assert.Contains(t, out.String(), "Bye!")
}

func TestReplStopsOnEOF(t *testing.T) {
	app, out := newTestApp("help", &fakeProver{})
	app.repl(context.Background())
	assert.Contains(t, out.String(), "register, login, exit")
}
