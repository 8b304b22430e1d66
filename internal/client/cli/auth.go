package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/zkpauth/internal/cryptox"
)

// Register prompts for a user name and password and submits the public
// commitment to the verifier. The password never leaves the process.
func (a *App) Register(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	defer cryptox.WipeByteArray(password)

	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	if err := a.prover.Register(ctx, userName, password); err != nil {
		fmt.Fprintf(a.out, "Registration unsuccessful: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Registered.")
	return nil
}

// Login runs one authentication round and keeps the granted session.
func (a *App) Login(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	defer cryptox.WipeByteArray(password)

	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	sessionID, err := a.prover.Login(ctx, userName, password)
	if err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %v\n", err)
		return err
	}

	a.userName = userName
	a.sessionID = sessionID
	fmt.Fprintf(a.out, "Login successful, session: %s\n", sessionID)
	return nil
}

// Logout forgets the current session. The credential is self-contained, so
// there is nothing to revoke server-side.
func (a *App) Logout(_ context.Context) error {
	a.userName = ""
	a.sessionID = ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
