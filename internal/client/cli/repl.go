package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) status() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.userName)
}

// repl reads commands line by line from a.reader and dispatches to the App
// methods. Commands and interactive prompts share the one reader, so the
// handlers consume exactly the lines that belong to them. Command errors
// are reported by the handlers themselves; the loop only terminates on EOF
// or an explicit exit.
func (a *App) repl(ctx context.Context) {
	fmt.Fprintln(a.out, "zkpauth CLI (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "zkpauth %s> ", a.status())

		line, err := a.reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}

		switch parts[0] {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: login, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, exit")
			}
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", parts[0])
		}

		if err != nil {
			return
		}
	}
}
