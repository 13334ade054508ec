package cli

import (
	"context"
)

// Root prints a welcome line and runs the REPL until exit or EOF.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to fleetkeeper (type 'help' for commands)")
	if !a.isLoggedIn() {
		printlnFn("Not logged in. Use 'login' to sign in.")
	}
	a.flush()

	runREPL(ctx, a, a.getStatus, a.reader)
}
