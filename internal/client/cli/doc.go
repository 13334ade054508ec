// Package cli provides the interactive fleetkeeper command-line client.
//
// The REPL reads one command per line and dispatches it to an App method.
// Every command except login, help and exit is gated through the access
// control permission table, so the help output and the accepted commands
// depend on the role of the signed-in user. Notifications raised by the
// data layer are printed after each command.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
