package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/services"
	"github.com/dmitrijs2005/fleetkeeper/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

var errUsage = errors.New("usage")

func usage(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	can(p services.Permission) bool
	flush()

	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Whoami(ctx context.Context, args []string) error

	Ships(ctx context.Context, args []string) error
	ShowShip(ctx context.Context, args []string) error
	AddShip(ctx context.Context, args []string) error
	EditShip(ctx context.Context, args []string) error
	DeleteShip(ctx context.Context, args []string) error

	Components(ctx context.Context, args []string) error
	AddComponent(ctx context.Context, args []string) error
	EditComponent(ctx context.Context, args []string) error
	DeleteComponent(ctx context.Context, args []string) error

	Jobs(ctx context.Context, args []string) error
	AddJob(ctx context.Context, args []string) error
	EditJob(ctx context.Context, args []string) error
	SetJobStatus(ctx context.Context, args []string) error
	DeleteJob(ctx context.Context, args []string) error

	Dashboard(ctx context.Context, args []string) error
	Calendar(ctx context.Context, args []string) error
	Orphans(ctx context.Context, args []string) error

	Notifications(ctx context.Context, args []string) error
	Dismiss(ctx context.Context, args []string) error

	Users(ctx context.Context, args []string) error
	AddUser(ctx context.Context, args []string) error
	DeleteUser(ctx context.Context, args []string) error
	Reset(ctx context.Context, args []string) error
	Stats(ctx context.Context, args []string) error
}

type helpLine struct {
	usage string
	perm  services.Permission
}

var commandHelp = []helpLine{
	{"whoami", services.PermViewFleet},
	{"ships [status]", services.PermViewFleet},
	{"ship <id>", services.PermViewFleet},
	{"addship", services.PermManageShips},
	{"editship <id>", services.PermManageShips},
	{"delship <id>", services.PermDeleteShips},
	{"components [shipId]", services.PermViewFleet},
	{"addcomp [shipId]", services.PermManageComponents},
	{"editcomp <id>", services.PermManageComponents},
	{"delcomp <id>", services.PermDeleteComponents},
	{"jobs [ship=<id>] [status=<s>] [priority=<p>]", services.PermViewFleet},
	{"addjob", services.PermCreateJobs},
	{"editjob <id>", services.PermEditJobs},
	{"jobstatus <id> <status>", services.PermUpdateJobStatus},
	{"deljob <id>", services.PermDeleteJobs},
	{"dashboard", services.PermViewFleet},
	{"calendar [YYYY-MM-DD] [days]", services.PermViewFleet},
	{"orphans", services.PermViewFleet},
	{"notifications", services.PermViewFleet},
	{"dismiss <id>", services.PermViewFleet},
	{"users", services.PermManageUsers},
	{"adduser", services.PermManageUsers},
	{"deluser <id>", services.PermManageUsers},
	{"reset", services.PermResetData},
	{"stats", services.PermViewFleet},
}

func printHelp(a execIface) {
	if !a.isLoggedIn() {
		printlnFn("Available commands: login, help, exit")
		return
	}
	printlnFn("Available commands:")
	for _, h := range commandHelp {
		if a.can(h.perm) {
			printlnFn("  " + h.usage)
		}
	}
	printlnFn("  logout, help, exit")
}

// report turns a handler error into a message for the user.
func report(err error) {
	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		printlnFn("Usage:", strings.TrimPrefix(err.Error(), errUsage.Error()+": "))
	case errors.Is(err, common.ErrorUnauthorized):
		printlnFn("Please log in first.")
	case errors.Is(err, common.ErrorForbidden):
		printlnFn("Your role is not allowed to do that.")
	default:
		printlnFn("Error:", err)
	}
}

// runREPL starts a read–eval–print loop for the fleetkeeper CLI.
//
// It reads a line from reader, parses the first token as the command, and dispatches to methods on 'a' with the remaining tokens.
// Handler errors are reported, then notifications raised by the command
// are flushed. The loop exits on EOF or on "exit"/"quit". Prompts issued by
// handlers read from the same reader, so piped input stays in order.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("fk %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		err = nil
		switch cmd {
		case "help", "?":
			printHelp(a)

		case "login":
			err = a.Login(ctx, args)
		case "logout":
			err = a.Logout(ctx, args)
		case "whoami":
			err = a.Whoami(ctx, args)

		case "ships":
			err = a.Ships(ctx, args)
		case "ship":
			err = a.ShowShip(ctx, args)
		case "addship":
			err = a.AddShip(ctx, args)
		case "editship":
			err = a.EditShip(ctx, args)
		case "delship":
			err = a.DeleteShip(ctx, args)

		case "components", "comps":
			err = a.Components(ctx, args)
		case "addcomp":
			err = a.AddComponent(ctx, args)
		case "editcomp":
			err = a.EditComponent(ctx, args)
		case "delcomp":
			err = a.DeleteComponent(ctx, args)

		case "jobs":
			err = a.Jobs(ctx, args)
		case "addjob":
			err = a.AddJob(ctx, args)
		case "editjob":
			err = a.EditJob(ctx, args)
		case "jobstatus":
			err = a.SetJobStatus(ctx, args)
		case "deljob":
			err = a.DeleteJob(ctx, args)

		case "dashboard":
			err = a.Dashboard(ctx, args)
		case "calendar":
			err = a.Calendar(ctx, args)
		case "orphans":
			err = a.Orphans(ctx, args)

		case "notifications", "n":
			err = a.Notifications(ctx, args)
		case "dismiss":
			err = a.Dismiss(ctx, args)

		case "users":
			err = a.Users(ctx, args)
		case "adduser":
			err = a.AddUser(ctx, args)
		case "deluser":
			err = a.DeleteUser(ctx, args)
		case "reset":
			err = a.Reset(ctx, args)
		case "stats":
			err = a.Stats(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		report(err)
		a.flush()
	}
}
