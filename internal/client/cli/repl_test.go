package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/services"
	"github.com/dmitrijs2005/fleetkeeper/internal/common"
)

type fakeExec struct {
	loggedIn bool
	allowed  map[services.Permission]bool
	fail     map[string]error

	calls   []string
	args    map[string][]string
	flushes int
}

func newFakeExec(loggedIn bool) *fakeExec {
	return &fakeExec{loggedIn: loggedIn, fail: map[string]error{}, args: map[string][]string{}}
}

func (f *fakeExec) rec(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args[name] = args
	return f.fail[name]
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) can(p services.Permission) bool { return f.allowed[p] }

func (f *fakeExec) flush() { f.flushes++ }

func (f *fakeExec) Login(_ context.Context, a []string) error {
	f.loggedIn = true
	return f.rec("login", a)
}

func (f *fakeExec) Logout(_ context.Context, a []string) error {
	f.loggedIn = false
	return f.rec("logout", a)
}

func (f *fakeExec) Whoami(_ context.Context, a []string) error { return f.rec("whoami", a) }

func (f *fakeExec) Ships(_ context.Context, a []string) error { return f.rec("ships", a) }

func (f *fakeExec) ShowShip(_ context.Context, a []string) error { return f.rec("ship", a) }

func (f *fakeExec) AddShip(_ context.Context, a []string) error { return f.rec("addship", a) }

func (f *fakeExec) EditShip(_ context.Context, a []string) error { return f.rec("editship", a) }

func (f *fakeExec) DeleteShip(_ context.Context, a []string) error { return f.rec("delship", a) }

func (f *fakeExec) Components(_ context.Context, a []string) error { return f.rec("components", a) }

func (f *fakeExec) AddComponent(_ context.Context, a []string) error { return f.rec("addcomp", a) }

func (f *fakeExec) EditComponent(_ context.Context, a []string) error { return f.rec("editcomp", a) }

func (f *fakeExec) DeleteComponent(_ context.Context, a []string) error { return f.rec("delcomp", a) }

func (f *fakeExec) Jobs(_ context.Context, a []string) error { return f.rec("jobs", a) }

func (f *fakeExec) AddJob(_ context.Context, a []string) error { return f.rec("addjob", a) }

func (f *fakeExec) EditJob(_ context.Context, a []string) error { return f.rec("editjob", a) }

func (f *fakeExec) SetJobStatus(_ context.Context, a []string) error { return f.rec("jobstatus", a) }

func (f *fakeExec) DeleteJob(_ context.Context, a []string) error { return f.rec("deljob", a) }

func (f *fakeExec) Dashboard(_ context.Context, a []string) error { return f.rec("dashboard", a) }

func (f *fakeExec) Calendar(_ context.Context, a []string) error { return f.rec("calendar", a) }

func (f *fakeExec) Orphans(_ context.Context, a []string) error { return f.rec("orphans", a) }

func (f *fakeExec) Notifications(_ context.Context, a []string) error {
	return f.rec("notifications", a)
}

func (f *fakeExec) Dismiss(_ context.Context, a []string) error { return f.rec("dismiss", a) }

func (f *fakeExec) Users(_ context.Context, a []string) error { return f.rec("users", a) }

func (f *fakeExec) AddUser(_ context.Context, a []string) error { return f.rec("adduser", a) }

func (f *fakeExec) DeleteUser(_ context.Context, a []string) error { return f.rec("deluser", a) }

func (f *fakeExec) Reset(_ context.Context, a []string) error { return f.rec("reset", a) }

func (f *fakeExec) Stats(_ context.Context, a []string) error { return f.rec("stats", a) }

// capturePrintln collects everything printed through printlnFn.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runLines(exec execIface, lines ...string) {
	r := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, r)
}

func TestRunREPL_DispatchesCommandsInOrder(t *testing.T) {
	capturePrintln(t)
	exec := newFakeExec(false)

	runLines(exec,
		"login admin@entnt.in",
		"ships Under Maintenance",
		"",
		"jobs ship=s1 status=In Progress",
		"jobstatus j1 completed",
		"addship",
		"delship s2",
		"n",
		"logout",
		"exit",
		"ships",
	)

	assert.Equal(t, []string{"login", "ships", "jobs", "jobstatus", "addship", "delship", "notifications", "logout"}, exec.calls)
	assert.Equal(t, []string{"admin@entnt.in"}, exec.args["login"])
	assert.Equal(t, []string{"Under", "Maintenance"}, exec.args["ships"])
	assert.Equal(t, []string{"j1", "completed"}, exec.args["jobstatus"])
	assert.Equal(t, len(exec.calls), exec.flushes)
}

func TestRunREPL_StopsAtEOF(t *testing.T) {
	capturePrintln(t)
	exec := newFakeExec(true)

	runLines(exec, "ships", "dashboard")

	assert.Equal(t, []string{"ships", "dashboard"}, exec.calls)
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	out := capturePrintln(t)
	exec := newFakeExec(true)

	runLines(exec, "frobnicate", "quit")

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "Unknown command: frobnicate")
	assert.Contains(t, *out, "Bye!")
}

func TestRunREPL_ReportsErrors(t *testing.T) {
	out := capturePrintln(t)
	exec := newFakeExec(true)
	exec.fail["ships"] = fmt.Errorf("gate: %w", common.ErrorUnauthorized)
	exec.fail["delship"] = fmt.Errorf("gate: %w", common.ErrorForbidden)
	exec.fail["ship"] = usage("ship <id>")
	exec.fail["jobs"] = fmt.Errorf("%w: job j9", common.ErrorNotFound)

	runLines(exec, "ships", "delship s1", "ship", "jobs", "exit")

	assert.Contains(t, *out, "Please log in first.")
	assert.Contains(t, *out, "Your role is not allowed to do that.")
	assert.Contains(t, *out, "Usage: ship <id>")
	assert.Contains(t, *out, "Error: not found: job j9")
}

func TestPrintHelp_FollowsPermissions(t *testing.T) {
	out := capturePrintln(t)

	printHelp(newFakeExec(false))
	require.Equal(t, []string{"Available commands: login, help, exit"}, *out)

	*out = nil
	exec := newFakeExec(true)
	exec.allowed = map[services.Permission]bool{services.PermViewFleet: true, services.PermUpdateJobStatus: true}
	printHelp(exec)

	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "ships [status]")
	assert.Contains(t, joined, "jobstatus <id> <status>")
	assert.NotContains(t, joined, "addship")
	assert.NotContains(t, joined, "reset")
}
