package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/app"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/notify"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/services"
)

// App is the interactive view over the data layer.
type App struct {
	core   *app.App
	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time

	notes       <-chan notify.Notification
	unsubscribe func()
}

// NewApp subscribes to the notification broadcaster of core and reads
// answers to prompts from stdin.
func NewApp(core *app.App) *App {
	a := &App{
		core:   core,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		now:    time.Now,
	}
	a.notes, a.unsubscribe = core.Notifier.Subscribe(64)
	return a
}

// Run starts the REPL and releases the subscription when it returns.
func (a *App) Run(ctx context.Context) {
	defer a.unsubscribe()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.core.Access.State() == services.StateAuthenticated
}

func (a *App) can(p services.Permission) bool {
	return a.core.Access.Can(p)
}

func (a *App) require(ctx context.Context, p services.Permission) error {
	return a.core.Access.Require(ctx, p)
}

// getStatus renders the prompt suffix, e.g. "(admin@entnt.in Admin)".
func (a *App) getStatus() string {
	who, ok := a.core.Access.Identity()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s %s)", who.Email, who.Role)
}

// flush prints notifications pushed since the last command.
func (a *App) flush() {
	for {
		select {
		case n, ok := <-a.notes:
			if !ok {
				return
			}
			printlnFn(fmt.Sprintf("[%s] %s", n.Type, n.Message))
		default:
			return
		}
	}
}

func (a *App) ask(prompt string) (string, error) {
	return getSimpleText(a.reader, prompt, a.out)
}

// askDefault shows the current value and keeps it on empty input.
// The second result reports whether the user typed something.
func (a *App) askDefault(prompt, current string) (string, bool, error) {
	s, err := a.ask(fmt.Sprintf("%s [%s]", prompt, current))
	if err != nil || s == "" {
		return current, false, err
	}
	return s, true, nil
}
