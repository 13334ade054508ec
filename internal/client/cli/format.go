package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
)

// printTable writes rows under a header, aligned in columns.
func (a *App) printTable(header []string, rows [][]string) error {
	if len(rows) == 0 {
		printlnFn("(none)")
		return nil
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	return tw.Flush()
}

// ago renders t relative to the App clock, e.g. "3 minutes ago".
func (a *App) ago(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.RelTime(t, a.now(), "ago", "from now")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// oneArg returns the single argument of a command or a usage error.
func oneArg(args []string, form string) (string, error) {
	if len(args) != 1 {
		return "", usage("%s", form)
	}
	return args[0], nil
}
