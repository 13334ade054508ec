package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/fleetkeeper/internal/flagx"
)

// ownedFlags are the flags parseFlags understands.
var ownedFlags = []string{"-d", "-p", "-n", "-l", "-s", "-m"}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   database file path
//	-p string   storage key prefix
//	-n int      notification lifetime in seconds (0 keeps them until dismissed)
//	-l string   log level: debug, info, warn, error
//	-s string   ship delete policy: orphan, restrict, cascade
//	-m int      maintenance interval in days
//
// args are filtered with flagx.FilterArgs first, so flags owned by other
// parsers (-c/-config) do not interfere.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("fleetkeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "database file path")
	fs.StringVar(&cfg.KeyPrefix, "p", cfg.KeyPrefix, "storage key prefix")
	notify := fs.Int("n", int(cfg.NotificationDuration/time.Second), "notification lifetime (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.ShipDeletePolicy, "s", cfg.ShipDeletePolicy, "ship delete policy")
	days := fs.Int("m", int(cfg.MaintenanceInterval/(24*time.Hour)), "maintenance interval (in days)")

	if err := fs.Parse(flagx.FilterArgs(args, ownedFlags)); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.NotificationDuration = time.Duration(*notify) * time.Second
		case "m":
			cfg.MaintenanceInterval = time.Duration(*days) * 24 * time.Hour
		}
	})
	return nil
}
