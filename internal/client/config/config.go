package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/fleetkeeper/internal/common"
)

// Config holds runtime settings for the fleetkeeper CLI.
//
// Units: NotificationDuration and MaintenanceInterval are time.Duration.
type Config struct {
	DatabasePath         string        `env:"DB_PATH"`
	KeyPrefix            string        `env:"KEY_PREFIX"`
	NotificationDuration time.Duration `env:"NOTIFICATION_DURATION"`
	LogLevel             string        `env:"LOG_LEVEL"`
	ShipDeletePolicy     string        `env:"SHIP_DELETE_POLICY"`
	MaintenanceInterval  time.Duration `env:"MAINTENANCE_INTERVAL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = defaultDatabasePath()
	c.KeyPrefix = common.DefaultKeyPrefix
	c.NotificationDuration = 5 * time.Second
	c.LogLevel = "warn"
	c.ShipDeletePolicy = "orphan"
	c.MaintenanceInterval = 365 * 24 * time.Hour
}

// Validate checks values no later stage can repair.
func (c *Config) Validate() error {
	switch {
	case c.DatabasePath == "":
		return errors.New("database path is empty")
	case c.KeyPrefix == "":
		return errors.New("key prefix is empty")
	case c.NotificationDuration < 0:
		return fmt.Errorf("notification duration %s is negative", c.NotificationDuration)
	case c.MaintenanceInterval <= 0:
		return fmt.Errorf("maintenance interval %s must be positive", c.MaintenanceInterval)
	}
	return nil
}

// Load builds a Config from defaults, then the JSON file named by -c/-config
// in args, then environ (FLEETKEEPER_* variables), then the flags in args.
// Later sources take precedence over earlier ones.
func Load(args, environ []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseEnv(cfg, environ); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over the process arguments and environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], os.Environ())
}

func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "fleetkeeper.db"
	}
	return filepath.Join(home, ".fleetkeeper", "fleet.db")
}
