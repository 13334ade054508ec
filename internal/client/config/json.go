package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/fleetkeeper/internal/flagx"
	"github.com/dmitrijs2005/fleetkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "5s" or as integer nanoseconds.
type JsonConfig struct {
	DatabasePath         string         `json:"database_path"`
	KeyPrefix            string         `json:"key_prefix"`
	NotificationDuration timex.Duration `json:"notification_duration"`
	LogLevel             string         `json:"log_level"`
	ShipDeletePolicy     string         `json:"ship_delete_policy"`
	MaintenanceInterval  timex.Duration `json:"maintenance_interval"`
}

// parseJson overlays cfg with the JSON file named by -c or -config in args.
// Without such a flag nothing happens. Fields missing from the file keep
// their current value.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.KeyPrefix, jc.KeyPrefix)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.ShipDeletePolicy, jc.ShipDeletePolicy)
	if jc.NotificationDuration.Duration != 0 {
		cfg.NotificationDuration = jc.NotificationDuration.Duration
	}
	if jc.MaintenanceInterval.Duration != 0 {
		cfg.MaintenanceInterval = jc.MaintenanceInterval.Duration
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
