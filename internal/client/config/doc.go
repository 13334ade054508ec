// Package config loads runtime configuration for the fleetkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. FLEETKEEPER_* environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   database file path
//	-p string   storage key prefix
//	-n int      notification lifetime (seconds)
//	-l string   log level
//	-s string   ship delete policy (orphan, restrict, cascade)
//	-m int      maintenance interval (days)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "5s" or integer nanoseconds:
//
//	{
//	  "database_path": "/var/lib/fleetkeeper/fleet.db",
//	  "key_prefix": "entnt_ship_dashboard_",
//	  "notification_duration": "5s",
//	  "log_level": "info",
//	  "ship_delete_policy": "restrict",
//	  "maintenance_interval": "8760h"
//	}
//
// # Environment
//
//	FLEETKEEPER_DB_PATH, FLEETKEEPER_KEY_PREFIX, FLEETKEEPER_NOTIFICATION_DURATION,
//	FLEETKEEPER_LOG_LEVEL, FLEETKEEPER_SHIP_DELETE_POLICY, FLEETKEEPER_MAINTENANCE_INTERVAL
//
// Durations in the environment use time.ParseDuration syntax ("5s", "720h").
package config
