package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected  *Config
		name      string
		args      []string
		expectErr bool
	}{
		{name: "Test1 OK", args: []string{"-d", "/tmp/f.db", "-p", "x_", "-n", "10", "-l", "debug", "-s", "cascade", "-m", "30"},
			expected: &Config{DatabasePath: "/tmp/f.db", KeyPrefix: "x_", NotificationDuration: 10 * time.Second,
				LogLevel: "debug", ShipDeletePolicy: "cascade", MaintenanceInterval: 30 * 24 * time.Hour}},
		{name: "Test2 foreign flags ignored", args: []string{"-c", "cfg.json", "-s=restrict", "-v"},
			expected: &Config{ShipDeletePolicy: "restrict"}},
		{name: "Test3 incorrect notification seconds", args: []string{"-n", "abc"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			err := parseFlags(config, tt.args)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}

func TestParseFlags_UnsetDurationsKeepValue(t *testing.T) {
	config := &Config{NotificationDuration: 1500 * time.Millisecond, MaintenanceInterval: 36 * time.Hour}
	require.NoError(t, parseFlags(config, []string{"-l", "info"}))

	assert.Equal(t, 1500*time.Millisecond, config.NotificationDuration)
	assert.Equal(t, 36*time.Hour, config.MaintenanceInterval)
}
