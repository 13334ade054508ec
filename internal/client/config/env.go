package config

import "github.com/caarlos0/env/v11"

// EnvPrefix is prepended to every variable name in the env tags.
const EnvPrefix = "FLEETKEEPER_"

// parseEnv overlays cfg with FLEETKEEPER_* variables from environ
// ("KEY=value" pairs, as returned by os.Environ). Unset variables keep the
// current value.
func parseEnv(cfg *Config, environ []string) error {
	return env.ParseWithOptions(cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: env.ToMap(environ),
	})
}
