// Package constants holds process-wide constants shared by commands and config.
package constants

const (
	// ConfigName is the base name of the YAML config file (without extension).
	ConfigName = "config"

	// ConfigFormat is the config file format read by viper.
	ConfigFormat = "yaml"

	// EnvPrefix is the prefix for environment variable overrides,
	// e.g. AUXILLIUM_DATABASE_HOST overrides database.host.
	EnvPrefix = "AUXILLIUM"

	// ServiceName is the default service identifier used in logs and telemetry.
	ServiceName = "auxillium_backend"
)
