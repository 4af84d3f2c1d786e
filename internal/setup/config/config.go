package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	ErrConfigFileNotFound    = errors.New("could not find config file in any config path")
	ErrConfigVersionMissing  = errors.New("config file is missing version field")
	ErrConfigVersionMismatch = errors.New("config file version mismatch")
)

// CurrentVersion is the expected version of the config file.
const CurrentVersion = 1

// Defaults for the reputation section, applied when the config file omits a
// field.
const (
	DefaultCooldownSeconds  = 120
	DefaultTrustedThreshold = 15
	DefaultTrustedRoleName  = "Trusted"
)

// Config represents the entire application configuration.
type Config struct {
	Version    int        `koanf:"version"`
	Debug      Debug      `koanf:"debug"`
	PostgreSQL PostgreSQL `koanf:"postgresql"`
	Discord    Discord    `koanf:"discord"`
	Reputation Reputation `koanf:"reputation"`
}

// Debug contains debug-related configuration.
type Debug struct {
	LogLevel      string `koanf:"log_level"`        // Log level (debug, info, warn, error)
	MaxLogsToKeep int    `koanf:"max_logs_to_keep"` // Maximum log sessions to keep
	EnablePprof   bool   `koanf:"enable_pprof"`     // Enable pprof debugging
	PprofPort     int    `koanf:"pprof_port"`       // pprof server port
}

// PostgreSQL contains database connection configuration.
type PostgreSQL struct {
	Host         string `koanf:"host"`           // Database hostname
	Port         int    `koanf:"port"`           // Database port
	User         string `koanf:"user"`           // Database username
	Password     string `koanf:"password"`       // Database password
	DBName       string `koanf:"db_name"`        // Database name
	MaxOpenConns int    `koanf:"max_open_conns"` // Maximum open connections
	MaxIdleConns int    `koanf:"max_idle_conns"` // Maximum idle connections
	MaxLifetime  int    `koanf:"max_lifetime"`   // Connection lifetime in minutes
	MaxIdleTime  int    `koanf:"max_idle_time"`  // Idle timeout in minutes
}

// Discord contains Discord bot configuration.
type Discord struct {
	Token string `koanf:"token"` // Discord bot token for authentication
}

// Reputation contains the reputation scoring knobs.
type Reputation struct {
	CooldownSeconds  int    `koanf:"cooldown_seconds"`  // Seconds a non-admin must wait between rep actions
	TrustedThreshold int64  `koanf:"trusted_threshold"` // Net score at which the trusted role is granted
	TrustedRoleName  string `koanf:"trusted_role_name"` // Guild role granted to high-reputation members
}

// applyDefaults fills in unset reputation fields so a minimal config file
// still yields a working bot.
func applyDefaults(config *Config) {
	if config.Reputation.CooldownSeconds <= 0 {
		config.Reputation.CooldownSeconds = DefaultCooldownSeconds
	}

	if config.Reputation.TrustedThreshold <= 0 {
		config.Reputation.TrustedThreshold = DefaultTrustedThreshold
	}

	if config.Reputation.TrustedRoleName == "" {
		config.Reputation.TrustedRoleName = DefaultTrustedRoleName
	}
}

// LoadConfig loads the configuration from the first config.toml found in the
// search paths. Returns the config along with the used config directory.
func LoadConfig() (*Config, string, error) {
	k := koanf.New(".")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configPaths := []string{
		".reputo",
		homeDir + "/.reputo/config",
		"/etc/reputo/config",
		"/app/config",
		"/config",
		"config",
		".",
	}

	var usedConfigPath string

	for _, path := range configPaths {
		configPath := fmt.Sprintf("%s/config.toml", path)
		if err := k.Load(file.Provider(configPath), toml.Parser()); err == nil {
			usedConfigPath = path
			break
		}
	}

	if usedConfigPath == "" {
		return nil, "", fmt.Errorf("%w: config.toml", ErrConfigFileNotFound)
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, "", fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.Version == 0 {
		return nil, "", fmt.Errorf("%w: config.toml", ErrConfigVersionMissing)
	}

	if config.Version != CurrentVersion {
		return nil, "", fmt.Errorf("%w: config.toml (got: %d, expected: %d)",
			ErrConfigVersionMismatch, config.Version, CurrentVersion)
	}

	applyDefaults(&config)

	return &config, usedConfigPath, nil
}
