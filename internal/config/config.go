// Package config handles the configuration directory, config file and
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application directory name.
	AppName = "todoseed"

	// ConfigFile is the optional config filename inside Dir.
	ConfigFile = "config.yaml"

	// EnvPrefix prefixes environment overrides (TODOSEED_PROJECT, ...).
	EnvPrefix = "TODOSEED"
)

// Defaults used when neither the config file nor the environment set a value.
const (
	DefaultProjectID       = "motodo-app"
	DefaultCollection      = "todos"
	DefaultUsersCollection = "users"
	DefaultTeamID          = "fTe5XatMOx4zKoEa45T8"
	DefaultUserID          = "RwZPX2vVV8UVzSv9kAspfe1Mox12"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// ProjectID is the Google Cloud project holding the database.
	ProjectID string `mapstructure:"project"`

	// CredentialsFile is a service account JSON key.
	// Empty means application-default credentials.
	CredentialsFile string `mapstructure:"credentials"`

	// Collection is the collection tasks are written to.
	Collection string `mapstructure:"collection"`

	// UsersCollection holds user profiles keyed by UID.
	UsersCollection string `mapstructure:"users_collection"`

	// TeamID is the team used when a command gets no --team.
	TeamID string `mapstructure:"team"`

	// UserID is the author UID used when a command gets no --user.
	UserID string `mapstructure:"user"`
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todoseed or $HOME/.config/todoseed.
// Values come from defaults, then config.yaml in the directory (if present),
// then TODOSEED_* environment variables.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetDefault("project", DefaultProjectID)
	v.SetDefault("credentials", "")
	v.SetDefault("collection", DefaultCollection)
	v.SetDefault("users_collection", DefaultUsersCollection)
	v.SetDefault("team", DefaultTeamID)
	v.SetDefault("user", DefaultUserID)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{Dir: dir}
	v.SetConfigFile(cfg.FilePath())
	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}
	cfg.Dir = dir
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// FilePath returns the path to the optional config file.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// HasCredentialsFile reports whether an explicit credentials file is set.
func (c *Config) HasCredentialsFile() bool {
	return c.CredentialsFile != ""
}
