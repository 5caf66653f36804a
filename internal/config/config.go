// Package config defines the application configuration and its loading.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"      validate:"required"`
	Auth        AuthConfig        `mapstructure:"auth"        validate:"required"`
	Persistence PersistenceConfig `mapstructure:"persistence" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// AuthConfig contains all session-token settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// PersistenceConfig selects the snapshot backend invoked after each mutating
// operation. "none" keeps everything in memory only.
type PersistenceConfig struct {
	Driver      string `mapstructure:"driver"       validate:"required,oneof=none file postgres"`
	DatabaseURL string `mapstructure:"database_url" validate:"omitempty,url"`
	FilePath    string `mapstructure:"file_path"    validate:"omitempty"`
}
