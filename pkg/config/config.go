package config

import "time"

// Config is the root configuration shared by the CLI, the analysis client,
// and the scoring server.
type Config struct {
	Server  ServerConfig  `koanf:"server"  validate:"required"`
	Client  ClientConfig  `koanf:"client"  validate:"required"`
	CLI     CLIConfig     `koanf:"cli"`
	Runtime RuntimeConfig `koanf:"runtime"`
}

// ServerConfig configures the embedded scoring service.
type ServerConfig struct {
	Host        string        `koanf:"host"         validate:"required"`
	Port        int           `koanf:"port"         validate:"min=1,max=65535"`
	CORSEnabled bool          `koanf:"cors_enabled"`
	CORS        CORSConfig    `koanf:"cors"`
	Timeout     time.Duration `koanf:"timeout"`
}

// CORSConfig configures cross-origin access for the scoring service.
type CORSConfig struct {
	AllowedOrigins   []string `koanf:"allowed_origins"`
	AllowCredentials bool     `koanf:"allow_credentials"`
	MaxAge           int      `koanf:"max_age"`
}

// ClientConfig configures the analysis API client.
// An empty BaseURL derives the URL from the server host and port.
type ClientConfig struct {
	BaseURL    string        `koanf:"base_url"`
	Timeout    time.Duration `koanf:"timeout"`
	RetryCount int           `koanf:"retry_count" validate:"min=0,max=10"`
}

// CLIConfig controls output mode selection for commands.
type CLIConfig struct {
	DefaultFormat     string `koanf:"default_format" validate:"oneof=auto json tui"`
	OutputFormatAlias string `koanf:"output_format_alias"`
	Interactive       bool   `koanf:"interactive"`
	NoColor           bool   `koanf:"no_color"`
}

// RuntimeConfig carries process-wide runtime settings.
type RuntimeConfig struct {
	Environment string `koanf:"environment" validate:"oneof=development production test"`
	LogLevel    string `koanf:"log_level"   validate:"oneof=debug info warn error"`
}

// Default returns the built-in configuration, overridable by YAML and
// environment sources.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "localhost",
			Port:        8321,
			CORSEnabled: false,
			CORS: CORSConfig{
				AllowedOrigins:   []string{},
				AllowCredentials: false,
				MaxAge:           300,
			},
			Timeout: 15 * time.Second,
		},
		Client: ClientConfig{
			BaseURL:    "",
			Timeout:    30 * time.Second,
			RetryCount: 2,
		},
		CLI: CLIConfig{
			DefaultFormat: "auto",
			Interactive:   false,
			NoColor:       false,
		},
		Runtime: RuntimeConfig{
			Environment: "development",
			LogLevel:    "info",
		},
	}
}
