// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"

	"github.com/MotorDesk/policy-extraction-backend/logger"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT"`
	Port           string      `mapstructure:"PORT"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS"`
	Version        string      `mapstructure:"VERSION"`
}

// PolicyAPIConfig points at the external record store that owns the pending-file
// queue and the file-status records.
type PolicyAPIConfig struct {
	BaseURL        string `mapstructure:"BASE_URL"`
	PullTimeoutS   int    `mapstructure:"PULL_TIMEOUT_SECONDS"`
	ReportTimeoutS int    `mapstructure:"REPORT_TIMEOUT_SECONDS"`
}

// ExtractionConfig points at the external OCR/LLM extraction provider.
type ExtractionConfig struct {
	ProviderURL     string `mapstructure:"PROVIDER_URL"`
	TimeoutSeconds  int    `mapstructure:"TIMEOUT_SECONDS"`
	MaxFilesPerRun  int    `mapstructure:"MAX_FILES_PER_RUN"` // 0 = drain until empty
	DownloadTimeout int    `mapstructure:"DOWNLOAD_TIMEOUT_SECONDS"`
}

// StorageConfig holds credentials for fetching documents addressed by
// s3://bucket/key URLs. Optional; https URLs need no configuration.
type StorageConfig struct {
	Endpoint        string `mapstructure:"ENDPOINT"`
	Region          string `mapstructure:"REGION"`
	AccessKeyID     string `mapstructure:"ACCESS_KEY_ID"`
	SecretAccessKey string `mapstructure:"SECRET_ACCESS_KEY"`
}

// RedisConfig holds Redis connection details.
type RedisConfig struct {
	Address      string `mapstructure:"ADDRESS"`
	Password     string `mapstructure:"PASSWORD"`
	DB           int    `mapstructure:"DB"`
	PoolSize     int    `mapstructure:"POOL_SIZE"`
	MinIdleConns int    `mapstructure:"MIN_IDLE_CONNS"`
}

// RateLimitConfig bounds trigger requests per tenant.
type RateLimitConfig struct {
	TriggerRequestsPerMinute int `mapstructure:"TRIGGER_REQUESTS_PER_MINUTE"`
	WindowSeconds            int `mapstructure:"WINDOW_SECONDS"`
}

// EmailConfig holds configuration for drain-summary notification emails.
type EmailConfig struct {
	Enabled      bool   `mapstructure:"ENABLED"`
	ResendAPIKey string `mapstructure:"RESEND_API_KEY"`
	FromAddress  string `mapstructure:"FROM_ADDRESS"`
	FromName     string `mapstructure:"FROM_NAME"`
	ToAddress    string `mapstructure:"TO_ADDRESS"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server     ServerConfig     `mapstructure:"SERVER"`
	PolicyAPI  PolicyAPIConfig  `mapstructure:"POLICY_API"`
	Extraction ExtractionConfig `mapstructure:"EXTRACTION"`
	Storage    StorageConfig    `mapstructure:"STORAGE"`
	Redis      RedisConfig      `mapstructure:"REDIS"`
	RateLimit  RateLimitConfig  `mapstructure:"RATE_LIMIT"`
	Email      EmailConfig      `mapstructure:"EMAIL"`
}

// IsDevelopment returns true if the application is running in development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig loads configuration from environment variables using Viper,
// sets default values, unmarshals into Config and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8002")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.VERSION", "dev")
	v.SetDefault("POLICY_API.PULL_TIMEOUT_SECONDS", 30)
	v.SetDefault("POLICY_API.REPORT_TIMEOUT_SECONDS", 60)
	v.SetDefault("EXTRACTION.TIMEOUT_SECONDS", 30)
	v.SetDefault("EXTRACTION.MAX_FILES_PER_RUN", 0)
	v.SetDefault("EXTRACTION.DOWNLOAD_TIMEOUT_SECONDS", 60)
	v.SetDefault("STORAGE.REGION", "auto")
	v.SetDefault("REDIS.ADDRESS", "")
	v.SetDefault("REDIS.DB", 0)
	v.SetDefault("REDIS.POOL_SIZE", 3)
	v.SetDefault("REDIS.MIN_IDLE_CONNS", 1)
	v.SetDefault("RATE_LIMIT.TRIGGER_REQUESTS_PER_MINUTE", 30)
	v.SetDefault("RATE_LIMIT.WINDOW_SECONDS", 60)
	v.SetDefault("EMAIL.ENABLED", false)
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		{"SERVER.ENVIRONMENT", "SERVER_ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.VERSION", "VERSION"},
		{"POLICY_API.BASE_URL", "POLICY_API_BASE_URL"},
		{"POLICY_API.PULL_TIMEOUT_SECONDS", "POLICY_API_PULL_TIMEOUT_SECONDS"},
		{"POLICY_API.REPORT_TIMEOUT_SECONDS", "POLICY_API_REPORT_TIMEOUT_SECONDS"},
		{"EXTRACTION.PROVIDER_URL", "EXTRACTION_PROVIDER_URL"},
		{"EXTRACTION.TIMEOUT_SECONDS", "EXTRACTION_TIMEOUT_SECONDS"},
		{"EXTRACTION.MAX_FILES_PER_RUN", "EXTRACTION_MAX_FILES_PER_RUN"},
		{"EXTRACTION.DOWNLOAD_TIMEOUT_SECONDS", "EXTRACTION_DOWNLOAD_TIMEOUT_SECONDS"},
		{"STORAGE.ENDPOINT", "STORAGE_ENDPOINT"},
		{"STORAGE.REGION", "STORAGE_REGION"},
		{"STORAGE.ACCESS_KEY_ID", "STORAGE_ACCESS_KEY_ID"},
		{"STORAGE.SECRET_ACCESS_KEY", "STORAGE_SECRET_ACCESS_KEY"},
		{"REDIS.ADDRESS", "REDIS_ADDRESS"},
		{"REDIS.PASSWORD", "REDIS_PASSWORD"},
		{"REDIS.DB", "REDIS_DB"},
		{"RATE_LIMIT.TRIGGER_REQUESTS_PER_MINUTE", "RATE_LIMIT_TRIGGER_REQUESTS_PER_MINUTE"},
		{"RATE_LIMIT.WINDOW_SECONDS", "RATE_LIMIT_WINDOW_SECONDS"},
		{"EMAIL.ENABLED", "EMAIL_ENABLED"},
		{"EMAIL.RESEND_API_KEY", "RESEND_API_KEY"},
		{"EMAIL.FROM_ADDRESS", "EMAIL_FROM_ADDRESS"},
		{"EMAIL.FROM_NAME", "EMAIL_FROM_NAME"},
		{"EMAIL.TO_ADDRESS", "EMAIL_TO_ADDRESS"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"server_port", cfg.Server.Port,
		"policy_api", cfg.PolicyAPI.BaseURL,
		"extraction_provider", cfg.Extraction.ProviderURL,
		"redis_configured", cfg.Redis.Address != "",
		"email_enabled", cfg.Email.Enabled,
	)

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Environment != EnvDevelopment && cfg.Server.Environment != EnvProduction {
		return fmt.Errorf("invalid environment: %s", cfg.Server.Environment)
	}
	for name, raw := range map[string]string{
		"POLICY_API_BASE_URL":     cfg.PolicyAPI.BaseURL,
		"EXTRACTION_PROVIDER_URL": cfg.Extraction.ProviderURL,
	} {
		if raw == "" {
			if cfg.IsProduction() {
				return fmt.Errorf("%s is required in production", name)
			}
			continue
		}
		if _, err := url.ParseRequestURI(raw); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}
	if cfg.Email.Enabled {
		if cfg.Email.ResendAPIKey == "" || cfg.Email.FromAddress == "" || cfg.Email.ToAddress == "" {
			return fmt.Errorf("email notifications enabled but RESEND_API_KEY, EMAIL_FROM_ADDRESS or EMAIL_TO_ADDRESS is missing")
		}
	}
	return nil
}
