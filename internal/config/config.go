package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
// Values come from defaults, then an optional YAML file, then environment
// variables, each layer overriding the previous one.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	CORS      CORSConfig      `yaml:"cors"`
	Session   SessionConfig   `yaml:"session"`
	Seed      SeedConfig      `yaml:"seed"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	LogLevel  string          `yaml:"logLevel"`
}

type ServerConfig struct {
	Port            string `yaml:"port"`
	Host            string `yaml:"host"`
	ReadTimeout     int    `yaml:"readTimeout"`
	WriteTimeout    int    `yaml:"writeTimeout"`
	ShutdownTimeout int    `yaml:"shutdownTimeout"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

type SessionConfig struct {
	CookieName   string `yaml:"cookieName"`
	TTLMinutes   int    `yaml:"ttlMinutes"`
	SweepSeconds int    `yaml:"sweepSeconds"`
}

// TTL returns how long an idle session is kept
func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// SweepInterval returns how often idle sessions are collected
func (c SessionConfig) SweepInterval() time.Duration {
	return time.Duration(c.SweepSeconds) * time.Second
}

type SeedConfig struct {
	Files []string `yaml:"files"` // YAML seed files, gzip when named *.gz
}

type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"serviceName"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			Host:            "0.0.0.0",
			ReadTimeout:     15,
			WriteTimeout:    15,
			ShutdownTimeout: 30,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		Session: SessionConfig{
			CookieName:   "bandi_session",
			TTLMinutes:   60,
			SweepSeconds: 60,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "bandi-storefront",
		},
		LogLevel: "info",
	}
}

// Load reads configuration from the YAML file at path (skipped when path
// is empty) and from environment variables
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Server.Host = getEnv("HOST", c.Server.Host)
	c.Server.ReadTimeout = getEnvAsInt("READ_TIMEOUT", c.Server.ReadTimeout)
	c.Server.WriteTimeout = getEnvAsInt("WRITE_TIMEOUT", c.Server.WriteTimeout)
	c.Server.ShutdownTimeout = getEnvAsInt("SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)
	c.CORS.AllowedOrigins = getEnvAsSlice("CORS_ALLOWED_ORIGINS", c.CORS.AllowedOrigins)
	c.Session.CookieName = getEnv("SESSION_COOKIE", c.Session.CookieName)
	c.Session.TTLMinutes = getEnvAsInt("SESSION_TTL_MINUTES", c.Session.TTLMinutes)
	c.Session.SweepSeconds = getEnvAsInt("SESSION_SWEEP_SECONDS", c.Session.SweepSeconds)
	c.Seed.Files = getEnvAsSlice("SEED_FILES", c.Seed.Files)
	c.Telemetry.Enabled = getEnvAsBool("TRACING_ENABLED", c.Telemetry.Enabled)
	c.Telemetry.ServiceName = getEnv("SERVICE_NAME", c.Telemetry.ServiceName)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Session.CookieName == "" {
		return fmt.Errorf("SESSION_COOKIE must not be empty")
	}

	if c.Session.TTLMinutes <= 0 {
		return fmt.Errorf("SESSION_TTL_MINUTES must be positive, got %d", c.Session.TTLMinutes)
	}

	if c.Session.SweepSeconds <= 0 {
		return fmt.Errorf("SESSION_SWEEP_SECONDS must be positive, got %d", c.Session.SweepSeconds)
	}

	if len(c.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one CORS origin must be configured")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
