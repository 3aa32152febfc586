package appconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

// Config holds all configuration details
type Config struct {
	Host              string            `json:"host" yaml:"host"`
	BasePath          string            `json:"basePath" yaml:"basePath"`
	DocsPath          string            `json:"docsPath" yaml:"docsPath"`
	Environment       string            `json:"environment" yaml:"environment"`
	Database          DatabaseConfig    `json:"database" yaml:"database"`
	ConnectionStrings ConnectionStrings `json:"connectionStrings" yaml:"connectionStrings"`
}

// DatabaseConfig defines the database connection details
type DatabaseConfig struct {
	Driver string `json:"driver" yaml:"driver"`
	Source string `json:"source" yaml:"source"`
}

// ConnectionStrings carries named connection strings from settings files
// that keep them in their own section.
type ConnectionStrings struct {
	DefaultConnection string `json:"defaultConnection" yaml:"defaultConnection"`
}

// LoadConfig loads and parses the configuration from a given file path.
// The file is first expanded as a template against the current environment
// variables, then decoded as JSON or YAML depending on its extension.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		err := errors.New("config file path is required")
		log.Error().Err(err).Msg("config file not provided")
		return nil, err
	}

	// Parse the template file
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		log.Error().Err(err).Msg("error parsing config file template")
		return nil, fmt.Errorf("error parsing config file template: %w", err)
	}

	// Create a map of environment variables
	envVars := loadEnvVars()

	// Execute the template with environment variables
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, envVars)
	if err != nil {
		log.Error().Err(err).Msg("error executing config file template")
		return nil, fmt.Errorf("error executing config file template: %w", err)
	}

	var config Config
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(buf.Bytes(), &config); err != nil {
			log.Error().Err(err).Msg("failed to unmarshal config JSON")
			return nil, fmt.Errorf("failed to unmarshal config JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(buf.Bytes(), &config); err != nil {
			log.Error().Err(err).Msg("failed to unmarshal config YAML")
			return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
		}
	}

	return &config, nil
}

// DatabaseDriver returns the configured store driver, defaulting to postgres.
func (c *Config) DatabaseDriver() string {
	if c.Database.Driver == "" {
		return "postgres"
	}
	return c.Database.Driver
}

// DatabaseSource resolves the connection string. The DATABASE_URL
// environment variable wins, then the database section, then the default
// connection string section.
func (c *Config) DatabaseSource() string {
	if source := os.Getenv("DATABASE_URL"); source != "" {
		return source
	}
	if c.Database.Source != "" {
		return c.Database.Source
	}
	return c.ConnectionStrings.DefaultConnection
}

// IsDevelopment reports whether the service runs in development mode.
// Anything other than an explicit development environment is treated as
// production.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

// loadEnvVars loads environment variables into a map
func loadEnvVars() map[string]string {
	envVars := make(map[string]string)
	for _, env := range os.Environ() {
		kv := strings.SplitN(env, "=", 2)
		if len(kv) == 2 {
			envVars[kv[0]] = kv[1]
		}
	}
	return envVars
}
