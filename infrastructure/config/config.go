package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	domainconfig "kgraph-engine/domain/config"
)

// Config holds process-level configuration: environment, logging and the
// engine bounds. Values come from environment variables, optionally layered
// over a YAML file.
type Config struct {
	Environment string `yaml:"environment"`
	LogLevel    string `yaml:"log_level"`

	Engine EngineBounds `yaml:"engine"`
}

// EngineBounds is the file/env representation of the tunable engine limits
type EngineBounds struct {
	MaxLayoutNodes      int     `yaml:"max_layout_nodes"`
	MaxLayoutIterations int     `yaml:"max_layout_iterations"`
	MaxAnalyticsNodes   int     `yaml:"max_analytics_nodes"`
	ForceIterations     int     `yaml:"force_iterations"`
	Damping             float64 `yaml:"damping"`
	BetweennessWorkers  int     `yaml:"betweenness_workers"`
}

// LoadConfig loads configuration from environment variables. When
// KGRAPH_CONFIG_FILE is set, the YAML file is read first and environment
// variables override it.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Environment: "development",
		LogLevel:    "info",
	}

	if path := os.Getenv("KGRAPH_CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	cfg.Engine.MaxLayoutNodes = getEnvInt("MAX_LAYOUT_NODES", cfg.Engine.MaxLayoutNodes)
	cfg.Engine.MaxLayoutIterations = getEnvInt("MAX_LAYOUT_ITERATIONS", cfg.Engine.MaxLayoutIterations)
	cfg.Engine.MaxAnalyticsNodes = getEnvInt("MAX_ANALYTICS_NODES", cfg.Engine.MaxAnalyticsNodes)
	cfg.Engine.ForceIterations = getEnvInt("FORCE_ITERATIONS", cfg.Engine.ForceIterations)
	cfg.Engine.BetweennessWorkers = getEnvInt("BETWEENNESS_WORKERS", cfg.Engine.BetweennessWorkers)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks configuration consistency
func (c *Config) Validate() error {
	switch c.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("unknown environment %q", c.Environment)
	}

	if c.Engine.MaxLayoutNodes < 0 || c.Engine.MaxLayoutIterations < 0 {
		return fmt.Errorf("engine bounds cannot be negative")
	}
	if c.Engine.Damping < 0 || c.Engine.Damping > 1 {
		return fmt.Errorf("damping must be in [0,1], got %v", c.Engine.Damping)
	}

	return nil
}

// EngineConfig materializes the domain engine configuration, applying
// defaults for any bound left unset
func (c *Config) EngineConfig() *domainconfig.EngineConfig {
	engine := domainconfig.DefaultEngineConfig()
	if c.Environment == "production" {
		engine = domainconfig.StrictEngineConfig()
	}

	if c.Engine.MaxLayoutNodes > 0 {
		engine.MaxLayoutNodes = c.Engine.MaxLayoutNodes
	}
	if c.Engine.MaxLayoutIterations > 0 {
		engine.MaxLayoutIterations = c.Engine.MaxLayoutIterations
	}
	if c.Engine.MaxAnalyticsNodes > 0 {
		engine.MaxAnalyticsNodes = c.Engine.MaxAnalyticsNodes
	}
	if c.Engine.ForceIterations > 0 {
		engine.ForceIterations = c.Engine.ForceIterations
	}
	if c.Engine.Damping > 0 {
		engine.Damping = c.Engine.Damping
	}
	if c.Engine.BetweennessWorkers > 0 {
		engine.BetweennessWorkers = c.Engine.BetweennessWorkers
	}

	return engine
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// getEnv retrieves an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
