package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Act
	cfg, err := LoadConfig()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	// Arrange
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("MAX_LAYOUT_NODES", "100")

	// Act
	cfg, err := LoadConfig()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 100, cfg.Engine.MaxLayoutNodes)
}

func TestLoadConfig_YAMLFileThenEnv(t *testing.T) {
	// Arrange: file sets staging, env overrides one engine bound
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("environment: staging\nengine:\n  max_layout_nodes: 50\n  force_iterations: 10\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	t.Setenv("KGRAPH_CONFIG_FILE", path)
	t.Setenv("MAX_LAYOUT_NODES", "75")

	// Act
	cfg, err := LoadConfig()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, 75, cfg.Engine.MaxLayoutNodes)
	assert.Equal(t, 10, cfg.Engine.ForceIterations)
}

func TestLoadConfig_RejectsUnknownEnvironment(t *testing.T) {
	// Arrange
	t.Setenv("ENVIRONMENT", "qa")

	// Act
	_, err := LoadConfig()

	// Assert
	assert.Error(t, err)
}

func TestConfig_EngineConfig_AppliesBounds(t *testing.T) {
	// Arrange
	cfg := &Config{Environment: "development"}
	cfg.Engine.MaxLayoutNodes = 42
	cfg.Engine.Damping = 0.5

	// Act
	engine := cfg.EngineConfig()

	// Assert: explicit bounds replace defaults, the rest stay
	assert.Equal(t, 42, engine.MaxLayoutNodes)
	assert.InDelta(t, 0.5, engine.Damping, 1e-9)
	assert.Equal(t, 500, engine.MaxLayoutIterations)
}

func TestConfig_EngineConfig_ProductionIsStrict(t *testing.T) {
	// Arrange
	cfg := &Config{Environment: "production"}

	// Act
	engine := cfg.EngineConfig()

	// Assert
	assert.Equal(t, 500, engine.MaxLayoutNodes)
	assert.Equal(t, 2, engine.BetweennessWorkers)
}

func TestBuildLogger(t *testing.T) {
	// Act
	logger, err := BuildLogger(&Config{Environment: "development", LogLevel: "debug"})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, logger)

	_, err = BuildLogger(&Config{Environment: "development", LogLevel: "chatty"})
	assert.Error(t, err)
}
