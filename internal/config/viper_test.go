package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, 0, config.Batch.Workers)
	assert.Equal(t, ".", config.Output.Directory)
	assert.Equal(t, "csv", config.Output.Format)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)

	t.Setenv("STMT_LOG_LEVEL", "debug")
	t.Setenv("STMT_LOG_FORMAT", "json")
	t.Setenv("STMT_BATCH_WORKERS", "4")
	t.Setenv("STMT_OUTPUT_FORMAT", "yaml")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, 4, config.Batch.Workers)
	assert.Equal(t, "yaml", config.Output.Format)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
  format: "json"
batch:
  workers: 2
output:
  directory: "exports"
  format: "yaml"
`
	err := os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0644)
	require.NoError(t, err)

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		require.NoError(t, os.Chdir(originalDir))
	}()
	require.NoError(t, os.Chdir(tempDir))

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, 2, config.Batch.Workers)
	assert.Equal(t, "exports", config.Output.Directory)
	assert.Equal(t, "yaml", config.Output.Format)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
batch:
  workers: 2
`
	err := os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0644)
	require.NoError(t, err)

	t.Setenv("STMT_LOG_LEVEL", "error")

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		require.NoError(t, os.Chdir(originalDir))
	}()
	require.NoError(t, os.Chdir(tempDir))

	config, err := InitializeConfig()
	require.NoError(t, err)

	// Env var wins over the file, the file wins over the default.
	assert.Equal(t, "error", config.Log.Level)
	assert.Equal(t, 2, config.Batch.Workers)
	assert.Equal(t, "csv", config.Output.Format)
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name: "invalid log level",
			modifyConfig: func(c *Config) {
				c.Log.Level = "loud"
			},
			expectError: "invalid log level",
		},
		{
			name: "invalid log format",
			modifyConfig: func(c *Config) {
				c.Log.Format = "xml"
			},
			expectError: "invalid log format",
		},
		{
			name: "negative worker count",
			modifyConfig: func(c *Config) {
				c.Batch.Workers = -1
			},
			expectError: "batch.workers must not be negative",
		},
		{
			name: "invalid output format",
			modifyConfig: func(c *Config) {
				c.Output.Format = "xlsx"
			},
			expectError: "invalid output format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validBaseConfig()
			tt.modifyConfig(config)

			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestValidateConfig_AcceptsDefaults(t *testing.T) {
	assert.NoError(t, validateConfig(validBaseConfig()))
}

func TestApplyLogging(t *testing.T) {
	config := validBaseConfig()
	config.Log.Level = "debug"
	config.Log.Format = "json"

	// Must not panic and must tolerate repeated application.
	ApplyLogging(config)
	ApplyLogging(validBaseConfig())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("STMT_TEST_PRESENT", "value")

	assert.Equal(t, "value", GetEnv("STMT_TEST_PRESENT", "fallback"))
	assert.Equal(t, "fallback", GetEnv("STMT_TEST_ABSENT", "fallback"))
}

func validBaseConfig() *Config {
	config := &Config{}
	config.Log.Level = "info"
	config.Log.Format = "text"
	config.Batch.Workers = 0
	config.Output.Directory = "."
	config.Output.Format = "csv"
	return config
}

func clearTestEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		"STMT_LOG_LEVEL",
		"STMT_LOG_FORMAT",
		"STMT_BATCH_WORKERS",
		"STMT_OUTPUT_DIRECTORY",
		"STMT_OUTPUT_FORMAT",
	}
	for _, envVar := range envVars {
		if err := os.Unsetenv(envVar); err != nil {
			fmt.Printf("Warning: failed to unset environment variable %s: %v\n", envVar, err)
		}
	}
}
