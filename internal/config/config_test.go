package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "us-east-1", cfg.Bedrock.Region)
	assert.False(t, cfg.Bedrock.Enabled)
	assert.Equal(t, 40.0, cfg.Engine.DefaultBurnRate)
	assert.Equal(t, "medium", cfg.Engine.DefaultScenario)
	assert.Equal(t, 20, cfg.Engine.MaxUploadSizeMB)
	assert.Equal(t, 500000, cfg.Engine.MaxCustomerRows)
}

func TestLoad_ExplicitValues(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
server:
  port: 9090
  host: 0.0.0.0
cors:
  allowed_origins:
    - https://app.example.com
bedrock:
  enabled: true
  model_id: my-model
  region: eu-west-1
engine:
  default_burn_rate: 55
  default_scenario: high
  max_upload_size_mb: 5
  max_customer_rows: 1000
`))

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Bedrock.Enabled)
	assert.Equal(t, "my-model", cfg.Bedrock.ModelID)
	assert.Equal(t, "eu-west-1", cfg.Bedrock.Region)
	assert.Equal(t, 55.0, cfg.Engine.DefaultBurnRate)
	assert.Equal(t, "high", cfg.Engine.DefaultScenario)
	assert.Equal(t, 5, cfg.Engine.MaxUploadSizeMB)
	assert.Equal(t, 1000, cfg.Engine.MaxCustomerRows)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("BEDROCK_MODEL_ID", "env-model")
	t.Setenv("BEDROCK_ENABLED", "true")

	cfg, err := LoadFromEnv(writeConfig(t, "server:\n  port: 9090\n"))

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "env-model", cfg.Bedrock.ModelID)
	assert.True(t, cfg.Bedrock.Enabled)
}

func TestGetHost_ContainerDetection(t *testing.T) {
	cfg := ServerConfig{Host: "localhost"}
	assert.Equal(t, "localhost", cfg.GetHost())

	t.Setenv("ECS_CONTAINER_METADATA_URI", "http://169.254.170.2/v3")
	assert.Equal(t, "0.0.0.0", cfg.GetHost())
}

func TestGetHost_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_HOST", "10.0.0.5")
	cfg := ServerConfig{Host: "localhost"}
	assert.Equal(t, "10.0.0.5", cfg.GetHost())
}
