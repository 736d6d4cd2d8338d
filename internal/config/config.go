package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	CORS    CORSConfig    `yaml:"cors"`
	Bedrock BedrockConfig `yaml:"bedrock"`
	Engine  EngineConfig  `yaml:"engine"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// GetHost returns the server host, with container detection
func (c ServerConfig) GetHost() string {
	// On ECS/container, listen on all interfaces
	if os.Getenv("ECS_CONTAINER_METADATA_URI") != "" || os.Getenv("AWS_EXECUTION_ENV") != "" {
		return "0.0.0.0"
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		return host
	}
	return c.Host
}

// CORSConfig holds allowed browser origins for the configurator UI
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// BedrockConfig holds the hosted text model used for brand analysis
type BedrockConfig struct {
	Enabled bool   `yaml:"enabled"`
	ModelID string `yaml:"model_id"`
	Region  string `yaml:"region"`
}

// EngineConfig holds simulation defaults applied when a request omits them
type EngineConfig struct {
	DefaultBurnRate float64 `yaml:"default_burn_rate"` // % fallback utilization
	DefaultScenario string  `yaml:"default_scenario"`  // low, medium, high
	MaxUploadSizeMB int     `yaml:"max_upload_size_mb"`
	MaxCustomerRows int     `yaml:"max_customer_rows"`
}

// Load reads and parses the configuration file. A missing file is not
// an error: the service runs fine on defaults and env overrides.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"http://localhost:5173", "http://localhost:8080"}
	}
	if cfg.Bedrock.ModelID == "" {
		cfg.Bedrock.ModelID = "anthropic.claude-3-sonnet-20240229-v1:0"
	}
	if cfg.Bedrock.Region == "" {
		cfg.Bedrock.Region = "us-east-1"
	}
	if cfg.Engine.DefaultBurnRate == 0 {
		cfg.Engine.DefaultBurnRate = 40
	}
	if cfg.Engine.DefaultScenario == "" {
		cfg.Engine.DefaultScenario = "medium"
	}
	if cfg.Engine.MaxUploadSizeMB == 0 {
		cfg.Engine.MaxUploadSizeMB = 20
	}
	if cfg.Engine.MaxCustomerRows == 0 {
		cfg.Engine.MaxCustomerRows = 500000
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides.
// It automatically loads a .env file (if present) before reading env
// vars, so local secrets can live in .env and real env vars in deploy.
func LoadFromEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if modelID := os.Getenv("BEDROCK_MODEL_ID"); modelID != "" {
		cfg.Bedrock.ModelID = modelID
	}
	if region := os.Getenv("BEDROCK_REGION"); region != "" {
		cfg.Bedrock.Region = region
	}
	if v := os.Getenv("BEDROCK_ENABLED"); v != "" {
		cfg.Bedrock.Enabled = v == "true" || v == "1"
	}

	return cfg, nil
}
