package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port     string `yaml:"port" env:"SERVER_PORT"`
		Mode     string `yaml:"mode" env:"SERVER_MODE"`
		DemoData bool   `yaml:"demo_data" env:"SERVER_DEMO_DATA"`
	} `yaml:"server"`

	DeepSeek struct {
		APIKey      string  `yaml:"api_key" env:"DEEPSEEK_API_KEY"`
		BaseURL     string  `yaml:"base_url" env:"DEEPSEEK_BASE_URL"`
		Model       string  `yaml:"model" env:"DEEPSEEK_MODEL"`
		Temperature float64 `yaml:"temperature" env:"DEEPSEEK_TEMPERATURE"`
		Timeout     string  `yaml:"timeout" env:"DEEPSEEK_TIMEOUT"`
	} `yaml:"deepseek"`

	Recommender struct {
		MatchFields   string `yaml:"match_fields" env:"RECOMMENDER_MATCH_FIELDS"`
		MaxCandidates int    `yaml:"max_candidates" env:"RECOMMENDER_MAX_CANDIDATES"`
		TopN          int    `yaml:"top_n" env:"RECOMMENDER_TOP_N"`
	} `yaml:"recommender"`

	Requirements struct {
		Path string `yaml:"path" env:"REQUIREMENTS_PATH"`
	} `yaml:"requirements"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// DeepSeek defaults. The API key has no default: without one the
	// semantic recommender degrades to empty results and the relay
	// answers 500.
	config.DeepSeek.BaseURL = "https://api.deepseek.com"
	config.DeepSeek.Model = "deepseek-chat"
	config.DeepSeek.Temperature = 0.7
	config.DeepSeek.Timeout = "15s"

	// Recommender defaults
	config.Recommender.MatchFields = "title,department"
	config.Recommender.MaxCandidates = 200
	config.Recommender.TopN = 5

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	// Recursively process the config structure and look for env tags
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if _, err := time.ParseDuration(config.DeepSeek.Timeout); err != nil {
		return fmt.Errorf("invalid deepseek timeout format: %w", err)
	}

	if config.Recommender.MaxCandidates <= 0 {
		return fmt.Errorf("recommender max_candidates must be positive")
	}

	if config.Recommender.TopN <= 0 {
		return fmt.Errorf("recommender top_n must be positive")
	}

	switch fields := strings.ToLower(config.Recommender.MatchFields); fields {
	case "title,department", "title,description":
	default:
		return fmt.Errorf("unsupported recommender match_fields %q", config.Recommender.MatchFields)
	}

	return nil
}

// DeepSeekTimeout returns the parsed DeepSeek request timeout.
// Validation guarantees the value parses.
func (c *Config) DeepSeekTimeout() time.Duration {
	d, _ := time.ParseDuration(c.DeepSeek.Timeout)
	return d
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets an environment variable as an integer or returns a default value
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
