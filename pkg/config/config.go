package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	LLMProvider string          `json:"llm_provider" yaml:"llm_provider"`
	Providers   ProvidersConfig `json:"providers" yaml:"providers"`
	Language    string          `json:"language" yaml:"language"`
	Mode        string          `json:"mode" yaml:"mode"`
	LogLevel    string          `json:"log_level" yaml:"log_level"`
	LogFormat   string          `json:"log_format" yaml:"log_format"`
	LogFile     string          `json:"log_file" yaml:"log_file"`
}

// ProvidersConfig holds per-provider settings.
type ProvidersConfig struct {
	Google GoogleConfig `json:"google" yaml:"google"`
	OpenAI OpenAIConfig `json:"openai" yaml:"openai"`
}

// GoogleConfig holds the Gemini API configuration
type GoogleConfig struct {
	APIKey            string  `json:"api_key" yaml:"api_key"`
	Model             string  `json:"model" yaml:"model"`
	Temperature       float64 `json:"temperature" yaml:"temperature"`
	MaxTokens         int     `json:"max_tokens" yaml:"max_tokens"`
	APITimeoutSeconds int     `json:"api_timeout_seconds" yaml:"api_timeout_seconds"`
}

// OpenAIConfig holds the OpenAI-compatible API configuration
type OpenAIConfig struct {
	APIKey            string  `json:"api_key" yaml:"api_key"`
	APIURL            string  `json:"api_url" yaml:"api_url"`
	Model             string  `json:"model" yaml:"model"`
	Temperature       float64 `json:"temperature" yaml:"temperature"`
	MaxTokens         int     `json:"max_tokens" yaml:"max_tokens"`
	APITimeoutSeconds int     `json:"api_timeout_seconds" yaml:"api_timeout_seconds"`
}

const (
	ProviderGoogle = "google"
	ProviderOpenAI = "openai"
)

// Environment overrides.
const (
	EnvAPIKey    = "VISIONOPTICS_API_KEY"
	EnvProvider  = "VISIONOPTICS_PROVIDER"
	EnvLanguage  = "VISIONOPTICS_LANGUAGE"
	EnvLogLevel  = "VISIONOPTICS_LOG_LEVEL"
	EnvGeminiKey = "GEMINI_API_KEY"
	EnvOpenAIKey = "OPENAI_API_KEY"
)

// Default returns a configuration with default values
func Default() Config {
	return Config{
		LLMProvider: ProviderGoogle,
		Providers: ProvidersConfig{
			Google: GoogleConfig{
				Model:             "gemini-2.5-flash",
				Temperature:       0.7,
				MaxTokens:         1024,
				APITimeoutSeconds: 60,
			},
			OpenAI: OpenAIConfig{
				APIURL:            "https://api.openai.com/v1",
				Model:             "gpt-4o-mini",
				Temperature:       0.7,
				MaxTokens:         1024,
				APITimeoutSeconds: 60,
			},
		},
		Language:  "zh",
		Mode:      "bright",
		LogLevel:  "info",
		LogFormat: "json",
	}
}

// Load loads configuration from the specified path
// If the file doesn't exist, creates one with default values
func Load(configPath string) (Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return Config{}, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if err := Save(configPath, cfg); err != nil {
				return Config{}, fmt.Errorf("failed to create default config: %w", err)
			}
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	// Start from defaults so fields missing in older files keep sane values.
	cfg := Default()
	if isYAML(configPath) {
		err = yaml.Unmarshal(data, &cfg)
	} else {
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save saves the configuration to the specified path. Files ending in
// .yaml or .yml are written as YAML, everything else as JSON.
func Save(configPath string, cfg Config) error {
	var (
		data []byte
		err  error
	)
	if isYAML(configPath) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// ApplyEnv overlays environment variables on top of the file settings.
// Keys are never written back to disk.
func (c Config) ApplyEnv(getenv func(string) string) Config {
	if getenv == nil {
		getenv = os.Getenv
	}

	if v := strings.TrimSpace(getenv(EnvProvider)); v != "" {
		c.LLMProvider = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv(EnvLanguage)); v != "" {
		c.Language = v
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(getenv(EnvGeminiKey)); v != "" {
		c.Providers.Google.APIKey = v
	}
	if v := strings.TrimSpace(getenv(EnvOpenAIKey)); v != "" {
		c.Providers.OpenAI.APIKey = v
	}
	if v := strings.TrimSpace(getenv(EnvAPIKey)); v != "" {
		switch c.LLMProvider {
		case ProviderOpenAI:
			c.Providers.OpenAI.APIKey = v
		default:
			c.Providers.Google.APIKey = v
		}
	}
	return c
}

// APIKey returns the credential of the active provider.
func (c Config) APIKey() string {
	if c.LLMProvider == ProviderOpenAI {
		return c.Providers.OpenAI.APIKey
	}
	return c.Providers.Google.APIKey
}

// ActiveModel returns the model name of the active provider.
func (c Config) ActiveModel() string {
	if c.LLMProvider == ProviderOpenAI {
		return c.Providers.OpenAI.Model
	}
	return c.Providers.Google.Model
}

// ActiveTimeoutSeconds returns the request timeout of the active provider.
func (c Config) ActiveTimeoutSeconds() int {
	if c.LLMProvider == ProviderOpenAI {
		return c.Providers.OpenAI.APITimeoutSeconds
	}
	return c.Providers.Google.APITimeoutSeconds
}

// Validate checks if the configuration is valid. A missing API key is not
// an error: the tutor answers with its fallback text instead.
func (c Config) Validate() error {
	switch c.LLMProvider {
	case ProviderGoogle, ProviderOpenAI:
	default:
		return fmt.Errorf("unsupported LLM provider: %s", c.LLMProvider)
	}

	switch strings.ToLower(strings.TrimSpace(c.Language)) {
	case "en", "zh":
	default:
		return fmt.Errorf("language must be en or zh, got: %q", c.Language)
	}

	switch strings.ToLower(strings.TrimSpace(c.Mode)) {
	case "", "bright", "dark":
	default:
		return fmt.Errorf("mode must be bright or dark, got: %q", c.Mode)
	}

	if err := validateSampling("google", c.Providers.Google.Temperature, c.Providers.Google.MaxTokens, c.Providers.Google.APITimeoutSeconds); err != nil {
		return err
	}
	if err := validateSampling("openai", c.Providers.OpenAI.Temperature, c.Providers.OpenAI.MaxTokens, c.Providers.OpenAI.APITimeoutSeconds); err != nil {
		return err
	}

	return nil
}

func validateSampling(name string, temperature float64, maxTokens, timeoutSeconds int) error {
	if temperature < 0 || temperature > 2 {
		return fmt.Errorf("%s temperature must be between 0 and 2, got: %f", name, temperature)
	}
	if maxTokens < 0 {
		return fmt.Errorf("%s max_tokens must not be negative, got: %d", name, maxTokens)
	}
	if timeoutSeconds <= 0 {
		return fmt.Errorf("%s api_timeout_seconds must be positive, got: %d", name, timeoutSeconds)
	}
	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".visionoptics/config.json"
	}
	return filepath.Join(homeDir, ".visionoptics", "config.json")
}
