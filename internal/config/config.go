package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

type (
	// Config is loaded once at startup and passed by value into the
	// constructors that need it. Nothing re-reads the file mid-operation;
	// changing the file requires a new invocation.
	Config struct {
		Language         string    `json:"language"`
		MaxMessageLength int       `json:"max_message_length"`
		AutoFetchTags    bool      `json:"auto_fetch_tags"`
		AI               AIConfig  `json:"ai"`
		VCS              VCSConfig `json:"vcs"`
		PathFile         string    `json:"path_file"`
	}

	AIConfig struct {
		ActiveAI string       `json:"active_ai,omitempty"`
		Gemini   GeminiConfig `json:"gemini"`
	}

	GeminiConfig struct {
		APIKey string `json:"api_key,omitempty"`
		Model  string `json:"model,omitempty"`
	}

	VCSConfig struct {
		GitHub GitHubConfig `json:"github"`
	}

	GitHubConfig struct {
		Token string `json:"token,omitempty"`
	}
)

const (
	defaultLang             = "en"
	defaultMaxMessageLength = 72
	defaultGeminiModel      = "gemini-1.5-flash"

	ProviderGemini = "gemini"
)

func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".tagmate")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create config directory: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}
	config.PathFile = configPath

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("loaded configuration is invalid: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:         defaultLang,
		MaxMessageLength: defaultMaxMessageLength,
		AutoFetchTags:    false,
		AI: AIConfig{
			Gemini: GeminiConfig{
				Model: defaultGeminiModel,
			},
		},
		PathFile: path,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write default config: %w", err)
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration to save is invalid: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("config file path is not set")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func validateConfig(config *Config) error {
	if config.MaxMessageLength <= 0 {
		return errors.New("max_message_length must be greater than 0")
	}
	if config.Language == "" {
		return errors.New("language cannot be empty")
	}

	if config.AI.ActiveAI != "" {
		switch config.AI.ActiveAI {
		case ProviderGemini:
			if config.AI.Gemini.APIKey == "" {
				return errors.New("gemini API key is not configured")
			}
		default:
			return fmt.Errorf("unsupported AI provider: %s", config.AI.ActiveAI)
		}
	}
	return nil
}

// Set assigns a dot-path key like "ai.gemini.api_key" or "language".
// Used by the config set command.
func (c *Config) Set(key, value string) error {
	switch key {
	case "language":
		c.Language = value
	case "max_message_length":
		var n int
		if _, err := fmt.Sscanf(value, "%d", &n); err != nil {
			return fmt.Errorf("max_message_length must be a number: %w", err)
		}
		c.MaxMessageLength = n
	case "auto_fetch_tags":
		switch value {
		case "true":
			c.AutoFetchTags = true
		case "false":
			c.AutoFetchTags = false
		default:
			return fmt.Errorf("auto_fetch_tags must be true or false, got %q", value)
		}
	case "ai.active_ai":
		c.AI.ActiveAI = value
	case "ai.gemini.api_key":
		c.AI.Gemini.APIKey = value
	case "ai.gemini.model":
		c.AI.Gemini.Model = value
	case "vcs.github.token":
		c.VCS.GitHub.Token = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
