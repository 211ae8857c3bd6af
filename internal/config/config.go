package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	YouTube YouTubeConfig `yaml:"youtube"`
	AI      AIConfig      `yaml:"ai"`
	Trends  TrendsConfig  `yaml:"trends"`
	Session SessionConfig `yaml:"session"`
}

type ServerConfig struct {
	Addr    string `yaml:"addr"`
	DataDir string `yaml:"data_dir"`
}

type YouTubeConfig struct {
	APIKey string `yaml:"api_key"` // or YOUTUBE_API_KEY
}

type AIConfig struct {
	GeminiAPIKey string `yaml:"gemini_api_key"` // or GEMINI_API_KEY
	Model        string `yaml:"model"`
	ImageModel   string `yaml:"image_model"`
}

type TrendsConfig struct {
	BaseURL  string `yaml:"base_url"`
	Timezone int    `yaml:"timezone"`
}

type SessionConfig struct {
	TTL           Duration `yaml:"ttl"`
	SweepSchedule string   `yaml:"sweep_schedule"`
}

// Duration lets YAML carry human-readable durations like "2h".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	var cfg Config
	data, err := os.ReadFile(configFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		// No file is fine, everything can come from the environment.
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
	}

	if cfg.YouTube.APIKey == "" {
		cfg.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if cfg.AI.GeminiAPIKey == "" {
		cfg.AI.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.DataDir == "" {
		cfg.Server.DataDir = "data"
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = "gemini-2.5-flash"
	}
	if cfg.AI.ImageModel == "" {
		cfg.AI.ImageModel = "imagen-3.0-generate-002"
	}
	if cfg.Trends.BaseURL == "" {
		cfg.Trends.BaseURL = "https://trends.google.com"
	}
	if cfg.Trends.Timezone == 0 {
		cfg.Trends.Timezone = 360
	}
	if cfg.Session.TTL == 0 {
		cfg.Session.TTL = Duration(2 * time.Hour)
	}
	if cfg.Session.SweepSchedule == "" {
		cfg.Session.SweepSchedule = "@every 10m"
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.YouTube.APIKey == "" {
		return fmt.Errorf("YouTube API key is required (set YOUTUBE_API_KEY or youtube.api_key)")
	}
	if c.AI.GeminiAPIKey == "" {
		return fmt.Errorf("Gemini API key is required (set GEMINI_API_KEY or ai.gemini_api_key)")
	}
	if c.Session.TTL < 0 {
		return fmt.Errorf("session TTL cannot be negative")
	}
	return nil
}
