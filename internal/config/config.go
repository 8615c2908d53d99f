// Package config holds gamedex configuration: defaults, an optional YAML
// config file, and environment overrides for the API credential.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all gamedex configuration.
type Config struct {
	// Input/output CSV paths
	Input  string `yaml:"input"`
	Output string `yaml:"output"`

	// Column holding the game titles
	TitleColumn string `yaml:"title_column"`

	// Generative API configuration
	LLM LLMConfig `yaml:"llm"`

	// Fixed inter-request delays
	Pacing PacingConfig `yaml:"pacing"`
}

// LLMConfig configures the Gemini client.
type LLMConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	Timeout string `yaml:"timeout"`
}

// PacingConfig holds the static sleeps applied after each per-row request.
// These keep the run under the API's free-tier rate limit; they are not
// adaptive backoff.
type PacingConfig struct {
	AfterGenre       string `yaml:"after_genre"`
	AfterDescription string `yaml:"after_description"`
	AfterPlayerMode  string `yaml:"after_player_mode"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Input:       "Game_Thumbnail.csv",
		Output:      "enhanced_game_data.csv",
		TitleColumn: "game_title",

		LLM: LLMConfig{
			Model:   "gemini-2.0-flash-lite",
			Timeout: "120s",
		},

		Pacing: PacingConfig{
			AfterGenre:       "3s",
			AfterDescription: "3s",
			AfterPlayerMode:  "6s",
		},
	}
}

// Load builds the effective configuration: defaults, then the YAML config
// file at path (if given), then environment overrides. A .env file in the
// working directory is honored the same way the original job honored it.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	// Best-effort; absence of a .env file is fine
	_ = godotenv.Load()
	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides fills the API key from the environment when the config
// file did not provide one. GOOGLE_API_KEY wins over GEMINI_API_KEY.
func (c *Config) applyEnvOverrides() {
	if c.LLM.APIKey != "" {
		return
	}
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		c.LLM.APIKey = key
		return
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.LLM.APIKey = key
	}
}

// Validate checks that the configuration can actually drive a run.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("no API key found; set GOOGLE_API_KEY (or GEMINI_API_KEY), add it to .env, or set llm.api_key in the config file")
	}
	if c.Input == "" {
		return fmt.Errorf("input path is required")
	}
	if c.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if c.TitleColumn == "" {
		return fmt.Errorf("title column is required")
	}
	return nil
}

// TimeoutDuration parses the LLM timeout, falling back to two minutes.
func (c *LLMConfig) TimeoutDuration() time.Duration {
	return parseDuration(c.Timeout, 2*time.Minute)
}

// Delays parses the pacing sleeps, falling back to the defaults of the
// original job (3s, 3s, 6s).
func (p *PacingConfig) Delays() (afterGenre, afterDescription, afterPlayerMode time.Duration) {
	return parseDuration(p.AfterGenre, 3*time.Second),
		parseDuration(p.AfterDescription, 3*time.Second),
		parseDuration(p.AfterPlayerMode, 6*time.Second)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
