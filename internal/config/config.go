package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// AgentConfig holds action-loop configuration
type AgentConfig struct {
	MaxActions      int           `yaml:"max_actions"`      // Action budget per session
	Cooldown        time.Duration `yaml:"cooldown"`         // Delay between actions
	ProposalTimeout time.Duration `yaml:"proposal_timeout"` // Bound on a single proposal request (0 = none)
	HandlerTimeout  time.Duration `yaml:"handler_timeout"`  // Bound on a single command handler (0 = none)
	ProposalRetries int           `yaml:"proposal_retries"` // Malformed-proposal retries before the session ends (0 = end on first)
	Instructions    string        `yaml:"instructions"`     // Standing instructions prepended to every proposal request
}

// ModelConfig holds inference model configuration
type ModelConfig struct {
	Name        string  `yaml:"name"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	RequestsPerMinute  int  `yaml:"requests_per_minute"`
	MaxRetries         int  `yaml:"max_retries"` // SDK retries on 429
	EnableRateLimiting bool `yaml:"enable_rate_limiting"`
}

// StoreConfig holds persistence configuration
type StoreConfig struct {
	Path string `yaml:"path"` // SQLite database path
}

// ScheduleConfig holds cron session scheduling configuration
type ScheduleConfig struct {
	Enabled bool   `yaml:"enabled"`
	Spec    string `yaml:"spec"` // Standard 5-field cron expression
}

// Config holds the application configuration
type Config struct {
	APIKey    string          `yaml:"-"` // From environment only
	Agent     AgentConfig     `yaml:"agent"`
	Model     ModelConfig     `yaml:"model"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Store     StoreConfig     `yaml:"store"`
	Schedule  ScheduleConfig  `yaml:"schedule"`

	// Internal: where config was loaded from
	configPath string
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			MaxActions:      10,
			Cooldown:        5 * time.Second,
			ProposalTimeout: 2 * time.Minute,
			HandlerTimeout:  5 * time.Minute,
			ProposalRetries: 0,
			Instructions:    "You are operant, an autonomous terminal agent.",
		},
		Model: ModelConfig{
			Name:        "claude-sonnet-4-5-20250929",
			MaxTokens:   4096,
			Temperature: 0.7,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute:  20,
			MaxRetries:         5,
			EnableRateLimiting: true,
		},
		Store: StoreConfig{
			Path: ".operant/operant.db",
		},
		Schedule: ScheduleConfig{
			Enabled: false,
			Spec:    "0 * * * *",
		},
	}
}

// Load loads configuration from files and environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config files in priority order
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := cfg.loadFromFile(path); err != nil {
				return nil, fmt.Errorf("error loading config from %s: %w", path, err)
			}
			cfg.configPath = path
			break
		}
	}

	// If no config found, create default
	if cfg.configPath == "" {
		if err := cfg.createDefault(); err != nil {
			// Non-fatal: just use defaults
			fmt.Fprintf(os.Stderr, "Warning: could not create default config: %v\n", err)
		}
	}

	// Load API key from environment
	cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
	}

	return cfg, nil
}

// getConfigPaths returns config file paths in priority order
func getConfigPaths() []string {
	paths := []string{
		"operant.yaml",
		".operant/config.yaml",
	}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "operant", "config.yaml"))
	}

	return paths
}

// loadFromFile loads config from a YAML file
func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// createDefault creates a default config file
func (c *Config) createDefault() error {
	dir := ".operant"
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path := filepath.Join(dir, "config.yaml")
	c.configPath = path

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	content := "# operant configuration\n\n" + string(data)
	return os.WriteFile(path, []byte(content), 0644)
}

// ConfigPath returns where the config was loaded from
func (c *Config) ConfigPath() string {
	return c.configPath
}
