package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// DatabaseURL is the Postgres connection string
	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	// RaidSchedule is the guild's raid nights as a recurrence rule,
	// e.g. "FREQ=WEEKLY;BYDAY=WE,SU"
	RaidSchedule string `yaml:"raidSchedule" validate:"required"`

	// ListenAddr is where the web server binds, e.g. ":8080"
	ListenAddr string `yaml:"listenAddr,omitempty"`

	// GmailUserID is the account used to send signup reminder emails
	GmailUserID string `yaml:"gmailUserID,omitempty" validate:"omitempty,email"`

	// GmailSender overrides the From address on reminders
	GmailSender string `yaml:"gmailSender,omitempty" validate:"omitempty,email"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from raid_planner_config.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks the raid schedule
// rule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if _, err := rrule.StrToRRule(cfg.RaidSchedule); err != nil {
		return fmt.Errorf("invalid raidSchedule: %w", err)
	}

	return nil
}

// findConfigFile searches for raid_planner_config.yaml in the current
// directory and home directory
func findConfigFile() (string, error) {
	configFileName := "raid_planner_config.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
