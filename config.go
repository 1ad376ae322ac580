package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	defaultConfigPath  = "config.json"
	defaultDictionary  = "share/dict.lst"
	defaultLogLevel    = "warn"
	defaultHTTPTimeout = 30
	defaultUA          = "wordle-solver/1.0"
)

// Environment variables, also read from .env.
const (
	envConfigPath = "WORDLE_SOLVER_CONFIG"
	envDictionary = "WORDLE_SOLVER_DICT"
)

// appConfig holds the application configuration.
type appConfig struct {
	Dictionary  string `json:"dictionary"`
	Vowels      string `json:"vowels"`
	Strict      bool   `json:"strict"`
	LogLevel    string `json:"log_level"`
	HTTPTimeout int    `json:"http_timeout,omitempty"`
	UserAgent   string `json:"user_agent,omitempty"`
}

func defaultConfig() appConfig {
	return appConfig{
		Dictionary:  defaultDictionary,
		Vowels:      defaultVowels,
		Strict:      true,
		LogLevel:    defaultLogLevel,
		HTTPTimeout: defaultHTTPTimeout,
		UserAgent:   defaultUA,
	}
}

// rules derives the puzzle parameters from the config.
func (c appConfig) rules() rules {
	return rules{Length: defaultWordLength, Vowels: c.Vowels}
}

func (c appConfig) httpTimeout() time.Duration {
	if c.HTTPTimeout <= 0 {
		return defaultHTTPTimeout * time.Second
	}
	return time.Duration(c.HTTPTimeout) * time.Second
}

// configPath picks the config file: the flag value, then the environment,
// then config.json in the working directory.
func configPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := strings.TrimSpace(os.Getenv(envConfigPath)); p != "" {
		return p
	}
	return defaultConfigPath
}

// loadConfig loads configuration from the specified path. A missing file
// yields the defaults.
func loadConfig(path string) (appConfig, error) {
	cfg := defaultConfig()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg.withEnv(), nil
		}
		return appConfig{}, fmt.Errorf("stat config: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
		return appConfig{}, fmt.Errorf("load config: %w", err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return appConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Dictionary = strings.TrimSpace(cfg.Dictionary)
	cfg.Vowels = strings.ToLower(strings.TrimSpace(cfg.Vowels))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.Dictionary == "" {
		cfg.Dictionary = defaultDictionary
	}
	if cfg.Vowels == "" {
		cfg.Vowels = defaultVowels
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUA
	}
	if err := cfg.rules().validate(); err != nil {
		return appConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return appConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg.withEnv(), nil
}

func (c appConfig) withEnv() appConfig {
	if d := strings.TrimSpace(os.Getenv(envDictionary)); d != "" {
		c.Dictionary = d
	}
	return c
}

// saveConfig writes configuration to the specified path.
func saveConfig(path string, cfg appConfig) error {
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	b = append(b, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}
