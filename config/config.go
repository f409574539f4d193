// Package config loads the server settings
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Port         string   `yaml:"port"`
	AllowOrigins []string `yaml:"allowOrigins"`
	// RateLimit is the number of requests a client IP may make per minute
	RateLimit int    `yaml:"rateLimit"`
	LogLevel  string `yaml:"logLevel"`
	LogFormat string `yaml:"logFormat"`
	GinMode   string `yaml:"ginMode"`
}

const (
	DefaultPort      = "8080"
	DefaultOrigin    = "http://localhost:3000"
	DefaultRateLimit = 120
)

// Load reads the YAML file at path (skipped when path is empty), then a .env file in
// envFile if it exists, then environment overrides. Unset values get defaults.
func Load(path, envFile string) (Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("CIPHERLAB_ALLOWED_ORIGINS"); v != "" {
		c.AllowOrigins = nil
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				c.AllowOrigins = append(c.AllowOrigins, origin)
			}
		}
	}
	if v := os.Getenv("CIPHERLAB_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("CIPHERLAB_RATE_LIMIT must be a positive integer, got %q", v)
		}
		c.RateLimit = n
	}
	if v := os.Getenv("CIPHERLAB_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("CIPHERLAB_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		c.GinMode = v
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Port == "" {
		c.Port = DefaultPort
	}
	if len(c.AllowOrigins) == 0 {
		c.AllowOrigins = []string{DefaultOrigin}
	}
	if c.RateLimit <= 0 {
		c.RateLimit = DefaultRateLimit
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
}

// Logger builds the logrus logger described by LogLevel and LogFormat.
func (c Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	log := logrus.New()
	log.SetLevel(level)
	switch c.LogFormat {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return log, nil
}
