// Package config loads failtrace.yaml and applies environment overrides.
package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/aretw0/failtrace/internal/logging"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the project config file name.
const DefaultFile = "failtrace.yaml"

// Environment overrides.
const (
	EnvStore     = "FAILTRACE_STORE"
	EnvRedisAddr = "FAILTRACE_REDIS_ADDR"
	EnvLogLevel  = "FAILTRACE_LOG_LEVEL"
	EnvStoreKey  = "FAILTRACE_STORE_KEY"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

type Config struct {
	Graph   GraphConfig   `yaml:"graph"`
	Store   StoreConfig   `yaml:"store"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// GraphConfig selects the graph source. An empty Dir means the built-in playbook.
type GraphConfig struct {
	Dir  string `yaml:"dir"`
	Root string `yaml:"root"`
}

type StoreConfig struct {
	Backend    string           `yaml:"backend"`
	Dir        string           `yaml:"dir"`
	Redis      RedisConfig      `yaml:"redis"`
	Encryption EncryptionConfig `yaml:"encryption"`
}

// EncryptionConfig turns on at-rest encryption of stored blobs when Key is set.
// Keys are base64-encoded 32-byte AES keys; FallbackKeys are tried on read only.
type EncryptionConfig struct {
	Key          string   `yaml:"key"`
	FallbackKeys []string `yaml:"fallback_keys"`
}

// Enabled reports whether a key is configured.
func (e EncryptionConfig) Enabled() bool {
	return e.Key != ""
}

// Decode returns the raw active and fallback keys.
func (e EncryptionConfig) Decode() ([]byte, [][]byte, error) {
	active, err := base64.StdEncoding.DecodeString(e.Key)
	if err != nil {
		return nil, nil, fmt.Errorf("key is not valid base64: %w", err)
	}
	var fallback [][]byte
	for i, k := range e.FallbackKeys {
		raw, err := base64.StdEncoding.DecodeString(k)
		if err != nil {
			return nil, nil, fmt.Errorf("fallback key #%d is not valid base64: %w", i, err)
		}
		fallback = append(fallback, raw)
	}
	return active, fallback, nil
}

type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	Prefix   string        `yaml:"prefix"`
	TTL      time.Duration `yaml:"ttl"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// MetricsConfig enables the Prometheus textfile dump when File is set.
type MetricsConfig struct {
	File string `yaml:"file"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Store: StoreConfig{
			Backend: BackendFile,
			Dir:     ".failtrace/store",
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "failtrace:",
				TTL:    24 * time.Hour,
			},
		},
		Log: LogConfig{Level: "warn"},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return cfg, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvStore); v != "" {
		c.Store.Backend = v
	}
	if v := os.Getenv(EnvRedisAddr); v != "" {
		c.Store.Redis.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvStoreKey); v != "" {
		c.Store.Encryption.Key = v
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendFile, BackendRedis:
	default:
		return fmt.Errorf("store.backend: unknown backend %q (want memory, file or redis)", c.Store.Backend)
	}
	if c.Store.Redis.TTL < 0 {
		return fmt.Errorf("store.redis.ttl: must not be negative")
	}
	if c.Store.Encryption.Enabled() {
		if _, _, err := c.Store.Encryption.Decode(); err != nil {
			return fmt.Errorf("store.encryption: %w", err)
		}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
