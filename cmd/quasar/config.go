package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the full configuration of the quasar command. Every field has a
// default, so running without a config file works out of the box.
type Config struct {
	DataDir string        `yaml:"dataDir"`
	Storage string        `yaml:"storage"` // file or mysql
	MySQL   MySQLConfig   `yaml:"mysql"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

type MySQLConfig struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Addr     string `yaml:"addr"`
	Port     string `yaml:"port"`
	DB       string `yaml:"db"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func defaultConfig() Config {
	return Config{
		DataDir: "data",
		Storage: "file",
		MySQL: MySQLConfig{
			User: "root",
			Addr: "127.0.0.1",
			Port: "3306",
			DB:   "quasar",
		},
		Server: ServerConfig{Port: 8080},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig reads the YAML file at path over the defaults and then applies
// environment-variable overrides. A missing file is fine when path is the
// default location; an explicitly passed path must exist.
func LoadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// defaults only
	case err != nil:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("QUASAR_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("QUASAR_STORAGE"); v != "" {
		cfg.Storage = v
	}
	if v := os.Getenv("QUASAR_MYSQL_PASSWORD"); v != "" {
		cfg.MySQL.Password = v
	}
	if v := os.Getenv("QUASAR_HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("QUASAR_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

func (c Config) validate() error {
	if c.Storage != "file" && c.Storage != "mysql" {
		return fmt.Errorf("config: unknown storage backend %q (want file or mysql)", c.Storage)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid server port %d", c.Server.Port)
	}
	return nil
}
