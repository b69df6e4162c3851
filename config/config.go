package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the application configuration. It is loaded once at startup
// and passed to component constructors; there is no package-level instance.
type Config struct {
	Database struct {
		Host     string `mapstructure:"host"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		DBName   string `mapstructure:"dbname"`
		Port     string `mapstructure:"port"`
		SSLMode  string `mapstructure:"sslmode"`
	} `mapstructure:"database"`
	Auth struct {
		Secret  string `mapstructure:"secret"`
		ExpHour int    `mapstructure:"exp_hour"`
	} `mapstructure:"auth"`
	Server struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"server"`
}

// DSN generates the PostgreSQL DSN from database config.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Database.Host,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.Port,
		c.Database.SSLMode,
	)
}

// Load reads and parses the YAML configuration file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Database.Host == "" {
		return nil, fmt.Errorf("database.host is required")
	}
	if cfg.Database.User == "" {
		return nil, fmt.Errorf("database.user is required")
	}
	if cfg.Database.DBName == "" {
		return nil, fmt.Errorf("database.dbname is required")
	}
	if cfg.Database.Port == "" {
		return nil, fmt.Errorf("database.port is required")
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Auth.Secret == "" {
		return nil, fmt.Errorf("auth.secret is required")
	}
	if cfg.Auth.ExpHour <= 0 {
		cfg.Auth.ExpHour = 24
	}
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("server.port must be between 1 and 65535")
	}

	return &cfg, nil
}
