package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string `mapstructure:"APP_ENV"`
	API      APIConfig
	State    StateConfig
	LogLevel string `mapstructure:"LOG_LEVEL"`
	Metrics  MetricsConfig
}

type APIConfig struct {
	BaseURL string        `mapstructure:"API_BASE_URL"`
	Timeout time.Duration `mapstructure:"API_TIMEOUT"`
}

type StateConfig struct {
	DBPath string `mapstructure:"STATE_DB_PATH"`
}

type MetricsConfig struct {
	Port string `mapstructure:"METRICS_PORT"`
}

func Load() (*Config, error) {
	// .env is optional; environment variables alone are enough.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, err
		}
	}

	viper.AutomaticEnv()
	viper.SetDefault("API_BASE_URL", "http://localhost:8000")
	viper.SetDefault("API_TIMEOUT", 30*time.Second)
	viper.SetDefault("STATE_DB_PATH", "byaura-admin.db")
	viper.SetDefault("LOG_LEVEL", "info")

	var cfg Config

	cfg.AppEnv = viper.GetString("APP_ENV")
	cfg.API.BaseURL = viper.GetString("API_BASE_URL")
	cfg.API.Timeout = viper.GetDuration("API_TIMEOUT")
	cfg.State.DBPath = viper.GetString("STATE_DB_PATH")
	cfg.Metrics.Port = viper.GetString("METRICS_PORT")
	cfg.LogLevel = viper.GetString("LOG_LEVEL")

	return &cfg, nil
}
