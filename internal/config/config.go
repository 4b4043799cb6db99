package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrEmptyToken = errors.New("error getting LF_TELEGRAM_TOKEN: variable not specified or contains an empty string")

type Config struct {
	Env         string `validate:"required"`      // Env is the current environment: local, dev, prod.
	URL         string `validate:"omitempty,url"` // URL is an optional page with a remote price table.
	StoragePath string `validate:"required"`
	Tg          Telegram
}

type Telegram struct {
	Token   string        `validate:"required"` // Token is an unique telgram bot token.
	Timeout time.Duration `validate:"gt=0"`     // Timeout is a poller timeout duration.
}

// MustLoad loads the configuration from environment variables and returns a Config struct.
// A .env file in the working directory is read first when present.
func MustLoad() *Config {
	_ = godotenv.Load()

	// Automatically binds environment variables to config keys
	viper.SetEnvPrefix("LF")
	viper.AutomaticEnv()

	// optional args
	viper.SetDefault("ENV", "production")
	viper.SetDefault("TELEGRAM_TIMEOUT", "15s")
	viper.SetDefault("STORAGE_PATH", "storage/label-flow.db")

	if viper.GetString("TELEGRAM_TOKEN") == "" {
		panic(ErrEmptyToken)
	}

	cfg := &Config{
		Env:         viper.GetString("ENV"),
		URL:         viper.GetString("DEST_URL"),
		StoragePath: viper.GetString("STORAGE_PATH"),
		Tg: Telegram{
			Token:   viper.GetString("TELEGRAM_TOKEN"),
			Timeout: viper.GetDuration("TELEGRAM_TIMEOUT"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		panic(fmt.Errorf("invalid configuration: %w", err))
	}

	return cfg
}
