package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	LogLevel         string `mapstructure:"LOG_LEVEL"`
	LogDevelopment   bool   `mapstructure:"LOG_DEVELOPMENT"`
	LogOutput        string `mapstructure:"LOG_OUTPUT"`
	PasswordHashCost int    `mapstructure:"PASSWORD_HASH_COST"`
	OpeningBalance   int64  `mapstructure:"OPENING_BALANCE"`
}

// LoadConfig reads settings from the environment and an optional .env file
// in path. Environment variables win over the file.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("LOG_LEVEL", "warn")
	viper.SetDefault("LOG_DEVELOPMENT", false)
	viper.SetDefault("LOG_OUTPUT", "stderr")
	viper.SetDefault("PASSWORD_HASH_COST", bcrypt.DefaultCost)
	viper.SetDefault("OPENING_BALANCE", 0)

	_ = viper.BindEnv("LOG_LEVEL")
	_ = viper.BindEnv("LOG_DEVELOPMENT")
	_ = viper.BindEnv("LOG_OUTPUT")
	_ = viper.BindEnv("PASSWORD_HASH_COST")
	_ = viper.BindEnv("OPENING_BALANCE")

	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("level=warn component=config msg=\"failed to read config file; using environment values\" err=%v", err)
		}
	}

	if err = viper.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("could not decode config: %w", err)
	}
	if err = config.validate(); err != nil {
		return config, err
	}
	return config, nil
}

func (c Config) validate() error {
	if c.PasswordHashCost < bcrypt.MinCost || c.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("PASSWORD_HASH_COST must be within [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, c.PasswordHashCost)
	}
	if c.OpeningBalance < 0 {
		return fmt.Errorf("OPENING_BALANCE must not be negative, got %d", c.OpeningBalance)
	}
	if _, err := zap.ParseAtomicLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return nil
}

// NewLogger builds the process logger described by c.
func (c Config) NewLogger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.LogDevelopment {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	zc.Level = level
	zc.OutputPaths = []string{c.LogOutput}
	zc.ErrorOutputPaths = []string{"stderr"}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("could not build logger: %w", err)
	}
	return logger, nil
}
