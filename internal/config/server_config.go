package config

import (
	"fmt"
	"github.com/spf13/viper"
	"time"
)

type ServerConfig struct {
	Port          int           `mapstructure:"port"`
	Mode          string        `mapstructure:"mode"`
	SweepSchedule string        `mapstructure:"sweep_schedule"`
	RateLimit     float64       `mapstructure:"rate_limit"`
	RateBurst     int           `mapstructure:"rate_burst"`
	ReadTimeout   time.Duration `mapstructure:"read_timeout"`
	WriteTimeout  time.Duration `mapstructure:"write_timeout"`
}

func (config ServerConfig) validate() error {

	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("invalid port: %d", config.Port)
	}

	if config.Mode != "release" && config.Mode != "debug" && config.Mode != "test" {
		return fmt.Errorf("invalid mode: %s", config.Mode)
	}

	return nil
}

func (config ServerConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("server.port", "PORT"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("server.mode", "MODE"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("server.sweep_schedule", "SWEEP_SCHEDULE"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
