package config

import (
	"fmt"
	"github.com/spf13/viper"
	"time"
)

type AuthConfig struct {
	JwtSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

func (config AuthConfig) validate() error {

	if config.JwtSecret == "" {
		return fmt.Errorf("missing variable: jwt_secret")
	}

	if config.TokenTTL <= 0 {
		return fmt.Errorf("token_ttl must be greater than zero")
	}

	return nil
}

func (config AuthConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("auth.jwt_secret", "JWT_SECRET"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("auth.token_ttl", "TOKEN_TTL"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
