package config

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
)

type MailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

func (config MailConfig) validate() error {

	if !config.Enabled {
		return nil
	}

	var errs []error

	if config.Host == "" {
		errs = append(errs, fmt.Errorf("missing variable: mail host"))
	}
	if config.Port == 0 {
		errs = append(errs, fmt.Errorf("missing variable: mail port"))
	}
	if config.From == "" {
		errs = append(errs, fmt.Errorf("missing variable: mail from address"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config MailConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("mail.enabled", "MAIL_ENABLED"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("mail.host", "MAIL_HOST"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("mail.port", "MAIL_PORT"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("mail.username", "MAIL_USERNAME"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("mail.password", "MAIL_PASSWORD"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("mail.from", "MAIL_FROM"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
