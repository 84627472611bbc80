package config

import (
	"fmt"
	"github.com/spf13/viper"
)

type UploadsConfig struct {
	Dir               string   `mapstructure:"dir"`
	AllowedExtensions []string `mapstructure:"allowed_extensions"`
	MaxSizeMB         int64    `mapstructure:"max_size_mb"`
}

func (config UploadsConfig) validate() error {

	if config.Dir == "" {
		return fmt.Errorf("missing variable: uploads dir")
	}

	if len(config.AllowedExtensions) == 0 {
		return fmt.Errorf("missing variable: allowed_extensions")
	}

	return nil
}

func (config UploadsConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("uploads.dir", "UPLOADS_DIR")
}
