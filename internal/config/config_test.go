package config

import (
	"github.com/stretchr/testify/assert"
	"os"
	"strconv"
	"testing"
	"time"
)

func Test_Config_EnvironmentOverrideWorksCorrect(t *testing.T) {

	os.Setenv("CONFIG_PATH", "../../configs/config.yaml")
	os.Setenv("PORT", "9191")
	os.Setenv("MODE", "test")
	os.Setenv("DB_CONNECTION_STRING", "override.db")
	os.Setenv("JWT_SECRET", "override-secret")
	os.Setenv("TOKEN_TTL", "45m")
	os.Setenv("MAIL_HOST", "smtp.override.local")
	os.Setenv("UPLOADS_DIR", "./override-uploads")
	defer func() {
		for _, key := range []string{"CONFIG_PATH", "PORT", "MODE", "DB_CONNECTION_STRING",
			"JWT_SECRET", "TOKEN_TTL", "MAIL_HOST", "UPLOADS_DIR"} {
			os.Unsetenv(key)
		}
	}()

	cfg := Get()

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "test", cfg.Server.Mode)
	assert.Equal(t, "override.db", cfg.DB.ConnectionString)
	assert.Equal(t, "override-secret", cfg.Auth.JwtSecret)
	assert.Equal(t, 45*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, "smtp.override.local", cfg.Mail.Host)
	assert.Equal(t, "./override-uploads", cfg.Uploads.Dir)
}

func Test_Config_InvalidPortFailsValidation(t *testing.T) {

	cfg := Config{
		Server: ServerConfig{Port: -1, Mode: "release"},
		Logger: LoggerConfig{LogLevel: LevelInfo},
		DB:     DBConfig{ConnectionString: "test.db"},
		Auth:   AuthConfig{JwtSecret: "secret", TokenTTL: 1},
		Uploads: UploadsConfig{
			Dir:               "./uploads",
			AllowedExtensions: []string{"pdf"},
		},
	}

	err := cfg.validate()
	assert.ErrorContains(t, err, "invalid port: "+strconv.Itoa(cfg.Server.Port))
}
