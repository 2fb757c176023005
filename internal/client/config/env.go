package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const envPrefix = "CARDSCAN_"

// EnvConfig maps CARDSCAN_* environment variables. Unset variables keep
// their zero value and do not override earlier sources.
type EnvConfig struct {
	ServerURL         string        `env:"SERVER_URL"`
	CognitoRegion     string        `env:"COGNITO_REGION"`
	UserPoolID        string        `env:"USER_POOL_ID"`
	ClientID          string        `env:"CLIENT_ID"`
	CognitoEndpoint   string        `env:"COGNITO_ENDPOINT"`
	SessionDBPath     string        `env:"SESSION_DB_PATH"`
	SessionPassphrase string        `env:"SESSION_PASSPHRASE"`
	SaveRedirectDelay time.Duration `env:"SAVE_REDIRECT_DELAY"`
	DownloadDir       string        `env:"DOWNLOAD_DIR"`
	S3Region          string        `env:"S3_REGION"`
	S3Endpoint        string        `env:"S3_ENDPOINT"`
	S3AccessKey       string        `env:"S3_ACCESS_KEY"`
	S3SecretKey       string        `env:"S3_SECRET_KEY"`
	LogLevel          string        `env:"LOG_LEVEL"`
}

// dotEnvFile is loaded into the process environment before parsing. Variables
// that are already set win over the file.
var dotEnvFile = ".env"

func parseEnv(cfg *Config) {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	var ec EnvConfig
	if err := env.ParseWithOptions(&ec, env.Options{Prefix: envPrefix}); err != nil {
		panic(err)
	}

	setString(&cfg.ServerURL, ec.ServerURL)
	setString(&cfg.CognitoRegion, ec.CognitoRegion)
	setString(&cfg.UserPoolID, ec.UserPoolID)
	setString(&cfg.ClientID, ec.ClientID)
	setString(&cfg.CognitoEndpoint, ec.CognitoEndpoint)
	setString(&cfg.SessionDBPath, ec.SessionDBPath)
	setString(&cfg.SessionPassphrase, ec.SessionPassphrase)
	setString(&cfg.DownloadDir, ec.DownloadDir)
	setString(&cfg.S3Region, ec.S3Region)
	setString(&cfg.S3Endpoint, ec.S3Endpoint)
	setString(&cfg.S3AccessKey, ec.S3AccessKey)
	setString(&cfg.S3SecretKey, ec.S3SecretKey)
	setString(&cfg.LogLevel, ec.LogLevel)
	if ec.SaveRedirectDelay != 0 {
		cfg.SaveRedirectDelay = ec.SaveRedirectDelay
	}
}
