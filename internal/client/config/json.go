package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/cardscan/internal/flagx"
	"github.com/dmitrijs2005/cardscan/internal/timex"
)

// JsonConfig is the on-disk shape of the JSON config file. Empty values leave
// the corresponding Config field untouched.
type JsonConfig struct {
	ServerURL         string         `json:"server_url"`
	CognitoRegion     string         `json:"cognito_region"`
	UserPoolID        string         `json:"user_pool_id"`
	ClientID          string         `json:"client_id"`
	CognitoEndpoint   string         `json:"cognito_endpoint"`
	SessionDBPath     string         `json:"session_db_path"`
	SessionPassphrase string         `json:"session_passphrase"`
	SaveRedirectDelay timex.Duration `json:"save_redirect_delay"`
	DownloadDir       string         `json:"download_dir"`
	S3Region          string         `json:"s3_region"`
	S3Endpoint        string         `json:"s3_endpoint"`
	S3AccessKey       string         `json:"s3_access_key"`
	S3SecretKey       string         `json:"s3_secret_key"`
	LogLevel          string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config. It panics on read
// or unmarshal errors, like the flag parser, because a broken config file is
// a startup failure.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.ServerURL, jc.ServerURL)
	setString(&cfg.CognitoRegion, jc.CognitoRegion)
	setString(&cfg.UserPoolID, jc.UserPoolID)
	setString(&cfg.ClientID, jc.ClientID)
	setString(&cfg.CognitoEndpoint, jc.CognitoEndpoint)
	setString(&cfg.SessionDBPath, jc.SessionDBPath)
	setString(&cfg.SessionPassphrase, jc.SessionPassphrase)
	setString(&cfg.DownloadDir, jc.DownloadDir)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3Endpoint, jc.S3Endpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.SaveRedirectDelay.Duration != 0 {
		cfg.SaveRedirectDelay = jc.SaveRedirectDelay.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
