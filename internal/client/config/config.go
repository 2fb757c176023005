package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the card scanner CLI.
//
// Fields:
//   - ServerURL: base URL of the REST backend (images, recognition, cards).
//   - CognitoRegion / UserPoolID / ClientID: identity provider pool settings.
//   - CognitoEndpoint: optional endpoint override for the identity provider.
//   - SessionDBPath: SQLite file that persists the session between runs.
//   - SessionPassphrase: when set, session values are encrypted at rest.
//   - SaveRedirectDelay: pause between the save confirmation and the list view.
//   - DownloadDir: where stored card images are written by "show".
//   - S3Region / S3Endpoint / S3AccessKey / S3SecretKey: access to the bucket
//     holding card images. Without keys requests are sent unsigned.
//   - LogLevel: diagnostic log level.
type Config struct {
	ServerURL         string
	CognitoRegion     string
	UserPoolID        string
	ClientID          string
	CognitoEndpoint   string
	SessionDBPath     string
	SessionPassphrase string
	SaveRedirectDelay time.Duration
	DownloadDir       string
	S3Region          string
	S3Endpoint        string
	S3AccessKey       string
	S3SecretKey       string
	LogLevel          string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8000"
	c.CognitoRegion = "us-east-1"
	c.UserPoolID = ""
	c.ClientID = ""
	c.CognitoEndpoint = ""
	c.SessionDBPath = "session.db"
	c.SessionPassphrase = ""
	c.SaveRedirectDelay = 2 * time.Second
	c.DownloadDir = "download"
	c.S3Region = "us-east-1"
	c.S3Endpoint = ""
	c.S3AccessKey = ""
	c.S3SecretKey = ""
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, JSON, environment and flags.
func LoadConfig() *Config {
	return loadFrom(os.Args[1:])
}

func loadFrom(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
