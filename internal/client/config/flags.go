package config

import (
	"flag"

	"github.com/dmitrijs2005/cardscan/internal/flagx"
)

var knownFlags = []string{"-a", "-r", "-p", "-k", "-d", "-l"}

// parseFlags applies the short command-line flags listed in the package doc.
// Arguments that belong to other parsers (-c/-config) are filtered out first.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the cards backend")
	fs.StringVar(&cfg.CognitoRegion, "r", cfg.CognitoRegion, "identity provider region")
	fs.StringVar(&cfg.UserPoolID, "p", cfg.UserPoolID, "user pool id")
	fs.StringVar(&cfg.ClientID, "k", cfg.ClientID, "app client id")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "path to the local session database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		panic(err)
	}
}
