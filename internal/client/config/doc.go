// Package config loads runtime configuration for the card scanner CLI.
//
// Sources & precedence (later wins)
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config (see parseJson).
//  3. Environment: a .env file in the working directory is loaded first when
//     present, then CARDSCAN_* variables are applied (see parseEnv).
//  4. Command-line flags (see parseFlags).
//
// Supported flags
//
//	-a string   base URL of the cards backend
//	-r string   identity provider region
//	-p string   user pool id
//	-k string   app client id
//	-d string   path to the local session database
//	-l string   log level (debug|info|warn|error)
//
// # JSON schema
//
//	{
//	  "server_url": "https://api.example.com",
//	  "cognito_region": "us-east-1",
//	  "user_pool_id": "us-east-1_abc",
//	  "client_id": "abcdef",
//	  "cognito_endpoint": "",
//	  "session_db_path": "session.db",
//	  "session_passphrase": "",
//	  "save_redirect_delay": "2s",
//	  "download_dir": "download",
//	  "log_level": "info"
//	}
package config
