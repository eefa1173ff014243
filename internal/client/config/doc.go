// Package config loads runtime configuration for the vibe tracker client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected via -c or -config.
//  3. Environment: VIBES_SERVER_URL, VIBES_REQUEST_TIMEOUT (seconds).
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the server API
//	-r int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//
// # File schema
//
//	{
//	  "server_url": "http://127.0.0.1:8080",
//	  "request_timeout": "5s",
//	  "online_check_interval": "3s"
//	}
package config
