package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/vibetracker/internal/flagx"
	"github.com/dmitrijs2005/vibetracker/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for file decoding. Durations accept
// "5s" strings or integer nanoseconds.
type FileConfig struct {
	ServerURL           *string         `json:"server_url" yaml:"server_url"`
	RequestTimeout      *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval" yaml:"online_check_interval"`
}

// parseFile overlays Config with values from the file named by -c/-config.
// YAML is used for .yaml/.yml, JSON otherwise. Panics on read or decode
// errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	if fc.ServerURL != nil {
		cfg.ServerURL = *fc.ServerURL
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
}

// EnvServerURL overrides the API base URL.
const EnvServerURL = "VIBES_SERVER_URL"

// EnvRequestTimeout overrides the request timeout, in seconds.
const EnvRequestTimeout = "VIBES_REQUEST_TIMEOUT"

func parseEnv(cfg *Config) {
	flagx.EnvString(&cfg.ServerURL, EnvServerURL)
	flagx.EnvSeconds(&cfg.RequestTimeout, EnvRequestTimeout)
}
