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

// FileConfig is the on-disk shape of the server configuration. Durations
// accept both "10s" strings and integer nanoseconds.
//
// Only fields present in the file override the current values.
type FileConfig struct {
	EndpointAddrHTTP *string         `json:"endpoint_addr_http" yaml:"endpoint_addr_http"`
	DatabaseDSN      *string         `json:"database_dsn" yaml:"database_dsn"`
	LogLevel         *string         `json:"log_level" yaml:"log_level"`
	ShutdownTimeout  *timex.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	S3RootUser       *string         `json:"s3_root_user" yaml:"s3_root_user"`
	S3RootPassword   *string         `json:"s3_root_password" yaml:"s3_root_password"`
	S3Bucket         *string         `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region         *string         `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint   *string         `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
}

// parseFile loads the file named by -c/-config into config. Files ending in
// .yaml or .yml are decoded as YAML, everything else as JSON. A missing flag
// means nothing to load; an unreadable or malformed file panics.
func parseFile(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		err = json.Unmarshal(data, c)
	}
	if err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *FileConfig) apply(config *Config) {
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.LogLevel, c.LogLevel)
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
