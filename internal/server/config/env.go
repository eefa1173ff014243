package config

import "github.com/dmitrijs2005/vibetracker/internal/flagx"

// Environment variable names read by parseEnv.
const (
	EnvAddr            = "VIBES_ADDR"
	EnvDatabaseDSN     = "VIBES_DATABASE_DSN"
	EnvLogLevel        = "VIBES_LOG_LEVEL"
	EnvShutdownTimeout = "VIBES_SHUTDOWN_TIMEOUT"
	EnvS3Bucket        = "VIBES_S3_BUCKET"
	EnvS3User          = "VIBES_S3_USER"
	EnvS3Password      = "VIBES_S3_PASSWORD"
)

func parseEnv(config *Config) {
	flagx.EnvString(&config.EndpointAddrHTTP, EnvAddr)
	flagx.EnvString(&config.DatabaseDSN, EnvDatabaseDSN)
	flagx.EnvString(&config.LogLevel, EnvLogLevel)
	flagx.EnvSeconds(&config.ShutdownTimeout, EnvShutdownTimeout)
	flagx.EnvString(&config.S3Bucket, EnvS3Bucket)
	flagx.EnvString(&config.S3RootUser, EnvS3User)
	flagx.EnvString(&config.S3RootPassword, EnvS3Password)
}
