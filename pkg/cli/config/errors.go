package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrInvalidLogLevel  = goerr.New("invalid log level")
	ErrInvalidLogFormat = goerr.New("invalid log format")
	ErrInvalidBackend   = goerr.New("invalid repository backend")
	ErrMissingProjectID = goerr.New("firestore project ID is required")
)
