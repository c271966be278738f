// Package logger builds the zap loggers used by the command line.
package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvVar selects the development logger when set to "dev".
const EnvVar = "DCASIM_ENV"

// New creates a new zap logger.
// The development logger is colored, human readable and logs at debug level.
func New(development bool) (*zap.Logger, error) {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build(zap.AddStacktrace(zap.ErrorLevel))
}

// Must creates a logger or panics.
func Must(development bool) *zap.Logger {
	log, err := New(development)
	if err != nil {
		panic(err)
	}
	return log
}

// IsDevelopment reports whether the environment asks for the development logger.
func IsDevelopment() bool { return strings.EqualFold(os.Getenv(EnvVar), "dev") }
