package logging

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const RedactedText = "[REDACTED]"

// casa o trecho user:pass@ de uma url postgres:// ou redis://
var credentialsPattern = regexp.MustCompile(`://[^:/@\s]+:[^@\s]+@`)

// New monta o logger do processo. format é "json" ou "console".
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	switch format {
	case "console":
		cfg = zap.NewDevelopmentConfig()
	case "", "json":
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// SanitizeURL esconde as credenciais de uma url de conexão antes do log.
func SanitizeURL(raw string) string {
	return credentialsPattern.ReplaceAllString(raw, "://"+RedactedText+"@")
}
