package logger

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// New builds the process logger for env. A non-empty path replaces stdout,
// which the interactive host needs because it owns the terminal.
func New(env string, path string) (*zap.Logger, error) {
	var cfg zap.Config
	switch env {
	case EnvLocal:
		cfg = zap.NewDevelopmentConfig()
	case EnvDev:
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case EnvProd:
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("unknown env %q", env)
	}
	if path != "" {
		cfg.OutputPaths = []string{path}
		cfg.ErrorOutputPaths = []string{path}
	}
	return cfg.Build()
}

func Nop() *zap.Logger {
	return zap.NewNop()
}
