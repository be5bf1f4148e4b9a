package env

import (
	"classic_slot/internal/config"
	"os"
)

const logLevelName = "LOG_LEVEL"

type logConfig struct {
	level string
}

func NewLogConfig() (config.LogConfig, error) {
	level := os.Getenv(logLevelName)
	if level == "" {
		level = "info"
	}
	return &logConfig{level: level}, nil
}

func (cfg *logConfig) Level() string {
	return cfg.level
}
