package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

const envFile = ".abspath.env"

//nolint:gochecknoglobals
var Version string

func setupLogging(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func logLevelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("ABSPATH_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			setupLogging(slog.LevelInfo)
			slog.Warn("Failed to load environment file.", "file", envFile, "err", err)
		}
	}

	setupLogging(logLevelFromEnv())

	if err := newRootCmd().Execute(); err != nil {
		slog.Error("Command failed.", "err", err)
		os.Exit(1)
	}
}
