package config

import (
	"io"
	"log/slog"
	"os"
)

// Logging constants
const (
	// LogFileName is the append-only process log next to the binary
	LogFileName = "downloader.log"

	logFilePermissions = 0644
)

// SetupLogger configures the global slog logger to write line-oriented
// text records with timestamp and severity to both the log file and
// stdout. Returns the log file handle so the caller can close it on
// shutdown; when the file cannot be opened, logging falls back to stdout
// only.
func SetupLogger() *os.File {
	var writer io.Writer = os.Stdout

	file, err := os.OpenFile(LogFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePermissions)
	if err == nil {
		writer = io.MultiWriter(file, os.Stdout)
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))

	if err != nil {
		slog.Warn("failed to open log file, logging to stdout only", "file", LogFileName, "error", err)
		return nil
	}
	return file
}
