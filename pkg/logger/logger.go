package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

func init() {
	// Tests and library consumers get a sane logger without calling Init
	Log = slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

func Init(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
