package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Params struct {
	// Empty file name means stdout only
	FileName    string
	LogToStdout bool
	Level       string
	JSON        bool
}

// Setup builds the process logger and installs it as slog default.
func Setup(params Params) *slog.Logger {
	var out io.Writer = os.Stdout
	if params.FileName != "" {
		if !strings.HasSuffix(params.FileName, ".log") {
			params.FileName += ".log"
		}
		rotating := &lumberjack.Logger{
			Filename: params.FileName,
			MaxSize:  50, // megabytes
			Compress: true,
		}
		out = rotating
		if params.LogToStdout {
			out = io.MultiWriter(os.Stdout, rotating)
		}
	}
	logger := New(out, params.Level, params.JSON)
	slog.SetDefault(logger)
	return logger
}

func New(w io.Writer, level string, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
