package logging_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/limbo/fitrack/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel(""))
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "info", true)
	logger.Debug("hidden")
	logger.Info("goal created", slog.String("uid", "42"))

	var record map[string]any
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "goal created", record["msg"])
	assert.Equal(t, "42", record["uid"])
}

func TestSetupWritesRotatingFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	name := filepath.Join(t.TempDir(), "fitrack")
	logger := logging.Setup(logging.Params{FileName: name, Level: "info", JSON: true})
	logger.Info("written to file")

	data, err := os.ReadFile(name + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}
