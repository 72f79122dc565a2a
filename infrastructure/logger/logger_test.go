package logger

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestFileLogger_WritesJSONLines(t *testing.T) {
	dir := t.TempDir()
	log, err := NewFileLogger(Config{Dir: dir, Prefix: "test", Level: "info"})
	require.NoError(t, err)

	log.Debug("dropped")
	log.Info("hello")
	log.Error("failed", errors.New("boom"))
	log.Close()

	files, err := filepath.Glob(filepath.Join(dir, "test_*.json"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "failed", entry["message"])
	assert.Equal(t, "boom", entry["error"])
	assert.Contains(t, entry["file"], "logger_test.go")
}

func TestNopLogger(t *testing.T) {
	log := NewNopLogger()
	log.Info("ignored")
	log.Close()
}
