//go:build unit
// +build unit

package logger

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MGTheTrain/photo-portfolio/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func fileSettings(path string) *config.LoggerSettings {
	return &config.LoggerSettings{
		LogLevel:   config.LogLevelInfo,
		LogType:    config.LogTypeFile,
		FilePath:   path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

func readJSONLines(t *testing.T, path string) []map[string]any {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		lines = append(lines, line)
	}
	require.NoError(t, scanner.Err())
	return lines
}

func TestInitLogger_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		settings *config.LoggerSettings
	}{
		{"unknown level", &config.LoggerSettings{LogLevel: "verbose", LogType: config.LogTypeConsole}},
		{"unknown type", &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: "syslog"}},
		{"file without rotation", &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeFile, FilePath: "logs/portfolio.log"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(resetLoggerSingleton)

			require.Error(t, InitLogger(tt.settings))

			logger, err := GetLogger()
			assert.Error(t, err)
			assert.Nil(t, logger)
		})
	}
}

func TestInitLogger_FileWritesStructuredJSON(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)
	path := filepath.Join(t.TempDir(), "logs", "portfolio.log")

	require.NoError(t, InitLogger(fileSettings(path)))
	log, err := GetLogger()
	require.NoError(t, err)

	log.Info("Created portfolio item", "id", "3f1c", "display_order", 4)
	log.Warn("failed to delete image object", "path", "portfolio/3f1c.jpg")
	log.Debug("below the configured level")
	require.NoError(t, log.(*FileLogger).Close())

	lines := readJSONLines(t, path)
	require.Len(t, lines, 2)

	assert.Equal(t, "INFO", lines[0]["level"])
	assert.Equal(t, "Created portfolio item", lines[0]["msg"])
	assert.Equal(t, "3f1c", lines[0]["id"])
	assert.EqualValues(t, 4, lines[0]["display_order"])

	assert.Equal(t, "WARN", lines[1]["level"])
	assert.Equal(t, "portfolio/3f1c.jpg", lines[1]["path"])
}

func TestInitLogger_FirstSettingsWin(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)
	path := filepath.Join(t.TempDir(), "portfolio.log")

	require.NoError(t, InitLogger(fileSettings(path)))
	first, err := GetLogger()
	require.NoError(t, err)

	// the CLI initializes a console logger on every command
	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelDebug, LogType: config.LogTypeConsole}))
	second, err := GetLogger()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.IsType(t, &FileLogger{}, second)
}

func TestGetLogger_BeforeInit(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	logger, err := GetLogger()
	assert.Nil(t, logger)
	assert.ErrorContains(t, err, "not initialized")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{config.LogLevelDebug, slog.LevelDebug},
		{config.LogLevelInfo, slog.LevelInfo},
		{config.LogLevelWarning, slog.LevelWarn},
		{config.LogLevelError, slog.LevelError},
		{config.LogLevelCritical, slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []interface{}
		wantMsg   string
		wantAttrs []any
	}{
		{"empty", []interface{}{}, "", nil},
		{"single", []interface{}{"test"}, "test", nil},
		{"key value pairs", []interface{}{"saved", "id", "42"}, "saved", []any{"id", "42"}},
		{"odd attribute count", []interface{}{"hello", "world"}, "helloworld", nil},
		{"non string key", []interface{}{"saved", 1, 2}, "saved1 2", nil},
		{"non string message", []interface{}{42, "id", "x"}, "42idx", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, attrs := splitArgs(tt.args...)
			assert.Equal(t, tt.wantMsg, msg)
			assert.Equal(t, tt.wantAttrs, attrs)
		})
	}
}
