package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_Defaults проверяет, что пустая конфигурация даёт рабочий SlogAdapter.
func TestNewLogger_Defaults(t *testing.T) {
	logger := NewLogger(Config{})
	require.NotNil(t, logger)

	_, ok := logger.(*SlogAdapter)
	assert.True(t, ok, "NewLogger должен возвращать *SlogAdapter")
}

// TestNewLoggerWithWriter_LevelFiltering проверяет, что DEBUG не пишется при level=info.
func TestNewLoggerWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(Config{Format: FormatText, Level: LevelInfo}, &buf)

	logger.Debug("скрытое сообщение")
	logger.Info("видимое сообщение")

	assert.NotContains(t, buf.String(), "скрытое сообщение")
	assert.Contains(t, buf.String(), "видимое сообщение")
}

// TestNewLoggerWithWriter_JSON проверяет JSON формат и атрибуты With.
func TestNewLoggerWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(Config{Format: FormatJSON, Level: LevelDebug}, &buf)

	logger.With("host", "bitbucket").Debug("запрос", "status", 200)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "запрос", entry["msg"])
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "bitbucket", entry["host"])
	assert.InDelta(t, 200, entry["status"], 0)
}

// TestNewLogger_File проверяет запись в файл через lumberjack с созданием каталога.
func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "client.log")
	logger := NewLogger(Config{Output: OutputFile, FilePath: path, Level: LevelInfo})

	logger.Info("в файл")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "в файл")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{"unknown", "INFO"},
		{"", "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.input).String())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"по умолчанию", DefaultConfig(), false},
		{"пустая", Config{}, false},
		{"неизвестный формат", Config{Format: "xml"}, true},
		{"неизвестный уровень", Config{Level: "trace"}, true},
		{"файл без пути", Config{Output: OutputFile}, true},
		{"отрицательный размер", Config{MaxSize: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()

	assert.NotPanics(t, func() {
		logger.Debug("debug")
		logger.Info("info")
		logger.Warn("warn")
		logger.Error("error")
	})
	assert.Equal(t, logger, logger.With("key", "value"))
}

func TestFromContext(t *testing.T) {
	fallback := NewNopLogger()
	custom := NewSlogAdapter(nil)

	assert.Equal(t, fallback, FromContext(context.Background(), fallback))
	assert.Same(t, custom, FromContext(WithLogger(context.Background(), custom), fallback))
}
