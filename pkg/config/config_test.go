package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/bitbucket-client/internal/pkg/apperrors"
	"github.com/Kargones/bitbucket-client/pkg/bitbucket"
	"github.com/Kargones/bitbucket-client/pkg/logging"
	"github.com/Kargones/bitbucket-client/pkg/uri"
)

const sampleYAML = `
bitbucket:
  host: bitbucket.example.com:7990
  scheme: http
  username: george
  password: secret
  timeout: 45s
logging:
  level: debug
  format: json
  compress: false
metrics:
  enabled: true
  pushgatewayUrl: http://pushgateway:9091
tracing:
  enabled: true
  endpoint: http://jaeger:4318
  samplingRate: 0.5
`

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("BB_HOST", "bb.local")
	t.Setenv("BB_USERNAME", "george")
	t.Setenv("BB_PASSWORD", "secret")
	t.Setenv("BB_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "bb.local", cfg.Bitbucket.Host)
	assert.Equal(t, "https", cfg.Bitbucket.Scheme)
	assert.Equal(t, bitbucket.DefaultTimeout, cfg.Bitbucket.Timeout)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, logging.DefaultFormat, cfg.Logging.Format)
	assert.True(t, cfg.Logging.Compress)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "bitbucket-client", cfg.Tracing.ServiceName)
}

func TestLoad_HostRequired(t *testing.T) {
	t.Setenv("BB_HOST", "")

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrConfigValidate, apperrors.CodeOf(err))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bitbucket.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "bitbucket.example.com:7990", cfg.Bitbucket.Host)
	assert.Equal(t, "http", cfg.Bitbucket.Scheme)
	assert.Equal(t, 45*time.Second, cfg.Bitbucket.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Logging.Compress)
	assert.Equal(t, logging.DefaultMaxSize, cfg.Logging.MaxSize)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 10*time.Second, cfg.Metrics.Timeout)
	assert.InDelta(t, 0.5, cfg.Tracing.SamplingRate, 1e-9)
}

func TestLoadFile_EnvOverridesFile(t *testing.T) {
	t.Setenv("BB_HOST", "override.local")
	t.Setenv("BB_TIMEOUT", "5s")

	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "override.local", cfg.Bitbucket.Host)
	assert.Equal(t, 5*time.Second, cfg.Bitbucket.Timeout)
	assert.Equal(t, "george", cfg.Bitbucket.Username)
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T) string
		wantCode string
	}{
		{
			name:     "файл отсутствует",
			setup:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.yaml") },
			wantCode: apperrors.ErrConfigLoad,
		},
		{
			name: "битый YAML",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "broken.yaml")
				require.NoError(t, os.WriteFile(path, []byte("bitbucket: [unclosed"), 0o600))
				return path
			},
			wantCode: apperrors.ErrConfigParse,
		},
		{
			name: "неизвестная схема",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "scheme.yaml")
				require.NoError(t, os.WriteFile(path, []byte("bitbucket:\n  host: bb\n  scheme: ftp\n"), 0o600))
				return path
			},
			wantCode: apperrors.ErrConfigValidate,
		},
		{
			name: "невалидный уровень логирования",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "log.yaml")
				require.NoError(t, os.WriteFile(path, []byte("bitbucket:\n  host: bb\nlogging:\n  level: verbose\n"), 0o600))
				return path
			},
			wantCode: apperrors.ErrConfigValidate,
		},
		{
			name: "невалидный адрес pushgateway",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "metrics.yaml")
				require.NoError(t, os.WriteFile(path, []byte("bitbucket:\n  host: bb\nmetrics:\n  enabled: true\n  pushgatewayUrl: not a url\n"), 0o600))
				return path
			},
			wantCode: apperrors.ErrConfigValidate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(tt.setup(t))
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperrors.CodeOf(err))
		})
	}
}

func TestBitbucketConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     BitbucketConfig
		wantErr bool
	}{
		{"анонимный доступ", BitbucketConfig{Host: "bb"}, false},
		{"basic", BitbucketConfig{Host: "bb", Username: "u", Password: "p"}, false},
		{"токен", BitbucketConfig{Host: "bb", Token: "t"}, false},
		{"пароль без имени", BitbucketConfig{Host: "bb", Password: "p"}, true},
		{"без host", BitbucketConfig{}, true},
		{"отрицательный таймаут", BitbucketConfig{Host: "bb", Timeout: -time.Second}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBitbucketConfig_ToClient(t *testing.T) {
	cfg, err := BitbucketConfig{Host: "bb", Scheme: "HTTPS", Username: "u", Password: "p", Timeout: time.Second}.ToClient()
	require.NoError(t, err)
	assert.Equal(t, uri.HTTPS, cfg.Scheme)
	assert.Equal(t, "bb", cfg.Host)
	assert.Equal(t, time.Second, cfg.Timeout)
	require.NotNil(t, cfg.Credentials)
	assert.Equal(t, "u", cfg.Credentials.Username)

	anon, err := BitbucketConfig{Host: "bb"}.ToClient()
	require.NoError(t, err)
	assert.Nil(t, anon.Credentials)
	assert.Equal(t, uri.HTTP, anon.Scheme)

	_, err = BitbucketConfig{Host: "bb", Scheme: "ftp"}.ToClient()
	assert.Error(t, err)
}

func TestConverters(t *testing.T) {
	cfg := Default()

	assert.Equal(t, logging.DefaultConfig(), cfg.Logging.ToLogging())
	assert.Equal(t, "bitbucket-client", cfg.Metrics.ToMetrics().JobName)

	tc := cfg.Tracing.ToTracing("1.2.3")
	assert.Equal(t, "1.2.3", tc.Version)
	assert.Equal(t, cfg.Tracing.ServiceName, tc.ServiceName)
}
