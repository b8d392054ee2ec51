// Package config загружает настройки клиента из YAML-файла и переменных
// окружения BB_*. Переменные окружения переопределяют значения из файла.
package config

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Kargones/bitbucket-client/pkg/bitbucket"
	"github.com/Kargones/bitbucket-client/pkg/logging"
	"github.com/Kargones/bitbucket-client/pkg/metrics"
	"github.com/Kargones/bitbucket-client/pkg/tracing"
	"github.com/Kargones/bitbucket-client/pkg/uri"
)

// Config — полная конфигурация клиента.
type Config struct {
	Bitbucket BitbucketConfig `yaml:"bitbucket"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

// BitbucketConfig — параметры подключения к серверу.
type BitbucketConfig struct {
	// Host — адрес сервера (host[:port]) без схемы.
	Host string `yaml:"host" env:"BB_HOST"`
	// Scheme — http или https.
	Scheme string `yaml:"scheme" env:"BB_SCHEME" env-default:"https"`
	// Username и Password — учётные данные HTTP Basic.
	Username string `yaml:"username" env:"BB_USERNAME"`
	Password string `yaml:"password" env:"BB_PASSWORD"`
	// Token — HTTP access token, имеет приоритет над Basic.
	Token string `yaml:"token" env:"BB_TOKEN"`
	// Timeout — таймаут одного HTTP запроса.
	Timeout time.Duration `yaml:"timeout" env:"BB_TIMEOUT" env-default:"30s"`
}

// LoggingConfig содержит настройки логирования.
type LoggingConfig struct {
	Level      string `yaml:"level" env:"BB_LOG_LEVEL" env-default:"info"`
	Format     string `yaml:"format" env:"BB_LOG_FORMAT" env-default:"text"`
	Output     string `yaml:"output" env:"BB_LOG_OUTPUT" env-default:"stderr"`
	FilePath   string `yaml:"filePath" env:"BB_LOG_FILE_PATH"`
	MaxSize    int    `yaml:"maxSize" env:"BB_LOG_MAX_SIZE" env-default:"100"`
	MaxBackups int    `yaml:"maxBackups" env:"BB_LOG_MAX_BACKUPS" env-default:"3"`
	MaxAge     int    `yaml:"maxAge" env:"BB_LOG_MAX_AGE" env-default:"7"`
	// Compress без env-default: иначе false из YAML перезаписывается при ReadEnv.
	// Значение по умолчанию задаётся в Default.
	Compress bool `yaml:"compress" env:"BB_LOG_COMPRESS"`
}

// MetricsConfig содержит настройки Prometheus метрик.
type MetricsConfig struct {
	Enabled        bool          `yaml:"enabled" env:"BB_METRICS_ENABLED"`
	PushgatewayURL string        `yaml:"pushgatewayUrl" env:"BB_METRICS_PUSHGATEWAY_URL"`
	JobName        string        `yaml:"jobName" env:"BB_METRICS_JOB_NAME" env-default:"bitbucket-client"`
	Timeout        time.Duration `yaml:"timeout" env:"BB_METRICS_TIMEOUT" env-default:"10s"`
	InstanceLabel  string        `yaml:"instanceLabel" env:"BB_METRICS_INSTANCE"`
}

// TracingConfig содержит настройки OpenTelemetry трейсинга.
type TracingConfig struct {
	Enabled      bool          `yaml:"enabled" env:"BB_TRACING_ENABLED"`
	Endpoint     string        `yaml:"endpoint" env:"BB_TRACING_ENDPOINT"`
	ServiceName  string        `yaml:"serviceName" env:"BB_TRACING_SERVICE_NAME" env-default:"bitbucket-client"`
	Environment  string        `yaml:"environment" env:"BB_TRACING_ENVIRONMENT" env-default:"production"`
	Insecure     bool          `yaml:"insecure" env:"BB_TRACING_INSECURE"`
	Timeout      time.Duration `yaml:"timeout" env:"BB_TRACING_TIMEOUT" env-default:"5s"`
	SamplingRate float64       `yaml:"samplingRate" env:"BB_TRACING_SAMPLING_RATE" env-default:"1.0"`
}

// Default возвращает конфигурацию со значениями по умолчанию.
// Значения совпадают с DefaultConfig пакетов logging, metrics и tracing.
func Default() Config {
	lc := logging.DefaultConfig()
	mc := metrics.DefaultConfig()
	tc := tracing.DefaultConfig()

	return Config{
		Bitbucket: BitbucketConfig{
			Scheme:  uri.HTTPS.String(),
			Timeout: bitbucket.DefaultTimeout,
		},
		Logging: LoggingConfig{
			Level:      lc.Level,
			Format:     lc.Format,
			Output:     lc.Output,
			FilePath:   lc.FilePath,
			MaxSize:    lc.MaxSize,
			MaxBackups: lc.MaxBackups,
			MaxAge:     lc.MaxAge,
			Compress:   lc.Compress,
		},
		Metrics: MetricsConfig{
			JobName: mc.JobName,
			Timeout: mc.Timeout,
		},
		Tracing: TracingConfig{
			ServiceName:  tc.ServiceName,
			Environment:  tc.Environment,
			Timeout:      tc.Timeout,
			SamplingRate: tc.SamplingRate,
		},
	}
}

// Validate проверяет конфигурацию целиком.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Bitbucket),
		validation.Field(&c.Logging),
		validation.Field(&c.Metrics),
		validation.Field(&c.Tracing),
	)
}

// Validate проверяет параметры подключения.
func (c BitbucketConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Host, validation.Required),
		validation.Field(&c.Scheme, validation.By(func(value interface{}) error {
			_, err := uri.ParseScheme(c.Scheme)
			return err
		})),
		validation.Field(&c.Username, validation.When(c.Password != "" && c.Token == "", validation.Required)),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

// Validate проверяет настройки логирования.
func (c LoggingConfig) Validate() error { return c.ToLogging().Validate() }

// Validate проверяет настройки метрик.
func (c MetricsConfig) Validate() error { return c.ToMetrics().Validate() }

// Validate проверяет настройки трейсинга.
func (c TracingConfig) Validate() error { return c.ToTracing("").Validate() }

// ToClient преобразует параметры подключения в bitbucket.Config.
// Без Username и Token клиент работает анонимно.
func (c BitbucketConfig) ToClient() (bitbucket.Config, error) {
	scheme, err := uri.ParseScheme(c.Scheme)
	if err != nil {
		return bitbucket.Config{}, err
	}

	cfg := bitbucket.Config{
		Scheme:  scheme,
		Host:    c.Host,
		Timeout: c.Timeout,
	}
	if c.Username != "" || c.Token != "" {
		cfg.Credentials = &bitbucket.Credentials{
			Username: c.Username,
			Password: c.Password,
			Token:    c.Token,
		}
	}
	return cfg, nil
}

// ToLogging преобразует настройки в logging.Config.
func (c LoggingConfig) ToLogging() logging.Config {
	return logging.Config{
		Level:      c.Level,
		Format:     c.Format,
		Output:     c.Output,
		FilePath:   c.FilePath,
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
		Compress:   c.Compress,
	}
}

// ToMetrics преобразует настройки в metrics.Config.
func (c MetricsConfig) ToMetrics() metrics.Config {
	return metrics.Config{
		Enabled:        c.Enabled,
		PushgatewayURL: c.PushgatewayURL,
		JobName:        c.JobName,
		Timeout:        c.Timeout,
		InstanceLabel:  c.InstanceLabel,
	}
}

// ToTracing преобразует настройки в tracing.Config. version попадает в service.version.
func (c TracingConfig) ToTracing(version string) tracing.Config {
	return tracing.Config{
		Enabled:      c.Enabled,
		Endpoint:     c.Endpoint,
		ServiceName:  c.ServiceName,
		Version:      version,
		Environment:  c.Environment,
		Insecure:     c.Insecure,
		Timeout:      c.Timeout,
		SamplingRate: c.SamplingRate,
	}
}
