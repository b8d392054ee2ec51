package di

import (
	"errors"

	"github.com/Kargones/bitbucket-client/internal/constants"
	"github.com/Kargones/bitbucket-client/pkg/bitbucket"
	"github.com/Kargones/bitbucket-client/pkg/config"
	"github.com/Kargones/bitbucket-client/pkg/logging"
	"github.com/Kargones/bitbucket-client/pkg/metrics"
	"github.com/Kargones/bitbucket-client/pkg/tracing"
)

// errNilConfig возвращается, если InitializeApp вызван без конфигурации.
var errNilConfig = errors.New("di: конфигурация не задана")

// ProvideLogger создаёт Logger на основе Config.Logging.
// Для nil Config используются значения по умолчанию.
func ProvideLogger(cfg *config.Config) logging.Logger {
	if cfg == nil {
		return logging.NewLogger(logging.DefaultConfig())
	}
	return logging.NewLogger(cfg.Logging.ToLogging())
}

// ProvideMetricsCollector создаёт Collector на основе Config.Metrics.
// При ошибке создания возвращает NopCollector и логирует ошибку:
// метрики не должны мешать работе команды.
func ProvideMetricsCollector(cfg *config.Config, logger logging.Logger) metrics.Collector {
	if cfg == nil {
		return metrics.NewNopCollector()
	}

	collector, err := metrics.NewCollector(cfg.Metrics.ToMetrics(), logger)
	if err != nil {
		logger.Error("ошибка создания MetricsCollector, используется NopCollector",
			"error", err.Error(),
		)
		return metrics.NewNopCollector()
	}
	return collector
}

// ProvideTracerProvider инициализирует OTel TracerProvider и возвращает shutdown.
// При ошибке возвращает nop shutdown и логирует ошибку.
func ProvideTracerProvider(cfg *config.Config, logger logging.Logger) tracing.ShutdownFunc {
	if cfg == nil {
		return tracing.NewNopShutdown()
	}

	shutdown, err := tracing.NewTracerProvider(cfg.Tracing.ToTracing(constants.Version), logger)
	if err != nil {
		logger.Error("ошибка инициализации tracing, используется nop provider",
			"error", err.Error(),
		)
		return tracing.NewNopShutdown()
	}
	return shutdown
}

// ProvideClient создаёт REST клиент Bitbucket.
// Зависит от TracerShutdown, чтобы глобальный TracerProvider был
// зарегистрирован до создания клиента.
func ProvideClient(cfg *config.Config, logger logging.Logger, collector metrics.Collector, _ tracing.ShutdownFunc) (*bitbucket.Client, error) {
	if cfg == nil {
		return nil, errNilConfig
	}

	clientCfg, err := cfg.Bitbucket.ToClient()
	if err != nil {
		return nil, err
	}
	return bitbucket.NewClient(clientCfg,
		bitbucket.WithLogger(logger),
		bitbucket.WithCollector(collector),
	)
}
