package di

import (
	"context"

	"github.com/hashicorp/go-multierror"

	"github.com/Kargones/bitbucket-client/pkg/bitbucket"
	"github.com/Kargones/bitbucket-client/pkg/config"
	"github.com/Kargones/bitbucket-client/pkg/logging"
	"github.com/Kargones/bitbucket-client/pkg/metrics"
	"github.com/Kargones/bitbucket-client/pkg/tracing"
)

// App содержит инициализированные зависимости bbctl.
// Создаётся через Wire DI в InitializeApp().
//
// При добавлении новых зависимостей:
// 1. Добавить поле в App struct
// 2. Создать провайдер в providers.go
// 3. Добавить провайдер в ProviderSet в wire.go
// 4. Перегенерировать wire_gen.go: go generate ./internal/di/...
type App struct {
	// Config — проверенная конфигурация. Передаётся извне через InitializeApp().
	Config *config.Config

	// Logger создаётся через ProvideLogger на основе Config.Logging.
	Logger logging.Logger

	// MetricsCollector — NopCollector, если метрики выключены.
	MetricsCollector metrics.Collector

	// TracerShutdown завершает OTel TracerProvider.
	// Если трейсинг выключен — nop function.
	TracerShutdown tracing.ShutdownFunc

	// Client — REST клиент Bitbucket Server с логгером и метриками.
	Client *bitbucket.Client
}

// Close отправляет метрики и завершает трейсинг.
// Выполняет оба шага даже при ошибке первого.
func (a *App) Close(ctx context.Context) error {
	var result *multierror.Error
	if a.MetricsCollector != nil {
		if err := a.MetricsCollector.Push(ctx); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if a.TracerShutdown != nil {
		if err := a.TracerShutdown(ctx); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
