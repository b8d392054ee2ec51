// Package metrics собирает метрики HTTP-запросов клиента и отправляет их
// в Prometheus Pushgateway.
//
// NewCollector выбирает реализацию по конфигурации: PrometheusCollector при
// включённых метриках, NopCollector иначе.
package metrics

import (
	"context"
	"time"

	"github.com/Kargones/bitbucket-client/pkg/logging"
)

// Collector определяет интерфейс сбора метрик клиента.
type Collector interface {
	// RecordRequest записывает завершённый запрос к REST API.
	// statusCode == 0 означает, что ответ не получен (ошибка транспорта).
	RecordRequest(method string, statusCode int, duration time.Duration)

	// RecordPage записывает загруженную страницу коллекции.
	RecordPage(resource string)

	// Push отправляет метрики в Pushgateway. Ошибки отправки логируются
	// и не возвращаются: метрики не должны ломать основную работу.
	Push(ctx context.Context) error
}

// NewCollector создаёт Collector на основе конфигурации.
func NewCollector(config Config, logger logging.Logger) (Collector, error) {
	if !config.Enabled {
		return NewNopCollector(), nil
	}
	return NewPrometheusCollector(config, logger)
}

// NopCollector — no-op реализация Collector.
type NopCollector struct{}

// NewNopCollector создаёт NopCollector.
func NewNopCollector() *NopCollector {
	return &NopCollector{}
}

func (c *NopCollector) RecordRequest(string, int, time.Duration) {}
func (c *NopCollector) RecordPage(string)                        {}

// Push — no-op, всегда возвращает nil.
func (c *NopCollector) Push(context.Context) error {
	return nil
}
