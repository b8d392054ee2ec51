package metrics

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/Kargones/bitbucket-client/internal/pkg/urlutil"
	"github.com/Kargones/bitbucket-client/pkg/logging"
)

const namespace = "bitbucket_client"

// PrometheusCollector реализует Collector на собственном prometheus.Registry.
type PrometheusCollector struct {
	config   Config
	logger   logging.Logger
	registry *prometheus.Registry
	instance string

	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	pagesTotal      *prometheus.CounterVec
}

// NewPrometheusCollector создаёт коллектор и регистрирует метрики:
//   - bitbucket_client_request_duration_seconds (histogram)
//   - bitbucket_client_requests_total (counter)
//   - bitbucket_client_pages_total (counter)
func NewPrometheusCollector(config Config, logger logging.Logger) (*PrometheusCollector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	instance := config.InstanceLabel
	if instance == "" {
		hostname, err := os.Hostname()
		if err != nil {
			logger.Warn("не удалось получить hostname для label instance", "error", err.Error())
			hostname = "unknown"
		}
		instance = hostname
	}

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Duration of Bitbucket REST API requests in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "status"},
	)
	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of Bitbucket REST API requests",
		},
		[]string{"method", "status"},
	)
	pagesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pages_total",
			Help:      "Total number of fetched collection pages",
		},
		[]string{"resource"},
	)

	registry := prometheus.NewRegistry()
	for _, c := range []prometheus.Collector{requestDuration, requestsTotal, pagesTotal} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("ошибка регистрации метрики: %w", err)
		}
	}

	return &PrometheusCollector{
		config:          config,
		logger:          logger,
		registry:        registry,
		instance:        instance,
		requestDuration: requestDuration,
		requestsTotal:   requestsTotal,
		pagesTotal:      pagesTotal,
	}, nil
}

// statusClass сворачивает код ответа в класс "2xx".."5xx", 0 — "error".
func statusClass(code int) string {
	if code < 100 || code > 599 {
		return "error"
	}
	return strconv.Itoa(code/100) + "xx"
}

// RecordRequest обновляет histogram и counter запросов.
func (c *PrometheusCollector) RecordRequest(method string, statusCode int, duration time.Duration) {
	method = strings.ToUpper(method)
	status := statusClass(statusCode)

	c.requestDuration.WithLabelValues(method, status).Observe(duration.Seconds())
	c.requestsTotal.WithLabelValues(method, status).Inc()
}

// RecordPage увеличивает счётчик загруженных страниц ресурса.
func (c *PrometheusCollector) RecordPage(resource string) {
	c.pagesTotal.WithLabelValues(resource).Inc()
}

// Push отправляет метрики в Pushgateway. Всегда возвращает nil, ошибки логируются.
func (c *PrometheusCollector) Push(ctx context.Context) error {
	if c.config.PushgatewayURL == "" {
		c.logger.Debug("metrics: pushgateway не настроен, отправка пропущена")
		return nil
	}
	if ctx.Err() != nil {
		c.logger.Debug("metrics: отправка отменена")
		return nil
	}

	pushCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	pusher := push.New(c.config.PushgatewayURL, c.config.JobName).
		Gatherer(c.registry).
		Grouping("instance", c.instance)

	if err := pusher.PushContext(pushCtx); err != nil {
		c.logger.Error("ошибка отправки метрик в Pushgateway",
			"error", err.Error(),
			"url", urlutil.MaskURL(c.config.PushgatewayURL),
			"job", c.config.JobName,
		)
		return nil
	}

	c.logger.Info("метрики отправлены в Pushgateway",
		"url", urlutil.MaskURL(c.config.PushgatewayURL),
		"job", c.config.JobName,
		"instance", c.instance,
	)
	return nil
}

// Registry возвращает registry коллектора, например для HTTP-экспорта.
func (c *PrometheusCollector) Registry() *prometheus.Registry {
	return c.registry
}
