package tracing

import (
	"errors"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrInvalidConfig оборачивает ошибки валидации конфигурации трейсинга.
var ErrInvalidConfig = errors.New("tracing: невалидная конфигурация")

// Config содержит настройки TracerProvider.
type Config struct {
	// Enabled — включён ли трейсинг.
	Enabled bool
	// Endpoint — OTLP HTTP endpoint, например "http://jaeger:4318".
	Endpoint string
	// ServiceName — service.name в resource attributes.
	ServiceName string
	// Version — service.version.
	Version string
	// Environment — deployment.environment.
	Environment string
	// Insecure — экспорт по HTTP без TLS.
	Insecure bool
	// Timeout — таймаут экспорта.
	Timeout time.Duration
	// SamplingRate — доля сэмплируемых трейсов от 0.0 до 1.0.
	SamplingRate float64
}

// DefaultConfig возвращает конфигурацию по умолчанию (трейсинг выключен).
func DefaultConfig() Config {
	return Config{
		ServiceName:  "bitbucket-client",
		Environment:  "production",
		Timeout:      5 * time.Second,
		SamplingRate: 1.0,
	}
}

// Validate проверяет конфигурацию. Выключенный трейсинг всегда валиден.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Endpoint, validation.Required, validation.By(endpointWithHost)),
		validation.Field(&c.ServiceName, validation.Required),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Duration(1))),
		validation.Field(&c.SamplingRate, validation.Min(0.0), validation.Max(1.0)),
	)
	if err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

func endpointWithHost(value interface{}) error {
	s, _ := value.(string)
	if u, err := url.Parse(s); err != nil || u.Host == "" {
		return errors.New("должен быть URL с host, например http://jaeger:4318")
	}
	return nil
}
