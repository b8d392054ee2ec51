package metrics

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrInvalidConfig оборачивает ошибки валидации конфигурации метрик.
var ErrInvalidConfig = errors.New("metrics: невалидная конфигурация")

// Config содержит настройки сбора и отправки метрик.
type Config struct {
	// Enabled — включены ли метрики.
	Enabled bool
	// PushgatewayURL — адрес Pushgateway, например "http://pushgateway:9091".
	// Пустой адрес отключает Push, метрики продолжают собираться в registry.
	PushgatewayURL string
	// JobName — имя job для группировки метрик.
	JobName string
	// Timeout — таймаут отправки в Pushgateway.
	Timeout time.Duration
	// InstanceLabel — значение label instance, по умолчанию hostname.
	InstanceLabel string
}

// DefaultConfig возвращает конфигурацию по умолчанию (метрики выключены).
func DefaultConfig() Config {
	return Config{
		JobName: "bitbucket-client",
		Timeout: 10 * time.Second,
	}
}

// Validate проверяет конфигурацию. Выключенные метрики всегда валидны.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	err := validation.ValidateStruct(&c,
		validation.Field(&c.PushgatewayURL, validation.By(absoluteURL)),
		validation.Field(&c.JobName, validation.Required),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Duration(1))),
	)
	if err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}
