package bitbucket

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Kargones/bitbucket-client/pkg/uri"
)

// DefaultTimeout — таймаут HTTP-запроса по умолчанию.
const DefaultTimeout = 30 * time.Second

// Credentials — учётные данные для аутентификации.
// При заданном Token используется заголовок Bearer (HTTP access token),
// иначе HTTP Basic с Username и Password.
type Credentials struct {
	Username string
	Password string
	Token    string
}

// String не раскрывает пароль и токен при логировании.
func (c Credentials) String() string {
	if c.Token != "" {
		return "token:***"
	}
	return c.Username + ":***"
}

// Config содержит параметры подключения клиента.
type Config struct {
	// Scheme — схема подключения, по умолчанию HTTP.
	Scheme uri.Scheme
	// Host — адрес сервера в виде host[:port].
	Host string
	// Credentials — учётные данные; nil для анонимного доступа.
	Credentials *Credentials
	// Timeout — таймаут одного запроса, 0 — DefaultTimeout.
	Timeout time.Duration
}

// Validate проверяет конфигурацию клиента.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Scheme, validation.In(uri.HTTP, uri.HTTPS)),
		validation.Field(&c.Host, validation.Required),
		validation.Field(&c.Credentials),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

// Validate проверяет учётные данные: без токена имя пользователя обязательно.
func (c Credentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Username, validation.When(c.Token == "", validation.Required)),
	)
}
