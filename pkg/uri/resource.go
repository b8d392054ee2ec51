package uri

import (
	"fmt"
	"strings"
)

// Scheme — схема подключения к серверу.
type Scheme int

const (
	// HTTP — схема по умолчанию.
	HTTP Scheme = iota
	// HTTPS — защищённое подключение.
	HTTPS
)

// String возвращает имя схемы в нижнем регистре.
func (s Scheme) String() string {
	if s == HTTPS {
		return "https"
	}
	return "http"
}

// ParseScheme разбирает имя схемы без учёта регистра.
// Пустая строка соответствует HTTP.
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "http":
		return HTTP, nil
	case "https":
		return HTTPS, nil
	default:
		return HTTP, fmt.Errorf("неизвестная схема %q: допустимы http, https", s)
	}
}

// Resource — корневой узел: схема и адрес сервера.
type Resource struct {
	scheme Scheme
	host   string
}

// New создаёт корневой узел со схемой HTTP и пустым host.
func New() Resource {
	return Resource{scheme: HTTP}
}

// Scheme возвращает копию узла с заданной схемой.
func (r Resource) Scheme(scheme Scheme) Resource {
	r.scheme = scheme
	return r
}

// Host возвращает копию узла с заданным адресом сервера (host[:port]).
func (r Resource) Host(host string) Resource {
	r.host = host
	return r
}

// Build возвращает "{scheme}://{host}/rest/api/1.0".
// Без host возвращает ErrHostRequired.
func (r Resource) Build() (string, error) {
	if r.host == "" {
		return "", ErrHostRequired
	}
	return r.scheme.String() + "://" + r.host + "/" + APIPath, nil
}

// Admin переходит к административным ресурсам.
func (r Resource) Admin() Admin { return Admin{parent: r} }

// Projects переходит к проектам.
func (r Resource) Projects() Projects { return Projects{parent: r} }

// Users переходит к пользователям.
func (r Resource) Users() Users { return Users{parent: r} }

// Logs переходит к настройкам логирования сервера.
func (r Resource) Logs() Logs { return Logs{parent: r} }

// ApplicationProperties — сведения о версии сервера.
func (r Resource) ApplicationProperties() Terminal[Resource] {
	return action(r, "ApplicationProperties")
}
