package bitbucket

import (
	"context"

	"github.com/Kargones/bitbucket-client/pkg/uri"
)

// Endpoint описывает сервер, к которому обращается клиент.
type Endpoint interface {
	// Scheme возвращает схему подключения.
	Scheme() uri.Scheme
	// Host возвращает адрес сервера (host[:port]).
	Host() string
}

// Reader выполняет запросы чтения.
type Reader interface {
	// Get загружает ресурс resourceURI и декодирует JSON-ответ в out.
	Get(ctx context.Context, resourceURI string, out any) error
}

// Writer выполняет изменяющие запросы.
type Writer interface {
	// Post отправляет body в формате JSON и декодирует ответ в out (если out != nil).
	Post(ctx context.Context, resourceURI string, body, out any) error
	// Put отправляет body в формате JSON и декодирует ответ в out (если out != nil).
	Put(ctx context.Context, resourceURI string, body, out any) error
	// Delete удаляет ресурс. Успех определяется только классом статуса.
	Delete(ctx context.Context, resourceURI string) error
}

// RestClient — полный клиент REST API, используемый ресурсами.
type RestClient interface {
	Endpoint
	Reader
	Writer
}

// PageRecorder опционально реализуется клиентом для учёта загруженных страниц.
type PageRecorder interface {
	RecordPage(resource string)
}
