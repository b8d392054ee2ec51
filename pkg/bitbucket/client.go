package bitbucket

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Kargones/bitbucket-client/internal/pkg/urlutil"
	"github.com/Kargones/bitbucket-client/pkg/logging"
	"github.com/Kargones/bitbucket-client/pkg/metrics"
	"github.com/Kargones/bitbucket-client/pkg/models"
	"github.com/Kargones/bitbucket-client/pkg/tracing"
	"github.com/Kargones/bitbucket-client/pkg/uri"
)

const tracerName = "github.com/Kargones/bitbucket-client/pkg/bitbucket"

// Compile-time проверка реализации интерфейсов.
var (
	_ RestClient   = (*Client)(nil)
	_ PageRecorder = (*Client)(nil)
)

// Client — клиент REST API Bitbucket Server. Безопасен для конкурентного использования.
type Client struct {
	config     Config
	httpClient *http.Client
	logger     logging.Logger
	collector  metrics.Collector
	tracer     trace.Tracer
}

// Option настраивает Client.
type Option func(*Client)

// WithLogger задаёт логгер клиента.
func WithLogger(logger logging.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCollector задаёт коллектор метрик.
func WithCollector(collector metrics.Collector) Option {
	return func(c *Client) {
		if collector != nil {
			c.collector = collector
		}
	}
}

// WithHTTPClient задаёт HTTP-клиент. Config.Timeout к нему не применяется.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTracerProvider задаёт TracerProvider вместо глобального.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		if tp != nil {
			c.tracer = tp.Tracer(tracerName)
		}
	}
}

// NewClient создаёт клиент. Возвращает *ValidationError при невалидной конфигурации.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, NewValidationError("config", "невалидная конфигурация клиента", err)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	c := &Client{
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logging.NewNopLogger(),
		collector:  metrics.NewNopCollector(),
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.logger.Debug("клиент Bitbucket создан",
		"url", urlutil.MaskURL(cfg.Scheme.String()+"://"+cfg.Host),
		"auth", cfg.Credentials != nil,
		"timeout", cfg.Timeout.String(),
	)
	return c, nil
}

// Scheme возвращает схему подключения.
func (c *Client) Scheme() uri.Scheme { return c.config.Scheme }

// Host возвращает адрес сервера.
func (c *Client) Host() string { return c.config.Host }

// Get загружает ресурс и декодирует JSON-ответ в out.
func (c *Client) Get(ctx context.Context, resourceURI string, out any) error {
	return c.do(ctx, http.MethodGet, resourceURI, nil, out)
}

// Post отправляет body и декодирует ответ в out.
func (c *Client) Post(ctx context.Context, resourceURI string, body, out any) error {
	return c.do(ctx, http.MethodPost, resourceURI, body, out)
}

// Put отправляет body и декодирует ответ в out.
func (c *Client) Put(ctx context.Context, resourceURI string, body, out any) error {
	return c.do(ctx, http.MethodPut, resourceURI, body, out)
}

// Delete удаляет ресурс. Тело успешного ответа игнорируется.
func (c *Client) Delete(ctx context.Context, resourceURI string) error {
	return c.do(ctx, http.MethodDelete, resourceURI, nil, nil)
}

// RecordPage учитывает загруженную страницу коллекции.
func (c *Client) RecordPage(resource string) {
	c.collector.RecordPage(resource)
}

// do выполняет запрос с метриками, span-ом и логированием.
func (c *Client) do(ctx context.Context, method, rawURI string, body, out any) error {
	ctx, span := c.tracer.Start(ctx, "bitbucket "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", urlutil.StripUserInfo(rawURI)),
		),
	)
	defer span.End()

	start := time.Now()
	status, err := c.execute(ctx, method, rawURI, body, out)
	duration := time.Since(start)

	c.collector.RecordRequest(method, status, duration)

	log := logging.FromContext(ctx, c.logger).With(
		"method", method,
		"uri", urlutil.StripUserInfo(rawURI),
		"status", status,
		"duration_ms", duration.Milliseconds(),
	)
	if traceID := tracing.TraceIDFromContext(ctx); traceID != "" {
		log = log.With("trace_id", traceID)
	}
	if status != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Debug("bitbucket: запрос завершился ошибкой", "error", err.Error())
		return err
	}

	log.Debug("bitbucket: запрос выполнен")
	return nil
}

// execute отправляет запрос и разбирает ответ. Возвращает HTTP статус (0, если ответа нет).
func (c *Client) execute(ctx context.Context, method, rawURI string, body, out any) (int, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, NewBitbucketError(ErrBitbucketRequest, "не удалось сериализовать тело запроса", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURI, bodyReader)
	if err != nil {
		return 0, NewBitbucketError(ErrBitbucketRequest, "не удалось сформировать запрос", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, transportError(err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("bitbucket: не удалось закрыть тело ответа", "error", closeErr.Error())
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, NewBitbucketErrorWithStatus(ErrBitbucketConnect,
			"не удалось прочитать тело ответа", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, statusError(resp.StatusCode, data)
	}

	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, NewBitbucketErrorWithStatus(ErrBitbucketDecode,
				"не удалось разобрать ответ сервера", resp.StatusCode, err)
		}
	}
	return resp.StatusCode, nil
}

// authorize добавляет заголовок аутентификации, если заданы учётные данные.
func (c *Client) authorize(req *http.Request) {
	creds := c.config.Credentials
	switch {
	case creds == nil:
	case creds.Token != "":
		req.Header.Set("Authorization", "Bearer "+creds.Token)
	default:
		req.SetBasicAuth(creds.Username, creds.Password)
	}
}

// transportError классифицирует ошибку, при которой ответ не получен.
func transportError(err error) *BitbucketError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return NewBitbucketError(ErrBitbucketTimeout, "превышено время ожидания ответа", err)
	}
	return NewBitbucketError(ErrBitbucketConnect, "не удалось выполнить запрос", err)
}

// statusError разбирает ответ с кодом вне 2xx.
// Тело вида {"errors": [...]} становится списком ServerErrors, иначе причиной
// ошибки становится сбой разбора тела.
func statusError(status int, body []byte) *BitbucketError {
	code := codeForStatus(status)

	var payload models.ServerErrors
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Errors) == 0 {
		if err == nil {
			err = errors.New("ответ не содержит списка ошибок")
		}
		return NewBitbucketErrorWithStatus(code,
			fmt.Sprintf("неожиданный статус ответа %d %s", status, http.StatusText(status)), status, err)
	}

	return &BitbucketError{
		Code:         code,
		Message:      strings.Join(payload.Messages(), "; "),
		StatusCode:   status,
		ServerErrors: payload.Errors,
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrBitbucketAuth
	case http.StatusNotFound:
		return ErrBitbucketNotFound
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return ErrBitbucketTimeout
	default:
		return ErrBitbucketAPI
	}
}
