// Package logging предоставляет интерфейс структурированного логирования клиента
// и его реализации на основе slog.
package logging

import "context"

// Logger определяет интерфейс для структурированного логирования.
// Реализации: SlogAdapter (slog из stdlib) и NopLogger.
//
//	logger.Debug("bitbucket: ответ получен", "method", "GET", "status", 200)
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With возвращает новый Logger с добавленными атрибутами.
	With(args ...any) Logger
}

// NopLogger — реализация Logger, которая ничего не делает.
// Используется по умолчанию, когда вызывающий код не передал логгер.
type NopLogger struct{}

// NewNopLogger создаёт Logger, который игнорирует все сообщения.
func NewNopLogger() Logger {
	return NopLogger{}
}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}

// With возвращает тот же NopLogger: атрибуты всё равно игнорируются.
func (n NopLogger) With(_ ...any) Logger {
	return n
}

type loggerKey struct{}

// WithLogger возвращает context с привязанным логгером.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext извлекает логгер из context. Если логгер не привязан, возвращает fallback.
func FromContext(ctx context.Context, fallback Logger) Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(Logger); ok && l != nil {
			return l
		}
	}
	return fallback
}
