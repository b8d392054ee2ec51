package command

import (
	"io"
	"time"

	"github.com/Kargones/bitbucket-client/internal/constants"
	"github.com/Kargones/bitbucket-client/internal/pkg/output"
	"github.com/Kargones/bitbucket-client/pkg/bitbucket"
	"github.com/Kargones/bitbucket-client/pkg/logging"
	"github.com/Kargones/bitbucket-client/pkg/uri"
)

// Runtime — окружение выполнения команды.
type Runtime struct {
	// Client — REST клиент; nil для Standalone команд.
	Client bitbucket.RestClient
	// Logger — логгер с привязанным trace_id.
	Logger logging.Logger
	// Out — поток вывода результата.
	Out io.Writer
	// Format — формат вывода ("text" или "json").
	Format string
	// TraceID — идентификатор трассировки выполнения.
	TraceID string
	// Args — позиционные аргументы команды.
	Args []string
}

// Arg возвращает i-й позиционный аргумент или пустую строку.
func (rt *Runtime) Arg(i int) string {
	if i < len(rt.Args) {
		return rt.Args[i]
	}
	return ""
}

// Log возвращает логгер команды или NopLogger, если логгер не задан.
func (rt *Runtime) Log() logging.Logger {
	if rt.Logger == nil {
		return logging.NewNopLogger()
	}
	return rt.Logger
}

// WriteSuccess выводит успешный результат команды name.
func (rt *Runtime) WriteSuccess(name string, data any, start time.Time, summary *output.SummaryInfo) error {
	return rt.write(&output.Result{
		Status:   output.StatusSuccess,
		Command:  name,
		Data:     data,
		Metadata: rt.metadata(start),
		Summary:  summary,
	})
}

// WriteError выводит результат с ошибкой err и её машиночитаемым кодом code.
func (rt *Runtime) WriteError(name, code string, err error, start time.Time) error {
	return rt.write(&output.Result{
		Status:  output.StatusError,
		Command: name,
		Error: &output.ErrorInfo{
			Code:    code,
			Message: err.Error(),
		},
		Metadata: rt.metadata(start),
	})
}

func (rt *Runtime) write(result *output.Result) error {
	return output.NewWriter(rt.Format).Write(rt.Out, result)
}

func (rt *Runtime) metadata(start time.Time) *output.Metadata {
	return &output.Metadata{
		DurationMs: time.Since(start).Milliseconds(),
		TraceID:    rt.TraceID,
		Server:     rt.server(),
		APIVersion: constants.APIVersion,
	}
}

// server возвращает корень REST API сервера клиента.
func (rt *Runtime) server() string {
	if rt.Client == nil {
		return ""
	}
	base, err := uri.New().Scheme(rt.Client.Scheme()).Host(rt.Client.Host()).Build()
	if err != nil {
		return ""
	}
	return base
}
