package main

import (
	"context"
	"io"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Kargones/bitbucket-client/internal/command"
	"github.com/Kargones/bitbucket-client/internal/di"
	"github.com/Kargones/bitbucket-client/internal/pkg/apperrors"
	"github.com/Kargones/bitbucket-client/internal/pkg/progress"
	"github.com/Kargones/bitbucket-client/pkg/config"
	"github.com/Kargones/bitbucket-client/pkg/logging"
	"github.com/Kargones/bitbucket-client/pkg/tracing"
)

// closeTimeout ограничивает отправку метрик и выгрузку span-ов при завершении.
const closeTimeout = 5 * time.Second

// execute выполняет обработчик h и возвращает код завершения.
// Ошибки выводятся в формате результата команды.
func execute(ctx context.Context, h command.Handler, opts *options, args []string, stdout, stderr io.Writer) int {
	start := time.Now()
	rt := &command.Runtime{
		Out:    stdout,
		Format: strings.ToLower(opts.format),
		Args:   args,
	}

	if command.IsStandalone(h) {
		if err := h.Execute(ctx, rt); err != nil {
			return fail(rt, h, err, start)
		}
		return exitOK
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		_ = fail(rt, h, err, start)
		return exitConfig
	}

	app, err := di.InitializeApp(cfg)
	if err != nil {
		_ = fail(rt, h, err, start)
		return exitConfig
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := app.Close(closeCtx); err != nil {
			app.Logger.Error("ошибка завершения", "error", err.Error(), "trace_id", rt.TraceID)
		}
	}()

	rt.TraceID = tracing.GenerateTraceID()
	ctx = tracing.WithTraceID(ctx, rt.TraceID)
	ctx = tracing.ContextWithOTelTraceID(ctx, rt.TraceID)

	rt.Logger = app.Logger.With("trace_id", rt.TraceID, "command", h.Name())
	ctx = logging.WithLogger(ctx, rt.Logger)

	ctx, span := otel.Tracer("bbctl").Start(ctx, h.Name(),
		trace.WithAttributes(
			attribute.String("command", h.Name()),
			attribute.String("server.address", cfg.Bitbucket.Host),
		),
	)
	defer span.End()

	tracker := progress.Track(app.Client, progress.New(progress.Options{
		Output: stderr,
		Format: rt.Format,
		Logger: rt.Logger,
	}))
	rt.Client = tracker

	rt.Logger.Debug("выполнение команды", "args", args)
	err = h.Execute(ctx, rt)
	tracker.Finish()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		rt.Logger.Error("команда завершилась ошибкой", "error", err.Error())
		return fail(rt, h, err, start)
	}
	return exitOK
}

// fail выводит ошибку err как результат команды.
func fail(rt *command.Runtime, h command.Handler, err error, start time.Time) int {
	code := apperrors.CodeOf(err)
	if code == "" {
		code = apperrors.ErrCommandFailed
	}
	if werr := rt.WriteError(h.Name(), code, err, start); werr != nil {
		rt.Log().Error("не удалось вывести результат", "error", werr.Error())
	}
	return exitFailure
}

// loadConfig читает конфигурацию из файла path или только из окружения.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
