// Package main содержит точку входа bbctl — консольного клиента REST API Bitbucket Server.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Kargones/bitbucket-client/internal/command/handlers"
)

// Коды завершения bbctl.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
	exitConfig  = 5
)

// exitError переносит код завершения команды через cobra.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit code %d", e.code) }

func main() {
	handlers.RegisterAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run выполняет bbctl с аргументами args и возвращает код завершения.
// Вынесена из main(), чтобы defer-ы (shutdown трейсинга, отправка метрик)
// отрабатывали до os.Exit.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	_, _ = fmt.Fprintln(stderr, "bbctl:", err) //nolint:errcheck // stderr
	return exitUsage
}
