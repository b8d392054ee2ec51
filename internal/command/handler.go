// Package command предоставляет интерфейсы и реестр для команд bbctl.
// Пакет реализует паттерн self-registration: обработчики регистрируются
// в реестре через init() своих пакетов без изменения main.go.
package command

import (
	"context"

	"github.com/spf13/pflag"
)

// Handler определяет интерфейс обработчика команды.
type Handler interface {
	// Name возвращает имя команды в kebab-case (например, "list-projects").
	Name() string

	// Description возвращает описание команды для вывода в help.
	Description() string

	// Execute выполняет команду. Позиционные аргументы уже проверены
	// по ArgNames, если обработчик реализует WithArgs.
	Execute(ctx context.Context, rt *Runtime) error
}

// WithArgs реализуется обработчиками с обязательными позиционными аргументами.
type WithArgs interface {
	// ArgNames возвращает имена аргументов в порядке следования.
	ArgNames() []string
}

// WithFlags реализуется обработчиками с собственными флагами.
type WithFlags interface {
	// BindFlags регистрирует флаги команды в fs.
	BindFlags(fs *pflag.FlagSet)
}

// Standalone реализуется обработчиками, которым не нужно подключение к серверу
// (например, version). Для них не загружается конфигурация и не создаётся клиент.
type Standalone interface {
	Standalone() bool
}

// ArgNames возвращает имена аргументов h или nil.
func ArgNames(h Handler) []string {
	if a, ok := h.(WithArgs); ok {
		return a.ArgNames()
	}
	return nil
}

// IsStandalone сообщает, может ли h выполняться без клиента.
func IsStandalone(h Handler) bool {
	s, ok := h.(Standalone)
	return ok && s.Standalone()
}
