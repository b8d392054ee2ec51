// Package version реализует команду version: версия bbctl и Go.
package version

import (
	"context"
	"runtime"
	"time"

	"github.com/Kargones/bitbucket-client/internal/command"
	"github.com/Kargones/bitbucket-client/internal/constants"
)

// RegisterCmd регистрирует команду в реестре.
func RegisterCmd() {
	command.Register(&Handler{})
}

// Data содержит информацию о версии.
type Data struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Commit    string `json:"commit"`
}

// Header реализует output.Tabular.
func (d *Data) Header() []string { return []string{"VERSION", "GO", "COMMIT"} }

// Rows реализует output.Tabular.
func (d *Data) Rows() [][]string { return [][]string{{d.Version, d.GoVersion, d.Commit}} }

// Handler обрабатывает команду version.
type Handler struct{}

func (h *Handler) Name() string        { return constants.ActVersion }
func (h *Handler) Description() string { return "Вывод версии bbctl" }
func (h *Handler) Standalone() bool    { return true }

// Execute выводит версию сборки.
func (h *Handler) Execute(_ context.Context, rt *command.Runtime) error {
	start := time.Now()
	data := buildData(constants.Version, constants.Commit)
	return rt.WriteSuccess(h.Name(), data, start, nil)
}

// buildData подставляет "dev" и "unknown" вместо пустых значений.
func buildData(version, commit string) *Data {
	if version == "" {
		version = "dev"
	}
	if commit == "" {
		commit = "unknown"
	}
	return &Data{
		Version:   version,
		GoVersion: runtime.Version(),
		Commit:    commit,
	}
}
