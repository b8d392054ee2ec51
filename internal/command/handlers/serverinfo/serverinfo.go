// Package serverinfo реализует команду server-info: версию и сборку сервера Bitbucket.
package serverinfo

import (
	"context"
	"time"

	"github.com/Kargones/bitbucket-client/internal/command"
	"github.com/Kargones/bitbucket-client/internal/constants"
	"github.com/Kargones/bitbucket-client/pkg/models"
	"github.com/Kargones/bitbucket-client/pkg/resources"
)

// RegisterCmd регистрирует команду server-info.
func RegisterCmd() {
	command.Register(&Handler{})
}

// Data — свойства приложения сервера.
type Data models.ApplicationProperties

// Header реализует output.Tabular.
func (d *Data) Header() []string { return []string{"SERVER", "VERSION", "BUILD", "BUILD DATE"} }

// Rows реализует output.Tabular.
func (d *Data) Rows() [][]string {
	return [][]string{{d.DisplayName, d.Version, d.BuildNumber, d.BuildDate}}
}

// Handler обрабатывает команду server-info.
type Handler struct{}

func (h *Handler) Name() string        { return constants.ActServerInfo }
func (h *Handler) Description() string { return "Версия сервера Bitbucket" }

// Execute запрашивает application-properties.
func (h *Handler) Execute(ctx context.Context, rt *command.Runtime) error {
	start := time.Now()

	props, err := resources.NewApplicationResource(rt.Client).GetApplicationProperties(ctx)
	if err != nil {
		return err
	}
	rt.Log().Debug("версия сервера получена", "version", props.Version)

	return rt.WriteSuccess(h.Name(), (*Data)(props), start, nil)
}
