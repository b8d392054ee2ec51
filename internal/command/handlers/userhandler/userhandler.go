// Package userhandler реализует команду list-users.
package userhandler

import (
	"context"
	"strconv"
	"time"

	"github.com/Kargones/bitbucket-client/internal/command"
	"github.com/Kargones/bitbucket-client/internal/constants"
	"github.com/Kargones/bitbucket-client/internal/pkg/output"
	"github.com/Kargones/bitbucket-client/pkg/models"
	"github.com/Kargones/bitbucket-client/pkg/resources"
)

// RegisterCmd регистрирует команду list-users.
func RegisterCmd() {
	command.Register(&Handler{})
}

// Table — пользователи сервера.
type Table []models.User

// Header реализует output.Tabular.
func (t Table) Header() []string { return []string{"NAME", "DISPLAY NAME", "EMAIL", "ACTIVE"} }

// Rows реализует output.Tabular.
func (t Table) Rows() [][]string {
	rows := make([][]string, 0, len(t))
	for _, u := range t {
		rows = append(rows, []string{u.Name, u.DisplayName, u.Email, strconv.FormatBool(u.Active)})
	}
	return rows
}

// Handler обрабатывает команду list-users.
type Handler struct{}

func (h *Handler) Name() string        { return constants.ActListUsers }
func (h *Handler) Description() string { return "Список пользователей" }

// Execute загружает всех пользователей.
func (h *Handler) Execute(ctx context.Context, rt *command.Runtime) error {
	start := time.Now()

	users, err := resources.NewUserResource(rt.Client).GetAllUsers(ctx)
	if err != nil {
		return err
	}

	active := 0
	for _, u := range users {
		if u.Active {
			active++
		}
	}
	summary := &output.SummaryInfo{}
	summary.AddMetric("Пользователей", strconv.Itoa(len(users)), "шт")
	summary.AddMetric("Активных", strconv.Itoa(active), "шт")
	return rt.WriteSuccess(h.Name(), Table(users), start, summary)
}
