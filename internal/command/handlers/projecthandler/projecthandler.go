// Package projecthandler реализует команды list-projects и get-project.
package projecthandler

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

// RegisterCmd регистрирует команды проектов.
func RegisterCmd() {
	command.Register(&ListHandler{})
	command.Register(&GetHandler{})
}

// Table — список проектов в табличном представлении.
type Table []models.Project

// Header реализует output.Tabular.
func (t Table) Header() []string { return []string{"KEY", "NAME", "PUBLIC", "URL"} }

// Rows реализует output.Tabular.
func (t Table) Rows() [][]string {
	rows := make([][]string, 0, len(t))
	for _, p := range t {
		rows = append(rows, []string{p.Key, p.Name, strconv.FormatBool(p.Public), p.Links.SelfHref()})
	}
	return rows
}

// ListHandler выводит все проекты.
type ListHandler struct{}

func (h *ListHandler) Name() string        { return constants.ActListProjects }
func (h *ListHandler) Description() string { return "Список проектов" }

// Execute загружает все страницы проектов.
func (h *ListHandler) Execute(ctx context.Context, rt *command.Runtime) error {
	start := time.Now()

	projects, err := resources.NewProjectResource(rt.Client).GetAllProjects(ctx)
	if err != nil {
		return err
	}
	rt.Log().Debug("проекты загружены", "count", len(projects))

	summary := &output.SummaryInfo{}
	summary.AddMetric("Проектов", strconv.Itoa(len(projects)), "шт")
	return rt.WriteSuccess(h.Name(), Table(projects), start, summary)
}

// GetHandler выводит один проект по ключу.
type GetHandler struct{}

func (h *GetHandler) Name() string        { return constants.ActGetProject }
func (h *GetHandler) Description() string { return "Сведения о проекте" }
func (h *GetHandler) ArgNames() []string  { return []string{"project"} }

// Execute загружает проект по ключу из первого аргумента.
func (h *GetHandler) Execute(ctx context.Context, rt *command.Runtime) error {
	start := time.Now()

	project, err := resources.NewProjectResource(rt.Client).GetProject(ctx, rt.Arg(0))
	if err != nil {
		return err
	}
	return rt.WriteSuccess(h.Name(), Table{*project}, start, nil)
}
