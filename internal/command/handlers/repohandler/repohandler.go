// Package repohandler реализует команды list-repos и list-tags.
package repohandler

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

// RegisterCmd регистрирует команды репозиториев.
func RegisterCmd() {
	command.Register(&ListHandler{})
	command.Register(&TagsHandler{})
}

// Table — репозитории проекта.
type Table []models.Repository

// Header реализует output.Tabular.
func (t Table) Header() []string { return []string{"SLUG", "NAME", "STATE", "CLONE"} }

// Rows реализует output.Tabular. Колонка CLONE содержит HTTP ссылку клонирования.
func (t Table) Rows() [][]string {
	rows := make([][]string, 0, len(t))
	for _, r := range t {
		clone, _ := r.Links.CloneURL("http")
		rows = append(rows, []string{r.Slug, r.Name, r.State, clone})
	}
	return rows
}

// TagTable — теги репозитория.
type TagTable []models.Tag

// Header реализует output.Tabular.
func (t TagTable) Header() []string { return []string{"TAG", "COMMIT"} }

// Rows реализует output.Tabular.
func (t TagTable) Rows() [][]string {
	rows := make([][]string, 0, len(t))
	for _, tag := range t {
		rows = append(rows, []string{tag.DisplayID, tag.LatestCommit})
	}
	return rows
}

// ListHandler выводит репозитории проекта.
type ListHandler struct{}

func (h *ListHandler) Name() string        { return constants.ActListRepos }
func (h *ListHandler) Description() string { return "Список репозиториев проекта" }
func (h *ListHandler) ArgNames() []string  { return []string{"project"} }

// Execute загружает все репозитории проекта.
func (h *ListHandler) Execute(ctx context.Context, rt *command.Runtime) error {
	start := time.Now()

	repos, err := resources.NewRepositoryResource(rt.Client, rt.Arg(0)).GetAllRepositories(ctx)
	if err != nil {
		return err
	}

	summary := &output.SummaryInfo{}
	summary.AddMetric("Репозиториев", strconv.Itoa(len(repos)), "шт")
	for _, r := range repos {
		if r.State != "" && r.State != "AVAILABLE" {
			summary.AddWarning(r.Slug + ": " + r.State)
		}
	}
	return rt.WriteSuccess(h.Name(), Table(repos), start, summary)
}

// TagsHandler выводит теги репозитория.
type TagsHandler struct{}

func (h *TagsHandler) Name() string        { return constants.ActListTags }
func (h *TagsHandler) Description() string { return "Список тегов репозитория" }
func (h *TagsHandler) ArgNames() []string  { return []string{"project", "repo"} }

// Execute загружает все теги репозитория.
func (h *TagsHandler) Execute(ctx context.Context, rt *command.Runtime) error {
	start := time.Now()

	tags, err := resources.NewRepositoryResource(rt.Client, rt.Arg(0)).GetAllRepositoryTags(ctx, rt.Arg(1))
	if err != nil {
		return err
	}

	summary := &output.SummaryInfo{}
	summary.AddMetric("Тегов", strconv.Itoa(len(tags)), "шт")
	return rt.WriteSuccess(h.Name(), TagTable(tags), start, summary)
}
