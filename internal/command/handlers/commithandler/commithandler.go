// Package commithandler реализует команду list-commits.
package commithandler

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/Kargones/bitbucket-client/internal/command"
	"github.com/Kargones/bitbucket-client/internal/constants"
	"github.com/Kargones/bitbucket-client/internal/pkg/output"
	"github.com/Kargones/bitbucket-client/pkg/models"
	"github.com/Kargones/bitbucket-client/pkg/resources"
)

// RegisterCmd регистрирует команду list-commits.
func RegisterCmd() {
	command.Register(&Handler{})
}

// Table — коммиты репозитория, от новых к старым.
type Table []models.Commit

// Header реализует output.Tabular.
func (t Table) Header() []string { return []string{"COMMIT", "AUTHOR", "DATE", "MESSAGE"} }

// Rows реализует output.Tabular. В колонку MESSAGE попадает первая строка сообщения.
func (t Table) Rows() [][]string {
	rows := make([][]string, 0, len(t))
	for _, c := range t {
		subject, _, _ := strings.Cut(c.Message, "\n")
		rows = append(rows, []string{
			c.DisplayID,
			c.Author.Name,
			c.AuthoredAt().UTC().Format(time.DateTime),
			subject,
		})
	}
	return rows
}

// Handler обрабатывает команду list-commits.
type Handler struct {
	// limit ограничивает вывод; 0 — без ограничения.
	limit int
}

func (h *Handler) Name() string        { return constants.ActListCommits }
func (h *Handler) Description() string { return "История коммитов репозитория" }
func (h *Handler) ArgNames() []string  { return []string{"project", "repo"} }

// BindFlags реализует command.WithFlags.
func (h *Handler) BindFlags(fs *pflag.FlagSet) {
	fs.IntVar(&h.limit, "limit", 0, "вывести не более N последних коммитов")
}

// Execute загружает историю и выводит не более limit коммитов.
// Загрузка всегда полная: API не ограничивает выборку без курсора.
func (h *Handler) Execute(ctx context.Context, rt *command.Runtime) error {
	start := time.Now()

	commits, err := resources.NewCommitResource(rt.Client, rt.Arg(0), rt.Arg(1)).GetAllCommits(ctx)
	if err != nil {
		return err
	}

	summary := &output.SummaryInfo{}
	summary.AddMetric("Коммитов", strconv.Itoa(len(commits)), "шт")
	merges := 0
	for _, c := range commits {
		if c.IsMerge() {
			merges++
		}
	}
	summary.AddMetric("Merge-коммитов", strconv.Itoa(merges), "шт")

	if h.limit > 0 && len(commits) > h.limit {
		summary.AddWarning("вывод ограничен " + strconv.Itoa(h.limit) + " из " + strconv.Itoa(len(commits)))
		commits = commits[:h.limit]
	}
	return rt.WriteSuccess(h.Name(), Table(commits), start, summary)
}
