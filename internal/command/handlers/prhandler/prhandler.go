// Package prhandler реализует команды list-pull-requests и create-pull-request.
package prhandler

import (
	"context"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/Kargones/bitbucket-client/internal/command"
	"github.com/Kargones/bitbucket-client/internal/constants"
	"github.com/Kargones/bitbucket-client/internal/pkg/apperrors"
	"github.com/Kargones/bitbucket-client/internal/pkg/output"
	"github.com/Kargones/bitbucket-client/pkg/models"
	"github.com/Kargones/bitbucket-client/pkg/resources"
)

// RegisterCmd регистрирует команды pull request-ов.
func RegisterCmd() {
	command.Register(&ListHandler{})
	command.Register(&CreateHandler{})
}

// Table — pull request-ы репозитория.
type Table []models.PullRequest

// Header реализует output.Tabular.
func (t Table) Header() []string {
	return []string{"ID", "STATE", "TITLE", "FROM", "TO", "AUTHOR"}
}

// Rows реализует output.Tabular.
func (t Table) Rows() [][]string {
	rows := make([][]string, 0, len(t))
	for _, pr := range t {
		rows = append(rows, []string{
			strconv.FormatUint(pr.ID, 10),
			pr.State.String(),
			pr.Title,
			pr.FromRef.ID,
			pr.ToRef.ID,
			pr.Author.User.Name,
		})
	}
	return rows
}

var repoArgs = []string{"project", "repo"}

// ListHandler выводит pull request-ы с фильтром по состоянию.
type ListHandler struct {
	state string
}

func (h *ListHandler) Name() string        { return constants.ActListPullRequests }
func (h *ListHandler) Description() string { return "Список pull request-ов репозитория" }
func (h *ListHandler) ArgNames() []string  { return repoArgs }

// BindFlags реализует command.WithFlags.
func (h *ListHandler) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&h.state, "state", models.PullRequestStateOpen.String(), "состояние: ALL, OPEN, MERGED, DECLINED")
}

// Execute загружает pull request-ы в состоянии --state; без флага — OPEN.
func (h *ListHandler) Execute(ctx context.Context, rt *command.Runtime) error {
	start := time.Now()

	state := models.PullRequestStateOpen
	if h.state != "" {
		var err error
		if state, err = models.ParsePullRequestState(h.state); err != nil {
			return apperrors.NewAppError(apperrors.ErrCommandArgs, "неверный флаг --state", err)
		}
	}

	prs, err := resources.NewPullRequestResource(rt.Client, rt.Arg(0), rt.Arg(1)).
		GetAllPullRequestsWithState(ctx, state)
	if err != nil {
		return err
	}

	summary := &output.SummaryInfo{}
	summary.AddMetric("Pull request-ов", strconv.Itoa(len(prs)), "шт")
	summary.AddMetric("Состояние", state.String(), "")
	for _, pr := range prs {
		if pr.Locked {
			summary.AddWarning("#" + strconv.FormatUint(pr.ID, 10) + " заблокирован")
		}
	}
	return rt.WriteSuccess(h.Name(), Table(prs), start, summary)
}

// CreateHandler создаёт pull request между ветками одного репозитория.
type CreateHandler struct {
	title       string
	description string
	from        string
	to          string
	reviewers   []string
	watch       bool
}

func (h *CreateHandler) Name() string        { return constants.ActCreatePullRequest }
func (h *CreateHandler) Description() string { return "Создать pull request" }
func (h *CreateHandler) ArgNames() []string  { return repoArgs }

// BindFlags реализует command.WithFlags.
func (h *CreateHandler) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&h.title, "title", "", "заголовок pull request-а")
	fs.StringVar(&h.description, "description", "", "описание")
	fs.StringVar(&h.from, "from", "", "ветка-источник")
	fs.StringVar(&h.to, "to", "", "ветка-назначение")
	fs.StringSliceVar(&h.reviewers, "reviewer", nil, "имя ревьюера (можно повторять)")
	fs.BoolVar(&h.watch, "watch", false, "подписаться на уведомления о pull request-е")
}

// Execute проверяет флаги, создаёт pull request и при --watch подписывается на него.
func (h *CreateHandler) Execute(ctx context.Context, rt *command.Runtime) error {
	start := time.Now()

	if h.title == "" || h.from == "" || h.to == "" {
		return apperrors.NewAppError(apperrors.ErrCommandArgs, "флаги --title, --from и --to обязательны", nil)
	}

	req := models.NewCreatePullRequest(rt.Arg(0), rt.Arg(1), h.title, h.from, h.to, h.reviewers...)
	if h.description != "" {
		req.Description = &h.description
	}

	res := resources.NewPullRequestResource(rt.Client, rt.Arg(0), rt.Arg(1))
	pr, err := res.CreatePullRequest(ctx, req)
	if err != nil {
		return err
	}
	rt.Log().Info("pull request создан", "id", pr.ID, "from", req.FromRef.ID, "to", req.ToRef.ID)

	summary := &output.SummaryInfo{}
	summary.AddMetric("Ревьюеров", strconv.Itoa(len(req.Reviewers)), "шт")
	if h.watch {
		if err := res.WatchPullRequest(ctx, pr.ID); err != nil {
			// pull request уже создан, поэтому неудачная подписка не роняет команду
			rt.Log().Warn("не удалось подписаться на pull request", "id", pr.ID, "error", err.Error())
			summary.AddWarning("подписка на pull request не оформлена: " + err.Error())
		}
	}
	return rt.WriteSuccess(h.Name(), Table{*pr}, start, summary)
}
