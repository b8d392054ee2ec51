// Package branchhandler реализует команды list-branches и default-branch.
package branchhandler

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

// RegisterCmd регистрирует команды веток.
func RegisterCmd() {
	command.Register(&ListHandler{})
	command.Register(&DefaultHandler{})
}

// Table — ветки репозитория.
type Table []models.Branch

// Header реализует output.Tabular.
func (t Table) Header() []string { return []string{"BRANCH", "COMMIT", "DEFAULT"} }

// Rows реализует output.Tabular.
func (t Table) Rows() [][]string {
	rows := make([][]string, 0, len(t))
	for _, b := range t {
		rows = append(rows, []string{b.DisplayID, b.LatestCommit, strconv.FormatBool(b.IsDefault)})
	}
	return rows
}

var repoArgs = []string{"project", "repo"}

// ListHandler выводит ветки репозитория.
type ListHandler struct{}

func (h *ListHandler) Name() string        { return constants.ActListBranches }
func (h *ListHandler) Description() string { return "Список веток репозитория" }
func (h *ListHandler) ArgNames() []string  { return repoArgs }

// Execute загружает все ветки.
func (h *ListHandler) Execute(ctx context.Context, rt *command.Runtime) error {
	start := time.Now()

	branches, err := resources.NewBranchResource(rt.Client, rt.Arg(0), rt.Arg(1)).GetAllBranches(ctx)
	if err != nil {
		return err
	}

	summary := &output.SummaryInfo{}
	summary.AddMetric("Веток", strconv.Itoa(len(branches)), "шт")
	for _, b := range branches {
		if b.IsDefault {
			summary.AddMetric("По умолчанию", b.DisplayID, "")
		}
	}
	return rt.WriteSuccess(h.Name(), Table(branches), start, summary)
}

// DefaultHandler выводит ветку по умолчанию.
type DefaultHandler struct{}

func (h *DefaultHandler) Name() string        { return constants.ActDefaultBranch }
func (h *DefaultHandler) Description() string { return "Ветка репозитория по умолчанию" }
func (h *DefaultHandler) ArgNames() []string  { return repoArgs }

// Execute загружает ветку по умолчанию.
func (h *DefaultHandler) Execute(ctx context.Context, rt *command.Runtime) error {
	start := time.Now()

	branch, err := resources.NewBranchResource(rt.Client, rt.Arg(0), rt.Arg(1)).GetDefaultBranch(ctx)
	if err != nil {
		return err
	}
	return rt.WriteSuccess(h.Name(), Table{*branch}, start, nil)
}
