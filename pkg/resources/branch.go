package resources

import (
	"context"

	"github.com/Kargones/bitbucket-client/pkg/bitbucket"
	"github.com/Kargones/bitbucket-client/pkg/models"
	"github.com/Kargones/bitbucket-client/pkg/uri"
)

// BranchResource — доступ к веткам репозитория.
type BranchResource struct {
	client  bitbucket.RestClient
	project string
	repo    string
}

// NewBranchResource создаёт ресурс веток репозитория project/repo.
func NewBranchResource(client bitbucket.RestClient, project, repo string) *BranchResource {
	return &BranchResource{client: client, project: project, repo: repo}
}

func (r *BranchResource) branches() uri.Branches {
	return root(r.client).Projects().Project(r.project).Repos().Repository(r.repo).Branches()
}

// GetAllBranches возвращает все ветки репозитория.
func (r *BranchResource) GetAllBranches(ctx context.Context) ([]models.Branch, error) {
	return getAll[models.Branch](ctx, r.client, resourceBranches, r.branches())
}

// GetDefaultBranch возвращает ветку по умолчанию.
func (r *BranchResource) GetDefaultBranch(ctx context.Context) (*models.Branch, error) {
	return getOne[models.Branch](ctx, r.client, r.branches().Default())
}
