package resources

import (
	"context"

	"github.com/Kargones/bitbucket-client/pkg/bitbucket"
	"github.com/Kargones/bitbucket-client/pkg/models"
	"github.com/Kargones/bitbucket-client/pkg/uri"
)

// CommitResource — доступ к коммитам репозитория.
type CommitResource struct {
	client  bitbucket.RestClient
	project string
	repo    string
}

// NewCommitResource создаёт ресурс коммитов репозитория project/repo.
func NewCommitResource(client bitbucket.RestClient, project, repo string) *CommitResource {
	return &CommitResource{client: client, project: project, repo: repo}
}

func (r *CommitResource) commits() uri.Commits {
	return root(r.client).Projects().Project(r.project).Repos().Repository(r.repo).Commits()
}

// GetAllCommits возвращает историю коммитов, начиная с последнего.
func (r *CommitResource) GetAllCommits(ctx context.Context) ([]models.Commit, error) {
	return getAll[models.Commit](ctx, r.client, resourceCommits, r.commits())
}

// GetCommit возвращает коммит по идентификатору (полному или сокращённому).
func (r *CommitResource) GetCommit(ctx context.Context, id string) (*models.Commit, error) {
	return getOne[models.Commit](ctx, r.client, r.commits().Commit(id))
}
