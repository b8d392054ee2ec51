package resources

import (
	"context"

	"github.com/Kargones/bitbucket-client/pkg/bitbucket"
	"github.com/Kargones/bitbucket-client/pkg/models"
	"github.com/Kargones/bitbucket-client/pkg/uri"
)

// RepositoryResource — доступ к репозиториям одного проекта.
type RepositoryResource struct {
	client  bitbucket.RestClient
	project string
}

// NewRepositoryResource создаёт ресурс репозиториев проекта project.
func NewRepositoryResource(client bitbucket.RestClient, project string) *RepositoryResource {
	return &RepositoryResource{client: client, project: project}
}

func (r *RepositoryResource) repos() uri.Repos {
	return root(r.client).Projects().Project(r.project).Repos()
}

// GetAllRepositories возвращает все репозитории проекта.
func (r *RepositoryResource) GetAllRepositories(ctx context.Context) ([]models.Repository, error) {
	return getAll[models.Repository](ctx, r.client, resourceRepositories, r.repos())
}

// GetRepository возвращает репозиторий по slug.
func (r *RepositoryResource) GetRepository(ctx context.Context, slug string) (*models.Repository, error) {
	return getOne[models.Repository](ctx, r.client, r.repos().Repository(slug))
}

// GetAllRepositoryTags возвращает все теги репозитория.
func (r *RepositoryResource) GetAllRepositoryTags(ctx context.Context, slug string) ([]models.Tag, error) {
	return getAll[models.Tag](ctx, r.client, resourceTags, r.repos().Repository(slug).Tags())
}

// DeleteRepository планирует удаление репозитория.
func (r *RepositoryResource) DeleteRepository(ctx context.Context, slug string) error {
	return remove(ctx, r.client, r.repos().Repository(slug))
}
