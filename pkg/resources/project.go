package resources

import (
	"context"

	"github.com/Kargones/bitbucket-client/pkg/bitbucket"
	"github.com/Kargones/bitbucket-client/pkg/models"
	"github.com/Kargones/bitbucket-client/pkg/uri"
)

// ProjectResource — доступ к проектам сервера.
type ProjectResource struct {
	client bitbucket.RestClient
}

// NewProjectResource создаёт ресурс проектов.
func NewProjectResource(client bitbucket.RestClient) *ProjectResource {
	return &ProjectResource{client: client}
}

func (r *ProjectResource) projects() uri.Projects {
	return root(r.client).Projects()
}

// GetAllProjects возвращает все проекты, доступные пользователю.
func (r *ProjectResource) GetAllProjects(ctx context.Context) ([]models.Project, error) {
	return getAll[models.Project](ctx, r.client, resourceProjects, r.projects())
}

// GetProject возвращает проект по ключу.
func (r *ProjectResource) GetProject(ctx context.Context, key string) (*models.Project, error) {
	return getOne[models.Project](ctx, r.client, r.projects().Project(key))
}

// CreateProject создаёт проект и возвращает его в представлении сервера.
func (r *ProjectResource) CreateProject(ctx context.Context, req models.CreateProject) (*models.Project, error) {
	return create[models.Project](ctx, r.client, r.projects(), req)
}

// DeleteProject удаляет проект. Сервер отказывает, если в проекте есть репозитории.
func (r *ProjectResource) DeleteProject(ctx context.Context, key string) error {
	return remove(ctx, r.client, r.projects().Project(key))
}
