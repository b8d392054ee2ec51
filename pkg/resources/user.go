package resources

import (
	"context"

	"github.com/Kargones/bitbucket-client/pkg/bitbucket"
	"github.com/Kargones/bitbucket-client/pkg/models"
)

// UserResource — доступ к пользователям сервера.
type UserResource struct {
	client bitbucket.RestClient
}

// NewUserResource создаёт ресурс пользователей.
func NewUserResource(client bitbucket.RestClient) *UserResource {
	return &UserResource{client: client}
}

// GetAllUsers возвращает всех пользователей.
func (r *UserResource) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return getAll[models.User](ctx, r.client, resourceUsers, root(r.client).Users())
}

// GetUser возвращает пользователя по slug.
func (r *UserResource) GetUser(ctx context.Context, slug string) (*models.User, error) {
	return getOne[models.User](ctx, r.client, root(r.client).Users().User(slug))
}
