package resources

import (
	"context"

	"github.com/Kargones/bitbucket-client/pkg/bitbucket"
	"github.com/Kargones/bitbucket-client/pkg/models"
)

// ApplicationResource — сведения о самом сервере.
type ApplicationResource struct {
	client bitbucket.RestClient
}

// NewApplicationResource создаёт ресурс сведений о сервере.
func NewApplicationResource(client bitbucket.RestClient) *ApplicationResource {
	return &ApplicationResource{client: client}
}

// GetApplicationProperties возвращает версию и сборку сервера.
// Используется как проверка доступности.
func (r *ApplicationResource) GetApplicationProperties(ctx context.Context) (*models.ApplicationProperties, error) {
	return getOne[models.ApplicationProperties](ctx, r.client, root(r.client).ApplicationProperties())
}
