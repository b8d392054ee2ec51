// Package resources предоставляет типизированный доступ к ресурсам
// Bitbucket Server: проектам, репозиториям, веткам, коммитам,
// pull request-ам и пользователям.
//
// Каждый ресурс строит URI через пакет uri от схемы и хоста клиента,
// коллекции собираются постранично через paging.Accumulate.
// Ошибки клиента возвращаются без обёртки, чтобы сохранялись их коды.
package resources

import (
	"context"

	"github.com/Kargones/bitbucket-client/pkg/bitbucket"
	"github.com/Kargones/bitbucket-client/pkg/models"
	"github.com/Kargones/bitbucket-client/pkg/paging"
	"github.com/Kargones/bitbucket-client/pkg/uri"
)

// Имена ресурсов для учёта страниц.
const (
	resourceProjects     = "projects"
	resourceRepositories = "repositories"
	resourceTags         = "tags"
	resourceBranches     = "branches"
	resourceCommits      = "commits"
	resourcePullRequests = "pull-requests"
	resourceUsers        = "users"
)

// root возвращает корневой URI-ресурс для сервера клиента.
func root(e bitbucket.Endpoint) uri.Resource {
	return uri.New().Scheme(e.Scheme()).Host(e.Host())
}

// getAll собирает все страницы коллекции b.
func getAll[T any](ctx context.Context, client bitbucket.RestClient, resource string, b uri.Builder) ([]T, error) {
	collection, err := b.Build()
	if err != nil {
		return nil, err
	}
	return getAllFrom[T](ctx, client, resource, collection)
}

// getAllFrom собирает все страницы коллекции по готовому URI.
func getAllFrom[T any](ctx context.Context, client bitbucket.RestClient, resource, collection string) ([]T, error) {
	recorder, _ := client.(bitbucket.PageRecorder)

	return paging.Accumulate[T](ctx, collection, func(ctx context.Context, pageURI string) (*models.PagedResponse[T], error) {
		var page models.PagedResponse[T]
		if err := client.Get(ctx, pageURI, &page); err != nil {
			return nil, err
		}
		if recorder != nil {
			recorder.RecordPage(resource)
		}
		return &page, nil
	})
}

// getOne загружает одиночный объект по URI b.
func getOne[T any](ctx context.Context, client bitbucket.Reader, b uri.Builder) (*T, error) {
	target, err := b.Build()
	if err != nil {
		return nil, err
	}
	var out T
	if err := client.Get(ctx, target, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// create отправляет body методом POST на URI b и возвращает созданный объект.
func create[T any](ctx context.Context, client bitbucket.Writer, b uri.Builder, body any) (*T, error) {
	target, err := b.Build()
	if err != nil {
		return nil, err
	}
	var out T
	if err := client.Post(ctx, target, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// remove удаляет ресурс по URI b.
func remove(ctx context.Context, client bitbucket.Writer, b uri.Builder) error {
	target, err := b.Build()
	if err != nil {
		return err
	}
	return client.Delete(ctx, target)
}
