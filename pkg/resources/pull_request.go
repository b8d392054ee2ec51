package resources

import (
	"context"

	"github.com/Kargones/bitbucket-client/pkg/bitbucket"
	"github.com/Kargones/bitbucket-client/pkg/models"
	"github.com/Kargones/bitbucket-client/pkg/paging"
	"github.com/Kargones/bitbucket-client/pkg/uri"
)

// PullRequestResource — доступ к pull request-ам репозитория.
type PullRequestResource struct {
	client  bitbucket.RestClient
	project string
	repo    string
}

// NewPullRequestResource создаёт ресурс pull request-ов репозитория project/repo.
func NewPullRequestResource(client bitbucket.RestClient, project, repo string) *PullRequestResource {
	return &PullRequestResource{client: client, project: project, repo: repo}
}

func (r *PullRequestResource) pullRequests() uri.PullRequests {
	return root(r.client).Projects().Project(r.project).Repos().Repository(r.repo).PullRequests()
}

// GetAllPullRequestsWithState возвращает pull request-ы в состоянии state.
func (r *PullRequestResource) GetAllPullRequestsWithState(ctx context.Context, state models.PullRequestState) ([]models.PullRequest, error) {
	collection, err := r.pullRequests().Build()
	if err != nil {
		return nil, err
	}
	collection = paging.WithParam(collection, "state", state.String())
	return getAllFrom[models.PullRequest](ctx, r.client, resourcePullRequests, collection)
}

// GetAllPullRequests возвращает pull request-ы во всех состояниях.
func (r *PullRequestResource) GetAllPullRequests(ctx context.Context) ([]models.PullRequest, error) {
	return r.GetAllPullRequestsWithState(ctx, models.PullRequestStateAll)
}

// GetAllOpenPullRequests возвращает открытые pull request-ы.
func (r *PullRequestResource) GetAllOpenPullRequests(ctx context.Context) ([]models.PullRequest, error) {
	return r.GetAllPullRequestsWithState(ctx, models.PullRequestStateOpen)
}

// GetAllMergedPullRequests возвращает слитые pull request-ы.
func (r *PullRequestResource) GetAllMergedPullRequests(ctx context.Context) ([]models.PullRequest, error) {
	return r.GetAllPullRequestsWithState(ctx, models.PullRequestStateMerged)
}

// GetAllDeclinedPullRequests возвращает отклонённые pull request-ы.
func (r *PullRequestResource) GetAllDeclinedPullRequests(ctx context.Context) ([]models.PullRequest, error) {
	return r.GetAllPullRequestsWithState(ctx, models.PullRequestStateDeclined)
}

// GetPullRequest возвращает pull request по номеру.
func (r *PullRequestResource) GetPullRequest(ctx context.Context, id uint64) (*models.PullRequest, error) {
	return getOne[models.PullRequest](ctx, r.client, r.pullRequests().PullRequest(id))
}

// CreatePullRequest создаёт pull request.
func (r *PullRequestResource) CreatePullRequest(ctx context.Context, req models.CreatePullRequest) (*models.PullRequest, error) {
	return create[models.PullRequest](ctx, r.client, r.pullRequests(), req)
}

// WatchPullRequest подписывает текущего пользователя на pull request.
func (r *PullRequestResource) WatchPullRequest(ctx context.Context, id uint64) error {
	target, err := r.pullRequests().PullRequest(id).Watch().Build()
	if err != nil {
		return err
	}
	return r.client.Post(ctx, target, nil, nil)
}

// UnwatchPullRequest отменяет подписку текущего пользователя.
func (r *PullRequestResource) UnwatchPullRequest(ctx context.Context, id uint64) error {
	return remove(ctx, r.client, r.pullRequests().PullRequest(id).Watch())
}
