package models

import "strings"

// CreateProject — тело запроса на создание проекта.
type CreateProject struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	// Avatar — изображение в формате data URI.
	Avatar *string `json:"avatar,omitempty"`
}

// Reviewer — ревьюер в запросе на создание pull request-а.
type Reviewer struct {
	User ReviewerUser `json:"user"`
}

// ReviewerUser идентифицирует ревьюера по имени.
type ReviewerUser struct {
	Name string `json:"name"`
}

// CreatePullRequest — тело запроса на создание pull request-а.
type CreatePullRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	FromRef     Ref        `json:"fromRef"`
	ToRef       Ref        `json:"toRef"`
	Reviewers   []Reviewer `json:"reviewers,omitempty"`
}

// NewCreatePullRequest собирает запрос на слияние ветки from в ветку to
// внутри одного репозитория. Имена веток дополняются до refs/heads/.
func NewCreatePullRequest(project, repo, title, from, to string, reviewers ...string) CreatePullRequest {
	ref := func(branch string) Ref {
		return Ref{
			ID: qualifyBranch(branch),
			Repository: RefRepository{
				Slug:    repo,
				Project: RefProject{Key: project},
			},
		}
	}

	req := CreatePullRequest{
		Title:   title,
		FromRef: ref(from),
		ToRef:   ref(to),
	}
	for _, name := range reviewers {
		req.Reviewers = append(req.Reviewers, Reviewer{User: ReviewerUser{Name: name}})
	}
	return req
}

const branchPrefix = "refs/heads/"

func qualifyBranch(branch string) string {
	if strings.HasPrefix(branch, branchPrefix) {
		return branch
	}
	return branchPrefix + branch
}
