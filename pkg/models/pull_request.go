package models

import (
	"fmt"
	"strings"
)

// PullRequestState — фильтр и состояние pull request-а.
type PullRequestState string

const (
	PullRequestStateAll      PullRequestState = "ALL"
	PullRequestStateOpen     PullRequestState = "OPEN"
	PullRequestStateMerged   PullRequestState = "MERGED"
	PullRequestStateDeclined PullRequestState = "DECLINED"
)

// String возвращает значение параметра state в запросе.
func (s PullRequestState) String() string {
	return string(s)
}

// ParsePullRequestState разбирает состояние без учёта регистра.
func ParsePullRequestState(s string) (PullRequestState, error) {
	switch state := PullRequestState(strings.ToUpper(strings.TrimSpace(s))); state {
	case PullRequestStateAll, PullRequestStateOpen, PullRequestStateMerged, PullRequestStateDeclined:
		return state, nil
	default:
		return "", fmt.Errorf("неизвестное состояние pull request %q", s)
	}
}

// RefProject — проект репозитория в ссылке на ветку.
type RefProject struct {
	Key string `json:"key"`
}

// RefRepository — репозиторий в ссылке на ветку.
type RefRepository struct {
	Slug    string     `json:"slug"`
	Name    *string    `json:"name,omitempty"`
	Project RefProject `json:"project"`
}

// Ref — ветка-источник или ветка-назначение pull request-а.
type Ref struct {
	ID         string        `json:"id"`
	Repository RefRepository `json:"repository"`
}

// Member — участник pull request-а (автор, ревьюер).
type Member struct {
	User     User   `json:"user"`
	Role     string `json:"role"`
	Approved bool   `json:"approved"`
}

// PullRequest — pull request.
type PullRequest struct {
	ID           uint64           `json:"id"`
	Version      uint32           `json:"version"`
	Title        string           `json:"title"`
	Description  *string          `json:"description,omitempty"`
	State        PullRequestState `json:"state"`
	Open         bool             `json:"open"`
	Closed       bool             `json:"closed"`
	CreatedDate  uint64           `json:"createdDate"`
	UpdatedDate  uint64           `json:"updatedDate"`
	FromRef      Ref              `json:"fromRef"`
	ToRef        Ref              `json:"toRef"`
	Locked       bool             `json:"locked"`
	Author       Member           `json:"author"`
	Reviewers    []Member         `json:"reviewers"`
	Participants []Member         `json:"participants"`
	Link         *Link            `json:"link,omitempty"`
	Links        Links            `json:"links"`
}

// ApprovedBy сообщает, одобрил ли pull request ревьюер с именем name.
func (p PullRequest) ApprovedBy(name string) bool {
	for _, r := range p.Reviewers {
		if r.User.Name == name {
			return r.Approved
		}
	}
	return false
}
