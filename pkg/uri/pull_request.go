package uri

import "strconv"

// PullRequests — pull request-ы репозитория.
type PullRequests struct {
	parent Repository
}

// Build реализует Builder.
func (p PullRequests) Build() (string, error) { return join(p.parent, "pull-requests") }

// PullRequest выбирает pull request по номеру.
func (p PullRequests) PullRequest(id uint64) PullRequest { return PullRequest{parent: p, id: id} }

// PullRequest — конкретный pull request.
type PullRequest struct {
	parent PullRequests
	id     uint64
}

// Build реализует Builder.
func (p PullRequest) Build() (string, error) {
	return join(p.parent, strconv.FormatUint(p.id, 10))
}

func (p PullRequest) Activities() Terminal[PullRequest]   { return action(p, "Activities") }
func (p PullRequest) Decline() Terminal[PullRequest]      { return action(p, "Decline") }
func (p PullRequest) Merge() Terminal[PullRequest]        { return action(p, "Merge") }
func (p PullRequest) Reopen() Terminal[PullRequest]       { return action(p, "Reopen") }
func (p PullRequest) Approve() Terminal[PullRequest]      { return action(p, "Approve") }
func (p PullRequest) Changes() Terminal[PullRequest]      { return action(p, "Changes") }
func (p PullRequest) Commits() Terminal[PullRequest]      { return action(p, "Commits") }
func (p PullRequest) Participants() Terminal[PullRequest] { return action(p, "Participants") }
func (p PullRequest) Watch() Terminal[PullRequest]        { return action(p, "Watch") }
func (p PullRequest) Diff() Diff[PullRequest]             { return newDiff(p) }

// Comments переходит к комментариям pull request-а.
func (p PullRequest) Comments() PullRequestComments { return PullRequestComments{parent: p} }

// Tasks переходит к задачам pull request-а.
func (p PullRequest) Tasks() Tasks { return Tasks{parent: p} }

// PullRequestComments — комментарии pull request-а.
type PullRequestComments struct {
	parent PullRequest
}

// Build реализует Builder.
func (c PullRequestComments) Build() (string, error) { return join(c.parent, "comments") }

// Comment выбирает комментарий по идентификатору.
func (c PullRequestComments) Comment(id uint64) Terminal[PullRequestComments] {
	return NewTerminal(c, strconv.FormatUint(id, 10))
}

// Tasks — задачи pull request-а.
type Tasks struct {
	parent PullRequest
}

// Build реализует Builder.
func (t Tasks) Build() (string, error) { return join(t.parent, "tasks") }

// Count — количество задач.
func (t Tasks) Count() Terminal[Tasks] { return action(t, "Count") }
