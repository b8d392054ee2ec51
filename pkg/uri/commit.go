package uri

import "strconv"

// Commits — коммиты репозитория.
type Commits struct {
	parent Repository
}

// Build реализует Builder.
func (c Commits) Build() (string, error) { return join(c.parent, "commits") }

// Commit выбирает коммит по идентификатору (полному или сокращённому хэшу).
func (c Commits) Commit(id string) Commit { return Commit{parent: c, id: id} }

// Commit — конкретный коммит.
type Commit struct {
	parent Commits
	id     string
}

// Build реализует Builder.
func (c Commit) Build() (string, error) { return join(c.parent, c.id) }

func (c Commit) Changes() Terminal[Commit] { return action(c, "Changes") }
func (c Commit) Watch() Terminal[Commit]   { return action(c, "Watch") }
func (c Commit) Diff() Diff[Commit]        { return newDiff(c) }

// Comments переходит к комментариям коммита.
func (c Commit) Comments() CommitComments { return CommitComments{parent: c} }

// CommitComments — комментарии коммита.
type CommitComments struct {
	parent Commit
}

// Build реализует Builder.
func (c CommitComments) Build() (string, error) { return join(c.parent, "comments") }

// Comment выбирает комментарий по идентификатору.
func (c CommitComments) Comment(id uint64) Terminal[CommitComments] {
	return NewTerminal(c, strconv.FormatUint(id, 10))
}
