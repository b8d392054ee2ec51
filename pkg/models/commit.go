package models

import "time"

// Author — автор коммита.
type Author struct {
	Name  string `json:"name"`
	Email string `json:"emailAddress"`
}

// ParentCommit — ссылка на родительский коммит.
type ParentCommit struct {
	ID        string `json:"id"`
	DisplayID string `json:"displayId"`
}

// Commit — коммит репозитория.
type Commit struct {
	ID        string `json:"id"`
	DisplayID string `json:"displayId"`
	Author    Author `json:"author"`
	// AuthorTimestamp — время коммита в миллисекундах Unix.
	AuthorTimestamp uint64         `json:"authorTimestamp"`
	Message         string         `json:"message"`
	Parents         []ParentCommit `json:"parents"`
}

// AuthoredAt возвращает время коммита.
func (c Commit) AuthoredAt() time.Time {
	return time.UnixMilli(int64(c.AuthorTimestamp))
}

// IsMerge сообщает, является ли коммит merge-коммитом.
func (c Commit) IsMerge() bool {
	return len(c.Parents) > 1
}
