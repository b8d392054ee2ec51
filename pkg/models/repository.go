package models

// CloneLink — адрес клонирования репозитория для одного протокола.
type CloneLink struct {
	Href string `json:"href"`
	// Name — протокол: "http" или "ssh".
	Name string `json:"name"`
}

// RepositoryLinks — ссылки репозитория.
type RepositoryLinks struct {
	Clone []CloneLink `json:"clone"`
	Self  []LinkPart  `json:"self"`
}

// CloneURL возвращает адрес клонирования для протокола name.
func (l RepositoryLinks) CloneURL(name string) (string, bool) {
	for _, c := range l.Clone {
		if c.Name == name {
			return c.Href, true
		}
	}
	return "", false
}

// Repository — репозиторий проекта.
type Repository struct {
	Slug          string          `json:"slug"`
	ID            uint32          `json:"id"`
	Name          string          `json:"name"`
	ScmID         string          `json:"scmId"`
	State         string          `json:"state"`
	StatusMessage string          `json:"statusMessage"`
	Forkable      bool            `json:"forkable"`
	Project       Project         `json:"project"`
	Public        bool            `json:"public"`
	CloneURL      *string         `json:"cloneUrl,omitempty"`
	Link          *Link           `json:"link,omitempty"`
	Links         RepositoryLinks `json:"links"`
}
