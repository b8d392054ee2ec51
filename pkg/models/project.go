package models

// Project — проект Bitbucket Server.
type Project struct {
	Key         string  `json:"key"`
	ID          uint32  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Public      bool    `json:"public"`
	Type        string  `json:"type"`
	Link        *Link   `json:"link,omitempty"`
	Links       Links   `json:"links"`
}
