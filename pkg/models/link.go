// Package models содержит типы ответов и запросов REST API Bitbucket Server.
package models

// Link — устаревшая форма ссылки ({"url": ..., "rel": ...}).
type Link struct {
	URL string `json:"url"`
	Rel string `json:"rel"`
}

// LinkPart — одна ссылка в наборе links.
type LinkPart struct {
	Href string `json:"href"`
}

// Links — набор ссылок на ресурс в веб-интерфейсе.
type Links struct {
	Self []LinkPart `json:"self"`
}

// SelfHref возвращает первую self-ссылку или пустую строку.
func (l Links) SelfHref() string {
	if len(l.Self) == 0 {
		return ""
	}
	return l.Self[0].Href
}
