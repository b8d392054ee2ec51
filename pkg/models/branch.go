package models

// Branch — ветка репозитория.
type Branch struct {
	ID              string `json:"id"`
	DisplayID       string `json:"displayId"`
	LatestChangeset string `json:"latestChangeset"`
	LatestCommit    string `json:"latestCommit"`
	IsDefault       bool   `json:"isDefault"`
}

// Tag — тег репозитория.
type Tag struct {
	ID              string `json:"id"`
	DisplayID       string `json:"displayId"`
	LatestChangeset string `json:"latestChangeset"`
	LatestCommit    string `json:"latestCommit"`
	Hash            string `json:"hash"`
}
