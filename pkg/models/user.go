package models

// User — пользователь Bitbucket Server.
type User struct {
	Name        string `json:"name"`
	Email       string `json:"emailAddress"`
	ID          uint64 `json:"id"`
	DisplayName string `json:"displayName"`
	Active      bool   `json:"active"`
	Slug        string `json:"slug"`
	Type        string `json:"type"`
}

// ApplicationProperties — сведения о версии сервера.
type ApplicationProperties struct {
	Version     string `json:"version"`
	BuildNumber string `json:"buildNumber"`
	BuildDate   string `json:"buildDate"`
	DisplayName string `json:"displayName"`
}
