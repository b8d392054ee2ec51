// Package constants содержит константы утилиты bbctl.
package constants

// Версия сборки. Переопределяется через -ldflags:
//
//	go build -ldflags "-X github.com/Kargones/bitbucket-client/internal/constants.Version=1.2.0"
var (
	// Version — версия bbctl.
	Version = "dev"
	// Commit — хеш коммита сборки.
	Commit = "unknown"
)

// APIVersion — версия формата вывода команд.
const APIVersion = "v1"

// Имена команд bbctl.
const (
	ActVersion           = "version"
	ActServerInfo        = "server-info"
	ActListProjects      = "list-projects"
	ActGetProject        = "get-project"
	ActListRepos         = "list-repos"
	ActListTags          = "list-tags"
	ActListBranches      = "list-branches"
	ActDefaultBranch     = "default-branch"
	ActListCommits       = "list-commits"
	ActListPullRequests  = "list-pull-requests"
	ActCreatePullRequest = "create-pull-request"
	ActListUsers         = "list-users"
)

// Переменные окружения bbctl, не относящиеся к конфигурации клиента.
const (
	// EnvConfigFile — путь к YAML-конфигурации.
	EnvConfigFile = "BB_CONFIG"
	// EnvOutputFormat — формат вывода: text или json.
	EnvOutputFormat = "BB_OUTPUT_FORMAT"
)
