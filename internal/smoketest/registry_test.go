package smoketest

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/bitbucket-client/internal/command"
	"github.com/Kargones/bitbucket-client/internal/command/handlers"
	"github.com/Kargones/bitbucket-client/internal/constants"
)

// allCommands — полный список команд: {константа, ожидаемое имя, число аргументов}.
var allCommands = []struct {
	constant string
	name     string
	args     int
}{
	{constants.ActVersion, "version", 0},
	{constants.ActServerInfo, "server-info", 0},
	{constants.ActListProjects, "list-projects", 0},
	{constants.ActGetProject, "get-project", 1},
	{constants.ActListRepos, "list-repos", 1},
	{constants.ActListTags, "list-tags", 2},
	{constants.ActListBranches, "list-branches", 2},
	{constants.ActDefaultBranch, "default-branch", 2},
	{constants.ActListCommits, "list-commits", 2},
	{constants.ActListPullRequests, "list-pull-requests", 2},
	{constants.ActCreatePullRequest, "create-pull-request", 2},
	{constants.ActListUsers, "list-users", 0},
}

var argNamePattern = regexp.MustCompile(`^[a-z]+$`)

func TestMain(m *testing.M) {
	handlers.RegisterAll()
	os.Exit(m.Run())
}

func TestSmoke_AllCommandsRegistered(t *testing.T) {
	require.Len(t, command.Names(), len(allCommands), "в реестре нет лишних команд")

	for _, tc := range allCommands {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.constant,
				"значение константы constants.Act* должно совпадать с именем команды")
			h, ok := command.Get(tc.name)
			require.True(t, ok, "команда %q должна быть зарегистрирована", tc.name)
			assert.Equal(t, tc.name, h.Name())
			assert.NotEmpty(t, h.Description())
		})
	}
}

func TestSmoke_ArgNames(t *testing.T) {
	for _, tc := range allCommands {
		t.Run(tc.name, func(t *testing.T) {
			h, _ := command.Get(tc.name)
			names := command.ArgNames(h)
			assert.Len(t, names, tc.args)
			for _, n := range names {
				assert.Regexp(t, argNamePattern, n)
			}
		})
	}
}

func TestSmoke_OnlyVersionStandalone(t *testing.T) {
	for _, name := range command.Names() {
		h, _ := command.Get(name)
		assert.Equal(t, name == constants.ActVersion, command.IsStandalone(h), name)
	}
}

func TestSmoke_NamesDeterministic(t *testing.T) {
	first := command.Names()
	seen := make(map[string]bool, len(first))
	for _, name := range first {
		assert.False(t, seen[name], "дубликат имени команды: %q", name)
		seen[name] = true
	}
	assert.Equal(t, first, command.Names())
	assert.IsIncreasing(t, first)
}

func TestSmoke_DuplicateRegistrationPanics(t *testing.T) {
	assert.Panics(t, handlers.RegisterAll)
}
