package uri

// Repos — коллекция репозиториев проекта.
type Repos struct {
	parent Project
}

// Build реализует Builder.
func (r Repos) Build() (string, error) { return join(r.parent, "repos") }

// Repository выбирает репозиторий по slug.
func (r Repos) Repository(slug string) Repository { return Repository{parent: r, slug: slug} }

// Repository — конкретный репозиторий.
type Repository struct {
	parent Repos
	slug   string
}

// Build реализует Builder.
func (r Repository) Build() (string, error) { return join(r.parent, r.slug) }

func (r Repository) Forks() Terminal[Repository]    { return action(r, "Forks") }
func (r Repository) Recreate() Terminal[Repository] { return action(r, "Recreate") }
func (r Repository) Related() Terminal[Repository]  { return action(r, "Related") }
func (r Repository) Changes() Terminal[Repository]  { return action(r, "Changes") }
func (r Repository) Tags() Terminal[Repository]     { return action(r, "Tags") }

// Branches переходит к веткам репозитория.
func (r Repository) Branches() Branches { return Branches{parent: r} }

// Commits переходит к коммитам репозитория.
func (r Repository) Commits() Commits { return Commits{parent: r} }

// PullRequests переходит к pull request-ам репозитория.
func (r Repository) PullRequests() PullRequests { return PullRequests{parent: r} }

func (r Repository) Diff() Diff[Repository]     { return newDiff(r) }
func (r Repository) Browse() Browse[Repository] { return newBrowse(r) }
func (r Repository) Files() Files[Repository]   { return newFiles(r) }

// Permissions переходит к правам репозитория.
func (r Repository) Permissions() Permissions[Repository] {
	return Permissions[Repository]{parent: r}
}

// Compare переходит к сравнению ревизий.
func (r Repository) Compare() Compare { return Compare{parent: r} }

// Settings переходит к настройкам репозитория.
func (r Repository) Settings() Settings { return Settings{parent: r} }

// Compare — сравнение ревизий репозитория.
type Compare struct {
	parent Repository
}

// Build реализует Builder.
func (c Compare) Build() (string, error) { return join(c.parent, "compare") }

func (c Compare) Changes() Terminal[Compare] { return action(c, "Changes") }
func (c Compare) Commits() Terminal[Compare] { return action(c, "Commits") }
func (c Compare) Diff() Diff[Compare]        { return newDiff(c) }

// Settings — настройки репозитория.
type Settings struct {
	parent Repository
}

// Build реализует Builder.
func (s Settings) Build() (string, error) { return join(s.parent, "settings") }

// Hooks переходит к настройкам хуков.
func (s Settings) Hooks() Hooks { return Hooks{parent: s} }

// Hooks — хуки репозитория.
type Hooks struct {
	parent Settings
}

// Build реализует Builder.
func (h Hooks) Build() (string, error) { return join(h.parent, "hooks") }

// Hook выбирает хук по ключу.
func (h Hooks) Hook(key string) Hook { return Hook{parent: h, key: key} }

// Hook — конкретный хук.
type Hook struct {
	parent Hooks
	key    string
}

// Build реализует Builder.
func (h Hook) Build() (string, error) { return join(h.parent, h.key) }

func (h Hook) Enabled() Terminal[Hook]  { return action(h, "Enabled") }
func (h Hook) Settings() Terminal[Hook] { return action(h, "Settings") }
