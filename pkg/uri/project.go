package uri

// Projects — коллекция проектов.
type Projects struct {
	parent Resource
}

// Build реализует Builder.
func (p Projects) Build() (string, error) { return join(p.parent, "projects") }

// Project выбирает проект по ключу.
func (p Projects) Project(key string) Project { return Project{parent: p, key: key} }

// Project — конкретный проект.
type Project struct {
	parent Projects
	key    string
}

// Build реализует Builder.
func (p Project) Build() (string, error) { return join(p.parent, p.key) }

// Avatar — аватар проекта.
func (p Project) Avatar() Terminal[Project] { return NewTerminal(p, "avatar.png") }

// Repos переходит к репозиториям проекта.
func (p Project) Repos() Repos { return Repos{parent: p} }

// Permissions переходит к правам проекта.
func (p Project) Permissions() ProjectPermissions {
	return ProjectPermissions{inner: Permissions[Project]{parent: p}}
}

// ProjectPermissions — права проекта. Кроме групп и пользователей
// допускает обращение к отдельному праву.
type ProjectPermissions struct {
	inner Permissions[Project]
}

// Build реализует Builder.
func (p ProjectPermissions) Build() (string, error) { return p.inner.Build() }

// Groups переходит к правам групп.
func (p ProjectPermissions) Groups() GroupPermissions[Project] { return p.inner.Groups() }

// Users переходит к правам пользователей.
func (p ProjectPermissions) Users() UserPermissions[Project] { return p.inner.Users() }

// Permission выбирает право по имени (например, PROJECT_READ).
func (p ProjectPermissions) Permission(name string) ProjectPermission {
	return ProjectPermission{parent: p, name: name}
}

// ProjectPermission — отдельное право проекта.
type ProjectPermission struct {
	parent ProjectPermissions
	name   string
}

// Build реализует Builder.
func (p ProjectPermission) Build() (string, error) { return join(p.parent, p.name) }

// All — выдача права всем пользователям.
func (p ProjectPermission) All() Terminal[ProjectPermission] { return action(p, "All") }
