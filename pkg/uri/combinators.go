package uri

// Diff — сегмент "diff" с необязательным путём к файлу.
type Diff[B Builder] struct {
	path Path[B]
}

func newDiff[B Builder](parent B) Diff[B] {
	return Diff[B]{path: NewPath(parent, "diff")}
}

// Build реализует Builder.
func (d Diff[B]) Build() (string, error) { return d.path.Build() }

// Path уточняет diff до конкретного файла.
func (d Diff[B]) Path(path string) Terminal[Path[B]] { return d.path.Path(path) }

// Browse — сегмент "browse" с необязательным путём.
type Browse[B Builder] struct {
	path Path[B]
}

func newBrowse[B Builder](parent B) Browse[B] {
	return Browse[B]{path: NewPath(parent, "browse")}
}

// Build реализует Builder.
func (b Browse[B]) Build() (string, error) { return b.path.Build() }

// Path уточняет просмотр до каталога или файла.
func (b Browse[B]) Path(path string) Terminal[Path[B]] { return b.path.Path(path) }

// Files — сегмент "files" с необязательным путём.
type Files[B Builder] struct {
	path Path[B]
}

func newFiles[B Builder](parent B) Files[B] {
	return Files[B]{path: NewPath(parent, "files")}
}

// Build реализует Builder.
func (f Files[B]) Build() (string, error) { return f.path.Build() }

// Path уточняет список файлов до каталога.
func (f Files[B]) Path(path string) Terminal[Path[B]] { return f.path.Path(path) }

// Permissions — сегмент "permissions".
type Permissions[B Builder] struct {
	parent B
}

// Build реализует Builder.
func (p Permissions[B]) Build() (string, error) { return join(p.parent, "permissions") }

// Groups переходит к правам групп.
func (p Permissions[B]) Groups() GroupPermissions[B] { return GroupPermissions[B]{parent: p} }

// Users переходит к правам пользователей.
func (p Permissions[B]) Users() UserPermissions[B] { return UserPermissions[B]{parent: p} }

// GroupPermissions — сегмент "groups" внутри permissions.
type GroupPermissions[B Builder] struct {
	parent Permissions[B]
}

// Build реализует Builder.
func (g GroupPermissions[B]) Build() (string, error) { return join(g.parent, "groups") }

// None — группы без прав.
func (g GroupPermissions[B]) None() Terminal[GroupPermissions[B]] { return action(g, "None") }

// UserPermissions — сегмент "users" внутри permissions.
type UserPermissions[B Builder] struct {
	parent Permissions[B]
}

// Build реализует Builder.
func (u UserPermissions[B]) Build() (string, error) { return join(u.parent, "users") }

// None — пользователи без прав.
func (u UserPermissions[B]) None() Terminal[UserPermissions[B]] { return action(u, "None") }
