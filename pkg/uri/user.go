package uri

// Users — пользователи сервера.
type Users struct {
	parent Resource
}

// Build реализует Builder.
func (u Users) Build() (string, error) { return join(u.parent, "users") }

// Credentials — учётные данные текущего пользователя.
func (u Users) Credentials() Terminal[Users] { return action(u, "Credentials") }

// User выбирает пользователя по slug.
func (u Users) User(slug string) User { return User{parent: u, slug: slug} }

// User — конкретный пользователь.
type User struct {
	parent Users
	slug   string
}

// Build реализует Builder.
func (u User) Build() (string, error) { return join(u.parent, u.slug) }

// Avatar — аватар пользователя.
func (u User) Avatar() Terminal[User] { return NewTerminal(u, "avatar.png") }
