package uri

// Admin — административные ресурсы сервера.
type Admin struct {
	parent Resource
}

// Build реализует Builder.
func (a Admin) Build() (string, error) { return join(a.parent, "admin") }

// Groups переходит к управлению группами.
func (a Admin) Groups() AdminGroups { return AdminGroups{parent: a} }

// Users переходит к управлению пользователями.
func (a Admin) Users() AdminUsers { return AdminUsers{parent: a} }

// Permissions переходит к глобальным правам.
func (a Admin) Permissions() Permissions[Admin] { return Permissions[Admin]{parent: a} }

// MailServer переходит к настройкам почтового сервера.
func (a Admin) MailServer() MailServer { return MailServer{parent: a} }

func (a Admin) Cluster() Terminal[Admin] { return action(a, "Cluster") }
func (a Admin) Licence() Terminal[Admin] { return action(a, "Licence") }

// AdminGroups — управление группами.
type AdminGroups struct {
	parent Admin
}

// Build реализует Builder.
func (g AdminGroups) Build() (string, error) { return join(g.parent, "groups") }

func (g AdminGroups) AddUser() Terminal[AdminGroups]        { return action(g, "AddUser") }
func (g AdminGroups) AddUsers() Terminal[AdminGroups]       { return action(g, "AddUsers") }
func (g AdminGroups) MoreMembers() Terminal[AdminGroups]    { return action(g, "MoreMembers") }
func (g AdminGroups) MoreNonMembers() Terminal[AdminGroups] { return action(g, "MoreNonMembers") }
func (g AdminGroups) RemoveUser() Terminal[AdminGroups]     { return action(g, "RemoveUser") }

// AdminUsers — управление пользователями.
type AdminUsers struct {
	parent Admin
}

// Build реализует Builder.
func (u AdminUsers) Build() (string, error) { return join(u.parent, "users") }

func (u AdminUsers) AddGroup() Terminal[AdminUsers]       { return action(u, "AddGroup") }
func (u AdminUsers) AddGroups() Terminal[AdminUsers]      { return action(u, "AddGroups") }
func (u AdminUsers) Captcha() Terminal[AdminUsers]        { return action(u, "Captcha") }
func (u AdminUsers) Credentials() Terminal[AdminUsers]    { return action(u, "Credentials") }
func (u AdminUsers) MoreMembers() Terminal[AdminUsers]    { return action(u, "MoreMembers") }
func (u AdminUsers) MoreNonMembers() Terminal[AdminUsers] { return action(u, "MoreNonMembers") }
func (u AdminUsers) RemoveGroup() Terminal[AdminUsers]    { return action(u, "RemoveGroup") }
func (u AdminUsers) Rename() Terminal[AdminUsers]         { return action(u, "Rename") }

// MailServer — настройки почтового сервера.
type MailServer struct {
	parent Admin
}

// Build реализует Builder.
func (m MailServer) Build() (string, error) { return join(m.parent, "mail-server") }

// SenderAddress — адрес отправителя.
func (m MailServer) SenderAddress() Terminal[MailServer] { return action(m, "SenderAddress") }
