package uri

// Branches — ветки репозитория.
type Branches struct {
	parent Repository
}

// Build реализует Builder.
func (b Branches) Build() (string, error) { return join(b.parent, "branches") }

// Default — ветка по умолчанию.
func (b Branches) Default() Terminal[Branches] { return action(b, "Default") }
