package uri

// Logs — настройки логирования сервера.
type Logs struct {
	parent Resource
}

// Build реализует Builder.
func (l Logs) Build() (string, error) { return join(l.parent, "logs") }

// Logger выбирает именованный логгер сервера.
func (l Logs) Logger(name string) Logger { return Logger{parent: l, name: name} }

// RootLogger выбирает корневой логгер сервера.
func (l Logs) RootLogger() RootLogger { return RootLogger{parent: l} }

// Logger — именованный логгер: "logs/logger/{name}".
type Logger struct {
	parent Logs
	name   string
}

// Build реализует Builder.
func (l Logger) Build() (string, error) { return join(l.parent, "logger/"+l.name) }

// Level — уровень логгера.
func (l Logger) Level(level string) Terminal[Logger] { return NewTerminal(l, level) }

// RootLogger — корневой логгер: "logs/rootLogger".
type RootLogger struct {
	parent Logs
}

// Build реализует Builder.
func (l RootLogger) Build() (string, error) { return join(l.parent, "rootLogger") }

// Level — уровень корневого логгера.
func (l RootLogger) Level(level string) Terminal[RootLogger] { return NewTerminal(l, level) }
