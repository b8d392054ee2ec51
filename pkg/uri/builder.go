// Package uri строит адреса REST API Bitbucket Server.
//
// Каждый узел цепочки — отдельный неизменяемый тип, хранящий родителя по значению.
// Набор доступных переходов определяется типом узла, поэтому невалидная
// последовательность сегментов не компилируется:
//
//	u, err := uri.New().Host("bitbucket:7990").
//	    Projects().Project("PRJ").
//	    Repos().Repository("repo").
//	    PullRequests().PullRequest(1).
//	    Tasks().Count().
//	    Build()
//	// u: "http://bitbucket:7990/rest/api/1.0/projects/PRJ/repos/repo/pull-requests/1/tasks/count"
//
// Идентификаторы подставляются как есть, без экранирования.
package uri

import (
	"github.com/iancoleman/strcase"

	"github.com/Kargones/bitbucket-client/internal/pkg/apperrors"
)

// APIPath — префикс REST API, добавляемый к адресу сервера.
const APIPath = "rest/api/1.0"

// Builder реализуется каждым узлом цепочки.
type Builder interface {
	// Build возвращает полный URI узла или ошибку, возникшую выше по цепочке.
	Build() (string, error)
}

// BuildError — ошибка построения URI.
type BuildError struct {
	// Code — код ошибки (apperrors.ErrURI*).
	Code string
	// Message — текст ошибки.
	Message string
}

// ErrHostRequired возвращается, если у корневого узла не задан host.
var ErrHostRequired = &BuildError{Code: apperrors.ErrURIHostRequired, Message: "host must be initialized"}

// Error реализует интерфейс error.
func (e *BuildError) Error() string {
	return e.Message
}

// ErrorCode возвращает машиночитаемый код ошибки.
func (e *BuildError) ErrorCode() string {
	return e.Code
}

// As поддерживает преобразование BuildError в apperrors.AppError через errors.As.
func (e *BuildError) As(target interface{}) bool {
	if t, ok := target.(**apperrors.AppError); ok {
		*t = apperrors.NewAppError(e.Code, e.Message, nil)
		return true
	}
	return false
}

// join дописывает сегмент к URI родителя.
func join[B Builder](parent B, segment string) (string, error) {
	base, err := parent.Build()
	if err != nil {
		return "", err
	}
	return base + "/" + segment, nil
}

// action создаёт терминальный узел, сегмент которого — kebab-case имени действия.
// Например, MoreNonMembers → "more-non-members".
func action[B Builder](parent B, name string) Terminal[B] {
	return Terminal[B]{parent: parent, segment: strcase.ToKebab(name)}
}

// Terminal — конечный узел цепочки: допускает только Build.
type Terminal[B Builder] struct {
	parent  B
	segment string
}

// NewTerminal создаёт конечный узел с заданным сегментом.
func NewTerminal[B Builder](parent B, segment string) Terminal[B] {
	return Terminal[B]{parent: parent, segment: segment}
}

// Build реализует Builder.
func (t Terminal[B]) Build() (string, error) {
	return join(t.parent, t.segment)
}

// Path — узел с фиксированным сегментом, за которым допускается
// произвольный подпуть (например, путь к файлу в репозитории).
type Path[B Builder] struct {
	parent  B
	segment string
}

// NewPath создаёт узел с фиксированным сегментом.
func NewPath[B Builder](parent B, segment string) Path[B] {
	return Path[B]{parent: parent, segment: segment}
}

// Build реализует Builder.
func (p Path[B]) Build() (string, error) {
	return join(p.parent, p.segment)
}

// Path добавляет произвольный подпуть. Слэши внутри path сохраняются.
func (p Path[B]) Path(path string) Terminal[Path[B]] {
	return NewTerminal(p, path)
}
