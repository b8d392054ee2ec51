package models

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ServerError — элемент списка ошибок, возвращаемого сервером.
type ServerError struct {
	Context       *string `json:"context"`
	Message       string  `json:"message"`
	ExceptionName string  `json:"exceptionName"`
}

// Error реализует интерфейс error: текст ошибки — сообщение сервера.
func (e ServerError) Error() string {
	return e.Message
}

// ServerErrors — тело ответа сервера с ошибками: {"errors": [...]}.
type ServerErrors struct {
	Errors []ServerError `json:"errors"`
}

// Messages возвращает сообщения всех ошибок в исходном порядке.
func (e ServerErrors) Messages() []string {
	msgs := make([]string, 0, len(e.Errors))
	for _, se := range e.Errors {
		msgs = append(msgs, se.Message)
	}
	return msgs
}

// Err объединяет ошибки сервера в одну. Для пустого списка возвращает nil.
func (e ServerErrors) Err() error {
	if len(e.Errors) == 0 {
		return nil
	}
	var result *multierror.Error
	for _, se := range e.Errors {
		result = multierror.Append(result, se)
	}
	result.ErrorFormat = formatServerErrors
	return result
}

// formatServerErrors выводит нумерованный список ошибок сервера.
func formatServerErrors(errs []error) string {
	var b strings.Builder
	b.WriteString("The following errors were encountered:\n")
	for i, err := range errs {
		fmt.Fprintf(&b, "    %d. %s\n", i+1, err)
	}
	return b.String()
}
