// Package apperrors предоставляет структурированные ошибки клиента.
// Переименован из errors чтобы избежать конфликта со стандартной библиотекой.
package apperrors

import (
	"errors"
	"fmt"
)

// Коды ошибок в иерархическом формате: CATEGORY.SPECIFIC_ERROR.
// Позволяет grep по категориям: `grep "CONFIG\."` для всех config ошибок.
const (
	// Category: CONFIG — ошибки загрузки и валидации конфигурации.
	ErrConfigLoad     = "CONFIG.LOAD_FAILED"
	ErrConfigParse    = "CONFIG.PARSE_FAILED"
	ErrConfigValidate = "CONFIG.VALIDATION_FAILED"

	// Category: URI — ошибки построения адресов REST API.
	ErrURIHostRequired = "URI.HOST_REQUIRED"
	ErrURIBuild        = "URI.BUILD_FAILED"

	// Category: PAGING — ошибки постраничной выборки.
	ErrPagingCursor = "PAGING.MISSING_CURSOR"

	// Category: COMMAND — ошибки выполнения команд bbctl.
	ErrCommandArgs   = "COMMAND.INVALID_ARGS"
	ErrCommandFailed = "COMMAND.FAILED"
)

// Coded реализуется ошибками, несущими машиночитаемый код.
type Coded interface {
	ErrorCode() string
}

// AppError представляет структурированную ошибку.
// Реализует error interface и поддерживает wrapping через Unwrap().
//
// ВАЖНО: Message НЕ ДОЛЖЕН содержать секреты (пароли, токены).
//
//	return apperrors.NewAppError(apperrors.ErrConfigLoad,
//	    "не удалось прочитать файл конфигурации",
//	    err)
type AppError struct {
	// Code — машиночитаемый код ошибки в формате CATEGORY.SPECIFIC.
	Code string `json:"code"`

	// Message — человекочитаемое описание ошибки.
	Message string `json:"message"`

	// Cause — wrapped оригинальная ошибка, в JSON не попадает.
	Cause error `json:"-"`
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap возвращает wrapped ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// ErrorCode реализует Coded.
func (e *AppError) ErrorCode() string {
	return e.Code
}

// NewAppError создаёт новый AppError с заданным кодом, сообщением и причиной.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf возвращает код первой ошибки в цепочке, реализующей Coded.
// Для ошибок без кода возвращает пустую строку.
func CodeOf(err error) string {
	var coded Coded
	if errors.As(err, &coded) {
		return coded.ErrorCode()
	}
	return ""
}
