package bitbucket

import (
	"errors"
	"fmt"

	"github.com/Kargones/bitbucket-client/internal/pkg/apperrors"
	"github.com/Kargones/bitbucket-client/pkg/models"
)

// Коды ошибок для операций с Bitbucket.
const (
	// ErrBitbucketConnect — ошибка подключения к серверу
	ErrBitbucketConnect = "BITBUCKET.CONNECT_FAILED"
	// ErrBitbucketAPI — сервер вернул ошибку
	ErrBitbucketAPI = "BITBUCKET.API_FAILED"
	// ErrBitbucketAuth — ошибка аутентификации или недостаточно прав (401, 403)
	ErrBitbucketAuth = "BITBUCKET.AUTH_FAILED"
	// ErrBitbucketTimeout — превышено время ожидания
	ErrBitbucketTimeout = "BITBUCKET.TIMEOUT"
	// ErrBitbucketNotFound — ресурс не найден (404)
	ErrBitbucketNotFound = "BITBUCKET.NOT_FOUND"
	// ErrBitbucketDecode — тело успешного ответа не разобрано
	ErrBitbucketDecode = "BITBUCKET.DECODE_FAILED"
	// ErrBitbucketRequest — запрос не удалось сформировать
	ErrBitbucketRequest = "BITBUCKET.REQUEST_FAILED"
	// ErrBitbucketValidation — ошибка валидации входных данных
	ErrBitbucketValidation = "BITBUCKET.VALIDATION_FAILED"
)

// BitbucketError представляет ошибку при работе с REST API Bitbucket.
type BitbucketError struct {
	// Code — код ошибки (одна из констант ErrBitbucket*)
	Code string
	// Message — описание ошибки; для ответов сервера — его сообщения через "; "
	Message string
	// Cause — оригинальная ошибка (если есть)
	Cause error
	// StatusCode — HTTP статус ответа, 0 если ответ не получен
	StatusCode int
	// ServerErrors — ошибки из тела ответа сервера
	ServerErrors []models.ServerError
}

// Error реализует интерфейс error.
func (e *BitbucketError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap возвращает оригинальную ошибку для errors.Is/As.
func (e *BitbucketError) Unwrap() error {
	return e.Cause
}

// ErrorCode возвращает машиночитаемый код ошибки.
func (e *BitbucketError) ErrorCode() string {
	return e.Code
}

// Details возвращает ошибки сервера одной ошибкой с нумерованным списком.
// nil, если сервер не прислал ошибок.
func (e *BitbucketError) Details() error {
	return models.ServerErrors{Errors: e.ServerErrors}.Err()
}

// As поддерживает преобразование BitbucketError в apperrors.AppError через errors.As.
func (e *BitbucketError) As(target interface{}) bool {
	if t, ok := target.(**apperrors.AppError); ok {
		*t = apperrors.NewAppError(e.Code, e.Message, e.Cause)
		return true
	}
	return false
}

// NewBitbucketError создаёт новую ошибку Bitbucket.
func NewBitbucketError(code, message string, cause error) *BitbucketError {
	return &BitbucketError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewBitbucketErrorWithStatus создаёт ошибку Bitbucket с HTTP статусом.
func NewBitbucketErrorWithStatus(code, message string, statusCode int, cause error) *BitbucketError {
	return &BitbucketError{
		Code:       code,
		Message:    message,
		Cause:      cause,
		StatusCode: statusCode,
	}
}

// ValidationError представляет ошибку валидации входных данных.
type ValidationError struct {
	// Field — имя поля с ошибкой
	Field string
	// Message — описание ошибки
	Message string
	// Cause — оригинальная ошибка (если есть)
	Cause error
}

// Error реализует интерфейс error.
func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] поле '%s': %s: %v", ErrBitbucketValidation, e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] поле '%s': %s", ErrBitbucketValidation, e.Field, e.Message)
}

// Unwrap возвращает оригинальную ошибку.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// ErrorCode возвращает машиночитаемый код ошибки валидации.
func (e *ValidationError) ErrorCode() string {
	return ErrBitbucketValidation
}

// NewValidationError создаёт новую ошибку валидации.
func NewValidationError(field, message string, cause error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Cause: cause}
}

func hasCode(err error, code string) bool {
	var bbErr *BitbucketError
	if errors.As(err, &bbErr) {
		return bbErr.Code == code
	}
	return false
}

// IsNotFoundError проверяет, является ли ошибка ошибкой "не найдено".
func IsNotFoundError(err error) bool { return hasCode(err, ErrBitbucketNotFound) }

// IsAuthError проверяет, является ли ошибка ошибкой аутентификации.
func IsAuthError(err error) bool { return hasCode(err, ErrBitbucketAuth) }

// IsTimeoutError проверяет, является ли ошибка ошибкой таймаута.
func IsTimeoutError(err error) bool { return hasCode(err, ErrBitbucketTimeout) }

// IsConnectionError проверяет, является ли ошибка ошибкой подключения.
func IsConnectionError(err error) bool { return hasCode(err, ErrBitbucketConnect) }

// IsAPIError проверяет, является ли ошибка общей ошибкой API.
func IsAPIError(err error) bool { return hasCode(err, ErrBitbucketAPI) }

// IsDecodeError проверяет, является ли ошибка ошибкой разбора ответа.
func IsDecodeError(err error) bool { return hasCode(err, ErrBitbucketDecode) }

// IsValidationError проверяет, является ли ошибка ошибкой валидации.
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
