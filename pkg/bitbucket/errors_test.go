package bitbucket

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/bitbucket-client/internal/pkg/apperrors"
	"github.com/Kargones/bitbucket-client/pkg/models"
)

func TestBitbucketError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *BitbucketError
		expected string
	}{
		{
			name:     "без причины",
			err:      NewBitbucketErrorWithStatus(ErrBitbucketNotFound, "Project x not found", 404, nil),
			expected: "[BITBUCKET.NOT_FOUND] Project x not found",
		},
		{
			name:     "с причиной",
			err:      NewBitbucketError(ErrBitbucketConnect, "не удалось выполнить запрос", errors.New("connection refused")),
			expected: "[BITBUCKET.CONNECT_FAILED] не удалось выполнить запрос: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		code  string
		check func(error) bool
	}{
		{ErrBitbucketNotFound, IsNotFoundError},
		{ErrBitbucketAuth, IsAuthError},
		{ErrBitbucketTimeout, IsTimeoutError},
		{ErrBitbucketConnect, IsConnectionError},
		{ErrBitbucketAPI, IsAPIError},
		{ErrBitbucketDecode, IsDecodeError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := fmt.Errorf("обёртка: %w", NewBitbucketError(tt.code, "msg", nil))
			assert.True(t, tt.check(err))
			assert.False(t, tt.check(NewBitbucketError(ErrBitbucketRequest, "msg", nil)))
			assert.False(t, tt.check(errors.New("обычная ошибка")))
		})
	}
}

func TestBitbucketError_AsAppError(t *testing.T) {
	cause := errors.New("исходная")
	err := fmt.Errorf("get: %w", NewBitbucketError(ErrBitbucketAPI, "ошибка сервера", cause))

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ErrBitbucketAPI, appErr.Code)
	assert.Equal(t, "ошибка сервера", appErr.Message)
	assert.ErrorIs(t, appErr, cause)
	assert.Equal(t, ErrBitbucketAPI, apperrors.CodeOf(err))
}

func TestBitbucketError_Details(t *testing.T) {
	err := &BitbucketError{
		Code: ErrBitbucketAPI,
		ServerErrors: []models.ServerError{
			{Message: "first"},
			{Message: "second"},
		},
	}

	assert.Equal(t,
		"The following errors were encountered:\n    1. first\n    2. second\n",
		err.Details().Error())
	assert.NoError(t, (&BitbucketError{}).Details())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("config", "невалидная конфигурация", errors.New("host: cannot be blank"))

	assert.Equal(t, "[BITBUCKET.VALIDATION_FAILED] поле 'config': невалидная конфигурация: host: cannot be blank", err.Error())
	assert.Equal(t, ErrBitbucketValidation, err.ErrorCode())
	assert.True(t, IsValidationError(fmt.Errorf("w: %w", err)))
}

func TestCodeForStatus(t *testing.T) {
	assert.Equal(t, ErrBitbucketAuth, codeForStatus(401))
	assert.Equal(t, ErrBitbucketAuth, codeForStatus(403))
	assert.Equal(t, ErrBitbucketNotFound, codeForStatus(404))
	assert.Equal(t, ErrBitbucketTimeout, codeForStatus(504))
	assert.Equal(t, ErrBitbucketAPI, codeForStatus(400))
	assert.Equal(t, ErrBitbucketAPI, codeForStatus(500))
}
