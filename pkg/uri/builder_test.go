package uri

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/bitbucket-client/internal/pkg/apperrors"
)

const testHost = "localhost:7990"

// emptyBuilder — узел с пустым URI для проверки комбинаторов в изоляции.
type emptyBuilder struct{}

func (emptyBuilder) Build() (string, error) { return "", nil }

// failingBuilder — узел, всегда возвращающий ошибку.
type failingBuilder struct{ err error }

func (f failingBuilder) Build() (string, error) { return "", f.err }

func baseURI() string {
	return "http://" + testHost + "/rest/api/1.0"
}

func root() Resource {
	return New().Host(testHost)
}

func assertURI(t *testing.T, b Builder, expected string) {
	t.Helper()
	got, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestCombinators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		builder  Builder
		expected string
	}{
		{"terminal", NewTerminal(emptyBuilder{}, "watch"), "/watch"},
		{"path", NewPath(emptyBuilder{}, "raw"), "/raw"},
		{"path с подпутём", NewPath(emptyBuilder{}, "raw").Path("src/main.go"), "/raw/src/main.go"},
		{"diff", newDiff(emptyBuilder{}), "/diff"},
		{"diff с путём", newDiff(emptyBuilder{}).Path("README.md"), "/diff/README.md"},
		{"browse", newBrowse(emptyBuilder{}), "/browse"},
		{"browse с путём", newBrowse(emptyBuilder{}).Path("docs"), "/browse/docs"},
		{"files", newFiles(emptyBuilder{}), "/files"},
		{"files с путём", newFiles(emptyBuilder{}).Path("a/b"), "/files/a/b"},
		{"permissions", Permissions[emptyBuilder]{}, "/permissions"},
		{"permissions groups", Permissions[emptyBuilder]{}.Groups(), "/permissions/groups"},
		{"permissions groups none", Permissions[emptyBuilder]{}.Groups().None(), "/permissions/groups/none"},
		{"permissions users", Permissions[emptyBuilder]{}.Users(), "/permissions/users"},
		{"permissions users none", Permissions[emptyBuilder]{}.Users().None(), "/permissions/users/none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assertURI(t, tt.builder, tt.expected)
		})
	}
}

// TestCombinators_PropagateError проверяет, что ошибка родителя возвращается без изменений.
func TestCombinators_PropagateError(t *testing.T) {
	t.Parallel()

	cause := errors.New("ошибка родителя")
	parent := failingBuilder{err: cause}

	builders := []Builder{
		NewTerminal(parent, "x"),
		NewPath(parent, "x").Path("y"),
		newDiff(parent).Path("z"),
		Permissions[failingBuilder]{parent: parent}.Groups().None(),
	}

	for _, b := range builders {
		_, err := b.Build()
		assert.Same(t, cause, err)
	}
}

func TestAction_KebabCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected string
	}{
		{"Watch", "/watch"},
		{"AddUser", "/add-user"},
		{"MoreNonMembers", "/more-non-members"},
		{"SenderAddress", "/sender-address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assertURI(t, action(emptyBuilder{}, tt.name), tt.expected)
		})
	}
}

func TestBuildError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "host must be initialized", ErrHostRequired.Error())
	assert.Equal(t, apperrors.ErrURIHostRequired, ErrHostRequired.ErrorCode())

	var appErr *apperrors.AppError
	require.True(t, errors.As(error(ErrHostRequired), &appErr))
	assert.Equal(t, apperrors.ErrURIHostRequired, appErr.Code)
	assert.Equal(t, apperrors.ErrURIHostRequired, apperrors.CodeOf(ErrHostRequired))
}
