package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const notFoundPayload = `{
  "errors": [
    {
      "context": null,
      "message": "Project x not found",
      "exceptionName": "com.atlassian.bitbucket.project.NoSuchProjectException"
    }
  ]
}`

func TestServerErrors_Decode(t *testing.T) {
	var payload ServerErrors
	require.NoError(t, json.Unmarshal([]byte(notFoundPayload), &payload))

	require.Len(t, payload.Errors, 1)
	assert.Nil(t, payload.Errors[0].Context)
	assert.Equal(t, "Project x not found", payload.Errors[0].Message)
	assert.Equal(t, "com.atlassian.bitbucket.project.NoSuchProjectException", payload.Errors[0].ExceptionName)
	assert.Equal(t, []string{"Project x not found"}, payload.Messages())
}

func TestServerErrors_Err(t *testing.T) {
	t.Run("пустой список", func(t *testing.T) {
		assert.NoError(t, ServerErrors{}.Err())
	})

	t.Run("несколько ошибок", func(t *testing.T) {
		payload := ServerErrors{Errors: []ServerError{
			{Message: "first", ExceptionName: "A"},
			{Message: "second", ExceptionName: "B"},
		}}

		err := payload.Err()
		require.Error(t, err)
		assert.Equal(t,
			"The following errors were encountered:\n    1. first\n    2. second\n",
			err.Error())

		var se ServerError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, "first", se.Message)
	})
}
