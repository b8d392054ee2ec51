package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Kargones/bitbucket-client/internal/command"
	"github.com/Kargones/bitbucket-client/internal/pkg/output"
	"github.com/Kargones/bitbucket-client/pkg/bitbucket"
)

// Result — JSON результат команды с типизированными данными.
type Result[T any] struct {
	Status   string            `json:"status"`
	Command  string            `json:"command"`
	Data     T                 `json:"data"`
	Error    *output.ErrorInfo `json:"error"`
	Metadata *output.Metadata  `json:"metadata"`
}

// NewRuntime создаёт Runtime с JSON выводом в буфер.
func NewRuntime(client bitbucket.RestClient, args ...string) (*command.Runtime, *bytes.Buffer) {
	var buf bytes.Buffer
	return &command.Runtime{
		Client:  client,
		Out:     &buf,
		Format:  output.FormatJSON,
		TraceID: "test-trace",
		Args:    args,
	}, &buf
}

// DecodeResult разбирает JSON результат из буфера.
func DecodeResult[T any](t *testing.T, buf *bytes.Buffer) Result[T] {
	t.Helper()
	var res Result[T]
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res), "вывод: %s", buf.String())
	return res
}

// Page возвращает JSON страницы коллекции. next < 0 означает последнюю страницу.
func Page(start, next int, values ...string) string {
	vals := "[" + strings.Join(values, ",") + "]"
	if next < 0 {
		return fmt.Sprintf(`{"size":%d,"limit":50,"isLastPage":true,"start":%d,"values":%s}`,
			len(values), start, vals)
	}
	return fmt.Sprintf(`{"size":%d,"limit":50,"isLastPage":false,"start":%d,"nextPageStart":%d,"values":%s}`,
		len(values), start, next, vals)
}

