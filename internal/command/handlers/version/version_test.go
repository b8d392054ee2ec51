package version

import (
	"bytes"
	"context"
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/bitbucket-client/internal/command"
	"github.com/Kargones/bitbucket-client/internal/pkg/output"
)

func TestBuildData(t *testing.T) {
	tests := []struct {
		name, version, commit string
		wantVersion           string
		wantCommit            string
	}{
		{"заданы", "1.2.0", "abc123", "1.2.0", "abc123"},
		{"пустые", "", "", "dev", "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := buildData(tt.version, tt.commit)
			assert.Equal(t, tt.wantVersion, d.Version)
			assert.Equal(t, tt.wantCommit, d.Commit)
			assert.Equal(t, runtime.Version(), d.GoVersion)
		})
	}
}

func TestHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	rt := &command.Runtime{Out: &buf, Format: output.FormatJSON}

	h := &Handler{}
	require.NoError(t, h.Execute(context.Background(), rt))
	assert.True(t, command.IsStandalone(h))

	var result struct {
		Status  string `json:"status"`
		Command string `json:"command"`
		Data    Data   `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, output.StatusSuccess, result.Status)
	assert.Equal(t, "version", result.Command)
	assert.NotEmpty(t, result.Data.Version)
}

func TestHandler_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&Handler{}).Execute(context.Background(), &command.Runtime{Out: &buf}))
	assert.Contains(t, buf.String(), "version: success")
	assert.Contains(t, buf.String(), runtime.Version())
}
