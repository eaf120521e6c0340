package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deckerrors "github.com/mrz1836/gitdeck/internal/errors"
)

func TestOutputInterface_Implementations(t *testing.T) {
	var buf bytes.Buffer
	var out Output = NewTTYOutput(&buf)
	assert.NotNil(t, out)
	out = NewJSONOutput(&buf)
	assert.NotNil(t, out)
}

func TestNewOutput_SelectsByFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.IsType(t, &JSONOutput{}, NewOutput(&buf, FormatJSON))
	assert.IsType(t, &TTYOutput{}, NewOutput(&buf, FormatText))
	assert.IsType(t, &TTYOutput{}, NewOutput(&buf, ""))
}

func TestTTYOutput_Messages(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name  string
		write func(Output)
		want  string
	}{
		{"success", func(o Output) { o.Success("committed") }, "✓ committed"},
		{"warning", func(o Output) { o.Warning("nothing to do") }, "⚠ nothing to do"},
		{"info", func(o Output) { o.Info("on main") }, "on main"},
		{"text keeps trailing newline", func(o Output) { o.Text("diff\n") }, "diff\n"},
		{"text adds newline", func(o Output) { o.Text("diff") }, "diff\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.write(NewTTYOutput(&buf))
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestTTYOutput_ErrorShowsAction(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	out := NewTTYOutput(&buf)
	out.Error(fmt.Errorf("%w \"git\": not found", deckerrors.ErrGitLaunch))

	output := buf.String()
	assert.Contains(t, output, "✗")
	assert.Contains(t, output, "Try: Is git installed and available in PATH?")
}

func TestTTYOutput_ErrorWithoutAction(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	NewTTYOutput(&buf).Error(deckerrors.ErrOperationCanceled)

	assert.NotContains(t, buf.String(), "Try:")
}

func TestTTYOutput_TableAlignsWideRunes(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	NewTTYOutput(&buf).Table(
		[]string{"PATH", "STATUS"},
		[][]string{
			{"日本.txt", "M"},
			{"a.go", "A"},
		},
	)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	// 日本.txt occupies 8 cells, so the status column starts at cell 10.
	assert.Equal(t, "PATH      STATUS", lines[0])
	assert.Equal(t, "日本.txt  M", lines[1])
	assert.Equal(t, "a.go      A", lines[2])
}

func TestTTYOutput_TableNoHeaders(t *testing.T) {
	var buf bytes.Buffer
	NewTTYOutput(&buf).Table(nil, [][]string{{"x"}})
	assert.Empty(t, buf.String())
}

func TestJSONOutput_Messages(t *testing.T) {
	var buf bytes.Buffer
	out := NewJSONOutput(&buf)

	out.Success("done")
	out.Warning("careful")
	out.Error(deckerrors.ErrNotGitRepo)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var success jsonMessage
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &success))
	assert.Equal(t, jsonMessage{Type: "success", Message: "done"}, success)

	var errMsg jsonError
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &errMsg))
	assert.Equal(t, "error", errMsg.Type)
	assert.Equal(t, "not a git repository", errMsg.Message)
	assert.NotEmpty(t, errMsg.Suggestion)
}

func TestJSONOutput_Table(t *testing.T) {
	var buf bytes.Buffer
	NewJSONOutput(&buf).Table([]string{"name", "url"}, [][]string{{"origin"}})

	var got []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []map[string]string{{"name": "origin", "url": ""}}, got)
}

func TestJSONOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONOutput(&buf).JSON(map[string]int{"code": 1}))
	assert.JSONEq(t, `{"code": 1}`, buf.String())
}

func TestJSONOutput_EncodeFailure(t *testing.T) {
	var buf bytes.Buffer
	err := NewJSONOutput(&buf).JSON(make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode JSON")
}
