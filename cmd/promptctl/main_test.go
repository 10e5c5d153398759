package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-studio-api/internal/interfaces/http/dto"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config-dir", t.TempDir()}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestTemplatesJSON(t *testing.T) {
	out, _, err := run(t, "", "templates", "--json")
	require.NoError(t, err)

	var resp dto.TemplateListResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, len(resp.Templates), resp.Total)
	assert.NotZero(t, resp.Total)
}

func TestTemplatesTable(t *testing.T) {
	out, _, err := run(t, "", "templates")
	require.NoError(t, err)
	assert.Contains(t, out, "three-part")
	assert.Contains(t, out, "ID")
}

func TestMatchFromStdin(t *testing.T) {
	out, _, err := run(t, "", "match", "--json", "-")
	require.NoError(t, err)

	var resp dto.MatchResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "three-part", resp.Template.ID)
}

func TestGenerateLocal(t *testing.T) {
	out, stderr, err := run(t, "", "generate", "--local", "--template", "three-part", "写一篇关于秋天的散文")
	require.NoError(t, err)
	assert.Contains(t, out, "写一篇关于秋天的散文")
	assert.Contains(t, stderr, "remote_disabled")
}

func TestGenerateEmptyInput(t *testing.T) {
	_, _, err := run(t, "   ", "generate", "--local")
	assert.Error(t, err)
}

func TestReadInput(t *testing.T) {
	got, err := readInput([]string{"a", "b"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "a b", got)

	got, err = readInput([]string{"-"}, strings.NewReader("from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)
}
