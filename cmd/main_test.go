package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_TextOutput(t *testing.T) {
	path := writeFile(t, t.TempDir(), "in.txt", "a\r\nb\nc")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-verbosity", "Off", path}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "a\nb\nc\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_NumberedLines(t *testing.T) {
	path := writeFile(t, t.TempDir(), "in.txt", "x\n\ny\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-n", "-verbosity", "Off", path}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "1: x\n2: \n3: y\n", stdout.String())
}

func TestRun_CountJSONToFile(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.txt", "1\n2\n3\n")
	second := writeFile(t, dir, "second.txt", "")
	out := filepath.Join(dir, "report.json")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-count", "-format", "json", "-output", out, "-verbosity", "Off", first, second}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0]["path"])
	assert.Equal(t, float64(3), got[0]["count"])
	assert.Equal(t, float64(0), got[1]["count"])
}

func TestRun_MissingFileIsLoggedAndFails(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "ok\n")
	missing := filepath.Join(dir, "missing.txt")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-logformat", "json", "-verbosity", "Error", missing, good}, &stdout, &stderr)

	assert.Equal(t, exitFailure, code)
	assert.Equal(t, "ok\n", stdout.String())
	assert.Contains(t, stderr.String(), `"level":"error"`)
	assert.Contains(t, stderr.String(), missing)
}

func TestRun_DuplicateFilesReadOnce(t *testing.T) {
	path := writeFile(t, t.TempDir(), "in.txt", "only\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-count", "-verbosity", "Warning", path, path}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, path+": 1\n", stdout.String())
	assert.Contains(t, stderr.String(), "Skipping duplicate file")
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no files", []string{}, "Files"},
		{"bad format", []string{"-format", "xml", "a.txt"}, "Format"},
		{"bad verbosity", []string{"-verbosity", "loud", "a.txt"}, "invalid verbosity level"},
		{"unknown flag", []string{"-bogus", "a.txt"}, "bogus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)

			assert.Equal(t, exitUsage, code)
			assert.Empty(t, stdout.String())
			assert.Contains(t, stderr.String(), tt.want)
		})
	}
}
