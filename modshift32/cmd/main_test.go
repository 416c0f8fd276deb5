package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInput_whole_file(t *testing.T) {
	t.Parallel()

	pa := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(pa, []byte("hello\nworld\n"), 0o600))

	got, err := readInput(pa, nil, false)

	require.NoError(t, err)
	assert.Equal(t, []string{"hello\nworld\n"}, got)
}

func TestReadInput_per_line(t *testing.T) {
	t.Parallel()

	pa := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(pa, []byte("hello\r\n\nworld\n"), 0o600))

	got, err := readInput(pa, nil, true)

	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "", "world"}, got)
}

func TestReadInput_per_line_empty_file(t *testing.T) {
	t.Parallel()

	pa := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(pa, nil, 0o600))

	got, err := readInput(pa, nil, true)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadInput_missing_file(t *testing.T) {
	t.Parallel()

	_, err := readInput("/nonexistent/in.txt", nil, false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input")
}

func TestRunSidecar_save_then_verify(t *testing.T) {
	t.Parallel()

	pa := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(pa, []byte("content"), 0o600))

	require.NoError(t, runSidecar(pa, pa))

	require.NoError(t, os.WriteFile(pa, []byte("tampered"), 0o600))

	err := runSidecar("", pa)

	require.Error(t, err)
	assert.ErrorIs(t, err, errDigestMismatch)
}

func TestReadInput_stdin(t *testing.T) {
	t.Parallel()

	got, err := readInput("", strings.NewReader("a\nb\n"), true)

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	inPath := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(inPath, []byte("ba"), 0o600))

	tests := []struct {
		name    string
		args    []string
		stdin   string
		want    string
		wantErr string
	}{
		{
			name: "text flag",
			args: []string{"-text", "hello", "-template", "{modshift32}\n"},
			want: "66c76482c863e2fb6f4e9b8c16cf4bf3\n",
		},
		{
			name:  "stdin when no text",
			args:  []string{"-template", "{modshift32} {input}\n"},
			stdin: "hello",
			want:  "66c76482c863e2fb6f4e9b8c16cf4bf3 hello\n",
		},
		{
			name:  "stdin per line",
			args:  []string{"-lines", "-template", "{modshift32}\n"},
			stdin: "ab\nba\n",
			want:  "a3e7296d8e30870138dcbf9126808882\n" +
				"6e59c23f0c345cbf608159cfd0b99843\n",
		},
		{
			name: "text then infile",
			args: []string{
				"-text", "ab", "-infile", inPath,
				"-template", "{input}={modshift32}\n",
			},
			want: "ab=a3e7296d8e30870138dcbf9126808882\n" +
				"ba=6e59c23f0c345cbf608159cfd0b99843\n",
		},
		{
			name: "json",
			args: []string{"-text", "", "-format", "json"},
			want: "\"modshift32\": \"22731495822c8eaaed74ce0b03674854\"",
		},
		{
			name:    "unknown format",
			args:    []string{"-text", "x", "-format", "xml"},
			wantErr: "parsing format",
		},
		{
			name:    "unknown flag",
			args:    []string{"-nope"},
			wantErr: "modshift32",
		},
		{
			name:    "missing infile",
			args:    []string{"-infile", filepath.Join(dir, "missing")},
			wantErr: "reading input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			err := run(tt.args, strings.NewReader(tt.stdin), &out)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestRun_output_file(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "out.txt")

	var stdout bytes.Buffer

	err := run(
		[]string{
			"-text", "hello",
			"-template", "{modshift32}",
			"-output", outPath,
		},
		strings.NewReader(""),
		&stdout,
	)

	require.NoError(t, err)
	assert.Empty(t, stdout.String())

	got, err := os.ReadFile(outPath) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Equal(t, "66c76482c863e2fb6f4e9b8c16cf4bf3", string(got))
}

func TestRun_output_dir_missing(t *testing.T) {
	t.Parallel()

	err := run(
		[]string{
			"-text", "hello",
			"-output", filepath.Join(t.TempDir(), "no", "out.txt"),
		},
		strings.NewReader(""),
		&bytes.Buffer{},
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output")
}
