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

func TestRootCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.leaf")
	require.NoError(t, os.WriteFile(path, []byte(`#for(planet in planets):`), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{path})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "planets")
	assert.Contains(t, out.String(), "<pre")
}

func TestRootCommand_Stdin(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(`#(name)`))
	rootCmd.SetArgs([]string{"-"})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "name")
}

func TestRootCommand_MissingFile(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.leaf")})

	assert.Error(t, rootCmd.Execute())
}
