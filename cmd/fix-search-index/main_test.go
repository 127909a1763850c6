package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search_index.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"config":{"lang":["en"]},"docs":[`+
		`{"location":"de/a","text":"","title":""},`+
		`{"location":"b","text":"","title":""}]}`), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--index", path})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "1 kept, 1 removed (of 2)")

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"config":{"lang":["en"]},"docs":[{"location":"b","text":"","title":""}]}`, string(got))
}
