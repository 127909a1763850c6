package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bull/docs-site-tools/internal/config"
)

func TestRootCommand(t *testing.T) {
	site := filepath.Join(t.TempDir(), "site")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--site-dir", site})
	require.NoError(t, rootCmd.Execute())

	total := 0
	for _, section := range config.DefaultRedirects {
		for _, dir := range section.Directories {
			got, err := os.ReadFile(filepath.Join(site, dir, "index.html"))
			require.NoError(t, err, "missing redirect for %s", dir)
			assert.Equal(t,
				`<meta http-equiv="refresh" content="0; url=/`+section.Name+`/`+dir+`/">`,
				string(got),
			)
			total++
		}
	}
	assert.Equal(t, 26, total)
	assert.Contains(t, out.String(), "Wrote 26 redirects under "+site)
}
