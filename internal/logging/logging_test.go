package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Quiet(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Info("Search index filtered")
	logger.Warn("Something odd")

	assert.NotContains(t, buf.String(), "Search index filtered")
	assert.Contains(t, buf.String(), "Something odd")
}

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)

	logger.Debug("Wrote redirect", "path", "site/jwt/index.html")

	assert.Contains(t, buf.String(), "path=site/jwt/index.html")
}
