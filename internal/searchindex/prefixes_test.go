package searchindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPrefixes(t *testing.T) {
	prefixes := NewPrefixes("en", "de/", " fr ", "", "/", "en")

	assert.Equal(t, Prefixes{"en/", "de/", "fr/"}, prefixes)
}

func TestPrefixes_Match(t *testing.T) {
	prefixes := NewPrefixes("de", "es")

	prefix, ok := prefixes.Match("es/basics/")
	assert.True(t, ok)
	assert.Equal(t, "es/", prefix)

	_, ok = prefixes.Match("basics/es/")
	assert.False(t, ok)
}

func TestPrefixes_Merge(t *testing.T) {
	merged := NewPrefixes("de", "fr").Merge(NewPrefixes("fr", "en"))

	assert.Equal(t, Prefixes{"de/", "fr/", "en/"}, merged)
	assert.Equal(t, []string{"de", "fr", "en"}, merged.Codes())
}
