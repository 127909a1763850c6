package searchindex

import (
	"strings"

	"github.com/samber/lo"
)

// Prefixes is an ordered set of location prefixes such as "de/".
type Prefixes []string

// NewPrefixes builds the prefix set for the given language codes.
// Each code is suffixed with "/" so that only a whole first path segment
// matches: "en/" excludes "en/page" but not "english/page" or "en-gb/page".
// Empty codes are dropped and duplicates collapsed.
func NewPrefixes(codes ...string) Prefixes {
	prefixes := lo.FilterMap(codes, func(code string, _ int) (string, bool) {
		code = strings.TrimSpace(code)
		if code == "" || code == "/" {
			return "", false
		}
		if !strings.HasSuffix(code, "/") {
			code += "/"
		}
		return code, true
	})
	return lo.Uniq(prefixes)
}

// Merge returns a set holding p followed by the prefixes of other not already in p.
func (p Prefixes) Merge(other Prefixes) Prefixes {
	return lo.Uniq(append(append(Prefixes{}, p...), other...))
}

// Match reports the first prefix that location starts with.
// The comparison is a case-sensitive byte prefix test.
func (p Prefixes) Match(location string) (string, bool) {
	return lo.Find(p, func(prefix string) bool {
		return strings.HasPrefix(location, prefix)
	})
}

// Codes returns the language codes without their trailing slash.
func (p Prefixes) Codes() []string {
	return lo.Map(p, func(prefix string, _ int) string {
		return strings.TrimSuffix(prefix, "/")
	})
}
