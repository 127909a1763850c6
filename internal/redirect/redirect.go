// Package redirect writes HTML stubs that send readers of moved documentation
// directories to their new location.
package redirect

import (
	"fmt"
	"html"
	"strings"

	"github.com/samber/lo"
)

// Redirect moves a top-level directory under a new parent section.
type Redirect struct {
	Directory string // Old top-level directory: "routing"
	Section   string // New parent section: "basics"
}

// Target returns the absolute URL path the stub navigates to.
func (r Redirect) Target() string {
	return "/" + r.Section + "/" + r.Directory + "/"
}

// Stub renders the redirect page: a single meta-refresh tag.
func Stub(r Redirect) []byte {
	return []byte(fmt.Sprintf(`<meta http-equiv="refresh" content="0; url=%s">`, html.EscapeString(r.Target())))
}

// Section lists the top-level directories moved under one new section.
type Section struct {
	Name        string   `mapstructure:"section"`
	Directories []string `mapstructure:"directories"`
}

// Table flattens sections into redirects, keeping the listed order of both
// sections and directories. Generation follows this order.
func Table(sections []Section) ([]Redirect, error) {
	var redirects []Redirect
	for _, section := range sections {
		if err := validateName(section.Name); err != nil {
			return nil, fmt.Errorf("section %q: %w", section.Name, err)
		}
		for _, dir := range section.Directories {
			if err := validateName(dir); err != nil {
				return nil, fmt.Errorf("section %q directory %q: %w", section.Name, dir, err)
			}
			redirects = append(redirects, Redirect{Directory: dir, Section: section.Name})
		}
	}

	if dup := lo.FindDuplicatesBy(redirects, func(r Redirect) string { return r.Directory }); len(dup) > 0 {
		return nil, fmt.Errorf("%w: directory %q listed more than once", ErrInvalidRedirect, dup[0].Directory)
	}

	return redirects, nil
}

// validateName accepts a single path segment.
func validateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidRedirect)
	case name == "." || name == "..":
		return fmt.Errorf("%w: relative name", ErrInvalidRedirect)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: name must be a single path segment", ErrInvalidRedirect)
	}
	return nil
}
