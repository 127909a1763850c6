// Package searchindex filters translated-language documents out of a
// generated site search index.
package searchindex

import "encoding/json"

// SearchIndex is the search_index.json artifact produced by the site generator.
// Config and any other top-level keys are kept as raw JSON so they are
// written back exactly as they were read.
type SearchIndex struct {
	Config json.RawMessage            `json:"config"`
	Docs   []Document                 `json:"docs"`
	Extra  map[string]json.RawMessage `json:"-"`
}

// Config is the typed view of SearchIndex.Config.
// Optional fields are pointers so that absent keys can be told apart from zero values.
type Config struct {
	Indexing        *string  `json:"indexing,omitempty"`
	Lang            []string `json:"lang"`
	MinSearchLength *int     `json:"min_search_length,omitempty"`
	PrebuildIndex   *bool    `json:"prebuild_index,omitempty"`
	Separator       *string  `json:"separator,omitempty"`
}

// Document is one indexed page.
type Document struct {
	Location string `json:"location"` // Relative path: "de/basics/routing/"
	Text     string `json:"text"`
	Title    string `json:"title"`
}

// Settings decodes the typed view of the index configuration.
func (s *SearchIndex) Settings() (*Config, error) {
	return decodeConfig(s.Config)
}
