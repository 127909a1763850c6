package searchindex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

const (
	keyConfig = "config"
	keyDocs   = "docs"
)

type wireDocument struct {
	Location *string `json:"location"`
	Text     *string `json:"text"`
	Title    *string `json:"title"`
}

type wireConfig struct {
	Indexing        *string   `json:"indexing"`
	Lang            *[]string `json:"lang"`
	MinSearchLength *int      `json:"min_search_length"`
	PrebuildIndex   *bool     `json:"prebuild_index"`
	Separator       *string   `json:"separator"`
}

// Decode parses a search index and checks it has the expected shape.
// Top-level keys other than config and docs are kept in Extra.
// Every failure wraps ErrDecode.
func Decode(data []byte) (*SearchIndex, error) {
	// encoding/json would silently substitute U+FFFD
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrDecode)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	config, ok := fields[keyConfig]
	if !ok {
		return nil, fmt.Errorf("%w: missing config", ErrDecode)
	}
	if _, err := decodeConfig(config); err != nil {
		return nil, err
	}

	rawDocs, ok := fields[keyDocs]
	if !ok {
		return nil, fmt.Errorf("%w: missing docs", ErrDecode)
	}
	var wireDocs *[]wireDocument
	if err := json.Unmarshal(rawDocs, &wireDocs); err != nil {
		return nil, fmt.Errorf("%w: docs: %w", ErrDecode, err)
	}
	if wireDocs == nil {
		return nil, fmt.Errorf("%w: missing docs", ErrDecode)
	}

	docs := make([]Document, 0, len(*wireDocs))
	for i, d := range *wireDocs {
		switch {
		case d.Location == nil:
			return nil, fmt.Errorf("%w: docs[%d]: missing location", ErrDecode, i)
		case d.Text == nil:
			return nil, fmt.Errorf("%w: docs[%d]: missing text", ErrDecode, i)
		case d.Title == nil:
			return nil, fmt.Errorf("%w: docs[%d]: missing title", ErrDecode, i)
		}
		docs = append(docs, Document{
			Location: *d.Location,
			Text:     *d.Text,
			Title:    *d.Title,
		})
	}

	delete(fields, keyConfig)
	delete(fields, keyDocs)
	index := &SearchIndex{
		Config: config,
		Docs:   docs,
	}
	if len(fields) > 0 {
		index.Extra = fields
	}
	return index, nil
}

func decodeConfig(raw json.RawMessage) (*Config, error) {
	var wire wireConfig
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("%w: config: %w", ErrDecode, err)
	}
	if wire.Lang == nil {
		return nil, fmt.Errorf("%w: config: missing lang", ErrDecode)
	}

	return &Config{
		Indexing:        wire.Indexing,
		Lang:            *wire.Lang,
		MinSearchLength: wire.MinSearchLength,
		PrebuildIndex:   wire.PrebuildIndex,
		Separator:       wire.Separator,
	}, nil
}

// Encode serializes the index as compact JSON with keys in sorted order.
// HTML in document text is written as-is rather than <-escaped.
func Encode(index *SearchIndex) ([]byte, error) {
	docs := index.Docs
	if docs == nil {
		docs = []Document{} // "docs": [] rather than null
	}
	rawDocs, err := marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("encode search index: %w", err)
	}

	fields := make(map[string]json.RawMessage, len(index.Extra)+2)
	for key, value := range index.Extra {
		fields[key] = value
	}
	fields[keyConfig] = index.Config
	fields[keyDocs] = rawDocs

	out, err := marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode search index: %w", err)
	}
	return out, nil
}

func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
