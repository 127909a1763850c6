package leaf

import (
	"bytes"
	"testing"

	"github.com/alecthomas/chroma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenise(t *testing.T, source string) []chroma.Token {
	t.Helper()
	iterator, err := Lexer.Tokenise(nil, source)
	require.NoError(t, err)
	return iterator.Tokens()
}

func TestLexer_Config(t *testing.T) {
	config := Lexer.Config()

	assert.Equal(t, "Leaf", config.Name)
	assert.Equal(t, []string{"leaf"}, config.Aliases)
	assert.Equal(t, []string{"*.leaf"}, config.Filenames)
}

func TestLexer_Tokens(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   chroma.Token
	}{
		{"tag punctuation", `#if(count == 1):`, chroma.Token{Type: chroma.Punctuation, Value: "("}},
		{"operator", `#if(count == 1):`, chroma.Token{Type: chroma.Operator, Value: "=="}},
		{"integer", `#if(count == 1):`, chroma.Token{Type: chroma.LiteralNumberInteger, Value: "1"}},
		{"string literal", `#if(name == "Tim"):`, chroma.Token{Type: chroma.LiteralString, Value: `"Tim"`}},
		{"loop keyword", `#for(name in names):`, chroma.Token{Type: chroma.Keyword, Value: "in"}},
		{"function call", `#(uppercase(name))`, chroma.Token{Type: chroma.NameBuiltinPseudo, Value: "uppercase"}},
		{"line comment", "#// not rendered", chroma.Token{Type: chroma.LiteralString, Value: "#// not rendered"}},
		{"block comment", "#/* not\nrendered */", chroma.Token{Type: chroma.LiteralString, Value: "#/* not\nrendered */"}},
		{"open brace", `{`, chroma.Token{Type: chroma.NameBuiltinPseudo, Value: "{"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tokenise(t, tt.source), tt.want)
		})
	}
}

func TestLexer_NestedCallsReturnToRoot(t *testing.T) {
	tokens := tokenise(t, `#(uppercase(name)) and more`)

	last := tokens[len(tokens)-1]
	assert.Equal(t, chroma.Comment, last.Type, "text after the tag is plain template text")
}

func TestHighlight(t *testing.T) {
	var buf bytes.Buffer

	err := Highlight(&buf, `#if(name == "Tim"):`, "github", false)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "<pre")
	assert.Contains(t, buf.String(), "Tim")
	assert.NotContains(t, buf.String(), "<html")
}

func TestHighlight_Standalone(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Highlight(&buf, "#(name)", "no-such-style", true))

	assert.Contains(t, buf.String(), "<html")
}
