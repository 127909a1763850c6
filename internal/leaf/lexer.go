// Package leaf provides syntax highlighting for Leaf templates (*.leaf) so
// template snippets in the docs render with colour.
package leaf

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/formatters/html"
	"github.com/alecthomas/chroma/styles"
)

// Lexer tokenises Leaf markup. Plain template text is emitted as Comment so
// that tags and expressions stand out.
var Lexer = chroma.MustNewLazyLexer(
	&chroma.Config{
		Name:      "Leaf",
		Aliases:   []string{"leaf"},
		Filenames: []string{"*.leaf"},
		MimeTypes: []string{"text/leaf", "application/leaf"},
	},
	leafRules,
)

func leafRules() chroma.Rules {
	return chroma.Rules{
		"root": {
			{Pattern: `\n`, Type: chroma.Comment, Mutator: nil},
			{Pattern: `\s+`, Type: chroma.Comment, Mutator: nil},
			{Pattern: `else`, Type: chroma.Keyword, Mutator: nil},
			{Pattern: `#//.*`, Type: chroma.LiteralString, Mutator: nil},
			{Pattern: `#/\*[^*]*\*/`, Type: chroma.LiteralString, Mutator: nil},
			{Pattern: `if\(|if \(`, Type: chroma.Keyword, Mutator: chroma.Push("expression")},
			{Pattern: `(#)([^(]*)(\()`, Type: chroma.ByGroups(chroma.Keyword, chroma.Keyword, chroma.Punctuation), Mutator: chroma.Push("expression")},
			{Pattern: `\{`, Type: chroma.NameBuiltinPseudo, Mutator: nil},
			{Pattern: `\}`, Type: chroma.NameBuiltinPseudo, Mutator: nil},
			{Pattern: `[^#}]+`, Type: chroma.Comment, Mutator: nil},
		},
		"expression": {
			{Pattern: `\s+`, Type: chroma.Text, Mutator: nil},
			{Pattern: `(")([^"]+)(")`, Type: chroma.LiteralString, Mutator: nil},
			{Pattern: `\d+`, Type: chroma.LiteralNumberInteger, Mutator: nil},
			{Pattern: `in`, Type: chroma.Keyword, Mutator: nil},
			{Pattern: `,`, Type: chroma.Text, Mutator: nil},
			{Pattern: `[=!|&+\-*%]+`, Type: chroma.Operator, Mutator: nil},
			{Pattern: `\w+(?=\()`, Type: chroma.NameBuiltinPseudo, Mutator: nil},
			{Pattern: `\w+`, Type: chroma.Text, Mutator: nil},
			{Pattern: `\(`, Type: chroma.Text, Mutator: chroma.Push()},
			{Pattern: `\)`, Type: chroma.Text, Mutator: chroma.Pop(1)},
		},
	}
}

// Highlight writes source as an HTML fragment using inline styles from the
// named chroma style. Unknown style names fall back to chroma's default.
// With standalone set, a complete HTML page is written instead.
func Highlight(w io.Writer, source, style string, standalone bool) error {
	iterator, err := Lexer.Tokenise(nil, source)
	if err != nil {
		return fmt.Errorf("tokenise: %w", err)
	}

	formatter := html.New(html.Standalone(standalone), html.WithClasses(false))
	if err := formatter.Format(w, styles.Get(style), iterator); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	return nil
}
