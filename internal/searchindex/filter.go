package searchindex

import "github.com/samber/lo"

// Filter returns a copy of index without the documents whose location starts
// with one of the excluded prefixes. Remaining documents keep their order;
// config and any other top-level keys are carried over untouched.
// index itself is not modified.
func Filter(index *SearchIndex, excluded Prefixes) *SearchIndex {
	docs := lo.Filter(index.Docs, func(doc Document, _ int) bool {
		_, matched := excluded.Match(doc.Location)
		return !matched
	})

	return &SearchIndex{
		Config: index.Config,
		Docs:   docs,
		Extra:  index.Extra,
	}
}

// countByPrefix counts the documents excluded by each prefix.
func countByPrefix(docs []Document, excluded Prefixes) map[string]int {
	counts := make(map[string]int)
	for _, doc := range docs {
		if prefix, ok := excluded.Match(doc.Location); ok {
			counts[prefix]++
		}
	}
	return counts
}
