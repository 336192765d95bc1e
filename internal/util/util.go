package util

import "strings"

// MakeTextList joins items into a human-readable list with an Oxford comma,
// e.g. ["a", "b", "c"] -> "a, b, and c". Used by parse.SyntaxError to report
// the set of tokens a parser state would have accepted.
func MakeTextList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	if len(items) == 1 {
		return items[0]
	}
	if len(items) == 2 {
		return items[0] + " and " + items[1]
	}

	joined := make([]string, len(items))
	copy(joined, items)
	joined[len(joined)-1] = "and " + joined[len(joined)-1]
	return strings.Join(joined, ", ")
}

// ArticleFor returns "a" or "an" depending on whether word begins with a
// vowel sound, optionally capitalized. It's a small heuristic (it checks the
// first letter only), good enough for error messages like "expected an
// identifier".
func ArticleFor(word string, capitalize bool) string {
	article := "a"
	if len(word) > 0 && strings.ContainsRune("aeiouAEIOU", rune(word[0])) {
		article = "an"
	}
	if capitalize {
		return strings.ToUpper(article[:1]) + article[1:]
	}
	return article
}
