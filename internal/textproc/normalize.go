package textproc

import "strings"

// Normalize lowercases the text, splits it on whitespace and drops English
// stop words. Surviving tokens are rejoined with single spaces in their
// original order.
func Normalize(text string) string {
	words := strings.Fields(strings.ToLower(text))
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if !stopWords[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
