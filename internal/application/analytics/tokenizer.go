package analytics

import (
	"strings"
	"unicode"
)

// minTokenLength excludes short filler words the stopword list misses.
const minTokenLength = 4

// stopwords are common English words excluded from word frequency counts.
var stopwords = map[string]bool{
	"about": true, "above": true, "after": true, "again": true,
	"against": true, "also": true, "and": true, "are": true,
	"because": true, "been": true, "before": true, "being": true,
	"below": true, "between": true, "both": true, "but": true,
	"can": true, "cannot": true, "could": true, "did": true, "does": true,
	"doing": true, "down": true, "during": true, "each": true, "few": true,
	"for": true, "from": true, "further": true, "had": true, "has": true,
	"have": true, "having": true, "her": true, "here": true, "hers": true,
	"herself": true, "him": true, "himself": true, "his": true, "how": true,
	"into": true, "isn": true, "its": true, "itself": true, "just": true,
	"like": true, "more": true, "most": true, "myself": true, "nor": true,
	"not": true, "now": true, "off": true, "once": true, "only": true,
	"other": true, "ought": true, "our": true, "ours": true,
	"ourselves": true, "out": true, "over": true, "own": true, "same": true,
	"she": true, "should": true, "some": true, "such": true, "than": true,
	"that": true, "the": true, "their": true, "theirs": true, "them": true,
	"themselves": true, "then": true, "there": true, "these": true,
	"they": true, "this": true, "those": true, "through": true, "too": true,
	"under": true, "until": true, "very": true, "was": true, "were": true,
	"what": true, "when": true, "where": true, "which": true, "while": true,
	"who": true, "whom": true, "why": true, "will": true, "with": true,
	"would": true, "you": true, "your": true, "yours": true,
	"yourself": true, "yourselves": true,
	// Link debris left over from ingested posts
	"http": true, "https": true,
}

// Tokenize extracts the distinct countable words of a text: lowercased
// alphanumeric runs longer than three characters that are not stopwords.
// Each word appears at most once per text, so downstream frequency counts
// are "number of texts containing the word".
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var tokens []string
	seen := make(map[string]bool, len(fields))
	for _, w := range fields {
		if len(w) < minTokenLength || stopwords[w] || seen[w] {
			continue
		}
		seen[w] = true
		tokens = append(tokens, w)
	}
	return tokens
}
