package wordshelf

import (
	"regexp"
	"sort"
	"strings"
)

// MinWordLength is the shortest word that counts toward a ranking.
const MinWordLength = 4

// RankingSize is the maximum number of entries in a ranking.
const RankingSize = 10

var (
	tagPattern       = regexp.MustCompile(`<[^>]+>`)
	nonLetterPattern = regexp.MustCompile(`[^a-zA-Z\s]`)
	titlePattern     = regexp.MustCompile(`(?i)<strong>\s*Title\s*</strong>\s*:\s*(.*?)</p>`)
)

// IsHTML reports whether text looks like an HTML document.
func IsHTML(text string) bool {
	return strings.Contains(strings.ToLower(text), "<html")
}

// Normalize converts raw document text into lowercase alphabetic tokens in
// original order. HTML input has its tags replaced with spaces first, so
// tag contents survive as text. Digits, punctuation, and non-ASCII letters
// are deleted.
func Normalize(text string) []string {
	if IsHTML(text) {
		text = tagPattern.ReplaceAllString(text, " ")
	}
	text = nonLetterPattern.ReplaceAllString(text, "")
	return strings.Fields(strings.ToLower(text))
}

// Rank counts tokens of length >= MinWordLength and returns up to
// RankingSize (word, frequency) pairs, frequency descending. Ties keep the
// order in which the words were first encountered, so equal-count results
// are reproducible across runs.
func Rank(tokens []string) Ranking {
	counts := make(map[string]int)
	var order []string
	for _, tok := range tokens {
		if len(tok) < MinWordLength {
			continue
		}
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	ranking := make(Ranking, 0, len(order))
	for _, word := range order {
		ranking = append(ranking, WordCount{Word: word, Frequency: counts[word]})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Frequency > ranking[j].Frequency
	})

	if len(ranking) > RankingSize {
		ranking = ranking[:RankingSize]
	}
	return ranking
}

// ExtractTitle searches unmodified HTML for the Project Gutenberg title
// line (<strong>Title</strong>: ... </p>) and returns the captured text
// trimmed of surrounding whitespace, with case and punctuation preserved.
// It must run before Normalize strips the markup. Reports false when the
// pattern does not match or captures only whitespace.
func ExtractTitle(html string) (string, bool) {
	m := titlePattern.FindStringSubmatch(html)
	if m == nil {
		return "", false
	}
	title := strings.TrimSpace(m[1])
	if title == "" {
		return "", false
	}
	return title, true
}

// TitleFromURL returns the final path segment of a URL, the fallback
// identifier for documents with no extractable title. May be empty for
// URLs ending in a slash.
func TitleFromURL(rawURL string) string {
	parts := strings.Split(rawURL, "/")
	return parts[len(parts)-1]
}
