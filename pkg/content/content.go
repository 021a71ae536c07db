package content

import (
	"strings"
	"unicode"
)

// ExcerptBudget is the character budget applied when deriving an excerpt
// from a post body.
const ExcerptBudget = 150

// Slugify derives a URL-safe identifier from a title: lowercase, strip
// non-alphanumerics, collapse whitespace runs to single hyphens, trim
// leading/trailing hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
			// Anything else (punctuation, symbols) is stripped.
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// Excerpt truncates body to limit characters, appending an ellipsis marker
// when truncation occurred. Rune-safe so multi-byte content is not cut
// mid-character.
func Excerpt(body string, limit int) string {
	runes := []rune(body)
	if len(runes) <= limit {
		return body
	}
	return string(runes[:limit]) + "..."
}

// CleanTags trims every tag and drops empty or whitespace-only entries,
// preserving the input order for display.
func CleanTags(tags []string) []string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		t := strings.TrimSpace(tag)
		if t == "" {
			continue
		}
		cleaned = append(cleaned, t)
	}
	return cleaned
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Keywords extracts a crude keyword list from text: the unique words longer
// than minLen, lowercased, in first-seen order, capped at max entries.
// Not relevance-ranked; only used as chunk metadata.
func Keywords(text string, minLen, max int) []string {
	seen := make(map[string]struct{})
	keywords := make([]string, 0, max)

	for _, word := range strings.Fields(strings.ToLower(text)) {
		w := strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if len([]rune(w)) < minLen {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		keywords = append(keywords, w)
		if len(keywords) >= max {
			break
		}
	}

	return keywords
}
