package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Spaces   everywhere  ", "spaces-everywhere"},
		{"Already-slugged", "already-slugged"},
		{"snake_case_title", "snake-case-title"},
		{"Symbols! @#$ removed?", "symbols-removed"},
		{"5 AI Tools!! Every Business", "5-ai-tools-every-business"},
		{"--leading and trailing--", "leading-and-trailing"},
		{"Ünïcode kept", "ünïcode-kept"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}

func TestExcerptShortBodyUnchanged(t *testing.T) {
	assert.Equal(t, "short body", Excerpt("short body", ExcerptBudget))
}

func TestExcerptTruncatesWithEllipsis(t *testing.T) {
	body := strings.Repeat("a", ExcerptBudget+50)
	got := Excerpt(body, ExcerptBudget)

	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len([]rune(got)), ExcerptBudget+3)
}

func TestExcerptRuneSafe(t *testing.T) {
	body := strings.Repeat("é", 200)
	got := Excerpt(body, 150)

	// Truncation must never split a multi-byte rune.
	assert.True(t, strings.HasPrefix(got, "é"))
	assert.Equal(t, 153, len([]rune(got)))
}

func TestCleanTags(t *testing.T) {
	got := CleanTags([]string{" go ", "", "web", "  ", "consulting"})
	assert.Equal(t, []string{"go", "web", "consulting"}, got)
}

func TestCleanTagsEmpty(t *testing.T) {
	assert.Empty(t, CleanTags(nil))
	assert.Empty(t, CleanTags([]string{"", "   "}))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("   "))
	assert.Equal(t, 4, WordCount("one two  three\nfour"))
}

func TestKeywordsUniqueFirstSeen(t *testing.T) {
	text := "kubernetes kubernetes deployment, kubernetes deployment consulting"
	got := Keywords(text, 4, 2)

	// Unique words in first-seen order, punctuation trimmed, capped at max.
	assert.Equal(t, []string{"kubernetes", "deployment"}, got)
}

func TestKeywordsMinLength(t *testing.T) {
	got := Keywords("go go go infrastructure", 4, 10)

	assert.NotContains(t, got, "go")
	assert.Contains(t, got, "infrastructure")
}
