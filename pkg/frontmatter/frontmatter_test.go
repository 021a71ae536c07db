package frontmatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWithFrontMatter(t *testing.T) {
	input := `---
title: Cloud Migration Guide
tags:
  - cloud
  - migration
featured: true
---
# Body starts here

Some content.`

	f, err := Parse(strings.NewReader(input))
	assert.NoError(t, err)

	assert.Equal(t, "Cloud Migration Guide", f.Metadata.GetString("title"))
	assert.Equal(t, []string{"cloud", "migration"}, f.Metadata.GetStringSlice("tags"))
	assert.True(t, f.Metadata.GetBool("featured"))
	assert.True(t, strings.HasPrefix(f.Body, "# Body starts here"))
}

func TestParseNoFrontMatterAllBody(t *testing.T) {
	input := "just markdown, no header"

	f, err := Parse(strings.NewReader(input))
	assert.NoError(t, err)

	assert.Empty(t, f.Metadata)
	assert.Equal(t, input, f.Body)
}

func TestParseUnterminatedFrontMatter(t *testing.T) {
	input := "---\ntitle: broken\nno closing fence"

	_, err := Parse(strings.NewReader(input))
	assert.Error(t, err)
}

func TestParseInvalidYAML(t *testing.T) {
	input := "---\n\t{not yaml\n---\nbody"

	_, err := Parse(strings.NewReader(input))
	assert.Error(t, err)
}

func TestMetadataAccessorsOnMissingKeys(t *testing.T) {
	m := Metadata{}

	assert.Equal(t, "", m.GetString("nope"))
	assert.False(t, m.GetBool("nope"))
	assert.Nil(t, m.GetStringSlice("nope"))
}

func TestGetStringSliceScalarCoercion(t *testing.T) {
	m := Metadata{"tags": "single"}
	assert.Equal(t, []string{"single"}, m.GetStringSlice("tags"))
}
