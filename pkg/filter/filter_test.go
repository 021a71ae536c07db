package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type doc struct {
	title string
	body  string
	tags  []string
}

func (d *doc) SearchTitle() string  { return d.title }
func (d *doc) SearchBody() string   { return d.body }
func (d *doc) SearchTags() []string { return d.tags }

func sample() []*doc {
	return []*doc{
		{title: "Kubernetes basics", body: "Pods and services", tags: []string{"devops", "k8s"}},
		{title: "Terraform intro", body: "Infrastructure as code", tags: []string{"devops"}},
		{title: "Hiring guide", body: "How we interview", tags: []string{"culture"}},
	}
}

func TestBySubstringMatchesTitleAndBody(t *testing.T) {
	docs := sample()

	assert.Len(t, BySubstring(docs, "kubernetes"), 1)
	assert.Len(t, BySubstring(docs, "CODE"), 1, "body match is case-insensitive")
	assert.Len(t, BySubstring(docs, "zzz"), 0)
}

func TestBySubstringEmptyTermReturnsAll(t *testing.T) {
	docs := sample()
	assert.Equal(t, docs, BySubstring(docs, ""))
	assert.Equal(t, docs, BySubstring(docs, "   "))
}

func TestBySubstringPreservesOrder(t *testing.T) {
	docs := sample()
	got := BySubstring(docs, "e")

	for i := 1; i < len(got); i++ {
		assert.True(t, indexOf(docs, got[i-1]) < indexOf(docs, got[i]))
	}
}

func TestByTagsSupersetMatch(t *testing.T) {
	docs := sample()

	assert.Len(t, ByTags(docs, []string{"devops"}), 2)
	assert.Len(t, ByTags(docs, []string{"devops", "k8s"}), 1)
	assert.Len(t, ByTags(docs, []string{"devops", "culture"}), 0)
}

func TestByTagsEmptyRequiredReturnsAll(t *testing.T) {
	docs := sample()
	assert.Equal(t, docs, ByTags(docs, nil))
}

func indexOf(docs []*doc, target *doc) int {
	for i, d := range docs {
		if d == target {
			return i
		}
	}
	return -1
}
