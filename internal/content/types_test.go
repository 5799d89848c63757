package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adichatupes-source/Portfolio/internal/content"
)

func TestParseType(t *testing.T) {
	testCases := []struct {
		selector string
		want     content.Type
	}{
		{selector: "case-studies", want: content.TypeCaseStudies},
		{selector: "casestudies", want: content.TypeCaseStudies},
		{selector: "blogs", want: content.TypeBlogPosts},
		{selector: "", want: content.TypeBlogPosts},
		{selector: "anything-else", want: content.TypeBlogPosts},
		{selector: "Case-Studies", want: content.TypeBlogPosts},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.want, content.ParseType(testCase.selector), "selector %q", testCase.selector)
	}
}

func TestCacheKeysAreDistinct(t *testing.T) {
	assert.NotEqual(t, content.TypeBlogPosts.CacheKey(), content.TypeCaseStudies.CacheKey())
}

func TestNormalizeIcon(t *testing.T) {
	assert.Equal(t, "GraduationCap", content.NormalizeIcon("GraduationCap"))
	assert.Equal(t, "Globe", content.NormalizeIcon("Globe"))
	assert.Equal(t, content.DefaultIcon, content.NormalizeIcon("Rocket"))
	assert.Equal(t, content.DefaultIcon, content.NormalizeIcon(""))
}
