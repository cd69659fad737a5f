package api

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveExcerpt(t *testing.T) {
	long := strings.Repeat("a", 1000)
	excerpt := deriveExcerpt(long)
	assert.Len(t, excerpt, 300, "297 characters plus ellipsis")
	assert.True(t, strings.HasSuffix(excerpt, "..."))

	short := "just a short post"
	assert.Equal(t, short, deriveExcerpt(short))

	exact := strings.Repeat("b", 297)
	assert.Equal(t, exact, deriveExcerpt(exact))
}

func TestDeriveReadTime(t *testing.T) {
	tests := []struct {
		name    string
		words   int
		minutes int
	}{
		{"empty", 0, 0},
		{"one word", 1, 1},
		{"exactly one minute", 200, 1},
		{"just over one minute", 201, 2},
		{"several minutes", 450, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.TrimSpace(strings.Repeat("word ", tt.words))
			assert.Equal(t, tt.minutes, deriveReadTime(content))
		})
	}
}

func TestValidateURL(t *testing.T) {
	assert.NoError(t, validateURL("https://github.com/alice/project", "sourceLink"))
	assert.NoError(t, validateURL("http://example.com", "projectLink"))

	assert.Error(t, validateURL("not a url", "projectLink"))
	assert.Error(t, validateURL("ftp://example.com/file", "projectLink"))
	assert.Error(t, validateURL("/relative/path", "projectLink"))
}

func TestFormList(t *testing.T) {
	values := url.Values{
		"tags":  []string{"go, backend", "testing"},
		"empty": []string{""},
	}

	assert.Equal(t, []string{"go", "backend", "testing"}, formList(values, "tags"))
	assert.Nil(t, formList(values, "absent"))
	assert.Empty(t, formList(values, "empty"))
}
