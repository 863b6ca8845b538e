package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizer_Sanitize(t *testing.T) {
	s := New()

	t.Run("script removed with content", func(t *testing.T) {
		out := s.Sanitize(`<p>hello</p><script>alert(1)</script>`)
		assert.NotContains(t, out, "script")
		assert.NotContains(t, out, "alert")
		assert.Contains(t, out, "<p>hello</p>")
	})

	t.Run("disallowed wrapper unwrapped", func(t *testing.T) {
		out := s.Sanitize(`<div><p>x</p></div>`)
		assert.Equal(t, "<p>x</p>", out)
	})

	t.Run("nested allowed markup preserved", func(t *testing.T) {
		out := s.Sanitize(`<section><h2>title</h2><span><em>text</em></span></section>`)
		assert.Contains(t, out, "<h2>title</h2>")
		assert.Contains(t, out, "<em>text</em>")
		assert.NotContains(t, out, "section")
		assert.NotContains(t, out, "span")
	})

	t.Run("event handlers stripped, allowed attrs kept", func(t *testing.T) {
		out := s.Sanitize(`<a href="https://example.com" onclick="evil()">link</a>`)
		assert.Contains(t, out, `href="https://example.com"`)
		assert.NotContains(t, out, "onclick")
		assert.NotContains(t, out, "evil")
	})

	t.Run("attributes filtered on allowed elements", func(t *testing.T) {
		out := s.Sanitize(`<img src="/a.png" alt="a" style="position:fixed" data-tracker="x">`)
		assert.Contains(t, out, `src="/a.png"`)
		assert.Contains(t, out, `alt="a"`)
		assert.NotContains(t, out, "style")
		assert.NotContains(t, out, "data-tracker")
	})

	t.Run("javascript urls rejected", func(t *testing.T) {
		out := s.Sanitize(`<a href="javascript:alert(1)">x</a>`)
		assert.NotContains(t, out, "javascript")
	})

	t.Run("unsafe subtrees dropped entirely", func(t *testing.T) {
		for _, tag := range []string{"style", "iframe", "form", "object", "embed", "noscript"} {
			out := s.Sanitize("<" + tag + "><p>inner</p></" + tag + "><p>after</p>")
			assert.NotContains(t, out, "inner", "content of %s should be dropped", tag)
			assert.Contains(t, out, "<p>after</p>")
		}
	})

	t.Run("figure and code retained", func(t *testing.T) {
		in := `<figure><img src="/i.png"><figcaption>cap</figcaption></figure><pre><code>x := 1</code></pre>`
		out := s.Sanitize(in)
		assert.Contains(t, out, "<figure>")
		assert.Contains(t, out, "<figcaption>cap</figcaption>")
		assert.Contains(t, out, "<code>")
	})
}

func TestSanitizer_Summary(t *testing.T) {
	s := New()

	t.Run("long text truncated with ellipsis", func(t *testing.T) {
		out := s.Summary(strings.Repeat("a", 500), 200)
		assert.Equal(t, strings.Repeat("a", 200)+"...", out)
		assert.Len(t, out, 203)
	})

	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "short", s.Summary("short", 200))
	})

	t.Run("markup stripped", func(t *testing.T) {
		assert.Equal(t, "hello world", s.Summary("<p>hello <b>world</b></p>", 200))
	})

	t.Run("entities decoded", func(t *testing.T) {
		assert.Equal(t, "a & b", s.Summary("<p>a &amp; b</p>", 200))
	})

	t.Run("zero max uses default", func(t *testing.T) {
		out := s.Summary(strings.Repeat("x", 300), 0)
		assert.Len(t, out, DefaultSummaryLength+3)
	})

	t.Run("whitespace trimmed", func(t *testing.T) {
		assert.Equal(t, "text", s.Summary("  <p> text </p>  ", 200))
	})
}

func TestSanitizer_PlainText(t *testing.T) {
	s := New()

	t.Run("no truncation", func(t *testing.T) {
		out := s.PlainText("<p>" + strings.Repeat("a", 500) + "</p>")
		assert.Len(t, out, 500)
	})

	t.Run("markup stripped and entities decoded", func(t *testing.T) {
		assert.Equal(t, "a & b", s.PlainText("<p>a &amp; <b>b</b></p>"))
	})
}

func TestSanitizer_FirstImage(t *testing.T) {
	s := New()

	t.Run("first image src returned", func(t *testing.T) {
		html := `<p>intro</p><img src="https://example.com/1.png"><img src="https://example.com/2.png">`
		assert.Equal(t, "https://example.com/1.png", s.FirstImage(html))
	})

	t.Run("no image", func(t *testing.T) {
		assert.Empty(t, s.FirstImage("<p>no images here</p>"))
	})

	t.Run("image without src", func(t *testing.T) {
		assert.Empty(t, s.FirstImage(`<img alt="broken">`))
	})

	t.Run("self closing image", func(t *testing.T) {
		assert.Equal(t, "/x.jpg", s.FirstImage(`<img src="/x.jpg"/>`))
	})
}
