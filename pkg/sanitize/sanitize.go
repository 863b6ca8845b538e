// Package sanitize reduces arbitrary feed HTML to a safe allow-listed subset
// and provides plain-text helpers built on the same policy. Feed bodies are
// attacker-controlled input, so this is a security boundary: whatever comes
// out must not execute script or load active content.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	xhtml "golang.org/x/net/html"
)

// DefaultSummaryLength is the truncation limit for Summary when the caller
// passes 0
const DefaultSummaryLength = 200

// allowedTags is the fixed set of structural and text elements retained in
// sanitized output. Anything else is unwrapped, its children promoted.
var allowedTags = []string{
	"p", "br", "strong", "em", "b", "i", "u",
	"h1", "h2", "h3", "h4", "h5", "h6",
	"ul", "ol", "li", "a", "img",
	"blockquote", "pre", "code", "figure", "figcaption",
}

// removedTags are dropped together with their whole subtree, they are either
// inherently unsafe or layout-only
var removedTags = []string{"script", "style", "iframe", "form", "object", "embed", "noscript"}

// allowedAttrs is the attribute allow-list applied to every retained element
var allowedAttrs = []string{"href", "src", "alt", "title", "class", "target"}

// Sanitizer filters HTML fragments against the fixed tag and attribute policy
type Sanitizer struct {
	policy *bluemonday.Policy
	strip  *bluemonday.Policy
}

// New creates a sanitizer with the fixed allow-list policy
func New() *Sanitizer {
	p := bluemonday.NewPolicy()
	p.AllowElements(allowedTags...)
	p.AllowAttrs(allowedAttrs...).Globally()
	p.AllowURLSchemes("http", "https", "mailto")
	p.AllowRelativeURLs(true)
	p.SkipElementsContent(removedTags...)

	return &Sanitizer{
		policy: p,
		strip:  bluemonday.StrictPolicy(),
	}
}

// Sanitize returns rawHTML reduced to the allow-listed subset. Disallowed
// elements are unwrapped keeping nested allowed markup, removed elements
// lose their subtree, and non-allow-listed attributes are stripped from
// every element.
func (s *Sanitizer) Sanitize(rawHTML string) string {
	return strings.TrimSpace(s.policy.Sanitize(rawHTML))
}

// PlainText strips all markup from content without truncation
func (s *Sanitizer) PlainText(content string) string {
	text := s.strip.Sanitize(content)
	text = html.UnescapeString(text) // bluemonday entity-escapes text nodes
	return strings.TrimSpace(text)
}

// Summary strips all markup from content and truncates the resulting plain
// text to maxLength runes, appending "..." when truncated. maxLength of 0
// means DefaultSummaryLength. Truncation ignores word boundaries.
func (s *Sanitizer) Summary(content string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultSummaryLength
	}

	text := s.PlainText(content)

	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return strings.TrimSpace(string(runes[:maxLength])) + "..."
}

// FirstImage returns the src attribute of the first img element in content,
// or empty string when there is none
func (s *Sanitizer) FirstImage(content string) string {
	tokenizer := xhtml.NewTokenizer(strings.NewReader(content))
	for {
		switch tokenizer.Next() {
		case xhtml.ErrorToken:
			return ""
		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			token := tokenizer.Token()
			if token.Data != "img" {
				continue
			}
			for _, attr := range token.Attr {
				if attr.Key == "src" {
					return attr.Val
				}
			}
		}
	}
}
