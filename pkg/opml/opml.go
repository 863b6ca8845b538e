// Package opml serializes feed subscriptions to OPML 2.0 and extracts
// candidate feed URLs from uploaded OPML documents.
package opml

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/umputun/feedscope/pkg/domain"
)

// Entry is one subscription candidate extracted from an OPML document
type Entry struct {
	URL   string
	Title string
}

var (
	xmlURLRe = regexp.MustCompile(`xmlUrl="([^"]+)"`)
	textRe   = regexp.MustCompile(`text="([^"]+)"`)
)

// Export produces an OPML 2.0 document with one outline per feed. The
// outline text and title fall back to the feed URL when the title is empty.
func Export(feeds []*domain.Feed, now time.Time) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<opml version=\"2.0\">\n")
	b.WriteString("  <head>\n")
	b.WriteString("    <title>Feedscope Subscriptions</title>\n")
	fmt.Fprintf(&b, "    <dateCreated>%s</dateCreated>\n", now.UTC().Format(time.RFC3339))
	b.WriteString("  </head>\n")
	b.WriteString("  <body>\n")

	for _, feed := range feeds {
		title := feed.Title
		if title == "" {
			title = feed.URL
		}
		fmt.Fprintf(&b, "    <outline text=\"%s\" title=\"%s\" type=\"rss\" xmlUrl=\"%s\" htmlUrl=\"\"/>\n",
			escapeAttr(title), escapeAttr(title), escapeAttr(feed.URL))
	}

	b.WriteString("  </body>\n")
	b.WriteString("</opml>\n")
	return b.String()
}

// ExtractEntries pulls feed candidates out of arbitrary OPML-ish text by
// pairing the Nth xmlUrl attribute with the Nth text attribute. Malformed or
// reordered documents can misalign pairs; unmatched titles default to empty
// and the caller is expected to skip entries that fail downstream.
func ExtractEntries(opml string) []Entry {
	urls := xmlURLRe.FindAllStringSubmatch(opml, -1)
	texts := textRe.FindAllStringSubmatch(opml, -1)

	entries := make([]Entry, 0, len(urls))
	for i, m := range urls {
		entry := Entry{URL: unescapeAttr(m[1])}
		if i < len(texts) {
			entry.Title = unescapeAttr(texts[i][1])
		}
		entries = append(entries, entry)
	}
	return entries
}

// escapeAttr escapes a string for use inside a double-quoted XML attribute
// value. This is a minimal attribute-context escaper, not a general XML
// serializer, and must not be trusted outside attribute values.
func escapeAttr(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}

// unescapeAttr reverses escapeAttr for values read back from attributes
func unescapeAttr(s string) string {
	r := strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
		"&amp;", "&",
	)
	return r.Replace(s)
}
