package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedscope/pkg/sanitize"
)

func newTestParser(client *http.Client) *Parser {
	locator := NewLocator(client, "Feedscope/1.0")
	return NewParser(client, locator, sanitize.New(), "Feedscope/1.0", 5*time.Second)
}

func TestParser_Parse_RSS(t *testing.T) {
	rssContent := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/"
     xmlns:media="http://search.yahoo.com/mrss/" xmlns:dc="http://purl.org/dc/elements/1.1/">
<channel>
	<title>Test Feed</title>
	<link>http://example.com</link>
	<description>Test Description</description>
	<item>
		<title>Test Article 1</title>
		<link>http://example.com/article1?utm_source=feed&amp;id=7</link>
		<description>Article 1 description</description>
		<content:encoded><![CDATA[<div><p>Full <b>content</b></p><script>alert(1)</script></div>]]></content:encoded>
		<media:thumbnail url="http://example.com/thumb1.jpg"/>
		<pubDate>Mon, 02 Jan 2006 15:04:05 -0700</pubDate>
		<guid>http://example.com/article1</guid>
		<dc:creator>Jane Writer</dc:creator>
	</item>
	<item>
		<title>Test Article 2</title>
		<link>http://example.com/article2</link>
		<description><![CDATA[<p>Body with <img src="http://example.com/inline.png"> image</p>]]></description>
	</item>
</channel>
</rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssContent))
	}))
	defer server.Close()

	parser := newTestParser(server.Client())
	feed, err := parser.Parse(context.Background(), server.URL+"/feed.xml")
	require.NoError(t, err)

	assert.Equal(t, "Test Feed", feed.Title)
	assert.Equal(t, "Test Description", feed.Description)
	assert.Equal(t, "http://example.com", feed.Link)
	assert.Contains(t, feed.Favicon, "www.google.com/s2/favicons?domain=127.0.0.1")

	require.Len(t, feed.Articles, 2)

	a1 := feed.Articles[0]
	assert.Equal(t, "http://example.com/article1", a1.GUID)
	assert.Equal(t, "Test Article 1", a1.Title)
	assert.Equal(t, "http://example.com/article1?id=7", a1.Link, "tracking params stripped")
	assert.Equal(t, "Jane Writer", a1.Author)
	assert.Equal(t, "http://example.com/thumb1.jpg", a1.ImageURL, "media:thumbnail preferred")
	assert.Equal(t, "Full content", a1.Content, "content:encoded preferred and flattened")
	assert.Contains(t, a1.ContentHTML, "<p>Full <b>content</b></p>")
	assert.NotContains(t, a1.ContentHTML, "script")
	assert.NotContains(t, a1.ContentHTML, "div")
	assert.Equal(t, "Article 1 description", a1.Summary)
	require.NotNil(t, a1.Published)
	assert.Equal(t, 2006, a1.Published.Year())

	a2 := feed.Articles[1]
	assert.Equal(t, "http://example.com/article2", a2.GUID, "link used when GUID missing")
	assert.Equal(t, "http://example.com/inline.png", a2.ImageURL, "first body image used without media extension")
	assert.Nil(t, a2.Published)
}

func TestParser_Parse_Atom(t *testing.T) {
	atomContent := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
	<title>Atom Feed</title>
	<subtitle>Atom Subtitle</subtitle>
	<link href="http://example.com"/>
	<entry>
		<title>Entry 1</title>
		<link href="http://example.com/entry1"/>
		<id>urn:uuid:1225c695-cfb8-4ebb-aaaa-80da344efa6a</id>
		<updated>2006-01-02T15:04:05Z</updated>
		<summary>Entry 1 summary</summary>
		<author><name>John Doe</name></author>
	</entry>
</feed>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/atom+xml")
		w.Write([]byte(atomContent))
	}))
	defer server.Close()

	parser := newTestParser(server.Client())
	feed, err := parser.Parse(context.Background(), server.URL+"/atom.xml")
	require.NoError(t, err)

	assert.Equal(t, "Atom Feed", feed.Title)
	assert.Equal(t, "Atom Subtitle", feed.Description)

	require.Len(t, feed.Articles, 1)
	item := feed.Articles[0]
	assert.Equal(t, "urn:uuid:1225c695-cfb8-4ebb-aaaa-80da344efa6a", item.GUID)
	assert.Equal(t, "John Doe", item.Author)
	require.NotNil(t, item.Published)
}

func TestParser_Parse_PrefetchedBody(t *testing.T) {
	rssContent := `<?xml version="1.0"?><rss version="2.0"><channel><title>Pre</title>
<item><title>one</title><link>http://example.com/1</link></item></channel></rss>`

	var requests int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssContent))
	}))
	defer server.Close()

	parser := newTestParser(server.Client())
	// path is not feed-like, so discovery fetches it, sees the feed content
	// type and hands the body over without a second fetch
	feed, err := parser.Parse(context.Background(), server.URL+"/page")
	require.NoError(t, err)

	assert.Equal(t, "Pre", feed.Title)
	assert.Equal(t, int64(1), atomic.LoadInt64(&requests))
}

func TestParser_Parse_GUIDFallbacks(t *testing.T) {
	rssContent := `<?xml version="1.0"?><rss version="2.0"><channel><title>F</title>
<item><title>Only Title</title></item>
<item><description>nothing else at all</description></item>
</channel></rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssContent))
	}))
	defer server.Close()

	parser := newTestParser(server.Client())
	feed, err := parser.Parse(context.Background(), server.URL+"/feed.xml")
	require.NoError(t, err)
	require.Len(t, feed.Articles, 2)

	assert.Equal(t, "Only Title", feed.Articles[0].GUID, "title used when guid and link missing")
	assert.NotEmpty(t, feed.Articles[1].GUID, "random token generated as last resort")
	assert.Len(t, feed.Articles[1].GUID, 36)
	assert.Equal(t, "Untitled", feed.Articles[1].Title)
}

func TestParser_Parse_ErrorClassification(t *testing.T) {
	t.Run("404 means no feed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		parser := newTestParser(server.Client())
		_, err := parser.Parse(context.Background(), server.URL+"/feed.xml")
		require.ErrorIs(t, err, ErrFeedNotFound)
	})

	t.Run("429 means rate limited", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		parser := newTestParser(server.Client())
		_, err := parser.Parse(context.Background(), server.URL+"/feed.xml")
		require.ErrorIs(t, err, ErrRateLimited)
	})

	t.Run("slow server means timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
		}))
		defer server.Close()

		locator := NewLocator(server.Client(), "Feedscope/1.0")
		parser := NewParser(server.Client(), locator, sanitize.New(), "Feedscope/1.0", 50*time.Millisecond)
		_, err := parser.Parse(context.Background(), server.URL+"/feed.xml")
		require.ErrorIs(t, err, ErrTimeout)
	})

	t.Run("garbage means parse failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("definitely not xml"))
		}))
		defer server.Close()

		parser := newTestParser(server.Client())
		_, err := parser.Parse(context.Background(), server.URL+"/feed.xml")
		require.ErrorIs(t, err, ErrParseFailed)
	})
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want error
	}{
		{"status 404", "unexpected status code: 404", ErrFeedNotFound},
		{"status 429", "unexpected status code: 429", ErrRateLimited},
		{"timeout text", "context deadline exceeded (Client.Timeout exceeded)", ErrTimeout},
		{"anything else", "gofeed: failed to detect feed type", ErrParseFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classifyError(assertErr(tt.msg)), tt.want)
		})
	}
}

// assertErr builds a plain error from a message
type assertErr string

func (e assertErr) Error() string { return string(e) }
