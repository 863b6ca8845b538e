package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocator_Locate_FeedLikePath(t *testing.T) {
	var requests int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
	}))
	defer server.Close()

	locator := NewLocator(server.Client(), "Feedscope/1.0")

	tests := []struct {
		name string
		url  string
	}{
		{"xml extension", server.URL + "/feed.xml"},
		{"rss extension", server.URL + "/blog.rss"},
		{"atom extension", server.URL + "/posts.atom"},
		{"feed segment", server.URL + "/feed"},
		{"rss segment", server.URL + "/blog/rss"},
		{"atom segment", server.URL + "/atom/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := locator.Locate(context.Background(), tt.url)
			assert.Equal(t, tt.url, res.FeedURL)
			assert.Equal(t, StrategyFeedPath, res.Strategy)
			assert.False(t, res.Exhausted)
		})
	}

	// short-circuit means no discovery traffic at all
	assert.Zero(t, atomic.LoadInt64(&requests))
}

func TestLocator_Locate_ContentType(t *testing.T) {
	rss := `<?xml version="1.0"?><rss version="2.0"><channel><title>t</title></channel></rss>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
		w.Write([]byte(rss))
	}))
	defer server.Close()

	locator := NewLocator(server.Client(), "Feedscope/1.0")
	res := locator.Locate(context.Background(), server.URL+"/page")

	assert.Equal(t, server.URL+"/page", res.FeedURL)
	assert.Equal(t, StrategyContentType, res.Strategy)
	assert.Equal(t, rss, string(res.Body), "already-downloaded body should be kept")
}

func TestLocator_Locate_HTMLLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head>
			<link rel="alternate" type="application/rss+xml" href="/news/feed.xml">
		</head><body>site</body></html>`))
	}))
	defer server.Close()

	locator := NewLocator(server.Client(), "Feedscope/1.0")
	res := locator.Locate(context.Background(), server.URL+"/page")

	assert.Equal(t, StrategyHTMLLink, res.Strategy)
	assert.Equal(t, server.URL+"/news/feed.xml", res.FeedURL, "relative href resolved against page URL")
	assert.Nil(t, res.Body)
}

func TestLocator_Locate_HTMLLink_Atom(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head>
			<link rel="alternate" type="application/atom+xml" href="https://other.example.com/atom.xml">
		</head></html>`))
	}))
	defer server.Close()

	locator := NewLocator(server.Client(), "Feedscope/1.0")
	res := locator.Locate(context.Background(), server.URL+"/page")

	assert.Equal(t, StrategyHTMLLink, res.Strategy)
	assert.Equal(t, "https://other.example.com/atom.xml", res.FeedURL)
}

func TestLocator_Locate_Probe(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/page", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><head></head><body>no links</body></html>"))
	})
	mux.HandleFunc("/rss.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	locator := NewLocator(server.Client(), "Feedscope/1.0")
	res := locator.Locate(context.Background(), server.URL+"/page")

	assert.Equal(t, StrategyProbe, res.Strategy)
	assert.Equal(t, server.URL+"/rss.xml", res.FeedURL)
}

func TestLocator_Locate_Exhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	locator := NewLocator(server.Client(), "Feedscope/1.0")
	res := locator.Locate(context.Background(), server.URL+"/page")

	require.True(t, res.Exhausted)
	assert.Equal(t, server.URL+"/page", res.FeedURL, "original URL returned for the parser to fail on")
	assert.Equal(t, StrategyNone, res.Strategy)
}

func TestLocator_Locate_NetworkErrorAbsorbed(t *testing.T) {
	// no server listening on this address
	locator := NewLocator(&http.Client{}, "Feedscope/1.0")
	res := locator.Locate(context.Background(), "http://127.0.0.1:1/page")

	assert.True(t, res.Exhausted)
	assert.Equal(t, "http://127.0.0.1:1/page", res.FeedURL)
}

func TestLooksLikeFeedURL(t *testing.T) {
	assert.True(t, looksLikeFeedURL("https://x.com/feed.xml"))
	assert.True(t, looksLikeFeedURL("https://x.com/blog/FEED.XML"))
	assert.True(t, looksLikeFeedURL("https://x.com/rss"))
	assert.False(t, looksLikeFeedURL("https://x.com/blog/post-about-rss-readers"))
	assert.False(t, looksLikeFeedURL("https://x.com/"))
	assert.False(t, looksLikeFeedURL("https://x.com/atomic"))
}
