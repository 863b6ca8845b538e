package feed

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-pkgz/lgr"
)

// Strategy identifies which discovery step produced a locator result
type Strategy string

// discovery strategies, in the order they are attempted
const (
	StrategyFeedPath    Strategy = "feed-path"    // URL already looks like a feed
	StrategyContentType Strategy = "content-type" // direct fetch returned a feed document
	StrategyHTMLLink    Strategy = "html-link"    // <link rel="alternate"> discovery
	StrategyProbe       Strategy = "probe"        // common-path HEAD probing
	StrategyNone        Strategy = "none"         // all strategies exhausted
)

// Result is the outcome of feed discovery. Discovery never fails: when all
// strategies are exhausted the original URL is returned with Exhausted set
// and the parser gets to surface the real error.
type Result struct {
	FeedURL   string
	Body      []byte // feed document already downloaded during discovery, may be nil
	Strategy  Strategy
	Exhausted bool
}

// commonFeedPaths are probed against the site origin as the last strategy
var commonFeedPaths = []string{"/feed", "/rss", "/feed.xml", "/rss.xml", "/atom.xml", "/index.xml"}

// maxDiscoveryBody caps how much of a discovered page or feed is read
const maxDiscoveryBody = 5 * 1024 * 1024

// Locator resolves a user-supplied URL to a machine-readable feed endpoint
type Locator struct {
	client       *http.Client
	userAgent    string
	fetchTimeout time.Duration
	probeTimeout time.Duration
}

// NewLocator creates a feed locator using the shared HTTP client
func NewLocator(client *http.Client, userAgent string) *Locator {
	return &Locator{
		client:       client,
		userAgent:    userAgent,
		fetchTimeout: 8 * time.Second,
		probeTimeout: 5 * time.Second,
	}
}

// Locate determines the actual feed endpoint for userURL. Strategies are
// tried in order, short-circuiting on the first success; network errors are
// absorbed and treated as "try the next strategy".
func (l *Locator) Locate(ctx context.Context, userURL string) Result {
	if looksLikeFeedURL(userURL) {
		return Result{FeedURL: userURL, Strategy: StrategyFeedPath}
	}

	if res, ok := l.locateByFetch(ctx, userURL); ok {
		return res
	}

	if feedURL, ok := l.probeCommonPaths(ctx, userURL); ok {
		return Result{FeedURL: feedURL, Strategy: StrategyProbe}
	}

	lgr.Printf("[DEBUG] feed discovery exhausted for %s", userURL)
	return Result{FeedURL: userURL, Strategy: StrategyNone, Exhausted: true}
}

// locateByFetch fetches userURL and either recognizes a feed document by
// content type or scans returned HTML for alternate feed links
func (l *Locator) locateByFetch(ctx context.Context, userURL string) (Result, bool) {
	ctx, cancel := context.WithTimeout(ctx, l.fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userURL, http.NoBody)
	if err != nil {
		return Result{}, false
	}
	setFeedHeaders(req, l.userAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		lgr.Printf("[DEBUG] discovery fetch failed for %s: %v", userURL, err)
		return Result{}, false
	}
	defer resp.Body.Close()

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))

	// already a feed, keep the body to avoid a second fetch
	if isFeedContentType(contentType) {
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxDiscoveryBody))
		if err != nil {
			return Result{FeedURL: userURL, Strategy: StrategyContentType}, true
		}
		return Result{FeedURL: userURL, Body: body, Strategy: StrategyContentType}, true
	}

	if !strings.Contains(contentType, "html") {
		return Result{}, false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDiscoveryBody))
	if err != nil {
		return Result{}, false
	}

	feedURL, ok := findAlternateLink(body, userURL)
	if !ok {
		return Result{}, false
	}
	return Result{FeedURL: feedURL, Strategy: StrategyHTMLLink}, true
}

// probeCommonPaths issues HEAD requests against well-known feed paths on the
// origin and accepts the first success with a feed-ish content type
func (l *Locator) probeCommonPaths(ctx context.Context, userURL string) (string, bool) {
	base, err := url.Parse(userURL)
	if err != nil || base.Host == "" {
		return "", false
	}
	origin := url.URL{Scheme: base.Scheme, Host: base.Host}

	for _, p := range commonFeedPaths {
		testURL := origin.String() + p
		if l.probe(ctx, testURL) {
			return testURL, true
		}
	}
	return "", false
}

// probe checks a single candidate URL with a HEAD request
func (l *Locator) probe(ctx context.Context, testURL string) bool {
	ctx, cancel := context.WithTimeout(ctx, l.probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, testURL, http.NoBody)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", l.userAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false
	}
	return isFeedContentType(strings.ToLower(resp.Header.Get("Content-Type")))
}

// findAlternateLink scans an HTML document for <link rel="alternate"> feed
// references and resolves the href against the page URL
func findAlternateLink(body []byte, pageURL string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", false
	}

	selectors := []string{
		`link[type="application/rss+xml"]`,
		`link[type="application/atom+xml"]`,
		`link[type="application/feed+json"]`,
	}
	for _, sel := range selectors {
		href, ok := doc.Find(sel).First().Attr("href")
		if !ok || href == "" {
			continue
		}
		base, err := url.Parse(pageURL)
		if err != nil {
			return href, true
		}
		ref, err := url.Parse(href)
		if err != nil {
			return href, true
		}
		return base.ResolveReference(ref).String(), true
	}
	return "", false
}

// looksLikeFeedURL reports whether the URL path already matches a feed-like
// pattern, which lets discovery skip the network entirely
func looksLikeFeedURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	lower := strings.ToLower(u.Path)
	switch path.Ext(lower) {
	case ".xml", ".rss", ".atom":
		return true
	}

	for _, seg := range strings.Split(strings.Trim(lower, "/"), "/") {
		switch seg {
		case "feed", "rss", "atom":
			return true
		}
	}
	return false
}

// isFeedContentType reports whether a content-type header value indicates an
// XML/RSS/Atom document
func isFeedContentType(contentType string) bool {
	return strings.Contains(contentType, "xml") ||
		strings.Contains(contentType, "rss") ||
		strings.Contains(contentType, "atom")
}
