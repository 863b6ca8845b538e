package feed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/extensions"

	"github.com/umputun/feedscope/pkg/domain"
)

// classified parse failures, surfaced to users verbatim. Raw transport and
// parser errors never leave this package.
var (
	ErrFeedNotFound = errors.New("no feed found at this URL, try the direct feed URL")
	ErrRateLimited  = errors.New("too many requests, wait and retry")
	ErrTimeout      = errors.New("request timed out")
	ErrParseFailed  = errors.New("failed to parse feed")
)

// faviconService synthesizes a favicon URL from the subscription hostname,
// the feed document itself is never consulted for icons
const faviconService = "https://www.google.com/s2/favicons?domain=%s&sz=32"

// Parser fetches and parses RSS/Atom feeds into normalized articles
type Parser struct {
	locator   *Locator
	sanitizer Sanitizer
	client    *http.Client
	userAgent string
	timeout   time.Duration
}

// Sanitizer cleans item HTML and derives plain-text fields from it
type Sanitizer interface {
	Sanitize(rawHTML string) string
	Summary(content string, maxLength int) string
	FirstImage(content string) string
}

// NewParser creates a feed parser. The locator resolves user-supplied URLs
// to feed endpoints before parsing; the client is shared with it.
func NewParser(client *http.Client, locator *Locator, sanitizer Sanitizer, userAgent string, timeout time.Duration) *Parser {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Parser{
		locator:   locator,
		sanitizer: sanitizer,
		client:    client,
		userAgent: userAgent,
		timeout:   timeout,
	}
}

// Parse discovers the feed endpoint for userURL, fetches and parses the feed
// and normalizes its items. On failure the returned error is one of the
// classified sentinels, suitable for direct display.
func (p *Parser) Parse(ctx context.Context, userURL string) (*domain.ParsedFeed, error) {
	located := p.locator.Locate(ctx, userURL)

	body := located.Body
	if body == nil {
		fetched, err := p.fetch(ctx, located.FeedURL)
		if err != nil {
			lgr.Printf("[DEBUG] feed fetch failed for %s: %v", located.FeedURL, err)
			return nil, classifyError(err)
		}
		body = fetched
	}

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		lgr.Printf("[DEBUG] feed parse failed for %s: %v", located.FeedURL, err)
		return nil, classifyError(err)
	}

	result := &domain.ParsedFeed{
		Title:       parsed.Title,
		Description: parsed.Description,
		Link:        parsed.Link,
		Favicon:     faviconFor(userURL),
		Articles:    make([]domain.ParsedArticle, 0, len(parsed.Items)),
	}

	for _, item := range parsed.Items {
		result.Articles = append(result.Articles, p.normalizeItem(item))
	}
	return result, nil
}

// normalizeItem converts one gofeed item into an Article-shaped record,
// applying the GUID fallback chain, body selection and sanitization
func (p *Parser) normalizeItem(item *gofeed.Item) domain.ParsedArticle {
	body := item.Content // gofeed maps content:encoded here
	if body == "" {
		body = item.Description
	}

	article := domain.ParsedArticle{
		GUID:        itemGUID(item),
		Title:       item.Title,
		Content:     p.sanitizer.Summary(body, 0),
		ContentHTML: p.sanitizer.Sanitize(body),
		Summary:     p.sanitizer.Summary(item.Description, 0),
		Author:      itemAuthor(item),
		Link:        CleanURL(item.Link),
	}

	if article.Title == "" {
		article.Title = "Untitled"
	}

	if article.ImageURL = mediaImageURL(item.Extensions); article.ImageURL == "" {
		article.ImageURL = p.sanitizer.FirstImage(body)
	}

	if item.PublishedParsed != nil {
		article.Published = item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		article.Published = item.UpdatedParsed
	}

	return article
}

// fetch retrieves the feed document with the configured timeout
func (p *Parser) fetch(ctx context.Context, feedURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	setFeedHeaders(req, p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDiscoveryBody))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

// itemGUID returns the dedup key for an item: GUID, link or title in that
// order, with a random token as the last resort. The random fallback is not
// stable across syncs and may duplicate articles for degenerate feeds.
func itemGUID(item *gofeed.Item) string {
	switch {
	case item.GUID != "":
		return item.GUID
	case item.Link != "":
		return item.Link
	case item.Title != "":
		return item.Title
	}
	return uuid.NewString()
}

// itemAuthor extracts the creator or author name, empty when absent
func itemAuthor(item *gofeed.Item) string {
	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Creator) > 0 {
		return item.DublinCoreExt.Creator[0]
	}
	if item.Author != nil {
		return item.Author.Name
	}
	return ""
}

// mediaImageURL reads media:content / media:thumbnail extension URLs
func mediaImageURL(exts ext.Extensions) string {
	media, ok := exts["media"]
	if !ok {
		return ""
	}
	for _, name := range []string{"content", "thumbnail"} {
		for _, e := range media[name] {
			if u := e.Attrs["url"]; u != "" {
				return u
			}
		}
	}
	return ""
}

// faviconFor builds the favicon service URL from the subscription hostname
func faviconFor(userURL string) string {
	u, err := url.Parse(userURL)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return fmt.Sprintf(faviconService, u.Hostname())
}

// classifyError maps an arbitrary fetch/parse error to one of the
// user-facing categories
func classifyError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "404") || strings.Contains(msg, "not found"):
		return ErrFeedNotFound
	case strings.Contains(msg, "429") || strings.Contains(msg, "too many requests"):
		return ErrRateLimited
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded"):
		return ErrTimeout
	}
	return ErrParseFailed
}
