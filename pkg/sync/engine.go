package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/feedscope/pkg/domain"
)

//go:generate moq -out mocks/feed_store.go -pkg mocks -skip-ensure -fmt goimports . FeedStore
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . Parser
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor

// FeedStore is the subset of feed persistence used by the engine
type FeedStore interface {
	GetFeed(ctx context.Context, id int64) (*domain.Feed, error)
	GetActiveFeeds(ctx context.Context, userID int64) ([]*domain.Feed, error)
	GetAllActiveFeeds(ctx context.Context) ([]*domain.Feed, error)
	UpdateFeedMetadata(ctx context.Context, feedID int64, meta domain.FeedMetadata) error
	UpdateFeedError(ctx context.Context, feedID int64, errMsg string) error
}

// ArticleStore is the subset of article persistence used by the engine
type ArticleStore interface {
	GUIDSet(ctx context.Context, feedID int64) (map[string]struct{}, error)
	CreateArticles(ctx context.Context, articles []*domain.Article) (int, error)
}

// Parser fetches and normalizes a feed by URL
type Parser interface {
	Parse(ctx context.Context, url string) (*domain.ParsedFeed, error)
}

// Extractor pulls full article text from a web page
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Config holds engine tuning
type Config struct {
	MaxWorkers       int           // concurrent feed syncs in SyncAll
	ExtractRateLimit time.Duration // pause between content extractions
	ExtractThreshold int           // extract when feed content is shorter than this
}

// Engine drives the fetch, dedup and store cycle for feeds
type Engine struct {
	feeds     FeedStore
	articles  ArticleStore
	parser    Parser
	extractor Extractor // optional, nil disables content enrichment
	cfg       Config
}

// NewEngine creates a sync engine. Pass a nil extractor to skip content enrichment.
func NewEngine(feeds FeedStore, articles ArticleStore, parser Parser, extractor Extractor, cfg Config) *Engine {
	if cfg.MaxWorkers == 0 {
		cfg.MaxWorkers = 5
	}
	if cfg.ExtractRateLimit == 0 {
		cfg.ExtractRateLimit = time.Second
	}
	if cfg.ExtractThreshold == 0 {
		cfg.ExtractThreshold = 500
	}
	return &Engine{feeds: feeds, articles: articles, parser: parser, extractor: extractor, cfg: cfg}
}

// SyncFeed fetches one feed, stores items with unseen GUIDs and refreshes
// feed metadata. Parse failures and empty feeds are recorded on the feed's
// error counters before being returned.
func (e *Engine) SyncFeed(ctx context.Context, feedID int64) (domain.SyncResult, error) {
	feed, err := e.feeds.GetFeed(ctx, feedID)
	if err != nil {
		return domain.SyncResult{}, fmt.Errorf("get feed %d: %w", feedID, err)
	}

	parsed, err := e.parser.Parse(ctx, feed.URL)
	if err != nil {
		e.recordFeedError(ctx, feedID, err.Error())
		return domain.SyncResult{}, fmt.Errorf("parse feed %q: %w", feed.URL, err)
	}

	if len(parsed.Articles) == 0 {
		e.recordFeedError(ctx, feedID, "no articles found in feed")
		return domain.SyncResult{}, fmt.Errorf("no articles found in feed %q", feed.URL)
	}

	known, err := e.articles.GUIDSet(ctx, feedID)
	if err != nil {
		return domain.SyncResult{}, fmt.Errorf("load known guids for feed %d: %w", feedID, err)
	}

	var result domain.SyncResult
	newArticles := e.collectNew(ctx, feedID, parsed.Articles, known, &result)

	var insertErr error
	if len(newArticles) > 0 {
		inserted, err := e.articles.CreateArticles(ctx, newArticles)
		result.Inserted = inserted
		if err != nil {
			insertErr = fmt.Errorf("store articles for feed %d: %w", feedID, err)
			result.Errors = append(result.Errors, insertErr.Error())
		}
	}

	// a successful parse always refreshes metadata and clears error state,
	// even when the insert failed part way. Stored values are kept where the
	// feed itself is silent.
	meta := domain.FeedMetadata{
		Title:       firstNonEmpty(parsed.Title, feed.Title, feed.URL),
		Description: firstNonEmpty(parsed.Description, feed.Description),
		SiteURL:     firstNonEmpty(parsed.Link, feed.SiteURL),
		Favicon:     firstNonEmpty(parsed.Favicon, feed.Favicon),
	}
	if err := e.feeds.UpdateFeedMetadata(ctx, feedID, meta); err != nil {
		return result, fmt.Errorf("update metadata for feed %d: %w", feedID, err)
	}
	if insertErr != nil {
		return result, insertErr
	}

	lgr.Printf("[INFO] synced feed %q, %d new articles", meta.Title, result.Inserted)
	return result, nil
}

// collectNew filters out already stored items and optionally enriches the
// remaining ones with extracted page content
func (e *Engine) collectNew(ctx context.Context, feedID int64, items []domain.ParsedArticle,
	known map[string]struct{}, result *domain.SyncResult) []*domain.Article {

	newArticles := make([]*domain.Article, 0, len(items))
	for _, item := range items {
		if _, ok := known[item.GUID]; ok {
			continue
		}

		article := &domain.Article{
			FeedID:      feedID,
			GUID:        item.GUID,
			Title:       item.Title,
			Content:     item.Content,
			ContentHTML: item.ContentHTML,
			Summary:     item.Summary,
			Author:      item.Author,
			Link:        item.Link,
			ImageURL:    item.ImageURL,
			Published:   item.Published,
		}

		if e.extractor != nil && article.Link != "" && len(article.Content) < e.cfg.ExtractThreshold {
			e.enrich(ctx, article, result)
		}

		newArticles = append(newArticles, article)
	}
	return newArticles
}

// enrich replaces thin feed content with extracted page text, failures are
// collected but never block the insert
func (e *Engine) enrich(ctx context.Context, article *domain.Article, result *domain.SyncResult) {
	extracted, err := e.extractor.Extract(ctx, article.Link)
	if err != nil {
		lgr.Printf("[DEBUG] extraction failed for %s: %v", article.Link, err)
		result.Errors = append(result.Errors, fmt.Sprintf("extract %s: %v", article.Link, err))
		return
	}
	article.Content = extracted

	select {
	case <-ctx.Done():
	case <-time.After(e.cfg.ExtractRateLimit):
	}
}

// SyncAll syncs every enabled feed of a user concurrently. A failing feed is
// reported in the log and skipped, it never blocks the others.
func (e *Engine) SyncAll(ctx context.Context, userID int64) ([]domain.FeedSyncResult, error) {
	feeds, err := e.feeds.GetActiveFeeds(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get active feeds for user %d: %w", userID, err)
	}
	return e.syncFeeds(ctx, feeds), nil
}

// SyncAllUsers syncs every enabled feed across all users, used by the scheduler
func (e *Engine) SyncAllUsers(ctx context.Context) ([]domain.FeedSyncResult, error) {
	feeds, err := e.feeds.GetAllActiveFeeds(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active feeds: %w", err)
	}
	return e.syncFeeds(ctx, feeds), nil
}

func (e *Engine) syncFeeds(ctx context.Context, feeds []*domain.Feed) []domain.FeedSyncResult {
	results := make([]domain.FeedSyncResult, len(feeds))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.MaxWorkers)

	for i, feed := range feeds {
		g.Go(func() error {
			res, err := e.SyncFeed(ctx, feed.ID)
			result := domain.FeedSyncResult{FeedID: feed.ID, Inserted: res.Inserted}
			if err != nil {
				lgr.Printf("[WARN] sync failed for feed %d (%s): %v", feed.ID, feed.URL, err)
				result.Error = err.Error()
			}
			results[i] = result
			return nil
		})
	}
	_ = g.Wait() // workers never return errors, failures are per-feed

	return results
}

func (e *Engine) recordFeedError(ctx context.Context, feedID int64, msg string) {
	if err := e.feeds.UpdateFeedError(ctx, feedID, msg); err != nil {
		lgr.Printf("[WARN] failed to record error for feed %d: %v", feedID, err)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
