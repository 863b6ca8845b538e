package domain

import "time"

// Feed represents a subscribed feed source owned by a user
type Feed struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"user_id"`
	URL           string     `json:"url"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	SiteURL       string     `json:"site_url"`
	Favicon       string     `json:"favicon"`
	Category      string     `json:"category"`
	FetchInterval int        `json:"fetch_interval"` // seconds
	LastFetched   *time.Time `json:"last_fetched"`
	ErrorCount    int        `json:"error_count"`
	LastError     string     `json:"last_error"`
	Enabled       bool       `json:"enabled"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// FeedMetadata carries the feed-level fields refreshed after every successful parse
type FeedMetadata struct {
	Title       string
	Description string
	SiteURL     string
	Favicon     string
}

// ParsedFeed is the normalized result of fetching and parsing a feed
type ParsedFeed struct {
	Title       string
	Description string
	Link        string
	Favicon     string
	Articles    []ParsedArticle
}

// ParsedArticle is one normalized feed item, ready for dedup and insert
type ParsedArticle struct {
	GUID        string
	Title       string
	Content     string // truncated plain-text excerpt of the richest body field
	ContentHTML string // sanitized HTML of the richest body field
	Summary     string
	Author      string
	Link        string
	ImageURL    string
	Published   *time.Time
}
