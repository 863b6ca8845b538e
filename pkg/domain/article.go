package domain

import "time"

// Article represents one ingested feed item, deduplicated by (feed, GUID)
type Article struct {
	ID          int64      `json:"id"`
	FeedID      int64      `json:"feed_id"`
	GUID        string     `json:"guid"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	ContentHTML string     `json:"content_html"`
	Summary     string     `json:"summary"`
	Author      string     `json:"author"`
	Link        string     `json:"link"`
	ImageURL    string     `json:"image_url"`
	Published   *time.Time `json:"published"`
	IsRead      bool       `json:"is_read"`
	IsStarred   bool       `json:"is_starred"`
	ReadAt      *time.Time `json:"read_at"`
	CreatedAt   time.Time  `json:"created_at"`

	// joined feed data, populated by listing queries
	FeedTitle   string `json:"feed_title,omitempty"`
	FeedFavicon string `json:"feed_favicon,omitempty"`
}

// ArticleFilter represents filtering criteria for article listing
type ArticleFilter struct {
	FeedID    *int64
	IsRead    *bool
	IsStarred *bool
	Limit     int
	Offset    int
}

// ArticleStateUpdate is a partial update of user-controlled article state.
// Nil fields are left untouched.
type ArticleStateUpdate struct {
	IsRead    *bool `json:"is_read"`
	IsStarred *bool `json:"is_starred"`
}

// SyncResult reports the outcome of a single feed sync
type SyncResult struct {
	Inserted int      `json:"inserted"`
	Errors   []string `json:"errors,omitempty"`
}

// FeedSyncResult pairs a feed with its sync outcome in multi-feed runs
type FeedSyncResult struct {
	FeedID   int64  `json:"feed_id"`
	Inserted int    `json:"inserted"`
	Error    string `json:"error,omitempty"`
}
