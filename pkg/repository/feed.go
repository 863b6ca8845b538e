package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedscope/pkg/domain"
)

// FeedRepository handles feed-related database operations
type FeedRepository struct {
	db *sqlx.DB
}

// feedSQL represents a feed for SQL operations
type feedSQL struct {
	ID            int64      `db:"id"`
	UserID        int64      `db:"user_id"`
	URL           string     `db:"url"`
	Title         string     `db:"title"`
	Description   string     `db:"description"`
	SiteURL       string     `db:"site_url"`
	Favicon       string     `db:"favicon"`
	Category      string     `db:"category"`
	FetchInterval int        `db:"fetch_interval"`
	LastFetched   *time.Time `db:"last_fetched"`
	ErrorCount    int        `db:"error_count"`
	LastError     string     `db:"last_error"`
	Enabled       bool       `db:"enabled"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// NewFeedRepository creates a new feed repository
func NewFeedRepository(database *sqlx.DB) *FeedRepository {
	return &FeedRepository{db: database}
}

// CreateFeed inserts a new feed. A (user, URL) duplicate is reported as
// domain.ErrAlreadyExists.
func (r *FeedRepository) CreateFeed(ctx context.Context, feed *domain.Feed) error {
	if feed.FetchInterval == 0 {
		feed.FetchInterval = 1800
	}

	sqlFeed := &feedSQL{
		UserID:        feed.UserID,
		URL:           feed.URL,
		Title:         feed.Title,
		Description:   feed.Description,
		SiteURL:       feed.SiteURL,
		Favicon:       feed.Favicon,
		Category:      feed.Category,
		FetchInterval: feed.FetchInterval,
		Enabled:       feed.Enabled,
	}

	query := `
		INSERT INTO feeds (user_id, url, title, description, site_url, favicon, category, fetch_interval, enabled)
		VALUES (:user_id, :url, :title, :description, :site_url, :favicon, :category, :fetch_interval, :enabled)
	`
	result, err := r.db.NamedExecContext(ctx, query, sqlFeed)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create feed %s: %w", feed.URL, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("create feed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	feed.ID = id
	return nil
}

// GetFeed retrieves a feed by ID regardless of owner
func (r *FeedRepository) GetFeed(ctx context.Context, id int64) (*domain.Feed, error) {
	var sqlFeed feedSQL
	err := r.db.GetContext(ctx, &sqlFeed, "SELECT * FROM feeds WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("feed %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get feed: %w", err)
	}
	return r.toDomainFeed(&sqlFeed), nil
}

// GetUserFeed retrieves a feed by ID scoped to its owner
func (r *FeedRepository) GetUserFeed(ctx context.Context, userID, id int64) (*domain.Feed, error) {
	var sqlFeed feedSQL
	err := r.db.GetContext(ctx, &sqlFeed, "SELECT * FROM feeds WHERE id = ? AND user_id = ?", id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("feed %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user feed: %w", err)
	}
	return r.toDomainFeed(&sqlFeed), nil
}

// GetFeeds retrieves all feeds of a user, newest first
func (r *FeedRepository) GetFeeds(ctx context.Context, userID int64) ([]*domain.Feed, error) {
	var sqlFeeds []feedSQL
	err := r.db.SelectContext(ctx, &sqlFeeds,
		"SELECT * FROM feeds WHERE user_id = ? ORDER BY created_at DESC, id DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("get feeds: %w", err)
	}
	return r.toDomainFeeds(sqlFeeds), nil
}

// GetActiveFeeds retrieves a user's enabled feeds
func (r *FeedRepository) GetActiveFeeds(ctx context.Context, userID int64) ([]*domain.Feed, error) {
	var sqlFeeds []feedSQL
	err := r.db.SelectContext(ctx, &sqlFeeds,
		"SELECT * FROM feeds WHERE user_id = ? AND enabled = 1 ORDER BY id", userID)
	if err != nil {
		return nil, fmt.Errorf("get active feeds: %w", err)
	}
	return r.toDomainFeeds(sqlFeeds), nil
}

// GetAllActiveFeeds retrieves enabled feeds across all users, used by the
// background scheduler
func (r *FeedRepository) GetAllActiveFeeds(ctx context.Context) ([]*domain.Feed, error) {
	var sqlFeeds []feedSQL
	err := r.db.SelectContext(ctx, &sqlFeeds, "SELECT * FROM feeds WHERE enabled = 1 ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("get all active feeds: %w", err)
	}
	return r.toDomainFeeds(sqlFeeds), nil
}

// ExistsByURL checks whether the user is already subscribed to the URL
func (r *FeedRepository) ExistsByURL(ctx context.Context, userID int64, url string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM feeds WHERE user_id = ? AND url = ?)", userID, url)
	if err != nil {
		return false, fmt.Errorf("check feed exists: %w", err)
	}
	return exists, nil
}

// UpdateFeedMetadata refreshes feed-level fields after a successful parse
// and clears any prior error state
func (r *FeedRepository) UpdateFeedMetadata(ctx context.Context, feedID int64, meta domain.FeedMetadata) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE feeds
			SET title = ?,
			    description = ?,
			    site_url = ?,
			    favicon = ?,
			    last_fetched = datetime('now'),
			    error_count = 0,
			    last_error = ''
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, meta.Title, meta.Description, meta.SiteURL, meta.Favicon, feedID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update feed metadata: %w", err)}
		}
		return nil
	})
}

// UpdateFeedError bumps the error streak after a failed sync. The feed is
// deliberately not disabled here, that is a user action.
func (r *FeedRepository) UpdateFeedError(ctx context.Context, feedID int64, errMsg string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE feeds
			SET error_count = error_count + 1,
			    last_error = ?,
			    last_fetched = datetime('now')
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, errMsg, feedID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update feed error: %w", err)}
		}
		return nil
	})
}

// UpdateFeedStatus enables or disables a user's feed
func (r *FeedRepository) UpdateFeedStatus(ctx context.Context, userID, feedID int64, enabled bool) error {
	result, err := r.db.ExecContext(ctx, "UPDATE feeds SET enabled = ? WHERE id = ? AND user_id = ?",
		enabled, feedID, userID)
	if err != nil {
		return fmt.Errorf("update feed status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update feed status rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("feed %d: %w", feedID, domain.ErrNotFound)
	}
	return nil
}

// DeleteFeed removes a user's feed and, through the cascade, all its articles
func (r *FeedRepository) DeleteFeed(ctx context.Context, userID, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM feeds WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete feed: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete feed rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("feed %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// toDomainFeed converts feedSQL to domain.Feed
func (r *FeedRepository) toDomainFeed(sqlFeed *feedSQL) *domain.Feed {
	return &domain.Feed{
		ID:            sqlFeed.ID,
		UserID:        sqlFeed.UserID,
		URL:           sqlFeed.URL,
		Title:         sqlFeed.Title,
		Description:   sqlFeed.Description,
		SiteURL:       sqlFeed.SiteURL,
		Favicon:       sqlFeed.Favicon,
		Category:      sqlFeed.Category,
		FetchInterval: sqlFeed.FetchInterval,
		LastFetched:   sqlFeed.LastFetched,
		ErrorCount:    sqlFeed.ErrorCount,
		LastError:     sqlFeed.LastError,
		Enabled:       sqlFeed.Enabled,
		CreatedAt:     sqlFeed.CreatedAt,
		UpdatedAt:     sqlFeed.UpdatedAt,
	}
}

func (r *FeedRepository) toDomainFeeds(sqlFeeds []feedSQL) []*domain.Feed {
	feeds := make([]*domain.Feed, len(sqlFeeds))
	for i, f := range sqlFeeds {
		feeds[i] = r.toDomainFeed(&f)
	}
	return feeds
}
