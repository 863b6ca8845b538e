package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedscope/pkg/domain"
)

// ArticleRepository handles article-related database operations
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID          int64      `db:"id"`
	FeedID      int64      `db:"feed_id"`
	GUID        string     `db:"guid"`
	Title       string     `db:"title"`
	Content     string     `db:"content"`
	ContentHTML string     `db:"content_html"`
	Summary     string     `db:"summary"`
	Author      string     `db:"author"`
	Link        string     `db:"link"`
	ImageURL    string     `db:"image_url"`
	Published   *time.Time `db:"published"`
	IsRead      bool       `db:"is_read"`
	IsStarred   bool       `db:"is_starred"`
	ReadAt      *time.Time `db:"read_at"`
	CreatedAt   time.Time  `db:"created_at"`

	// joined feed data, populated by listing queries only
	FeedTitle   string `db:"feed_title"`
	FeedFavicon string `db:"feed_favicon"`
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(database *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: database}
}

// CreateArticles inserts a batch of new articles for a feed. Rows losing a
// (feed, GUID) uniqueness race are skipped, not errors: a concurrent sync of
// the same feed may have inserted them first. Returns the number actually
// inserted; on any other failure the count inserted so far is returned with
// the error.
func (r *ArticleRepository) CreateArticles(ctx context.Context, articles []*domain.Article) (int, error) {
	query := `
		INSERT INTO articles (
			feed_id, guid, title, content, content_html, summary,
			author, link, image_url, published
		) VALUES (
			:feed_id, :guid, :title, :content, :content_html, :summary,
			:author, :link, :image_url, :published
		)
	`

	inserted := 0
	for _, article := range articles {
		sqlArticle := &articleSQL{
			FeedID:      article.FeedID,
			GUID:        article.GUID,
			Title:       article.Title,
			Content:     article.Content,
			ContentHTML: article.ContentHTML,
			Summary:     article.Summary,
			Author:      article.Author,
			Link:        article.Link,
			ImageURL:    article.ImageURL,
			Published:   article.Published,
		}

		retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
		err := retrier.Do(ctx, func() error {
			result, err := r.db.NamedExecContext(ctx, query, sqlArticle)
			if err != nil {
				if isLockError(err) {
					return err // retry
				}
				return &criticalError{err: err}
			}
			if id, err := result.LastInsertId(); err == nil {
				article.ID = id
			}
			return nil
		})

		if err != nil {
			if isUniqueViolation(err) {
				lgr.Printf("[DEBUG] skipping duplicate article %q for feed %d", article.GUID, article.FeedID)
				continue
			}
			return inserted, fmt.Errorf("create article %q: %w", article.GUID, err)
		}
		inserted++
	}
	return inserted, nil
}

// GUIDSet loads the set of GUIDs already stored for a feed
func (r *ArticleRepository) GUIDSet(ctx context.Context, feedID int64) (map[string]struct{}, error) {
	var guids []string
	err := r.db.SelectContext(ctx, &guids, "SELECT guid FROM articles WHERE feed_id = ?", feedID)
	if err != nil {
		return nil, fmt.Errorf("get guids: %w", err)
	}

	set := make(map[string]struct{}, len(guids))
	for _, g := range guids {
		set[g] = struct{}{}
	}
	return set, nil
}

// CountByFeed returns the number of stored articles for a feed
func (r *ArticleRepository) CountByFeed(ctx context.Context, feedID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM articles WHERE feed_id = ?", feedID)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

// GetArticles retrieves articles across the user's feeds with optional
// filters, newest publication first
func (r *ArticleRepository) GetArticles(ctx context.Context, userID int64, filter domain.ArticleFilter) ([]*domain.Article, error) {
	query := `
		SELECT a.*, f.title AS feed_title, f.favicon AS feed_favicon
		FROM articles a
		JOIN feeds f ON a.feed_id = f.id
		WHERE f.user_id = ?
	`
	args := []interface{}{userID}

	if filter.FeedID != nil {
		query += " AND a.feed_id = ?"
		args = append(args, *filter.FeedID)
	}
	if filter.IsRead != nil {
		query += " AND a.is_read = ?"
		args = append(args, *filter.IsRead)
	}
	if filter.IsStarred != nil {
		query += " AND a.is_starred = ?"
		args = append(args, *filter.IsStarred)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	query += " ORDER BY a.published DESC, a.id DESC LIMIT ? OFFSET ?"
	args = append(args, limit, filter.Offset)

	var sqlArticles []articleSQL
	if err := r.db.SelectContext(ctx, &sqlArticles, query, args...); err != nil {
		return nil, fmt.Errorf("get articles: %w", err)
	}

	articles := make([]*domain.Article, len(sqlArticles))
	for i, a := range sqlArticles {
		articles[i] = r.toDomainArticle(&a)
	}
	return articles, nil
}

// GetArticle retrieves one article scoped to the owning user through the
// feed join
func (r *ArticleRepository) GetArticle(ctx context.Context, userID, id int64) (*domain.Article, error) {
	query := `
		SELECT a.*, f.title AS feed_title, f.favicon AS feed_favicon
		FROM articles a
		JOIN feeds f ON a.feed_id = f.id
		WHERE a.id = ? AND f.user_id = ?
	`
	var sqlArticle articleSQL
	err := r.db.GetContext(ctx, &sqlArticle, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("article %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return r.toDomainArticle(&sqlArticle), nil
}

// UpdateArticleState applies a partial read/star update to a user's article.
// Setting is_read stamps read_at, clearing it resets read_at to NULL.
func (r *ArticleRepository) UpdateArticleState(ctx context.Context, userID, id int64, upd domain.ArticleStateUpdate) (*domain.Article, error) {
	// ownership check first, foreign articles are indistinguishable from
	// missing ones for the caller
	if _, err := r.GetArticle(ctx, userID, id); err != nil {
		return nil, err
	}

	var sets []string
	var args []interface{}

	if upd.IsRead != nil {
		sets = append(sets, "is_read = ?")
		args = append(args, *upd.IsRead)
		if *upd.IsRead {
			sets = append(sets, "read_at = datetime('now')")
		} else {
			sets = append(sets, "read_at = NULL")
		}
	}
	if upd.IsStarred != nil {
		sets = append(sets, "is_starred = ?")
		args = append(args, *upd.IsStarred)
	}

	if len(sets) == 0 {
		return r.GetArticle(ctx, userID, id)
	}

	query := "UPDATE articles SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("update article state: %w", err)
	}

	return r.GetArticle(ctx, userID, id)
}

// toDomainArticle converts articleSQL to domain.Article
func (r *ArticleRepository) toDomainArticle(sqlArticle *articleSQL) *domain.Article {
	return &domain.Article{
		ID:          sqlArticle.ID,
		FeedID:      sqlArticle.FeedID,
		GUID:        sqlArticle.GUID,
		Title:       sqlArticle.Title,
		Content:     sqlArticle.Content,
		ContentHTML: sqlArticle.ContentHTML,
		Summary:     sqlArticle.Summary,
		Author:      sqlArticle.Author,
		Link:        sqlArticle.Link,
		ImageURL:    sqlArticle.ImageURL,
		Published:   sqlArticle.Published,
		IsRead:      sqlArticle.IsRead,
		IsStarred:   sqlArticle.IsStarred,
		ReadAt:      sqlArticle.ReadAt,
		CreatedAt:   sqlArticle.CreatedAt,
		FeedTitle:   sqlArticle.FeedTitle,
		FeedFavicon: sqlArticle.FeedFavicon,
	}
}
