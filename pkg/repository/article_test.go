package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedscope/pkg/domain"
)

func TestArticleRepository_CreateArticles(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	user := makeTestUser(t, repos, "alice")
	feed := makeTestFeed(t, repos, user.ID, "https://example.com/feed.xml")

	t.Run("batch insert", func(t *testing.T) {
		published := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
		inserted, err := repos.Article.CreateArticles(context.Background(), []*domain.Article{
			{FeedID: feed.ID, GUID: "g1", Title: "first", Content: "text", Published: &published},
			{FeedID: feed.ID, GUID: "g2", Title: "second"},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, inserted)
	})

	t.Run("duplicates skipped", func(t *testing.T) {
		inserted, err := repos.Article.CreateArticles(context.Background(), []*domain.Article{
			{FeedID: feed.ID, GUID: "g2", Title: "second again"},
			{FeedID: feed.ID, GUID: "g3", Title: "third"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, inserted, "only the new guid lands")

		count, err := repos.Article.CountByFeed(context.Background(), feed.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("empty batch", func(t *testing.T) {
		inserted, err := repos.Article.CreateArticles(context.Background(), nil)
		require.NoError(t, err)
		assert.Zero(t, inserted)
	})
}

func TestArticleRepository_GUIDSet(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	user := makeTestUser(t, repos, "alice")
	feed := makeTestFeed(t, repos, user.ID, "https://example.com/feed.xml")
	other := makeTestFeed(t, repos, user.ID, "https://example.com/other.xml")

	_, err := repos.Article.CreateArticles(context.Background(), []*domain.Article{
		{FeedID: feed.ID, GUID: "a", Title: "a"},
		{FeedID: feed.ID, GUID: "b", Title: "b"},
		{FeedID: other.ID, GUID: "c", Title: "c"},
	})
	require.NoError(t, err)

	guids, err := repos.Article.GUIDSet(context.Background(), feed.ID)
	require.NoError(t, err)
	assert.Len(t, guids, 2)
	assert.Contains(t, guids, "a")
	assert.Contains(t, guids, "b")
	assert.NotContains(t, guids, "c", "other feed's guids excluded")
}

func TestArticleRepository_GetArticles(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	alice := makeTestUser(t, repos, "alice")
	bob := makeTestUser(t, repos, "bob")
	feed1 := makeTestFeed(t, repos, alice.ID, "https://a.example.com/rss")
	feed2 := makeTestFeed(t, repos, alice.ID, "https://b.example.com/rss")
	bobFeed := makeTestFeed(t, repos, bob.ID, "https://c.example.com/rss")

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var articles []*domain.Article
	for i := 0; i < 5; i++ {
		published := base.Add(time.Duration(i) * time.Hour)
		articles = append(articles, &domain.Article{
			FeedID:    feed1.ID,
			GUID:      fmt.Sprintf("f1-%d", i),
			Title:     fmt.Sprintf("article %d", i),
			Published: &published,
		})
	}
	articles = append(articles,
		&domain.Article{FeedID: feed2.ID, GUID: "f2-0", Title: "from feed2"},
		&domain.Article{FeedID: bobFeed.ID, GUID: "bob-0", Title: "bob's article"},
	)
	_, err := repos.Article.CreateArticles(context.Background(), articles)
	require.NoError(t, err)

	t.Run("user scoping", func(t *testing.T) {
		got, err := repos.Article.GetArticles(context.Background(), alice.ID, domain.ArticleFilter{})
		require.NoError(t, err)
		assert.Len(t, got, 6, "bob's article must not leak")
		for _, a := range got {
			assert.NotEqual(t, "bob's article", a.Title)
		}
	})

	t.Run("newest first", func(t *testing.T) {
		got, err := repos.Article.GetArticles(context.Background(), alice.ID,
			domain.ArticleFilter{FeedID: &feed1.ID})
		require.NoError(t, err)
		require.Len(t, got, 5)
		assert.Equal(t, "article 4", got[0].Title)
		assert.Equal(t, "article 0", got[4].Title)
	})

	t.Run("feed title joined", func(t *testing.T) {
		got, err := repos.Article.GetArticles(context.Background(), alice.ID,
			domain.ArticleFilter{FeedID: &feed2.ID})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, feed2.Title, got[0].FeedTitle)
	})

	t.Run("limit and offset", func(t *testing.T) {
		got, err := repos.Article.GetArticles(context.Background(), alice.ID,
			domain.ArticleFilter{FeedID: &feed1.ID, Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "article 3", got[0].Title)
		assert.Equal(t, "article 2", got[1].Title)
	})

	t.Run("unread filter", func(t *testing.T) {
		got, err := repos.Article.GetArticles(context.Background(), alice.ID,
			domain.ArticleFilter{FeedID: &feed1.ID})
		require.NoError(t, err)
		require.NotEmpty(t, got)

		isRead := true
		_, err = repos.Article.UpdateArticleState(context.Background(), alice.ID, got[0].ID,
			domain.ArticleStateUpdate{IsRead: &isRead})
		require.NoError(t, err)

		unread := false
		remaining, err := repos.Article.GetArticles(context.Background(), alice.ID,
			domain.ArticleFilter{FeedID: &feed1.ID, IsRead: &unread})
		require.NoError(t, err)
		assert.Len(t, remaining, 4)
	})
}

func TestArticleRepository_UpdateArticleState(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	alice := makeTestUser(t, repos, "alice")
	bob := makeTestUser(t, repos, "bob")
	feed := makeTestFeed(t, repos, alice.ID, "https://example.com/feed.xml")

	_, err := repos.Article.CreateArticles(context.Background(), []*domain.Article{
		{FeedID: feed.ID, GUID: "g1", Title: "article"},
	})
	require.NoError(t, err)

	articles, err := repos.Article.GetArticles(context.Background(), alice.ID, domain.ArticleFilter{})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	article := articles[0]

	t.Run("mark read stamps read_at", func(t *testing.T) {
		isRead := true
		got, err := repos.Article.UpdateArticleState(context.Background(), alice.ID, article.ID,
			domain.ArticleStateUpdate{IsRead: &isRead})
		require.NoError(t, err)
		assert.True(t, got.IsRead)
		require.NotNil(t, got.ReadAt)
	})

	t.Run("mark unread clears read_at", func(t *testing.T) {
		isRead := false
		got, err := repos.Article.UpdateArticleState(context.Background(), alice.ID, article.ID,
			domain.ArticleStateUpdate{IsRead: &isRead})
		require.NoError(t, err)
		assert.False(t, got.IsRead)
		assert.Nil(t, got.ReadAt)
	})

	t.Run("star without touching read state", func(t *testing.T) {
		isStarred := true
		got, err := repos.Article.UpdateArticleState(context.Background(), alice.ID, article.ID,
			domain.ArticleStateUpdate{IsStarred: &isStarred})
		require.NoError(t, err)
		assert.True(t, got.IsStarred)
		assert.False(t, got.IsRead)
	})

	t.Run("other user gets not found", func(t *testing.T) {
		isRead := true
		_, err := repos.Article.UpdateArticleState(context.Background(), bob.ID, article.ID,
			domain.ArticleStateUpdate{IsRead: &isRead})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("missing article", func(t *testing.T) {
		isRead := true
		_, err := repos.Article.UpdateArticleState(context.Background(), alice.ID, 9999,
			domain.ArticleStateUpdate{IsRead: &isRead})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestArticleRepository_GetArticle(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	alice := makeTestUser(t, repos, "alice")
	bob := makeTestUser(t, repos, "bob")
	feed := makeTestFeed(t, repos, alice.ID, "https://example.com/feed.xml")

	_, err := repos.Article.CreateArticles(context.Background(), []*domain.Article{
		{FeedID: feed.ID, GUID: "g1", Title: "article", Content: "full text"},
	})
	require.NoError(t, err)

	articles, err := repos.Article.GetArticles(context.Background(), alice.ID, domain.ArticleFilter{})
	require.NoError(t, err)
	require.Len(t, articles, 1)

	got, err := repos.Article.GetArticle(context.Background(), alice.ID, articles[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "full text", got.Content)
	assert.Equal(t, feed.Title, got.FeedTitle)

	_, err = repos.Article.GetArticle(context.Background(), bob.ID, articles[0].ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
