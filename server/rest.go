package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/umputun/feedscope/pkg/domain"
	"github.com/umputun/feedscope/pkg/feed"
	"github.com/umputun/feedscope/pkg/opml"
)

// listFeedsHandler returns all feeds of the authenticated user
func (s *Server) listFeedsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		renderError(w, r, fmt.Errorf("authorization required"), http.StatusUnauthorized)
		return
	}

	feeds, err := s.feeds.GetFeeds(r.Context(), user.ID)
	if err != nil {
		log.Printf("[ERROR] failed to list feeds: %v", err)
		renderError(w, r, fmt.Errorf("failed to list feeds"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, feeds)
}

// createFeedRequest is the POST /feeds payload
type createFeedRequest struct {
	URL           string `json:"url"`
	Category      string `json:"category"`
	FetchInterval int    `json:"fetch_interval"`
}

// createFeedHandler validates the URL, locates and parses the feed, stores the
// subscription and kicks off the first sync in the background
func (s *Server) createFeedHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		renderError(w, r, fmt.Errorf("authorization required"), http.StatusUnauthorized)
		return
	}

	var req createFeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	cleaned, err := validateFeedURL(req.URL)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	parsed, err := s.parser.Parse(r.Context(), cleaned)
	if err != nil {
		renderError(w, r, err, parseErrorCode(err))
		return
	}

	newFeed := &domain.Feed{
		UserID:        user.ID,
		URL:           cleaned,
		Title:         parsed.Title,
		Description:   parsed.Description,
		SiteURL:       parsed.Link,
		Favicon:       parsed.Favicon,
		Category:      req.Category,
		FetchInterval: req.FetchInterval,
		Enabled:       true,
	}
	if newFeed.Title == "" {
		newFeed.Title = cleaned
	}

	if err := s.feeds.CreateFeed(r.Context(), newFeed); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			renderError(w, r, fmt.Errorf("feed already exists"), http.StatusConflict)
			return
		}
		log.Printf("[ERROR] failed to create feed: %v", err)
		renderError(w, r, fmt.Errorf("failed to create feed"), http.StatusInternalServerError)
		return
	}

	// first sync runs in the background, the subscription is usable right away
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if _, err := s.syncer.SyncFeed(ctx, newFeed.ID); err != nil {
			log.Printf("[WARN] initial sync failed for feed %d: %v", newFeed.ID, err)
		}
	}()

	renderJSON(w, r, http.StatusCreated, newFeed)
}

// deleteFeedHandler removes a feed and all its articles
func (s *Server) deleteFeedHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		renderError(w, r, fmt.Errorf("authorization required"), http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid feed ID"), http.StatusBadRequest)
		return
	}

	if err := s.feeds.DeleteFeed(r.Context(), user.ID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			renderError(w, r, fmt.Errorf("feed not found"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to delete feed %d: %v", id, err)
		renderError(w, r, fmt.Errorf("failed to delete feed"), http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]int64{"deleted": id})
}

// updateFeedHandler enables or disables a feed, disabled feeds are excluded
// from scheduled and bulk syncs
func (s *Server) updateFeedHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		renderError(w, r, fmt.Errorf("authorization required"), http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid feed ID"), http.StatusBadRequest)
		return
	}

	var req struct {
		Enabled *bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Enabled == nil {
		renderError(w, r, fmt.Errorf("enabled field is required"), http.StatusBadRequest)
		return
	}

	if err := s.feeds.UpdateFeedStatus(r.Context(), user.ID, id, *req.Enabled); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			renderError(w, r, fmt.Errorf("feed not found"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to update feed %d: %v", id, err)
		renderError(w, r, fmt.Errorf("failed to update feed"), http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"id": id, "enabled": *req.Enabled})
}

// syncFeedHandler triggers an immediate sync of one feed
func (s *Server) syncFeedHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		renderError(w, r, fmt.Errorf("authorization required"), http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid feed ID"), http.StatusBadRequest)
		return
	}

	// ownership check, the engine itself is not user-aware
	if _, err := s.feeds.GetUserFeed(r.Context(), user.ID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			renderError(w, r, fmt.Errorf("feed not found"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to load feed %d: %v", id, err)
		renderError(w, r, fmt.Errorf("failed to load feed"), http.StatusInternalServerError)
		return
	}

	result, err := s.syncer.SyncFeed(r.Context(), id)
	if err != nil {
		renderError(w, r, err, http.StatusBadGateway)
		return
	}
	renderJSON(w, r, http.StatusOK, result)
}

// syncAllHandler syncs every enabled feed of the user
func (s *Server) syncAllHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		renderError(w, r, fmt.Errorf("authorization required"), http.StatusUnauthorized)
		return
	}

	results, err := s.syncer.SyncAll(r.Context(), user.ID)
	if err != nil {
		log.Printf("[ERROR] failed to sync feeds: %v", err)
		renderError(w, r, fmt.Errorf("failed to sync feeds"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, results)
}

// listArticlesHandler returns articles with optional feed, read and starred filters
func (s *Server) listArticlesHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		renderError(w, r, fmt.Errorf("authorization required"), http.StatusUnauthorized)
		return
	}

	filter, err := articleFilterFromQuery(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	articles, err := s.articles.GetArticles(r.Context(), user.ID, filter)
	if err != nil {
		log.Printf("[ERROR] failed to list articles: %v", err)
		renderError(w, r, fmt.Errorf("failed to list articles"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, articles)
}

// getArticleHandler returns one article with full content
func (s *Server) getArticleHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		renderError(w, r, fmt.Errorf("authorization required"), http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid article ID"), http.StatusBadRequest)
		return
	}

	article, err := s.articles.GetArticle(r.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			renderError(w, r, fmt.Errorf("article not found"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to get article %d: %v", id, err)
		renderError(w, r, fmt.Errorf("failed to get article"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, article)
}

// updateArticleHandler updates read and starred flags of an article
func (s *Server) updateArticleHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		renderError(w, r, fmt.Errorf("authorization required"), http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid article ID"), http.StatusBadRequest)
		return
	}

	var upd domain.ArticleStateUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if upd.IsRead == nil && upd.IsStarred == nil {
		renderError(w, r, fmt.Errorf("nothing to update"), http.StatusBadRequest)
		return
	}

	article, err := s.articles.UpdateArticleState(r.Context(), user.ID, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			renderError(w, r, fmt.Errorf("article not found"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to update article %d: %v", id, err)
		renderError(w, r, fmt.Errorf("failed to update article"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, article)
}

// exportOPMLHandler serves the user's subscriptions as an OPML download
func (s *Server) exportOPMLHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		renderError(w, r, fmt.Errorf("authorization required"), http.StatusUnauthorized)
		return
	}

	feeds, err := s.feeds.GetFeeds(r.Context(), user.ID)
	if err != nil {
		log.Printf("[ERROR] failed to export feeds: %v", err)
		renderError(w, r, fmt.Errorf("failed to export feeds"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Content-Disposition", `attachment; filename="subscriptions.opml"`)
	fmt.Fprint(w, opml.Export(feeds, time.Now()))
}

// opmlImportResult summarizes a subscription import. Feeds the user already
// subscribes to count as neither imported nor failed.
type opmlImportResult struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// importOPMLHandler creates subscriptions from an uploaded OPML file,
// duplicates are skipped and broken entries reported without aborting the rest
func (s *Server) importOPMLHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		renderError(w, r, fmt.Errorf("authorization required"), http.StatusUnauthorized)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		renderError(w, r, fmt.Errorf("opml file required"), http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		renderError(w, r, fmt.Errorf("failed to read opml file"), http.StatusBadRequest)
		return
	}

	entries := opml.ExtractEntries(string(data))
	if len(entries) == 0 {
		renderError(w, r, fmt.Errorf("no feeds found in opml file"), http.StatusBadRequest)
		return
	}

	result := opmlImportResult{}
	for _, entry := range entries {
		cleaned, err := validateFeedURL(entry.URL)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", entry.URL, err))
			continue
		}

		newFeed := &domain.Feed{
			UserID:  user.ID,
			URL:     cleaned,
			Title:   entry.Title,
			Enabled: true,
		}
		if newFeed.Title == "" {
			newFeed.Title = cleaned
		}

		if err := s.feeds.CreateFeed(r.Context(), newFeed); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				continue // already subscribed
			}
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", entry.URL, err))
			continue
		}
		result.Imported++
	}

	renderJSON(w, r, http.StatusOK, result)
}

// validateFeedURL checks the URL is absolute http(s) and strips tracking params
func validateFeedURL(rawURL string) (string, error) {
	if rawURL == "" {
		return "", fmt.Errorf("url is required")
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", fmt.Errorf("invalid url: %s", rawURL)
	}
	return feed.CleanURL(rawURL), nil
}

// parseErrorCode maps feed parse failures to HTTP status codes
func parseErrorCode(err error) int {
	switch {
	case errors.Is(err, feed.ErrFeedNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, feed.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, feed.ErrTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusUnprocessableEntity
	}
}

// articleFilterFromQuery builds an ArticleFilter from query parameters
func articleFilterFromQuery(r *http.Request) (domain.ArticleFilter, error) {
	var filter domain.ArticleFilter
	q := r.URL.Query()

	if v := q.Get("feed_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("invalid feed_id")
		}
		filter.FeedID = &id
	}
	if v := q.Get("is_read"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return filter, fmt.Errorf("invalid is_read")
		}
		filter.IsRead = &b
	}
	if v := q.Get("is_starred"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return filter, fmt.Errorf("invalid is_starred")
		}
		filter.IsStarred = &b
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return filter, fmt.Errorf("invalid limit")
		}
		filter.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return filter, fmt.Errorf("invalid offset")
		}
		filter.Offset = n
	}

	return filter, nil
}
