package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/feedscope/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/feed_store.go -pkg mocks -skip-ensure -fmt goimports . FeedStore
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/user_store.go -pkg mocks -skip-ensure -fmt goimports . UserStore
//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . Parser
//go:generate moq -out mocks/syncer.go -pkg mocks -skip-ensure -fmt goimports . Syncer

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	feeds    FeedStore
	articles ArticleStore
	users    UserStore
	parser   Parser
	syncer   Syncer
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// FeedStore interface for feed operations
type FeedStore interface {
	CreateFeed(ctx context.Context, feed *domain.Feed) error
	GetFeeds(ctx context.Context, userID int64) ([]*domain.Feed, error)
	GetUserFeed(ctx context.Context, userID, id int64) (*domain.Feed, error)
	UpdateFeedStatus(ctx context.Context, userID, feedID int64, enabled bool) error
	DeleteFeed(ctx context.Context, userID, id int64) error
}

// ArticleStore interface for article operations
type ArticleStore interface {
	GetArticles(ctx context.Context, userID int64, filter domain.ArticleFilter) ([]*domain.Article, error)
	GetArticle(ctx context.Context, userID, id int64) (*domain.Article, error)
	UpdateArticleState(ctx context.Context, userID, id int64, upd domain.ArticleStateUpdate) (*domain.Article, error)
}

// UserStore interface for token authentication
type UserStore interface {
	GetUserByToken(ctx context.Context, token string) (*domain.User, error)
}

// Parser validates and normalizes feeds before subscription
type Parser interface {
	Parse(ctx context.Context, url string) (*domain.ParsedFeed, error)
}

// Syncer interface for on-demand sync operations
type Syncer interface {
	SyncFeed(ctx context.Context, feedID int64) (domain.SyncResult, error)
	SyncAll(ctx context.Context, userID int64) ([]domain.FeedSyncResult, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, feeds FeedStore, articles ArticleStore, users UserStore,
	parser Parser, syncer Syncer, version string, debug bool) *Server {

	s := &Server{
		config:   cfg,
		feeds:    feeds,
		articles: articles,
		users:    users,
		parser:   parser,
		syncer:   syncer,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("feedscope", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.HandleFunc("GET /api/v1/status", s.statusHandler)

	// everything else requires a valid token
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.Use(s.authMiddleware)

		r.HandleFunc("GET /feeds", s.listFeedsHandler)
		r.HandleFunc("POST /feeds", s.createFeedHandler)
		r.HandleFunc("PATCH /feeds/{id}", s.updateFeedHandler)
		r.HandleFunc("DELETE /feeds/{id}", s.deleteFeedHandler)
		r.HandleFunc("POST /feeds/{id}/sync", s.syncFeedHandler)
		r.HandleFunc("POST /sync", s.syncAllHandler)

		r.HandleFunc("GET /articles", s.listArticlesHandler)
		r.HandleFunc("GET /articles/{id}", s.getArticleHandler)
		r.HandleFunc("PATCH /articles/{id}", s.updateArticleHandler)

		r.HandleFunc("GET /opml", s.exportOPMLHandler)
		r.HandleFunc("POST /opml", s.importOPMLHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
