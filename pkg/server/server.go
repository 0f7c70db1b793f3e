// Package server exposes the dex and the team builder over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/notjagan/pokeanalytics/pkg/enrich"
	"github.com/notjagan/pokeanalytics/pkg/model"
	"github.com/notjagan/pokeanalytics/pkg/teambuilder"
	"go.uber.org/zap"
)

const (
	DefaultPerPage = 16
	MaxPerPage     = 100
	DefaultLimit   = 5
)

type Options struct {
	Addr            string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
	DefaultLanguage model.Language
	// PrefetchTeam fetches sprites and names for roster members before
	// responding instead of serving fallbacks.
	PrefetchTeam bool
}

type Server struct {
	dex      *model.Dex
	teams    *teambuilder.Service
	enricher *enrich.Enricher
	opts     Options
	logger   *zap.Logger
	router   *mux.Router
}

func New(
	dex *model.Dex,
	teams *teambuilder.Service,
	enricher *enrich.Enricher,
	opts Options,
	logger *zap.Logger,
) *Server {
	srv := &Server{
		dex:      dex,
		teams:    teams,
		enricher: enricher,
		opts:     opts,
		logger:   logger,
		router:   mux.NewRouter(),
	}
	srv.routes()

	return srv
}

func (srv *Server) routes() {
	r := srv.router
	r.Use(srv.recoverer, srv.logRequests)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "no such route")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/healthz", srv.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/types", srv.handleTypes).Methods(http.MethodGet)

	api.HandleFunc("/pokemon", srv.handleBrowse).Methods(http.MethodGet)
	api.HandleFunc("/pokemon/search", srv.handleSearch).Methods(http.MethodGet)
	api.HandleFunc("/pokemon/{number:[0-9]+}", srv.handlePokemon).Methods(http.MethodGet)

	api.HandleFunc("/teams", srv.handleNewTeam).Methods(http.MethodPost)
	api.HandleFunc("/teams/{owner}", srv.handleTeam).Methods(http.MethodGet)
	api.HandleFunc("/teams/{owner}", srv.handleClearTeam).Methods(http.MethodDelete)
	api.HandleFunc("/teams/{owner}/members", srv.handleAddMember).Methods(http.MethodPost)
	api.HandleFunc("/teams/{owner}/members/{number:[0-9]+}", srv.handleRemoveMember).Methods(http.MethodDelete)
	api.HandleFunc("/teams/{owner}/random", srv.handleRandomTeam).Methods(http.MethodPost)
	api.HandleFunc("/teams/{owner}/analysis", srv.handleAnalysis).Methods(http.MethodGet)
}

// Handler wraps the router in CORS handling, which has to see preflight
// requests before route matching rejects their method.
func (srv *Server) Handler() http.Handler {
	return srv.cors(srv.router)
}

// Run serves until ctx is cancelled, then drains in-flight requests for up to
// ShutdownTimeout.
func (srv *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              srv.opts.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errs := make(chan error, 1)
	go func() {
		srv.logger.Info("http server listening", zap.String("addr", srv.opts.Addr))
		errs <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return fmt.Errorf("http server stopped: %w", err)
	case <-ctx.Done():
	}

	timeout := srv.opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	srv.logger.Info("shutting down http server")
	err := httpServer.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("could not shut down http server: %w", err)
	}

	err = <-errs
	if !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server stopped: %w", err)
	}

	return nil
}
