package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Quelsed/azngameahun/pkg/api/handlers"
	"github.com/Quelsed/azngameahun/pkg/api/middleware"
	"github.com/Quelsed/azngameahun/pkg/clients"
	"github.com/Quelsed/azngameahun/pkg/log"
	"github.com/Quelsed/azngameahun/pkg/repositories"
	"github.com/gorilla/mux"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port           int
	TLS            *TLSConfig
	Repository     repositories.Repository
	SessionManager *clients.SessionManager
	// WSHandler serves /ws. Optional.
	WSHandler http.Handler
	// AssetsDir is served under /assets/. Optional.
	AssetsDir     string
	HighScoreSlot string
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// NewRouter wires every route of the API.
func NewRouter(opts NewAPIServerOptions) http.Handler {
	slot := opts.HighScoreSlot
	if slot == "" {
		slot = repositories.DefaultHighScoreSlot
	}

	r := mux.NewRouter()
	r.Use(middleware.Logging, middleware.CORS)

	r.HandleFunc("/healthz", handlers.HandleHealthz()).Methods(http.MethodGet)
	r.HandleFunc("/highscore", handlers.HandleGetHighScore(opts.Repository, slot)).Methods(http.MethodGet)
	r.HandleFunc("/runs", handlers.HandleListRuns(opts.Repository)).Methods(http.MethodGet)

	sessions := r.PathPrefix("/sessions").Subrouter()
	sessions.HandleFunc("", handlers.HandleListSessions(opts.SessionManager)).Methods(http.MethodGet)
	sessions.HandleFunc("", handlers.HandleCreateSession(opts.SessionManager)).Methods(http.MethodPost)
	sessions.HandleFunc("/{sessionID}", handlers.HandleGetSession(opts.SessionManager)).Methods(http.MethodGet)
	sessions.HandleFunc("/{sessionID}", handlers.HandleDeleteSession(opts.SessionManager)).Methods(http.MethodDelete)
	sessions.HandleFunc("/{sessionID}/frame", handlers.HandleGetFrame(opts.SessionManager)).Methods(http.MethodGet)
	sessions.HandleFunc("/{sessionID}/start", handlers.HandleStart(opts.SessionManager)).Methods(http.MethodPost)
	sessions.HandleFunc("/{sessionID}/restart", handlers.HandleRestart(opts.SessionManager)).Methods(http.MethodPost)
	sessions.HandleFunc("/{sessionID}/move/{side}", handlers.HandleMove(opts.SessionManager)).Methods(http.MethodPost)
	sessions.HandleFunc("/{sessionID}/viewport", handlers.HandleResize(opts.SessionManager)).Methods(http.MethodPost)

	if opts.WSHandler != nil {
		r.Handle("/ws", opts.WSHandler)
	}
	if opts.AssetsDir != "" {
		r.PathPrefix("/assets/").Handler(http.StripPrefix("/assets/", http.FileServer(http.Dir(opts.AssetsDir))))
	}

	// preflight requests are answered by the CORS middleware
	r.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}

// Start starts the APIServer
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
