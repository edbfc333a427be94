package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/cbodonnell/spacewar/pkg/api/handlers"
	"github.com/cbodonnell/spacewar/pkg/api/middleware"
	"github.com/cbodonnell/spacewar/pkg/log"
	"github.com/cbodonnell/spacewar/pkg/sector"
	"github.com/cbodonnell/spacewar/pkg/stats"
	"github.com/gorilla/mux"
)

// DefaultStreamInterval is how often /sector/stream sends a frame.
const DefaultStreamInterval = 100 * time.Millisecond

// APIServer serves read-only views of a running sector to observers.
type APIServer struct {
	server *http.Server
	// cancels the streams, which outlive Shutdown once hijacked
	streamCancel context.CancelFunc
}

type NewAPIServerOptions struct {
	Port           int
	Sector         *sector.Sector
	Stats          *stats.Counters
	StreamInterval time.Duration
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	streamCtx, streamCancel := context.WithCancel(context.Background())
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           NewRouter(streamCtx, opts),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return &APIServer{
		server:       server,
		streamCancel: streamCancel,
	}
}

// NewRouter builds the routes of the API.
func NewRouter(streamCtx context.Context, opts NewAPIServerOptions) *mux.Router {
	interval := opts.StreamInterval
	if interval <= 0 {
		interval = DefaultStreamInterval
	}

	r := mux.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(), middleware.NewCORSMiddleware())
	r.HandleFunc("/healthz", handlers.HandleHealthz()).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/sector", handlers.HandleGetSector(opts.Sector)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/sector/stream", handlers.HandleSectorStream(streamCtx, opts.Sector, interval)).Methods(http.MethodGet)
	r.HandleFunc("/stats", handlers.HandleGetStats(opts.Stats)).Methods(http.MethodGet, http.MethodOptions)
	return r
}

// Start listens and serves until Stop is called. A bind failure is returned.
func (s *APIServer) Start() error {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %v", s.server.Addr, err)
	}

	log.Info("API server listening on %s", listener.Addr().String())
	if err := s.server.Serve(listener); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return nil
		}
		return fmt.Errorf("API server error: %v", err)
	}
	return nil
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	s.streamCancel()
	return s.server.Shutdown(ctx)
}
