package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"slack-daily-agent/internal/config"
	"slack-daily-agent/pkg/logger"
)

// Server exposes a liveness endpoint while the agent runs in scheduler mode.
type Server struct {
	srv *http.Server
}

func New(cfg config.HealthConfig) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc(cfg.Endpoint, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return &Server{
		srv: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: mux,
		},
	}
}

// Start serves in the background; listen errors are logged, not fatal.
func (s *Server) Start() {
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Health server error", logger.Err(err))
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
