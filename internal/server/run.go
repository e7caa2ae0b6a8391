package server

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"time"

	"github.com/leetpulse/dskit/internal/config"
)

// ListenAndServe listens on sc.Addr and serves until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context, sc config.ServerConfig) error {
	ln, err := net.Listen("tcp", sc.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln, sc)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully, waiting up to sc.ShutdownTimeout for in-flight requests.
func (s *Server) Serve(ctx context.Context, ln net.Listener, sc config.ServerConfig) error {
	srv := &http.Server{
		Handler:      s,
		ReadTimeout:  sc.ReadTimeout.Duration,
		WriteTimeout: sc.WriteTimeout.Duration,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", ln.Addr().String())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	timeout := sc.ShutdownTimeout.Duration
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
