package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

type httpServer struct {
	server *http.Server
}

func NewHTTPServer(addr string, handler http.Handler) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:    addr,
			Handler: handler,
		},
	}
}

func (h *httpServer) Name() string { return "http_server" }

func (h *httpServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		slog.Info("Starting HTTP server", "addr", h.server.Addr)
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancelFn := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelFn()

	slog.Info("Shutting down HTTP server")
	return h.server.Shutdown(shutdownCtx)
}
