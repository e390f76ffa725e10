package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type HTTPServer struct {
	logs     *zap.SugaredLogger
	server   *http.Server
	listener net.Listener
}

func NewHTTP(logger *zap.SugaredLogger, handler http.Handler, port string) *HTTPServer {
	return &HTTPServer{
		logs: logger,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%s", port),
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Run binds the port and starts serving in the background. The returned
// channel receives the error that stopped the server, including a failure
// to bind.
func (s *HTTPServer) Run() <-chan error {
	errChan := make(chan error, 1)

	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		errChan <- fmt.Errorf("listen on %s: %w", s.server.Addr, err)
		return errChan
	}
	s.listener = listener

	s.logs.Infow("http server listening", "address", listener.Addr().String())
	go func() {
		errChan <- s.server.Serve(listener)
	}()

	return errChan
}

// Addr returns the bound address once Run succeeded, or the configured one.
func (s *HTTPServer) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.server.Addr
}

func (s *HTTPServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logs.Infow("shutting down http server")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
