package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

const (
	defaultShutdownTimeout = time.Second * 10
	defaultReadTimeout     = time.Second * 5
	defaultWriteTimeout    = time.Second * 5
)

type serverConfig struct {
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration
	handler         http.Handler
}

// HTTPServer wraps http.Server so that the listening address is known
// before the first request is served, which allows binding to port 0.
type HTTPServer struct {
	addr          *net.TCPAddr
	server        *http.Server
	cfg           serverConfig
	readyCallback func(net.Addr)

	mutex    sync.Mutex
	listener *net.TCPListener
	closer   chan struct{}
	stopOnce sync.Once
}

type Option func(*HTTPServer) error

// WithShutdownTimeout limits how long Stop waits for active connections.
// A non-positive timeout keeps the default.
func WithShutdownTimeout(timeout time.Duration) Option {
	return func(s *HTTPServer) error {
		if timeout > 0 {
			s.cfg.shutdownTimeout = timeout
		}
		return nil
	}
}

func WithReadTimeout(timeout time.Duration) Option {
	return func(s *HTTPServer) error {
		if timeout > 0 {
			s.cfg.readTimeout = timeout
		}
		return nil
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(s *HTTPServer) error {
		if timeout > 0 {
			s.cfg.writeTimeout = timeout
		}
		return nil
	}
}

func WithHandler(handler http.Handler) Option {
	return func(s *HTTPServer) error {
		if handler == nil {
			return errors.New("http server: handler is required")
		}
		s.cfg.handler = handler
		return nil
	}
}

// WithReadySignal registers a callback that is invoked with the bound address
// once the server is ready to accept connections.
func WithReadySignal(cb func(net.Addr)) Option {
	return func(s *HTTPServer) error {
		s.readyCallback = cb
		return nil
	}
}

func New(addr string, opts ...Option) (*HTTPServer, error) {
	tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("http server: resolve %s: %w", addr, err)
	}
	server := &HTTPServer{
		addr: tcpAddr,
		cfg: serverConfig{
			writeTimeout:    defaultWriteTimeout,
			readTimeout:     defaultReadTimeout,
			shutdownTimeout: defaultShutdownTimeout,
			handler:         http.NotFoundHandler(),
		},
		closer: make(chan struct{}),
	}
	for _, opt := range opts {
		if optErr := opt(server); optErr != nil {
			return nil, optErr
		}
	}
	server.server = &http.Server{
		Addr:              addr,
		Handler:           server.cfg.handler,
		ReadTimeout:       server.cfg.readTimeout,
		ReadHeaderTimeout: server.cfg.readTimeout,
		WriteTimeout:      server.cfg.writeTimeout,
	}
	return server, nil
}

// ListenAndServe blocks until the server is stopped or fails to serve.
// A stopped server returns nil.
func (s *HTTPServer) ListenAndServe() error {
	fatal := make(chan error, 1)

	listener, err := net.ListenTCP("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("http server: listen %s: %w", s.addr, err)
	}
	defer listener.Close() // nolint: errcheck

	s.mutex.Lock()
	s.listener = listener
	s.mutex.Unlock()

	if s.readyCallback != nil {
		s.readyCallback(listener.Addr())
	}

	go func() {
		if err := s.server.Serve(listener); err != nil {
			fatal <- err
		}
	}()

	select {
	case err := <-fatal:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-s.closer:
		return nil
	}
}

// ListenAddr returns the bound address, or nil when the server is not listening yet.
func (s *HTTPServer) ListenAddr() net.Addr {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Stop gracefully shuts the server down. Calling Stop more than once is a no-op.
func (s *HTTPServer) Stop(ctx context.Context) error {
	var stopErr error
	s.stopOnce.Do(func() {
		close(s.closer)
		stopCtx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
		defer cancel()
		if err := s.server.Shutdown(stopCtx); err != nil {
			stopErr = fmt.Errorf("http server: shutdown %s: %w", s.addr, err)
		}
	})
	return stopErr
}
