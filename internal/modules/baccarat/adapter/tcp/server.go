package tcp

import (
	"context"
	"errors"
	"net"
	"sync"

	"github.com/frankieli/baccarat_game/pkg/logger"
	"golang.org/x/sync/semaphore"
)

// Server accepts connections and hands each one to a worker from a
// bounded pool. When all workers are busy, accepted connections wait
// for a free slot instead of being dropped.
type Server struct {
	addr    string
	handler *Handler
	sem     *semaphore.Weighted

	mu       sync.Mutex
	listener net.Listener
	closed   bool
	wg       sync.WaitGroup
}

// NewServer creates a TCP server with at most maxWorkers concurrent
// connection handlers
func NewServer(addr string, maxWorkers int64, handler *Handler) *Server {
	return &Server{
		addr:    addr,
		handler: handler,
		sem:     semaphore.NewWeighted(maxWorkers),
	}
}

// Start listens and serves until ctx is cancelled or Shutdown is
// called. It blocks for the lifetime of the listener.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		listener.Close()
		return net.ErrClosed
	}
	s.listener = listener
	s.mu.Unlock()

	logger.Info(ctx).Str("addr", s.addr).Msg("Baccarat server listening")

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			logger.Warn(ctx).Err(err).Msg("Accept failed")
			continue
		}

		if err := s.sem.Acquire(ctx, 1); err != nil {
			// Shutting down
			conn.Close()
			return nil
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer s.sem.Release(1)
			s.handler.HandleConn(ctx, conn)
		}()
	}
}

// Shutdown stops accepting and waits for in-flight connections
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	listener := s.listener
	s.mu.Unlock()

	if listener != nil {
		listener.Close()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
