package osc

import (
	"net"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Server represents an OSC server. The server listens on Addr for incoming OSC messages.
type Server struct {
	Addr        string
	Dispatcher  *Dispatcher
	ReadTimeout time.Duration
	Logger      *zap.Logger
}

// ListenAndServe retrieves incoming OSC packets and dispatches the retrieved OSC packets.
func (s *Server) ListenAndServe() error {
	ln, err := net.ListenPacket("udp", s.Addr)
	if err != nil {
		return errors.Wrapf(err, "listening on %s", s.Addr)
	}
	defer ln.Close()

	return s.Serve(ln)
}

// Serve retrieves incoming OSC packets from the given connection and dispatches retrieved OSC packets.
// It returns when reading from the connection fails permanently, e.g. after the connection was closed.
func (s *Server) Serve(c net.PacketConn) error {
	if s.Dispatcher == nil {
		s.Dispatcher = &Dispatcher{}
	}

	for {
		p, addr, err := s.readFromConnection(c)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				continue
			}
			if _, ok := err.(*net.OpError); ok {
				return err
			}
			s.logger().Debug("dropping malformed packet", zap.Stringer("from", addr), zap.Error(err))
			continue
		}
		s.serve(p, addr)
	}
}

func (s *Server) serve(p Packet, a net.Addr) {
	defer func() {
		if err := recover(); err != nil {
			s.logger().Error("panic handling packet", zap.Stringer("from", a), zap.Any("panic", err), zap.Stack("stack"))
		}
	}()
	if err := s.Dispatcher.Dispatch(p); err != nil {
		s.logger().Warn("dispatch failed", zap.Stringer("from", a), zap.Error(err))
	}
}

// ReceivePacket listens for incoming OSC packets and returns the packet if one is received.
func (s *Server) ReceivePacket(c net.PacketConn) (Packet, net.Addr, error) {
	return s.readFromConnection(c)
}

// readFromConnection retrieves OSC packets.
func (s *Server) readFromConnection(c net.PacketConn) (Packet, net.Addr, error) {
	if s.ReadTimeout != 0 {
		if err := c.SetReadDeadline(time.Now().Add(s.ReadTimeout)); err != nil {
			return nil, nil, err
		}
	}

	bp := readPool.Get().(*[]byte)
	defer readPool.Put(bp)

	n, a, err := c.ReadFrom(*bp)
	if err != nil {
		return nil, a, err
	}

	// The parsed packet copies every string and blob it keeps, so the
	// buffer can go back to the pool.
	p, err := parsePacket((*bp)[:n])
	return p, a, err
}

var readPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, MaxPacketSize)
		return &buf
	},
}

func (s *Server) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
