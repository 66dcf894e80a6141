package bitwig

import (
	"io"
	"sync"

	"github.com/chabad360/bitwig-osc/osc"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Client sends commands to the DrivenByMoss OSC extension and tracks the notes it started.
//
// A Client is meant to be driven by one caller at a time. Every action still runs under a
// lock so that Shutdown, typically called from a signal handler, never sees the note
// sets mid-update.
type Client struct {
	config    Config
	transport Transport
	closer    io.Closer
	logger    *zap.Logger

	mu       sync.Mutex
	notes    *NoteTracker
	lastNote int
	closed   bool

	shutdownOnce sync.Once
	shutdownErr  error
}

// Dial returns a Client for the configured OSC server. Unless WithTransport is given it
// opens a UDP socket to Config.Addr, which Shutdown closes again.
func Dial(opts ...Option) (*Client, error) {
	o := applyDefaultOptions(opts...)
	if err := o.config.validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config:    o.config,
		transport: o.transport,
		logger:    o.logger.With(zap.String("server", o.config.Addr())),
		notes:     NewNoteTracker(),
	}

	if c.transport == nil {
		conn, err := osc.Dial(o.config.Addr())
		if err != nil {
			return nil, err
		}
		c.transport = conn
		c.closer = conn
	}

	c.logger.Debug("client ready", zap.Int("channel", o.config.Channel))
	return c, nil
}

// Config returns the configuration the client was created with.
func (c *Client) Config() Config {
	return c.config
}

// LastNote returns the note of the most recent PlayNote call.
func (c *Client) LastNote() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastNote
}

// IsOn reports whether the client considers note to be sounding.
func (c *Client) IsOn(note int, timbre Timbre) bool {
	return c.notes.IsOn(note, timbre)
}

// PlayingNotes returns the notes the client considers sounding under timbre.
func (c *Client) PlayingNotes(timbre Timbre) []int {
	return c.notes.AllOn(timbre)
}

// Shutdown turns off every tracked note, melodic first, then percussive, and closes the
// socket opened by Dial. Only the first call does anything; later calls return the same
// error. Every note gets its stop message even if sending some of them fails.
func (c *Client) Shutdown() error {
	c.shutdownOnce.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		var err error
		for _, timbre := range Timbres {
			err = multierr.Append(err, c.sweep(timbre))
		}
		c.closed = true

		if c.closer != nil {
			err = multierr.Append(err, c.closer.Close())
		}
		if err != nil {
			c.logger.Warn("shutdown finished with errors", zap.Error(err))
		} else {
			c.logger.Debug("shutdown complete")
		}
		c.shutdownErr = err
	})
	return c.shutdownErr
}

// Close implements io.Closer by calling Shutdown.
func (c *Client) Close() error {
	return c.Shutdown()
}

// send sends one message built from addr and args.
func (c *Client) send(addr string, args ...interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sendLocked(addr, args...)
}

// sendLocked is send for callers holding c.mu.
func (c *Client) sendLocked(addr string, args ...interface{}) error {
	if c.closed {
		return ErrClosed
	}

	msg := osc.NewMessage(addr, args...)
	if err := c.transport.Send(msg); err != nil {
		c.logger.Debug("send failed", zap.Stringer("message", msg), zap.Error(err))
		return errors.Wrapf(err, "sending %s", addr)
	}
	c.logger.Debug("sent", zap.Stringer("message", msg))
	return nil
}

// sweep stops every tracked note of timbre. c.mu must be held.
func (c *Client) sweep(timbre Timbre) error {
	n := c.notes.Len(timbre)
	if n == 0 {
		return nil
	}

	c.logger.Info("turning off playing notes", zap.Stringer("timbre", timbre), zap.Int("count", n))
	return c.notes.Sweep(timbre, func(note, channel int) error {
		if channel == AnyChannel {
			channel = c.config.Channel
		}
		return c.sendLocked(noteAddress(channel, timbre, note), int32(0))
	})
}
