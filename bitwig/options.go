package bitwig

import (
	"net"
	"strconv"

	"github.com/chabad360/bitwig-osc/osc"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Defaults of the DrivenByMoss OSC extension.
const (
	DefaultHost    = "127.0.0.1"
	DefaultPort    = 8000
	DefaultChannel = 1
)

// Config holds the client configuration. It cannot change after Dial.
type Config struct {
	Host    string // OSC server host.
	Port    int    // OSC server port.
	Channel int    // Default MIDI channel for note commands.
}

// Addr returns host:port.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c Config) validate() error {
	if c.Host == "" {
		return errors.Wrap(ErrInvalidArgument, "empty host")
	}
	if err := checkRange("port", c.Port, 1, 65535); err != nil {
		return err
	}
	return checkChannel(c.Channel)
}

// Transport sends one OSC packet per call. *osc.Client implements it.
type Transport interface {
	Send(packet osc.Packet) error
}

type options struct {
	config    Config
	logger    *zap.Logger
	transport Transport
}

// Option configures a Client.
type Option func(*options)

// WithAddress sets the OSC server address.
func WithAddress(host string, port int) Option {
	return func(o *options) {
		o.config.Host = host
		o.config.Port = port
	}
}

// WithChannel sets the default MIDI channel.
func WithChannel(channel int) Option {
	return func(o *options) {
		o.config.Channel = channel
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithTransport makes the client send through t instead of dialing the configured address.
// The client does not close t.
func WithTransport(t Transport) Option {
	return func(o *options) {
		o.transport = t
	}
}

func applyDefaultOptions(opts ...Option) options {
	o := options{
		config: Config{
			Host:    DefaultHost,
			Port:    DefaultPort,
			Channel: DefaultChannel,
		},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}
