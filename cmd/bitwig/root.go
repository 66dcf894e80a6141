package main

import (
	"github.com/chabad360/bitwig-osc/bitwig"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagIP    string
	flagPort  int
	flagChan  int
	flagDebug bool
)

// RootCmd is the bitwig command.
var RootCmd = &cobra.Command{
	Use:   "bitwig",
	Short: "Control Bitwig Studio through the DrivenByMoss OSC extension",
	Long: `Control Bitwig Studio through the DrivenByMoss OSC extension.

Every note started by a command is turned off again before the command
exits, including when it is interrupted with ctrl-c.`,
	SilenceUsage: true,
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&flagIP, "ip", bitwig.DefaultHost, "IP of the OSC server")
	flags.IntVar(&flagPort, "port", bitwig.DefaultPort, "port the OSC server listens on")
	flags.IntVar(&flagChan, "chan", bitwig.DefaultChannel, "default MIDI channel for note commands")
	flags.BoolVar(&flagDebug, "debug", false, "log every message sent")
}

func newLogger() (*zap.Logger, error) {
	if flagDebug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// session is a client owned by one command invocation.
type session struct {
	*bitwig.Client
	logger      *zap.Logger
	stopHandler func()
}

// openSession dials the configured server. With exitOnInterrupt the process quits on
// ctrl-c after turning off all notes; otherwise the command handles interrupts itself
// and must Close the session on the way out.
func openSession(exitOnInterrupt bool) (*session, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, errors.Wrap(err, "creating logger")
	}

	c, err := bitwig.Dial(
		bitwig.WithAddress(flagIP, flagPort),
		bitwig.WithChannel(flagChan),
		bitwig.WithLogger(logger),
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating client")
	}

	s := &session{Client: c, logger: logger, stopHandler: func() {}}
	if exitOnInterrupt {
		s.stopHandler = bitwig.HandleInterrupt(c)
	}
	return s, nil
}

// Close turns off every note still playing and releases the client.
func (s *session) Close() error {
	s.stopHandler()
	err := s.Client.Close()
	_ = s.logger.Sync()
	return errors.Wrap(err, "shutting down client")
}

// withSession runs fn with a session that exits on interrupt and is closed afterwards.
func withSession(fn func(s *session) error) error {
	s, err := openSession(true)
	if err != nil {
		return err
	}
	if err := fn(s); err != nil {
		_ = s.Close()
		return err
	}
	return s.Close()
}
