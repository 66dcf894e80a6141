package bitwig

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"
)

type interruptOptions struct {
	signals []os.Signal
	exit    func(code int)
	notice  io.Writer
}

// InterruptOption configures HandleInterrupt.
type InterruptOption func(*interruptOptions)

// WithSignals replaces the default os.Interrupt and SIGTERM.
func WithSignals(sigs ...os.Signal) InterruptOption {
	return func(o *interruptOptions) {
		o.signals = sigs
	}
}

// WithExit replaces os.Exit.
func WithExit(exit func(code int)) InterruptOption {
	return func(o *interruptOptions) {
		o.exit = exit
	}
}

// WithNotice sets where the notice printed before quitting goes. Defaults to os.Stderr.
func WithNotice(w io.Writer) InterruptOption {
	return func(o *interruptOptions) {
		o.notice = w
	}
}

// HandleInterrupt shuts c down and exits the process with status 0 when the process
// receives an interrupt. The returned function unregisters the handler; calling it after
// the program finished normally is how the handler is meant to be released.
func HandleInterrupt(c *Client, opts ...InterruptOption) (stop func()) {
	o := interruptOptions{
		signals: []os.Signal{os.Interrupt, syscall.SIGTERM},
		exit:    os.Exit,
		notice:  os.Stderr,
	}
	for _, opt := range opts {
		opt(&o)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, o.signals...)

	done := make(chan struct{})
	go watchInterrupt(c, sigs, done, o)

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigs)
			close(done)
		})
	}
}

func watchInterrupt(c *Client, sigs <-chan os.Signal, done <-chan struct{}, o interruptOptions) {
	select {
	case <-done:
		return
	case sig := <-sigs:
		fmt.Fprintf(o.notice, "Received %v. Turning off all notes and quitting...\n", sig)
		c.logger.Info("interrupted, shutting down", zap.Stringer("signal", sig))
		if err := c.Shutdown(); err != nil {
			c.logger.Warn("some notes could not be turned off", zap.Error(err))
		}
		o.exit(0)
	}
}
