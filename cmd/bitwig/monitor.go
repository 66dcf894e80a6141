package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/chabad360/bitwig-osc/osc"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	monitorListen string
	monitorMatch  string
)

var (
	addressStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	argsStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// monitorCmd prints the messages a client sends, standing in for Bitwig.
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Print incoming OSC messages",
	Long: `Listen like the DrivenByMoss extension would and print every OSC
message received. Point other bitwig commands at the same port to see
what they send. With --match only addresses matching the OSC address
pattern are printed, e.g. --match '/vkb_midi/*/{note,drum}/*'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return errors.Wrap(err, "creating logger")
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		conn, err := net.ListenPacket("udp", monitorListen)
		if err != nil {
			return errors.Wrapf(err, "listening on %s", monitorListen)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "listening on", conn.LocalAddr())

		server := &osc.Server{
			Dispatcher: &osc.Dispatcher{NotFound: printMessage(cmd.OutOrStdout(), monitorMatch)},
			Logger:     logger,
		}
		return serveUntilDone(ctx, server, conn)
	},
}

func init() {
	monitorCmd.Flags().StringVar(&monitorListen, "listen", "127.0.0.1:8000", "address to listen on")
	monitorCmd.Flags().StringVar(&monitorMatch, "match", "", "only print addresses matching this OSC address pattern")
	RootCmd.AddCommand(monitorCmd)
}

// serveUntilDone serves conn until ctx is cancelled.
func serveUntilDone(ctx context.Context, server *osc.Server, conn net.PacketConn) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		return conn.Close()
	})
	g.Go(func() error {
		err := server.Serve(conn)
		if ctx.Err() != nil {
			return nil
		}
		return errors.Wrap(err, "serving")
	})
	return g.Wait()
}

// printMessage prints every message whose address matches pattern. An empty
// pattern prints everything.
func printMessage(w io.Writer, pattern string) osc.Method {
	filter := osc.NewMessage(pattern)
	return osc.MethodFunc(func(msg *osc.Message) {
		if pattern != "" && !filter.Match(msg.Address) {
			return
		}
		args := ""
		for _, a := range msg.Arguments {
			args += fmt.Sprintf(" %v", a)
		}
		if len(msg.Arguments) == 0 {
			args = " -"
		}
		fmt.Fprintln(w, addressStyle.Render(msg.Address)+argsStyle.Render(args))
	})
}
