package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chabad360/bitwig-osc/bitwig"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

var (
	bridgeIn          string
	bridgeList        bool
	bridgeDrumChannel int
)

// bridgeCmd forwards a hardware MIDI keyboard to the virtual keyboard.
var bridgeCmd = &cobra.Command{
	Use:   "bridge",
	Short: "Forward notes from a MIDI input port",
	Long: `Forward note on and note off messages from a MIDI input port to the
virtual keyboard. Notes on the drum channel go to the drum section.
Held notes are turned off when the bridge is stopped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer midi.CloseDriver()

		if bridgeList {
			for _, in := range midi.GetInPorts() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", in.Number(), in.String())
			}
			return nil
		}
		if bridgeIn == "" {
			return errors.New("missing --in, use --list to see the available ports")
		}
		if bridgeDrumChannel < 1 || bridgeDrumChannel > 16 {
			return errors.Errorf("drum channel %d out of range [1, 16]", bridgeDrumChannel)
		}

		in, err := midi.FindInPort(bridgeIn)
		if err != nil {
			return errors.Wrapf(err, "finding input port %q", bridgeIn)
		}

		s, err := openSession(false)
		if err != nil {
			return err
		}

		ctx, stopSignals := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stopSignals()

		stopListening, err := bitwig.NewBridge(s.Client, uint8(bridgeDrumChannel-1)).Listen(in)
		if err != nil {
			_ = s.Close()
			return errors.Wrapf(err, "listening on %q", bridgeIn)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "forwarding %s, press ctrl-c to quit\n", in)

		<-ctx.Done()
		stopListening()
		fmt.Fprintln(cmd.ErrOrStderr(), "Turning off all notes and quitting...")
		return s.Close()
	},
}

func init() {
	flags := bridgeCmd.Flags()
	flags.StringVar(&bridgeIn, "in", "", "name of the MIDI input port")
	flags.BoolVar(&bridgeList, "list", false, "list the MIDI input ports and exit")
	flags.IntVar(&bridgeDrumChannel, "drum-channel", int(bitwig.GMDrumChannel)+1, "MIDI channel played on the drum section")
	RootCmd.AddCommand(bridgeCmd)
}
