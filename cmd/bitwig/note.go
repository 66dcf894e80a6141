package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/chabad360/bitwig-osc/bitwig"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
)

var (
	noteDrum bool
	noteHold time.Duration
)

// noteCmd plays a single note for a while.
var noteCmd = &cobra.Command{
	Use:   "note <note> [velocity]",
	Short: "Play a note on the virtual keyboard",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Wrapf(err, "parsing note %q", args[0])
		}
		velocity := bitwig.MaxVelocity
		if len(args) == 2 {
			if velocity, err = strconv.Atoi(args[1]); err != nil {
				return errors.Wrapf(err, "parsing velocity %q", args[1])
			}
		}
		timbre := bitwig.Melodic
		if noteDrum {
			timbre = bitwig.Percussive
		}

		return withSession(func(s *session) error {
			return playFor(s.Client, cmd.OutOrStdout(), note, velocity, timbre, noteHold)
		})
	},
}

// playFor plays note and stops it again after hold.
func playFor(c *bitwig.Client, w io.Writer, note, velocity int, timbre bitwig.Timbre, hold time.Duration) error {
	if err := c.PlayNote(note, velocity, timbre); err != nil {
		return err
	}
	fmt.Fprintf(w, "playing %s (%d) for %v\n", midi.Note(uint8(note)), note, hold)
	time.Sleep(hold)
	return c.StopNote(note, timbre)
}

// octaveCmd shifts the virtual keyboard.
var octaveCmd = &cobra.Command{
	Use:       "octave <up|down>",
	Short:     "Shift all following notes by an octave",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"up", "down"},
	RunE: func(cmd *cobra.Command, args []string) error {
		timbre := bitwig.Melodic
		if noteDrum {
			timbre = bitwig.Percussive
		}
		return withSession(func(s *session) error {
			switch args[0] {
			case "up":
				return s.OctaveUp(timbre)
			case "down":
				return s.OctaveDown(timbre)
			}
			return errors.Errorf("unknown direction %q, want up or down", args[0])
		})
	},
}

func init() {
	noteCmd.Flags().BoolVar(&noteDrum, "drum", false, "play on the drum section")
	noteCmd.Flags().DurationVar(&noteHold, "hold", 500*time.Millisecond, "how long the note sounds")
	octaveCmd.Flags().BoolVar(&noteDrum, "drum", false, "shift the drum section")
	RootCmd.AddCommand(noteCmd, octaveCmd)
}
