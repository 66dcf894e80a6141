package main

import (
	"strconv"

	"github.com/chabad360/bitwig-osc/bitwig"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var armBank bool

// armCmd changes the record arm state of a track.
var armCmd = &cobra.Command{
	Use:   "arm [track] [on|off|toggle]",
	Short: "Record arm, disarm or toggle a track",
	Long: `Record arm, disarm or toggle a track. The armed tracks receive the
virtual keyboard. With --bank the first eight tracks are disarmed.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if armBank {
			return withSession(func(s *session) error {
				return s.DisarmTracks(bitwig.TrackBankSize)
			})
		}
		if len(args) == 0 {
			return errors.New("missing track")
		}

		track, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Wrapf(err, "parsing track %q", args[0])
		}
		state := bitwig.On
		if len(args) == 2 {
			if state, err = bitwig.ParseSwitch(args[1]); err != nil {
				return err
			}
		}

		return withSession(func(s *session) error {
			return s.RecordArm(track, state)
		})
	},
}

func init() {
	armCmd.Flags().BoolVar(&armBank, "bank", false, "disarm tracks 1 to 8")
	RootCmd.AddCommand(armCmd)
}
