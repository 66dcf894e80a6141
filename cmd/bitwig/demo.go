package main

import (
	"time"

	"github.com/chabad360/bitwig-osc/bitwig"
	"github.com/spf13/cobra"
)

var (
	demoRounds   int
	demoTrack    int
	demoInterval time.Duration
)

// demoCmd plays a zig-zag of notes up and down the keyboard.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Play an ascending and descending run of notes",
	Long: `Play an ascending and descending run of notes on the armed track.

Needs a synth with all keys mapped on the track given with --track.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			return runDemo(s.Client, demoTrack, demoRounds, demoInterval)
		})
	},
}

func init() {
	flags := demoCmd.Flags()
	flags.IntVarP(&demoRounds, "rounds", "n", 100, "number of note pairs to play")
	flags.IntVar(&demoTrack, "track", 1, "track to arm")
	flags.DurationVar(&demoInterval, "interval", 100*time.Millisecond, "length of each note and of each pause")
	RootCmd.AddCommand(demoCmd)
}

func runDemo(c *bitwig.Client, track, rounds int, interval time.Duration) error {
	// Start from a known state: everything disarmed except our track.
	if err := c.DisarmTracks(bitwig.TrackBankSize); err != nil {
		return err
	}
	if err := c.ArmTrack(track); err != nil {
		return err
	}

	note, ascending := 15, true
	for i := 0; i < rounds; i++ {
		if ascending && note >= 88 {
			ascending = false
		} else if !ascending && note <= 14 {
			ascending = true
		}

		var first, second int
		if ascending {
			note += 5
			first = note
			note -= 3
			second = note
		} else {
			note -= 5
			first = note
			note += 3
			second = note
		}

		for _, n := range []int{first, second} {
			if err := c.PlayNote(n, bitwig.MaxVelocity, bitwig.Melodic); err != nil {
				return err
			}
			time.Sleep(interval)
			if err := c.StopNote(n, bitwig.Melodic); err != nil {
				return err
			}
			time.Sleep(interval)
		}
	}

	return c.DisarmTrack(track)
}
