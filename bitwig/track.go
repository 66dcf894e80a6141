package bitwig

import "go.uber.org/multierr"

// TrackBankSize is the number of tracks DisarmTracks touches by default.
const TrackBankSize = 8

// RecordArm sets the record arm state of a track. This also decides which MIDI tracks
// receive the virtual keyboard. Tracks are numbered from 1.
//
// API route: /track/{1-8}/recarm {1,0,-}
func (c *Client) RecordArm(track int, s Switch) error {
	if err := checkRange("track", track, 1, maxInt32); err != nil {
		return err
	}
	return c.sendSwitch(recArmAddress(track), s)
}

// ArmTrack arms a track for recording.
func (c *Client) ArmTrack(track int) error {
	return c.RecordArm(track, On)
}

// DisarmTrack disarms a track.
func (c *Client) DisarmTrack(track int) error {
	return c.RecordArm(track, Off)
}

// ToggleArmTrack flips the armed state of a track.
func (c *Client) ToggleArmTrack(track int) error {
	return c.RecordArm(track, Toggle)
}

// DisarmTracks disarms tracks 1 to n. n <= 0 means TrackBankSize.
func (c *Client) DisarmTracks(n int) error {
	if n <= 0 {
		n = TrackBankSize
	}
	var err error
	for track := 1; track <= n; track++ {
		err = multierr.Append(err, c.DisarmTrack(track))
	}
	return err
}
