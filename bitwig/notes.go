package bitwig

import "go.uber.org/multierr"

// PlayNote plays note on the default channel. A velocity of 0 stops the note instead.
//
// API route: /vkb_midi/{Channel:0-16}/{note|drum}/{Note:0-127} {Velocity:0-127}
func (c *Client) PlayNote(note, velocity int, timbre Timbre) error {
	return c.PlayNoteOn(c.config.Channel, note, velocity, timbre)
}

// PlayNoteOn is PlayNote on an explicit channel.
func (c *Client) PlayNoteOn(channel, note, velocity int, timbre Timbre) error {
	if err := checkNoteArgs(channel, note, timbre); err != nil {
		return err
	}
	if err := checkRange("velocity", velocity, 0, MaxVelocity); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}

	if velocity > 0 {
		if err := c.notes.NoteOnChannel(note, timbre, channel); err != nil {
			return err
		}
	} else {
		c.notes.NoteOff(note, timbre)
	}
	c.lastNote = note

	return c.sendLocked(noteAddress(channel, timbre, note), int32(velocity))
}

// StopNote stops note on the default channel by sending velocity 0.
// The message is sent even when the note is not tracked as playing.
func (c *Client) StopNote(note int, timbre Timbre) error {
	return c.StopNoteOn(c.config.Channel, note, timbre)
}

// StopNoteOn is StopNote on an explicit channel.
func (c *Client) StopNoteOn(channel, note int, timbre Timbre) error {
	if err := checkNoteArgs(channel, note, timbre); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}

	c.notes.NoteOff(note, timbre)
	return c.sendLocked(noteAddress(channel, timbre, note), int32(0))
}

// StopAllPlayingNotes stops every note the client started under timbre and still considers
// sounding. With nothing playing it sends nothing.
func (c *Client) StopAllPlayingNotes(timbre Timbre) error {
	if err := checkTimbre(timbre); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	return c.sweep(timbre)
}

// StopAllNotes sends a stop for all 128 notes of timbre on the default channel, whether the
// client started them or not. Tracked notes are swept first so notes started on another
// channel are stopped there too.
func (c *Client) StopAllNotes(timbre Timbre) error {
	if err := checkTimbre(timbre); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}

	err := c.sweep(timbre)
	for note := MinNote; note <= MaxNote; note++ {
		err = multierr.Append(err, c.sendLocked(noteAddress(c.config.Channel, timbre, note), int32(0)))
	}
	return err
}

// OctaveUp shifts all following notes of timbre up by one octave. The shift is kept by
// Bitwig until OctaveDown is sent.
//
// API route: /vkb_midi/{Channel:0-16}/{note|drum}/+
func (c *Client) OctaveUp(timbre Timbre) error {
	return c.octave(timbre, "+")
}

// OctaveDown shifts all following notes of timbre down by one octave.
//
// API route: /vkb_midi/{Channel:0-16}/{note|drum}/-
func (c *Client) OctaveDown(timbre Timbre) error {
	return c.octave(timbre, "-")
}

func (c *Client) octave(timbre Timbre, direction string) error {
	if err := checkTimbre(timbre); err != nil {
		return err
	}
	return c.send(keyboardAddress(c.config.Channel, timbre, direction), int32(1))
}

func checkNoteArgs(channel, note int, timbre Timbre) error {
	if err := checkChannel(channel); err != nil {
		return err
	}
	if err := checkNote(note); err != nil {
		return err
	}
	return checkTimbre(timbre)
}
