package bitwig

import "github.com/pkg/errors"

const maxInt32 = 1<<31 - 1

// Range limits of the global commands.
const (
	MaxCrossfade   = 127
	MaxClickVolume = 127
	MaxTempoRaw    = 666
)

// Stop stops the transport.
func (c *Client) Stop() error { return c.send(addrStop, int32(1)) }

// Play starts playback.
func (c *Client) Play() error { return c.send(addrPlay, int32(1)) }

// Restart restarts playback from the start marker.
func (c *Client) Restart() error { return c.send(addrRestart, int32(1)) }

// Repeat toggles the loop.
func (c *Client) Repeat() error { return c.send(addrRepeat, int32(1)) }

// Record toggles arranger recording.
func (c *Client) Record() error { return c.send(addrRecord, int32(1)) }

// Overdub toggles arranger overdub.
func (c *Client) Overdub() error { return c.send(addrOverdub, int32(1)) }

// PunchIn toggles punch in.
func (c *Client) PunchIn() error { return c.send(addrPunchIn, int32(1)) }

// PunchOut toggles punch out.
func (c *Client) PunchOut() error { return c.send(addrPunchOut, int32(1)) }

// Undo undoes the last edit.
func (c *Client) Undo() error { return c.send(addrUndo) }

// Redo redoes the last undone edit.
func (c *Client) Redo() error { return c.send(addrRedo) }

// NextProject switches to the next open project.
func (c *Client) NextProject() error { return c.send(addrNextProject) }

// PreviousProject switches to the previous open project.
func (c *Client) PreviousProject() error { return c.send(addrPreviousProject) }

// SaveProject saves the current project.
func (c *Client) SaveProject() error { return c.send(addrSaveProject) }

// TapTempo taps the tempo once.
func (c *Client) TapTempo() error { return c.send(addrTempoTap) }

// Engine switches the audio engine of the project.
func (c *Client) Engine(s Switch) error {
	return c.sendSwitch(addrEngine, s)
}

// Click switches the metronome.
func (c *Client) Click(s Switch) error {
	return c.sendSwitch(addrClick, s)
}

// ClickPreroll switches the metronome during preroll.
func (c *Client) ClickPreroll(s Switch) error {
	return c.sendSwitch(addrClickPreroll, s)
}

// ClickVolume sets the metronome volume, 0-127.
func (c *Client) ClickVolume(volume int) error {
	if err := checkRange("click volume", volume, 0, MaxClickVolume); err != nil {
		return err
	}
	return c.send(addrClickVolume, int32(volume))
}

// Preroll sets the number of preroll bars: 0, 1, 2 or 4.
func (c *Client) Preroll(bars int) error {
	switch bars {
	case 0, 1, 2, 4:
	default:
		return errors.Wrapf(ErrInvalidArgument, "preroll of %d bars, want 0, 1, 2 or 4", bars)
	}
	return c.send(addrPreroll, int32(bars))
}

// Crossfade moves the crossfader, 0-127.
func (c *Client) Crossfade(value int) error {
	if err := checkRange("crossfade", value, 0, MaxCrossfade); err != nil {
		return err
	}
	return c.send(addrCrossfade, int32(value))
}

// Autowrite enables or disables arranger automation writing.
func (c *Client) Autowrite(enabled bool) error {
	return c.send(addrAutowrite, boolArg(enabled))
}

// AutowriteLauncher enables or disables clip launcher automation writing.
func (c *Client) AutowriteLauncher(enabled bool) error {
	return c.send(addrAutowriteLauncher, boolArg(enabled))
}

// AutomationWriteMode selects latch, touch or write.
func (c *Client) AutomationWriteMode(mode WriteMode) error {
	if _, err := ParseWriteMode(string(mode)); err != nil {
		return err
	}
	return c.send(addrAutomationWriteMode, string(mode))
}

// Tempo sets the raw tempo value, 0-666.
func (c *Client) Tempo(raw int) error {
	if err := checkRange("tempo", raw, 0, MaxTempoRaw); err != nil {
		return err
	}
	return c.send(addrTempoRaw, int32(raw))
}

// PositionForward moves the play position forward by a small step.
func (c *Client) PositionForward() error { return c.send(addrPosition + "/+") }

// PositionBackward moves the play position back by a small step.
func (c *Client) PositionBackward() error { return c.send(addrPosition + "/-") }

// PositionFastForward moves the play position forward by a large step.
func (c *Client) PositionFastForward() error { return c.send(addrPosition + "/++") }

// PositionFastBackward moves the play position back by a large step.
func (c *Client) PositionFastBackward() error { return c.send(addrPosition + "/--") }

// Nudge moves the play position by delta; the sign gives the direction and the
// magnitude the step size.
func (c *Client) Nudge(delta int) error {
	if err := checkRange("position delta", delta, -maxInt32, maxInt32); err != nil {
		return err
	}
	return c.send(addrPosition, int32(delta))
}

func (c *Client) sendSwitch(addr string, s Switch) error {
	args, err := s.args()
	if err != nil {
		return err
	}
	return c.send(addr, args...)
}

func boolArg(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
