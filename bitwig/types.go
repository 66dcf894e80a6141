package bitwig

import (
	"strings"

	"github.com/pkg/errors"
)

// Note and channel bounds accepted by the virtual keyboard.
const (
	MinNote     = 0
	MaxNote     = 127
	MaxVelocity = 127
	MinChannel  = 0
	MaxChannel  = 16
)

// Timbre selects the virtual keyboard section a note is played on.
type Timbre int

const (
	// Melodic notes go to /vkb_midi/{chan}/note/...
	Melodic Timbre = iota
	// Percussive notes go to /vkb_midi/{chan}/drum/...
	Percussive
)

// Timbres lists every category the client tracks, in sweep order.
var Timbres = []Timbre{Melodic, Percussive}

func (t Timbre) String() string {
	switch t {
	case Melodic:
		return "note"
	case Percussive:
		return "drum"
	default:
		return "invalid"
	}
}

func (t Timbre) valid() bool {
	return t == Melodic || t == Percussive
}

// ParseTimbre accepts the wire names "note" and "drum" as well as "melodic" and "percussive".
func ParseTimbre(s string) (Timbre, error) {
	switch strings.ToLower(s) {
	case "note", "melodic":
		return Melodic, nil
	case "drum", "percussive":
		return Percussive, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown timbre %q", s)
}

// Switch is the three-valued argument of on/off/toggle commands.
type Switch int

const (
	Off Switch = iota
	On
	// Toggle sends the command without an argument.
	Toggle
)

func (s Switch) String() string {
	switch s {
	case Off:
		return "off"
	case On:
		return "on"
	case Toggle:
		return "toggle"
	default:
		return "invalid"
	}
}

// args returns the OSC arguments for s.
func (s Switch) args() ([]interface{}, error) {
	switch s {
	case Off:
		return []interface{}{int32(0)}, nil
	case On:
		return []interface{}{int32(1)}, nil
	case Toggle:
		return nil, nil
	}
	return nil, errors.Wrapf(ErrInvalidArgument, "unknown switch %d", int(s))
}

// ParseSwitch accepts on/off/toggle and 1/0/-.
func ParseSwitch(s string) (Switch, error) {
	switch strings.ToLower(s) {
	case "off", "0":
		return Off, nil
	case "on", "1":
		return On, nil
	case "toggle", "-", "":
		return Toggle, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown switch %q", s)
}

// WriteMode is the automation write mode.
type WriteMode string

const (
	Latch WriteMode = "latch"
	Touch WriteMode = "touch"
	Write WriteMode = "write"
)

// ParseWriteMode validates a write mode name.
func ParseWriteMode(s string) (WriteMode, error) {
	switch m := WriteMode(strings.ToLower(s)); m {
	case Latch, Touch, Write:
		return m, nil
	}
	return "", errors.Wrapf(ErrInvalidArgument, "unknown automation write mode %q", s)
}
