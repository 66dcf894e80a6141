package bitwig

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is wrapped by every error caused by an out-of-range argument.
	// Nothing is sent and no state changes when it is returned.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrClosed is returned by actions issued after Shutdown.
	ErrClosed = errors.New("client is shut down")
)

func checkRange(name string, v, min, max int) error {
	if v < min || v > max {
		return errors.Wrapf(ErrInvalidArgument, "%s %d out of range [%d, %d]", name, v, min, max)
	}
	return nil
}

func checkNote(note int) error {
	return checkRange("note", note, MinNote, MaxNote)
}

func checkChannel(channel int) error {
	return checkRange("channel", channel, MinChannel, MaxChannel)
}

func checkTimbre(timbre Timbre) error {
	if !timbre.valid() {
		return errors.Wrapf(ErrInvalidArgument, "unknown timbre %d", int(timbre))
	}
	return nil
}
