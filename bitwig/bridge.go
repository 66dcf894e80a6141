package bitwig

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"go.uber.org/zap"
)

// GMDrumChannel is MIDI channel 10, zero based as gomidi counts channels.
const GMDrumChannel uint8 = 9

// Bridge forwards notes from a MIDI input to the virtual keyboard of a Client.
// Notes on the drum channel are played as Percussive, everything else as Melodic.
// All notes go to the client's default channel.
type Bridge struct {
	client      *Client
	drumChannel uint8
	logger      *zap.Logger
}

// NewBridge returns a Bridge feeding c. Notes on drumChannel are played as drums.
func NewBridge(c *Client, drumChannel uint8) *Bridge {
	return &Bridge{
		client:      c,
		drumChannel: drumChannel,
		logger:      c.logger.Named("bridge"),
	}
}

// Listen starts forwarding the notes arriving on in. Call stop to end it.
func (b *Bridge) Listen(in drivers.In) (stop func(), err error) {
	b.logger.Info("listening", zap.String("port", in.String()))
	return midi.ListenTo(in, b.Handle)
}

// Handle forwards a single MIDI message. Messages other than note on and off are ignored.
// It has the signature midi.ListenTo expects.
func (b *Bridge) Handle(msg midi.Message, timestampms int32) {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		timbre := b.timbre(ch)
		b.logger.Debug("note on", zap.Stringer("note", midi.Note(key)), zap.Uint8("velocity", vel), zap.Int32("ts", timestampms))
		if err := b.client.PlayNote(int(key), int(vel), timbre); err != nil {
			b.logger.Warn("forwarding note on failed", zap.Error(err))
		}
	case msg.GetNoteEnd(&ch, &key):
		timbre := b.timbre(ch)
		b.logger.Debug("note off", zap.Stringer("note", midi.Note(key)), zap.Int32("ts", timestampms))
		if err := b.client.StopNote(int(key), timbre); err != nil {
			b.logger.Warn("forwarding note off failed", zap.Error(err))
		}
	}
}

func (b *Bridge) timbre(ch uint8) Timbre {
	if ch == b.drumChannel {
		return Percussive
	}
	return Melodic
}
