package osc

import (
	"bytes"
	"encoding"

	"github.com/pkg/errors"
)

// ErrBundleUnsupported is returned when a received datagram is an OSC bundle.
var ErrBundleUnsupported = errors.New("osc: bundles are not supported")

var bundleTag = []byte("#bundle\x00")

// Packet is the interface for anything that can be sent as one OSC datagram.
type Packet interface {
	encoding.BinaryMarshaler
}

// ParsePacket parses the given datagram and returns the decoded Packet.
func ParsePacket(data []byte) (Packet, error) {
	return parsePacket(data)
}

func parsePacket(data []byte) (Packet, error) {
	if len(data) == 0 {
		return nil, errors.New("ParsePacket: empty packet")
	}

	switch data[0] {
	case '/':
		return NewMessageFromData(data)
	case '#':
		if bytes.HasPrefix(data, bundleTag) {
			return nil, ErrBundleUnsupported
		}
	}

	return nil, errors.Errorf("ParsePacket: invalid packet, starts with %q", data[0])
}
