package osc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Message represents a single OSC message. An OSC message consists of an OSC
// address pattern and zero or more arguments.
type Message struct {
	Address   string
	Arguments []interface{}
}

// Verify that Messages implements the Packet interface.
var _ Packet = (*Message)(nil)

// NewMessage returns a new Message. The address parameter is the OSC address.
func NewMessage(addr string, args ...interface{}) *Message {
	return &Message{Address: addr, Arguments: args}
}

// Append appends the given arguments to the arguments list.
func (m *Message) Append(args ...interface{}) error {
	for _, a := range args {
		if ToTypeTag(a) == TypeInvalid {
			return errors.Errorf("Append: unsupported type: %T", a)
		}
	}
	m.Arguments = append(m.Arguments, args...)
	return nil
}

// Match returns true, if the OSC address pattern of the OSC Message matches the given
// address. The match is case sensitive!
func (m *Message) Match(addr string) bool {
	r, err := getRegEx(m.Address)
	if err != nil {
		return false
	}
	return r.MatchString(addr)
}

// TypeTags returns the type tag string.
func (m *Message) TypeTags() (string, error) {
	if m == nil {
		return "", errors.New("TypeTags: message is nil")
	}
	return GetTypeTag(m.Arguments)
}

// String implements the fmt.Stringer interface.
func (m *Message) String() string {
	if m == nil {
		return ""
	}

	tags, _ := m.TypeTags()

	var sb strings.Builder
	sb.WriteString(m.Address)
	if len(tags) <= 1 {
		return sb.String()
	}

	sb.WriteByte(' ')
	sb.WriteString(tags)

	for _, arg := range m.Arguments {
		switch arg := arg.(type) {
		case bool, int32, int64, float32, float64, string:
			fmt.Fprintf(&sb, " %v", arg)

		case nil:
			sb.WriteString(" Nil")

		case []byte:
			sb.WriteString(" blob")
		}
	}

	return sb.String()
}

// MarshalBinary serializes the OSC message to a byte buffer. The byte buffer
// has the following format:
// 1. OSC Address Pattern
// 2. OSC Type Tag String
// 3. OSC Arguments
func (m *Message) MarshalBinary() ([]byte, error) {
	data := bufPool.Get().(*bytes.Buffer)
	defer bufPool.Put(data)
	data.Reset()

	if err := m.LightMarshalBinary(data); err != nil {
		return nil, err
	}
	return append([]byte(nil), data.Bytes()...), nil
}

// LightMarshalBinary writes the encoded message into data without allocating a result slice.
func (m *Message) LightMarshalBinary(data *bytes.Buffer) error {
	if !strings.HasPrefix(m.Address, "/") {
		return errors.Errorf("LightMarshalBinary: invalid address %q", m.Address)
	}

	typetags, err := m.TypeTags()
	if err != nil {
		return errors.Wrap(err, "LightMarshalBinary")
	}

	writePaddedString(m.Address, data)
	writePaddedString(typetags, data)

	var buf [bit64Size]byte
	for _, arg := range m.Arguments {
		switch t := arg.(type) {
		case bool, nil:
			continue
		case int32:
			binary.BigEndian.PutUint32(buf[:bit32Size], uint32(t))
			data.Write(buf[:bit32Size])
		case float32:
			binary.BigEndian.PutUint32(buf[:bit32Size], math.Float32bits(t))
			data.Write(buf[:bit32Size])
		case int64:
			binary.BigEndian.PutUint64(buf[:], uint64(t))
			data.Write(buf[:])
		case float64:
			binary.BigEndian.PutUint64(buf[:], math.Float64bits(t))
			data.Write(buf[:])
		case string:
			writePaddedString(t, data)
		case []byte:
			if _, err := writeBlob(t, data); err != nil {
				return err
			}
		}
	}

	if data.Len() >= MaxPacketSize {
		return errors.Errorf("LightMarshalBinary: packet too large: %d", data.Len())
	}

	return nil
}

// NewMessageFromData decodes a single OSC message.
func NewMessageFromData(data []byte) (*Message, error) {
	msg := &Message{}
	if err := msg.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return msg, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler
func (m *Message) UnmarshalBinary(data []byte) error {
	if len(data) == 0 || data[0] != '/' {
		return errors.New("UnmarshalBinary: data not a valid OSC message")
	}

	if (len(data) % bit32Size) != 0 {
		return errors.New("UnmarshalBinary: data isn't mod 4")
	}

	b := bytes.NewBuffer(data)

	addr, _, err := readPaddedString(b)
	if err != nil {
		return errors.Wrap(err, "UnmarshalBinary")
	}

	m.Address = addr
	m.Arguments = nil
	if err = m.readArguments(b); err != nil {
		return errors.Wrap(err, "UnmarshalBinary")
	}

	return nil
}

// readArguments from `reader` and add them to the OSC message `msg`.
func (m *Message) readArguments(reader *bytes.Buffer) error {
	if reader.Len() == 0 {
		return nil
	}

	typetags, _, err := readPaddedString(reader)
	if err != nil {
		return errors.Wrap(err, "readArguments")
	}

	if len(typetags) == 0 {
		return nil
	}

	// If the typetag doesn't start with ',', it's not valid
	if typetags[0] != ',' {
		return errors.Errorf("unsupported typetag string: %s", typetags)
	}

	if len(typetags) == 1 {
		return nil
	}

	m.Arguments = make([]interface{}, 0, len(typetags)-1)

	for _, c := range typetags[1:] {
		switch TypeTag(c) {
		default:
			return errors.Errorf("unsupported typetag: %c", c)

		case TypeInt32:
			if reader.Len() < bit32Size {
				return errors.New("readArguments: not enough bytes to read int32")
			}
			m.Arguments = append(m.Arguments, int32(binary.BigEndian.Uint32(reader.Next(bit32Size))))

		case TypeInt64:
			if reader.Len() < bit64Size {
				return errors.New("readArguments: not enough bytes to read int64")
			}
			m.Arguments = append(m.Arguments, int64(binary.BigEndian.Uint64(reader.Next(bit64Size))))

		case TypeFloat32:
			if reader.Len() < bit32Size {
				return errors.New("readArguments: not enough bytes to read float32")
			}
			m.Arguments = append(m.Arguments, math.Float32frombits(binary.BigEndian.Uint32(reader.Next(bit32Size))))

		case TypeFloat64:
			if reader.Len() < bit64Size {
				return errors.New("readArguments: not enough bytes to read float64")
			}
			m.Arguments = append(m.Arguments, math.Float64frombits(binary.BigEndian.Uint64(reader.Next(bit64Size))))

		case TypeString:
			str, _, err := readPaddedString(reader)
			if err != nil {
				return errors.Wrap(err, "readArguments")
			}
			m.Arguments = append(m.Arguments, str)

		case TypeBlob:
			buf, _, err := readBlob(reader)
			if err != nil {
				return errors.Wrap(err, "readArguments")
			}
			m.Arguments = append(m.Arguments, buf)

		case TypeNil:
			m.Arguments = append(m.Arguments, nil)

		case TypeTrue:
			m.Arguments = append(m.Arguments, true)

		case TypeFalse:
			m.Arguments = append(m.Arguments, false)
		}
	}

	return nil
}
