package osc

import (
	"bytes"
	"encoding/binary"
	"io"
	"sync"

	"github.com/pkg/errors"
)

const (
	bit32Size = 4
	bit64Size = 8

	// MaxPacketSize is the largest datagram the client will build or the server will read.
	MaxPacketSize = 65507
)

var bufPool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

////
// De/Encoding functions
////

// readBlob reads an OSC blob from the blob byte array. Padding bytes are
// removed from the reader and not returned.
func readBlob(reader *bytes.Buffer) ([]byte, int, error) {
	if reader.Len() < bit32Size {
		return nil, 0, errors.Wrap(io.EOF, "readBlob")
	}
	blobLen := int(binary.BigEndian.Uint32(reader.Next(bit32Size)))
	n := bit32Size + blobLen

	if blobLen < 1 || blobLen > reader.Len() {
		return nil, 0, errors.Errorf("readBlob: invalid blob length %d", blobLen)
	}

	blob := make([]byte, blobLen)
	copy(blob, reader.Next(blobLen))

	reader.Next(padBytesNeeded(n))
	return blob, n + padBytesNeeded(n), nil
}

// writeBlob writes the data byte array as an OSC blob into buff. If the length
// of data isn't 32-bit aligned, padding bytes will be added.
func writeBlob(data []byte, buf *bytes.Buffer) (int, error) {
	var size [bit32Size]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(data)))
	buf.Write(size[:])
	buf.Write(data)

	n := bit32Size + len(data)
	pad := padBytesNeeded(n)
	if pad > 0 {
		buf.Write(make([]byte, pad))
	}
	return n + pad, nil
}

// readPaddedString reads a padded string from the given reader. The padding
// bytes are removed from the reader. Returns the string and the number of
// bytes consumed.
func readPaddedString(reader *bytes.Buffer) (string, int, error) {
	pos := bytes.IndexByte(reader.Bytes(), 0)
	if pos == -1 {
		return "", 0, io.EOF
	}

	str := string(reader.Next(pos))
	n := pos + 1
	pad := padBytesNeeded(n)
	reader.Next(1 + pad)

	return str, n + pad, nil
}

// writePaddedString writes a string with padding bytes to the buffer.
// Returns the number of written bytes.
func writePaddedString(str string, buf *bytes.Buffer) int {
	buf.WriteString(str)
	n := len(str) + 1
	pad := padBytesNeeded(n)
	buf.Write(make([]byte, 1+pad))
	return n + pad
}

// padBytesNeeded determines how many bytes are needed to fill up to the next 4
// byte length.
func padBytesNeeded(elementLen int) int {
	return (4 - (elementLen % 4)) % 4
}
