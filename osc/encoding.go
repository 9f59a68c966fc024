package osc

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

////
// De/Encoding functions
////

// parseBlob parses an OSC blob from data and returns the blob and the number
// of bytes consumed, including padding.
func parseBlob(data []byte) ([]byte, int, error) {
	if len(data) < bit32Size {
		return nil, 0, errors.Wrap(io.ErrUnexpectedEOF, "parseBlob")
	}

	blobLen := int(binary.BigEndian.Uint32(data[:bit32Size]))
	data = data[bit32Size:]

	if blobLen < 1 || blobLen > len(data) {
		return nil, 0, errors.Errorf("parseBlob: invalid blob length %d", blobLen)
	}

	n := bit32Size + blobLen
	return data[:blobLen], n + padBytesNeeded(n), nil
}

// writeBlob writes the data byte array as an OSC blob into buf. If the length
// of data isn't 32-bit aligned, padding bytes will be added.
func writeBlob(data []byte, buf *bytes.Buffer) int {
	var size [bit32Size]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(data)))
	buf.Write(size[:])
	buf.Write(data)

	n := bit32Size + len(data)
	pad := padBytesNeeded(n)
	for i := 0; i < pad; i++ {
		buf.WriteByte(0)
	}

	return n + pad
}

// parsePaddedString reads a null-terminated, 32-bit aligned string from data
// and returns the string and the number of bytes consumed.
func parsePaddedString(data []byte) (string, int, error) {
	pos := bytes.IndexByte(data, 0)
	if pos == -1 {
		return "", 0, errors.Wrap(io.ErrUnexpectedEOF, "parsePaddedString")
	}

	n := pos + 1 + padBytesNeeded(pos+1)
	if n > len(data) {
		n = len(data)
	}

	return string(data[:pos]), n, nil
}

// writePaddedString writes str to buf, null terminated and padded to a 32-bit
// boundary. Returns the number of written bytes.
func writePaddedString(str string, buf *bytes.Buffer) int {
	buf.WriteString(str)

	n := len(str) + 1
	pad := 1 + padBytesNeeded(n)
	for i := 0; i < pad; i++ {
		buf.WriteByte(0)
	}

	return len(str) + pad
}

// padBytesNeeded determines how many bytes are needed to fill up to the next 4
// byte length.
func padBytesNeeded(elementLen int) int {
	return (4 - (elementLen % 4)) % 4
}
