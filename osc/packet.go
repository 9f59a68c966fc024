package osc

import (
	"encoding"

	"github.com/pkg/errors"
)

// Packet is the interface for Message and Bundle.
type Packet interface {
	encoding.BinaryMarshaler
}

// ParsePacket parses a raw OSC packet into a Message or a Bundle.
func ParsePacket(data []byte) (Packet, error) {
	d := make([]byte, len(data))
	copy(d, data)

	return parsePacket(d)
}

// parsePacket assumes the bytes have already been copied.
func parsePacket(data []byte) (Packet, error) {
	if len(data) == 0 {
		return nil, errors.New("parsePacket: empty packet")
	}

	switch data[0] {
	case '/': // An OSC Message starts with a '/'
		m := &Message{}
		if err := m.unmarshalBinary(data); err != nil {
			return nil, err
		}
		return m, nil

	case '#': // An OSC Bundle starts with a '#'
		b := &Bundle{}
		if err := b.unmarshalBinary(data); err != nil {
			return nil, err
		}
		return b, nil

	default:
		return nil, errors.Errorf("parsePacket: not an OSC packet: %q", data[0])
	}
}
