package osc

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/pkg/errors"
)

const bundleTagString = "#bundle"

// Bundle represents an OSC bundle. It consists of the OSC-string "#bundle"
// followed by an OSC Time Tag, followed by zero or more OSC bundle/message
// elements. The OSC-timetag is a 64-bit fixed point time tag. See
// http://opensoundcontrol.org/spec-1_0.html for more information.
type Bundle struct {
	Timetag  Timetag
	Elements []Packet
}

// Verify that Bundle implements the Packet interface.
var _ Packet = (*Bundle)(nil)

// NewBundle returns an OSC Bundle with the immediate time tag.
func NewBundle(packets ...Packet) *Bundle {
	return &Bundle{Timetag: NewTimetag(), Elements: packets}
}

// NewBundleWithTime returns an OSC Bundle tagged with the given time.
func NewBundleWithTime(time time.Time, packets ...Packet) *Bundle {
	return &Bundle{Timetag: NewTimetagFromTime(time), Elements: packets}
}

// NewBundleFromData returns a new OSC bundle created from the parsed data.
func NewBundleFromData(data []byte) (b *Bundle, err error) {
	b = &Bundle{}
	if err = b.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return b, nil
}

// Append appends an OSC bundle or OSC message to the bundle.
func (b *Bundle) Append(pck Packet) error {
	switch t := pck.(type) {
	default:
		return errors.New("unsupported OSC packet type: only Bundle and Message are supported")

	case *Bundle, *Message:
		b.Elements = append(b.Elements, t)
	}

	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (b *Bundle) MarshalBinary() ([]byte, error) {
	data := bufPool.Get().(*bytes.Buffer)
	defer bufPool.Put(data)
	data.Reset()

	if err := b.LightMarshalBinary(data); err != nil {
		return nil, err
	}

	bb := make([]byte, data.Len())
	copy(bb, data.Bytes())
	return bb, nil
}

// LightMarshalBinary serializes the bundle into data: the "#bundle" string,
// the time tag, then each element preceded by its 32-bit size.
func (b *Bundle) LightMarshalBinary(data *bytes.Buffer) error {
	writePaddedString(bundleTagString, data)

	var scratch [bit64Size]byte
	binary.BigEndian.PutUint64(scratch[:], uint64(b.Timetag))
	data.Write(scratch[:])

	for _, p := range b.Elements {
		bb, err := p.MarshalBinary()
		if err != nil {
			return err
		}

		binary.BigEndian.PutUint32(scratch[:bit32Size], uint32(len(bb)))
		data.Write(scratch[:bit32Size])
		data.Write(bb)
	}

	if data.Len() >= MaxPacketSize {
		return errors.Errorf("LightMarshalBinary: bundle too large: %d", data.Len())
	}

	return nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (b *Bundle) UnmarshalBinary(d []byte) error {
	data := make([]byte, len(d))
	copy(data, d)

	return b.unmarshalBinary(data)
}

// unmarshalBinary is the actual implementation, it doesn't copy, so we can use
// a single copy for nested bundles.
func (b *Bundle) unmarshalBinary(data []byte) error {
	if (len(data) % bit32Size) != 0 {
		return errors.New("unmarshalBinary: data isn't padded properly")
	}

	if len(data) < 20 {
		return errors.New("unmarshalBinary: bundle is too short")
	}

	// Read the '#bundle' OSC string
	startTag, n, err := parsePaddedString(data)
	if err != nil {
		return err
	}
	data = data[n:]

	if startTag != bundleTagString {
		return errors.Errorf("unmarshalBinary: invalid bundle start tag: %s", startTag)
	}

	// Read the timetag
	b.Timetag = Timetag(binary.BigEndian.Uint64(data[:bit64Size]))
	data = data[bit64Size:]

	// Read until the end of the buffer
	for len(data) >= bit32Size {
		// Read the size of the bundle element
		length := int(binary.BigEndian.Uint32(data[:bit32Size]))
		data = data[bit32Size:]
		if length < 0 || len(data) < length {
			return errors.Errorf("unmarshalBinary: invalid bundle element length: %d", length)
		}

		p, err := parsePacket(data[:length])
		if err != nil {
			return err
		}
		data = data[length:]

		if err := b.Append(p); err != nil {
			return err
		}
	}

	return nil
}
