package osc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/pkg/errors"
)

// Message represents a single OSC message. An OSC message consists of an OSC
// address pattern and zero or more arguments.
type Message struct {
	Address   string
	Arguments []interface{}
}

// Verify that Message implements the Packet interface.
var _ Packet = (*Message)(nil)

// NewMessage returns a new Message. The address parameter is the OSC address.
func NewMessage(addr string, args ...interface{}) *Message {
	return &Message{Address: addr, Arguments: args}
}

// NewMessageFromData returns a new Message parsed from a raw packet.
func NewMessageFromData(data []byte) (msg *Message, err error) {
	msg = &Message{}
	if err = msg.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return msg, nil
}

// Append appends the given arguments to the arguments list. It rejects
// argument types that have no OSC TypeTag.
func (m *Message) Append(args ...interface{}) error {
	for _, a := range args {
		if ToTypeTag(a) == TypeInvalid {
			return errors.Errorf("Append: unsupported type: %T", a)
		}
	}
	m.Arguments = append(m.Arguments, args...)
	return nil
}

// Clear clears the OSC address and all arguments.
func (m *Message) Clear() {
	m.Address = ""
	m.Arguments = m.Arguments[:0]
}

// CountArguments returns the number of arguments.
func (m *Message) CountArguments() int {
	return len(m.Arguments)
}

// Equals reports whether the message has the same address and arguments as m2.
func (m *Message) Equals(m2 *Message) bool {
	return reflect.DeepEqual(m, m2)
}

// Clone returns a copy of the message with its own argument slice.
func (m *Message) Clone() *Message {
	args := make([]interface{}, len(m.Arguments))
	copy(args, m.Arguments)
	return &Message{Address: m.Address, Arguments: args}
}

// TypeTags returns the type tag string.
func (m *Message) TypeTags() (string, error) {
	if m == nil {
		return "", errors.New("TypeTags: message is nil")
	}

	tags := make([]byte, 0, len(m.Arguments)+1)
	tags = append(tags, ',')
	for _, arg := range m.Arguments {
		t := ToTypeTag(arg)
		if t == TypeInvalid {
			return "", errors.Errorf("TypeTags: unsupported type: %T", arg)
		}
		tags = append(tags, byte(t))
	}

	return string(tags), nil
}

// String implements the fmt.Stringer interface.
func (m *Message) String() string {
	if m == nil {
		return ""
	}

	tags, _ := m.TypeTags()

	strBuf := bufPool.Get().(*bytes.Buffer)
	defer bufPool.Put(strBuf)
	strBuf.Reset()

	strBuf.WriteString(m.Address)
	if len(tags) <= 1 {
		return strBuf.String()
	}

	strBuf.WriteByte(' ')
	strBuf.WriteString(tags)

	for _, arg := range m.Arguments {
		switch arg := arg.(type) {
		case bool, int32, int64, float32, float64, string:
			fmt.Fprintf(strBuf, " %v", arg)

		case nil:
			strBuf.WriteString(" Nil")

		case []byte:
			strBuf.WriteString(" blob")

		case Timetag:
			fmt.Fprintf(strBuf, " %d", arg.TimeTag())
		}
	}

	return strBuf.String()
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (m *Message) MarshalBinary() ([]byte, error) {
	data := bufPool.Get().(*bytes.Buffer)
	defer bufPool.Put(data)
	data.Reset()

	if err := m.LightMarshalBinary(data); err != nil {
		return nil, err
	}

	b := make([]byte, data.Len())
	copy(b, data.Bytes())
	return b, nil
}

// LightMarshalBinary serializes the message into data. The serialized form is
// the address pattern, the type tag string, then the arguments, each padded to
// a 32-bit boundary.
func (m *Message) LightMarshalBinary(data *bytes.Buffer) error {
	b := bufPool.Get().(*bytes.Buffer)
	defer bufPool.Put(b)
	b.Reset()

	tags := make([]byte, 0, len(m.Arguments)+1)
	tags = append(tags, ',')

	var scratch [bit64Size]byte

	for _, arg := range m.Arguments {
		switch t := arg.(type) {
		default:
			return errors.Errorf("LightMarshalBinary: unsupported type: %T", t)

		case bool:
			if t {
				tags = append(tags, 'T')
			} else {
				tags = append(tags, 'F')
			}
		case nil:
			tags = append(tags, 'N')
		case int32:
			tags = append(tags, 'i')
			binary.BigEndian.PutUint32(scratch[:bit32Size], uint32(t))
			b.Write(scratch[:bit32Size])
		case float32:
			tags = append(tags, 'f')
			binary.BigEndian.PutUint32(scratch[:bit32Size], math.Float32bits(t))
			b.Write(scratch[:bit32Size])
		case string:
			tags = append(tags, 's')
			writePaddedString(t, b)
		case []byte:
			tags = append(tags, 'b')
			writeBlob(t, b)
		case int64:
			tags = append(tags, 'h')
			binary.BigEndian.PutUint64(scratch[:], uint64(t))
			b.Write(scratch[:])
		case float64:
			tags = append(tags, 'd')
			binary.BigEndian.PutUint64(scratch[:], math.Float64bits(t))
			b.Write(scratch[:])
		case Timetag:
			tags = append(tags, 't')
			binary.BigEndian.PutUint64(scratch[:], uint64(t))
			b.Write(scratch[:])
		}
	}

	if b.Len() >= MaxPacketSize {
		return errors.Errorf("LightMarshalBinary: payload too large: %d", b.Len())
	}

	writePaddedString(m.Address, data)
	writePaddedString(string(tags), data)
	data.Write(b.Bytes())

	if data.Len() >= MaxPacketSize {
		return errors.Errorf("LightMarshalBinary: packet too large: %d", data.Len())
	}

	return nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (m *Message) UnmarshalBinary(d []byte) error {
	data := make([]byte, len(d))
	copy(data, d)

	return m.unmarshalBinary(data)
}

// unmarshalBinary is the actual implementation, it doesn't copy, so a bundle
// can be parsed with a single copy of the packet.
func (m *Message) unmarshalBinary(data []byte) error {
	if len(data) == 0 || data[0] != '/' {
		return errors.New("unmarshalBinary: data is not a valid OSC message")
	}

	if (len(data) % bit32Size) != 0 {
		return errors.New("unmarshalBinary: data isn't padded properly")
	}

	addr, n, err := parsePaddedString(data)
	if err != nil {
		return errors.Wrap(err, "unmarshalBinary")
	}

	m.Address = addr
	return m.parseArguments(data[n:])
}

// parseArguments parses the type tag string and the arguments following it.
func (m *Message) parseArguments(data []byte) error {
	if len(data) == 0 {
		return nil
	}

	tags, n, err := parsePaddedString(data)
	if err != nil {
		return errors.Wrap(err, "parseArguments")
	}
	data = data[n:]

	if len(tags) == 0 {
		return nil
	}
	if tags[0] != ',' {
		return errors.Errorf("parseArguments: unsupported typetag string: %s", tags)
	}

	m.Arguments = make([]interface{}, 0, len(tags)-1)

	for _, c := range tags[1:] {
		switch c {
		default:
			return errors.Errorf("parseArguments: unsupported typetag: %c", c)

		case 'i': // int32
			if len(data) < bit32Size {
				return errors.New("parseArguments: not enough data for int32")
			}
			m.Arguments = append(m.Arguments, int32(binary.BigEndian.Uint32(data[:bit32Size])))
			data = data[bit32Size:]

		case 'h': // int64
			if len(data) < bit64Size {
				return errors.New("parseArguments: not enough data for int64")
			}
			m.Arguments = append(m.Arguments, int64(binary.BigEndian.Uint64(data[:bit64Size])))
			data = data[bit64Size:]

		case 'f': // float32
			if len(data) < bit32Size {
				return errors.New("parseArguments: not enough data for float32")
			}
			m.Arguments = append(m.Arguments, math.Float32frombits(binary.BigEndian.Uint32(data[:bit32Size])))
			data = data[bit32Size:]

		case 'd': // float64/double
			if len(data) < bit64Size {
				return errors.New("parseArguments: not enough data for float64")
			}
			m.Arguments = append(m.Arguments, math.Float64frombits(binary.BigEndian.Uint64(data[:bit64Size])))
			data = data[bit64Size:]

		case 's': // string
			str, n, err := parsePaddedString(data)
			if err != nil {
				return errors.Wrap(err, "parseArguments")
			}
			m.Arguments = append(m.Arguments, str)
			data = data[n:]

		case 'b': // blob
			blob, n, err := parseBlob(data)
			if err != nil {
				return errors.Wrap(err, "parseArguments")
			}
			m.Arguments = append(m.Arguments, blob)
			data = data[n:]

		case 't': // OSC time tag
			if len(data) < bit64Size {
				return errors.New("parseArguments: not enough data for timetag")
			}
			m.Arguments = append(m.Arguments, Timetag(binary.BigEndian.Uint64(data[:bit64Size])))
			data = data[bit64Size:]

		case 'N': // nil
			m.Arguments = append(m.Arguments, nil)

		case 'T': // true
			m.Arguments = append(m.Arguments, true)

		case 'F': // false
			m.Arguments = append(m.Arguments, false)
		}
	}

	return nil
}
