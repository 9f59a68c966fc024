package easyosc

import (
	"github.com/easyosc/go-easyosc/osc"
	"github.com/pkg/errors"
)

// Sender packs Go values into messages and ships them over UDP. Outgoing
// arguments collapse onto the three common wire types: integers become int32,
// floating point becomes float32, strings stay strings. Vectors, matrices and
// slices flatten element by element.
type Sender struct {
	client *osc.Client
}

// NewSender connects to a remote host:port.
func NewSender(addr string) (*Sender, error) {
	c, err := osc.Dial(addr)
	if err != nil {
		return nil, err
	}
	return &Sender{client: c}, nil
}

// Close releases the underlying connection.
func (s *Sender) Close() error {
	return s.client.Close()
}

// appendArg flattens one Go value onto the message.
func appendArg(m *osc.Message, arg interface{}) error {
	switch v := arg.(type) {
	case bool:
		n := int32(0)
		if v {
			n = 1
		}
		return m.Append(n)
	case byte:
		return m.Append(int32(v))
	case int:
		return m.Append(int32(v))
	case int32:
		return m.Append(v)
	case int64:
		return m.Append(int32(v))
	case float32:
		return m.Append(v)
	case float64:
		return m.Append(float32(v))
	case string:
		return m.Append(v)

	case Vec2:
		return appendComponents(m, &v)
	case Vec3:
		return appendComponents(m, &v)
	case Vec4:
		return appendComponents(m, &v)
	case Mat3:
		return appendComponents(m, &v)
	case Mat4:
		return appendComponents(m, &v)
	case Aggregate:
		return appendComponents(m, v)

	case []bool:
		return appendSlice(m, v)
	case []byte:
		return appendSlice(m, v)
	case []int:
		return appendSlice(m, v)
	case []int32:
		return appendSlice(m, v)
	case []float32:
		return appendSlice(m, v)
	case []float64:
		return appendSlice(m, v)
	case []string:
		return appendSlice(m, v)
	case []Vec2:
		return appendSlice(m, v)
	case []Vec3:
		return appendSlice(m, v)
	case []Vec4:
		return appendSlice(m, v)
	case []Mat3:
		return appendSlice(m, v)
	case []Mat4:
		return appendSlice(m, v)
	}

	return errors.Errorf("easyosc: cannot send argument of type %T", arg)
}

func appendComponents(m *osc.Message, a Aggregate) error {
	for i := 0; i < a.NumComponents(); i++ {
		if err := m.Append(a.Component(i)); err != nil {
			return err
		}
	}
	return nil
}

func appendSlice[T any](m *osc.Message, s []T) error {
	for _, e := range s {
		if err := appendArg(m, e); err != nil {
			return err
		}
	}
	return nil
}

// Send packs the arguments into a message for address and transmits it.
func (s *Sender) Send(address string, args ...interface{}) error {
	m := osc.NewMessage(address)
	for _, a := range args {
		if err := appendArg(m, a); err != nil {
			return err
		}
	}
	return s.client.Send(m)
}

// SendMessage transmits a prebuilt message or bundle unchanged.
func (s *Sender) SendMessage(p osc.Packet) error {
	return s.client.Send(p)
}
