package easyosc

import (
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/easyosc/go-easyosc/osc"
)

// Typed decoding of positional message arguments. Every decoder takes the
// argument index it should start at; an index past the end of the argument
// list, or an argument of an unconvertible wire type, yields the zero value.

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func boolArg(m *osc.Message, index int) bool {
	if index >= len(m.Arguments) {
		return false
	}
	switch a := m.Arguments[index].(type) {
	case float32:
		return a != 0
	case int32:
		return a != 0
	case float64:
		return a != 0
	case int64:
		return a != 0
	case bool:
		return a
	}
	return false
}

func byteArg(m *osc.Message, index int) byte {
	if index >= len(m.Arguments) {
		return 0
	}
	switch a := m.Arguments[index].(type) {
	case float32:
		return byte(clamp(int32(a), 0, 255))
	case int32:
		return byte(clamp(a, 0, 255))
	case float64:
		return byte(clamp(int64(a), 0, 255))
	case int64:
		return byte(clamp(a, 0, 255))
	}
	return 0
}

func int32Arg(m *osc.Message, index int) int32 {
	if index >= len(m.Arguments) {
		return 0
	}
	switch a := m.Arguments[index].(type) {
	case float32:
		return int32(a)
	case int32:
		return a
	case float64:
		return int32(a)
	case int64:
		return int32(a)
	}
	return 0
}

func intArg(m *osc.Message, index int) int {
	return int(int32Arg(m, index))
}

func floatArg(m *osc.Message, index int) float32 {
	if index >= len(m.Arguments) {
		return 0
	}
	switch a := m.Arguments[index].(type) {
	case float32:
		return a
	case int32:
		return float32(a)
	case float64:
		return float32(a)
	case int64:
		return float32(a)
	}
	return 0
}

func doubleArg(m *osc.Message, index int) float64 {
	if index >= len(m.Arguments) {
		return 0
	}
	switch a := m.Arguments[index].(type) {
	case float32:
		return float64(a)
	case int32:
		return float64(a)
	case float64:
		return a
	case int64:
		return float64(a)
	}
	return 0
}

func stringArg(m *osc.Message, index int) string {
	if index >= len(m.Arguments) {
		return ""
	}
	switch a := m.Arguments[index].(type) {
	case string:
		return a
	case float32:
		return strconv.FormatFloat(float64(a), 'g', -1, 32)
	case int32:
		return strconv.FormatInt(int64(a), 10)
	case float64:
		return strconv.FormatFloat(a, 'g', -1, 64)
	case int64:
		return strconv.FormatInt(a, 10)
	}
	return ""
}

// messageArg is the whole-message passthrough used by default listeners and
// message-typed destinations.
func messageArg(m *osc.Message, _ int) *osc.Message {
	return m.Clone()
}

// decodeAggregate fills dst from NumComponents consecutive float arguments
// starting at index. When fewer arguments remain the destination is reset to
// its zero value, never partially filled.
func decodeAggregate(m *osc.Message, index int, dst Aggregate) {
	n := dst.NumComponents()
	if len(m.Arguments)-index < n {
		for c := 0; c < n; c++ {
			dst.SetComponent(c, 0)
		}
		return
	}
	for c := 0; c < n; c++ {
		dst.SetComponent(c, floatArg(m, index+c))
	}
}

// sliceArg decodes every argument of the message into a freshly sized slice
// using the given scalar decoder.
func sliceArg[T any](m *osc.Message, elem func(*osc.Message, int) T) []T {
	out := make([]T, len(m.Arguments))
	for i := range out {
		out[i] = elem(m, i)
	}
	return out
}

// aggregateSlice decodes the message into as many complete aggregates as its
// arguments can fill; a trailing partial element is dropped.
func aggregateSlice[T any, PT interface {
	*T
	Aggregate
}](m *osc.Message) []T {
	arity := PT(new(T)).NumComponents()
	out := make([]T, len(m.Arguments)/arity)
	for i := range out {
		decodeAggregate(m, i*arity, PT(&out[i]))
	}
	return out
}
