package easyosc

import (
	"reflect"
	"testing"

	"github.com/easyosc/go-easyosc/osc"
)

func msg(args ...interface{}) *osc.Message {
	return osc.NewMessage("/test", args...)
}

func TestScalarCoercion(t *testing.T) {
	tests := []struct {
		name string
		m    *osc.Message
		got  func(*osc.Message) interface{}
		want interface{}
	}{
		{"bool_from_nonzero_int", msg(int32(5)), func(m *osc.Message) interface{} { return boolArg(m, 0) }, true},
		{"bool_from_zero_float", msg(float32(0)), func(m *osc.Message) interface{} { return boolArg(m, 0) }, false},
		{"bool_from_true", msg(true), func(m *osc.Message) interface{} { return boolArg(m, 0) }, true},
		{"byte_clamps_high", msg(int32(300)), func(m *osc.Message) interface{} { return byteArg(m, 0) }, byte(255)},
		{"byte_clamps_negative", msg(int32(-3)), func(m *osc.Message) interface{} { return byteArg(m, 0) }, byte(0)},
		{"byte_from_float", msg(float32(64.9)), func(m *osc.Message) interface{} { return byteArg(m, 0) }, byte(64)},
		{"int_truncates_float", msg(float32(3.9)), func(m *osc.Message) interface{} { return intArg(m, 0) }, 3},
		{"int_from_int64", msg(int64(42)), func(m *osc.Message) interface{} { return intArg(m, 0) }, 42},
		{"float_from_int", msg(int32(7)), func(m *osc.Message) interface{} { return floatArg(m, 0) }, float32(7)},
		{"float_from_double", msg(float64(2.5)), func(m *osc.Message) interface{} { return floatArg(m, 0) }, float32(2.5)},
		{"double_from_float", msg(float32(1.5)), func(m *osc.Message) interface{} { return doubleArg(m, 0) }, 1.5},
		{"string_passthrough", msg("hi"), func(m *osc.Message) interface{} { return stringArg(m, 0) }, "hi"},
		{"string_from_int", msg(int32(12)), func(m *osc.Message) interface{} { return stringArg(m, 0) }, "12"},
		{"string_from_float", msg(float32(0.5)), func(m *osc.Message) interface{} { return stringArg(m, 0) }, "0.5"},
		{"missing_arg_int", msg(), func(m *osc.Message) interface{} { return intArg(m, 0) }, 0},
		{"missing_arg_string", msg(), func(m *osc.Message) interface{} { return stringArg(m, 0) }, ""},
		{"index_past_end", msg(int32(1)), func(m *osc.Message) interface{} { return floatArg(m, 3) }, float32(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got(tt.m); got != tt.want {
				t.Errorf("got %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestDecodeAggregate(t *testing.T) {
	var v Vec3
	decodeAggregate(msg(float32(1), float32(2), float32(3)), 0, &v)
	if v != (Vec3{1, 2, 3}) {
		t.Errorf("got %v, want {1 2 3}", v)
	}

	decodeAggregate(msg(int32(4), int32(5), int32(6)), 0, &v)
	if v != (Vec3{4, 5, 6}) {
		t.Errorf("int coercion: got %v, want {4 5 6}", v)
	}
}

func TestDecodeAggregateShortMessageZeroes(t *testing.T) {
	v := Vec3{9, 9, 9}
	decodeAggregate(msg(float32(1), float32(2)), 0, &v)
	if v != (Vec3{}) {
		t.Errorf("got %v, want zero value", v)
	}
}

func TestSliceArg(t *testing.T) {
	got := sliceArg(msg(int32(1), float32(2.5), "3"), floatArg)
	want := []float32{1, 2.5, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAggregateSliceFloorsPartialElement(t *testing.T) {
	m := msg(
		float32(1), float32(2), float32(3),
		float32(4), float32(5), float32(6),
		float32(7),
	)
	got := aggregateSlice[Vec3, *Vec3](m)
	want := []Vec3{{1, 2, 3}, {4, 5, 6}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAggregateSliceEmptyMessage(t *testing.T) {
	if got := aggregateSlice[Vec2, *Vec2](msg()); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
